// Package classify assigns categories and severity levels to
// signals. Both classifiers are pure and total: they always produce a
// valid result, degrading to neutral defaults on malformed input.
package classify

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/text"
)

// Keyword scoring weights. An exact token or phrase hit counts full;
// a fragment of a longer keyword earns partial credit.
const (
	exactWeight   = 3
	partialWeight = 1
)

// CategoryClassifier scores signal text against per-category keyword
// lists and picks the best match.
type CategoryClassifier struct {
	categories map[signal.Category]config.LangKeywords
}

// NewCategoryClassifier builds a classifier over validated keyword
// tables.
func NewCategoryClassifier(kw *config.Keywords) *CategoryClassifier {
	return &CategoryClassifier{categories: kw.Categories}
}

// ClassifySignal classifies a signal in place from its combined text.
func (c *CategoryClassifier) ClassifySignal(sig *signal.Signal) {
	sig.Category = c.Classify(sig.ClassifyText())
}

// Classify scores the text against every category's keyword pair and
// returns the highest scorer. Ties break toward the more specific
// category. Text that matches nothing falls through heuristics and
// finally defaults to political.
func (c *CategoryClassifier) Classify(input string) signal.Category {
	scores := make(map[signal.Category]int, len(c.categories))
	maxScore := 0
	for cat, kw := range c.categories {
		score := scoreKeywords(input, kw.EN) + scoreKeywords(input, kw.ZH)
		scores[cat] = score
		if score > maxScore {
			maxScore = score
		}
	}

	if maxScore == 0 {
		return fallbackCategory(input)
	}

	// Specificity order settles ties deterministically.
	for _, cat := range signal.SpecificityOrder {
		if scores[cat] == maxScore {
			return cat
		}
	}
	return signal.CategoryPolitical
}

// scoreKeywords scores one language side of a category against the
// text: +3 for an exact token or contiguous phrase, +1 when only a
// fragment longer than two characters appears.
func scoreKeywords(input string, keywords []string) int {
	if len(keywords) == 0 {
		return 0
	}

	lower := strings.ToLower(input)
	words := text.WordSet(input)

	score := 0
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)

		if !strings.Contains(kw, " ") {
			if _, ok := words[kw]; ok {
				score += exactWeight
				continue
			}
		}
		if strings.Contains(lower, kw) {
			score += exactWeight
			continue
		}
		for _, part := range strings.Fields(kw) {
			if utf8.RuneCountInString(part) > 2 && strings.Contains(lower, part) {
				score += partialWeight
				break
			}
		}
	}
	return score
}

var financialRe = regexp.MustCompile(`\$[\d,.]+[bmk]?\b|\d+\s*(?:billion|million|percent|%)`)

var businessWords = []string{
	"company", "firm", "corp", "inc", "group", "stock", "share",
	"market", "revenue", "profit", "loss", "earn", "sales", "price",
	"investor", "ipo", "fund",
}

var militaryWords = []string{
	"military", "army", "navy", "pla", "missile", "defense", "defence",
	"warfare", "troops", "warship", "fighter jet", "bomber",
}

var techWords = []string{
	"chip", "semiconductor", "ai ", "artificial intelligence", "cyber",
	"5g", "quantum", "robot",
}

// fallbackCategory is the heuristic for text no keyword list
// recognizes: financial figures with business terms read as economic,
// then military and technology vocabularies, then political.
func fallbackCategory(input string) signal.Category {
	t := strings.ToLower(input)

	if financialRe.MatchString(t) {
		for _, w := range businessWords {
			if strings.Contains(t, w) {
				return signal.CategoryEconomic
			}
		}
	}
	for _, w := range militaryWords {
		if strings.Contains(t, w) {
			return signal.CategoryMilitary
		}
	}
	for _, w := range techWords {
		if strings.Contains(t, w) {
			return signal.CategoryTechnology
		}
	}
	return signal.CategoryPolitical
}
