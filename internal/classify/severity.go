package classify

import (
	"strings"
	"time"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/sources"
	"github.com/abelbrown/tensionwatch/internal/text"
)

// Raw score thresholds for severity levels, checked in descending
// order. Scores are floored at zero, so low is the floor band.
var severityThresholds = []struct {
	min   int
	level signal.Severity
}{
	{10, signal.SeverityCritical},
	{7, signal.SeverityHigh},
	{5, signal.SeverityElevated},
	{3, signal.SeverityModerate},
	{0, signal.SeverityLow},
}

// Direct bilateral relationship terms: paired country forms, capitals
// as metonyms, the head of government, the hyphenated adjective.
var bilateralKeywordsEN = []string{
	"canada-china", "canada china", "sino-canadian", "canadian",
	"ottawa", "beijing", "trudeau", "canada",
}

var bilateralKeywordsZH = []string{"加拿大", "加中", "渥太华"}

// Generic foreign-country mentions, worth one point.
var chinaKeywordsEN = []string{"china", "chinese", "beijing", "prc"}

var chinaKeywordsZH = []string{"中国", "北京"}

// SeverityScorer computes severity from four additive factors: source
// tier, keyword modifiers, bilateral directness, and recency.
type SeverityScorer struct {
	modifiers map[string]config.Modifier
}

// NewSeverityScorer builds a scorer over validated modifier tables.
func NewSeverityScorer(kw *config.Keywords) *SeverityScorer {
	return &SeverityScorer{modifiers: kw.Modifiers}
}

// ScoreSignal computes and stores the signal's raw score and severity
// level. The raw score stays on the signal for the index aggregator.
func (s *SeverityScorer) ScoreSignal(sig *signal.Signal, tier sources.Tier, ref time.Time) {
	score := s.Score(sig.ClassifyText(), tier, sig.Date, ref)
	sig.RawScore = score
	sig.Severity = ScoreToSeverity(score)
}

// Score computes the raw severity score for a piece of signal text.
// Never negative.
func (s *SeverityScorer) Score(input string, tier sources.Tier, date string, ref time.Time) int {
	score := tier.Score()
	score += s.modifierScore(input)
	score += bilateralScore(input)
	if date != "" {
		score += recencyScore(date, ref)
	}
	if score < 0 {
		return 0
	}
	return score
}

// modifierScore applies each modifier group's weight at most once,
// regardless of how many of its keywords match. Groups fire
// independently, so escalation and de-escalation can offset.
func (s *SeverityScorer) modifierScore(input string) int {
	lower := strings.ToLower(input)

	score := 0
	for _, group := range config.ModifierGroups {
		mod, ok := s.modifiers[group]
		if !ok {
			continue
		}

		matched := false
		for _, kw := range mod.EN {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matched = true
				break
			}
		}
		if !matched {
			for _, kw := range mod.ZH {
				if strings.Contains(input, kw) {
					matched = true
					break
				}
			}
		}
		if matched {
			score += mod.Weight
		}
	}
	return score
}

// bilateralScore returns 2 for direct bilateral mentions, 1 for a
// generic foreign-country mention, 0 otherwise.
func bilateralScore(input string) int {
	lower := strings.ToLower(input)

	for _, kw := range bilateralKeywordsEN {
		if strings.Contains(lower, kw) {
			return 2
		}
	}
	for _, kw := range bilateralKeywordsZH {
		if strings.Contains(input, kw) {
			return 2
		}
	}

	for _, kw := range chinaKeywordsEN {
		if strings.Contains(lower, kw) {
			return 1
		}
	}
	for _, kw := range chinaKeywordsZH {
		if strings.Contains(input, kw) {
			return 1
		}
	}

	return 0
}

// recencyScore: +1 for the analysis day itself, 0 within the week,
// -1 for older. Unparseable dates are neutral.
func recencyScore(date string, ref time.Time) int {
	parsed, ok := text.ParseDate(date)
	if !ok {
		return 0
	}

	days := int(ref.Sub(parsed).Hours() / 24)
	switch {
	case days <= 0:
		return 1
	case days <= 7:
		return 0
	}
	return -1
}

// ScoreToSeverity maps a raw integer score to a severity level.
func ScoreToSeverity(score int) signal.Severity {
	for _, t := range severityThresholds {
		if score >= t.min {
			return t.level
		}
	}
	return signal.SeverityLow
}
