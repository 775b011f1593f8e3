// Package text provides the language-aware text primitives shared by
// the deduplication and classification stages: normalization, CJK
// detection, stop-word tokenization, similarity measures, and date
// parsing.
package text

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lowercases text, strips punctuation, and collapses
// whitespace. CJK characters pass through untouched.
func Normalize(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(b.String(), " "))
}

// NormalizeURL strips scheme, query parameters, fragment, and
// trailing slashes so the same article compares equal across
// http/https and tracking-parameter variants.
func NormalizeURL(raw string) string {
	if raw == "" {
		return ""
	}
	lowered := strings.TrimSpace(strings.ToLower(raw))
	parsed, err := url.Parse(lowered)
	if err != nil {
		return strings.TrimRight(lowered, "/")
	}
	clean := parsed.Host + strings.TrimRight(parsed.Path, "/")
	return strings.Trim(clean, "/")
}

// ContainsCJK reports whether the text contains characters in the CJK
// Unified Ideographs block.
func ContainsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			return true
		}
	}
	return false
}

// DetectLanguage returns "zh" if the text contains CJK characters,
// "en" otherwise.
func DetectLanguage(s string) string {
	if ContainsCJK(s) {
		return "zh"
	}
	return "en"
}

// English function words excluded from Jaccard comparison. Common
// words inflate similarity without indicating the same story.
var stopWordsEN = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {},
	"in": {}, "on": {}, "at": {}, "to": {}, "for": {}, "of": {},
	"with": {}, "by": {}, "from": {}, "is": {}, "are": {}, "was": {},
	"were": {}, "be": {}, "been": {}, "has": {}, "have": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {},
	"could": {}, "should": {}, "may": {}, "might": {}, "that": {},
	"this": {}, "it": {}, "its": {}, "not": {}, "no": {}, "he": {},
	"she": {}, "they": {}, "we": {}, "you": {}, "his": {}, "her": {},
	"their": {}, "our": {}, "my": {}, "said": {}, "says": {},
	"also": {}, "as": {}, "if": {}, "so": {}, "than": {}, "can": {},
	"about": {}, "more": {}, "up": {}, "out": {}, "into": {},
	"over": {}, "after": {}, "new": {}, "two": {}, "one": {},
}

// Chinese function characters and high-frequency reporting words
// excluded from Jaccard comparison.
var stopWordsZH = map[rune]struct{}{
	'的': {}, '了': {}, '是': {}, '在': {}, '和': {}, '与': {},
	'对': {}, '为': {}, '将': {}, '被': {}, '这': {}, '那': {},
	'有': {}, '也': {}, '就': {}, '都': {}, '而': {}, '及': {},
	'等': {}, '到': {}, '从': {}, '向': {}, '于': {}, '以': {},
	'把': {}, '给': {}, '让': {}, '用': {}, '并': {}, '或': {},
	'但': {}, '却': {}, '又': {}, '所': {}, '其': {}, '之': {},
	'此': {}, '某': {}, '该': {}, '各': {}, '着': {}, '过': {},
	'来': {}, '去': {}, '上': {}, '下': {}, '中': {}, '内': {},
	'外': {}, '间': {}, '后': {}, '前': {}, '时': {}, '日': {},
	'月': {}, '年': {}, '说': {}, '称': {},
}

var englishWordRe = regexp.MustCompile(`\b[a-zA-Z]{3,}\b`)

// TokenSet tokenizes mixed-language text for Jaccard comparison.
// English contributes whole words of length >= 3; Chinese contributes
// individual characters since no word boundaries can be assumed.
// Stop words are excluded for both languages.
func TokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})

	for _, w := range englishWordRe.FindAllString(strings.ToLower(s), -1) {
		if _, stop := stopWordsEN[w]; !stop {
			tokens[w] = struct{}{}
		}
	}

	for _, r := range s {
		if r >= 0x4e00 && r <= 0x9fff {
			if _, stop := stopWordsZH[r]; !stop {
				tokens[string(r)] = struct{}{}
			}
		}
	}

	return tokens
}

// WordSet splits lowercased text on whitespace into a set, for exact
// single-token keyword matching.
func WordSet(s string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		words[w] = struct{}{}
	}
	return words
}
