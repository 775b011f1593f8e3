// Package signal defines the core data model that flows through the
// scoring pipeline: bilingual news signals, topical categories, and
// ordered severity levels.
package signal

import "strings"

// Category is a topical classification for a signal.
type Category string

const (
	CategoryLegal      Category = "legal"
	CategorySocial     Category = "social"
	CategoryEconomic   Category = "economic"
	CategoryPolitical  Category = "political"
	CategoryMilitary   Category = "military"
	CategoryTechnology Category = "technology"
	CategoryDiplomatic Category = "diplomatic"
	CategoryTrade      Category = "trade"
)

// SpecificityOrder lists all categories from most to least specific.
// Classification ties are broken by this order: earlier wins.
var SpecificityOrder = []Category{
	CategoryLegal,
	CategorySocial,
	CategoryEconomic,
	CategoryPolitical,
	CategoryMilitary,
	CategoryTechnology,
	CategoryDiplomatic,
	CategoryTrade,
}

// Valid reports whether c is one of the eight known categories.
func (c Category) Valid() bool {
	for _, known := range SpecificityOrder {
		if c == known {
			return true
		}
	}
	return false
}

// Title returns the category with its first letter capitalized, for
// display.
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// Severity is an ordered alert level for a signal.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityElevated Severity = "elevated"
	SeverityModerate Severity = "moderate"
	SeverityLow      Severity = "low"
)

// Rank returns the severity's position in the total order,
// critical=5 down to low=1. Unknown severities rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityElevated:
		return 3
	case SeverityModerate:
		return 2
	case SeverityLow:
		return 1
	}
	return 0
}

// Points returns the severity's contribution to a tension component.
// Point values coincide with rank.
func (s Severity) Points() int { return s.Rank() }

// MaxSeverity returns the higher-ranked of two severities.
func MaxSeverity(a, b Severity) Severity {
	if b.Rank() > a.Rank() {
		return b
	}
	return a
}

// BilingualText holds the English and Chinese variants of a text
// field. Either side may be empty.
type BilingualText struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

// Empty reports whether both sides are blank.
func (b BilingualText) Empty() bool {
	return strings.TrimSpace(b.EN) == "" && strings.TrimSpace(b.ZH) == ""
}

// Join returns both sides separated by a space, skipping empty sides.
func (b BilingualText) Join() string {
	switch {
	case b.EN == "":
		return b.ZH
	case b.ZH == "":
		return b.EN
	}
	return b.EN + " " + b.ZH
}

// Signal is one unit of news content about the bilateral
// relationship. The loader creates it, each classifier stage fills in
// its output fields in place, and output assembly treats it as
// immutable.
type Signal struct {
	ID       string        `json:"id"`
	Title    BilingualText `json:"title"`
	Body     BilingualText `json:"body"`
	Headline BilingualText `json:"headline,omitempty"`
	Summary  BilingualText `json:"summary,omitempty"`
	Source   BilingualText `json:"source"`
	Date     string        `json:"date"`
	URL      string        `json:"url,omitempty"`

	// Filled in by the classification stages.
	Category  Category `json:"category,omitempty"`
	Severity  Severity `json:"severity,omitempty"`
	RawScore  int      `json:"raw_score,omitempty"`
	EntityIDs []string `json:"entity_ids,omitempty"`

	// Optional derived text generated downstream; the entity matcher
	// searches it when present.
	Implications BilingualText `json:"implications,omitempty"`
}

// ClassifyText concatenates the signal's title, body, headline and
// summary across both languages. This is the text the category and
// severity classifiers score.
func (s *Signal) ClassifyText() string {
	parts := make([]string, 0, 4)
	for _, f := range []BilingualText{s.Title, s.Body, s.Headline, s.Summary} {
		if j := f.Join(); j != "" {
			parts = append(parts, j)
		}
	}
	return strings.Join(parts, " ")
}

// SearchText is ClassifyText plus derived implications text. The
// entity matcher scans this wider surface.
func (s *Signal) SearchText() string {
	text := s.ClassifyText()
	if j := s.Implications.Join(); j != "" {
		if text == "" {
			return j
		}
		return text + " " + j
	}
	return text
}
