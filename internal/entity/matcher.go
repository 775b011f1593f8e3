// Package entity tags signals with known actors, institutions and
// commodities, and aggregates a mention directory across a day.
package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/signal"
)

// entityTypes maps known entity identifiers to a display type.
// Anything unmapped is reported as "org".
var entityTypes = map[string]string{
	"xi_jinping":      "people",
	"wang_yi":         "people",
	"two_michaels":    "people",
	"mofcom":          "institution",
	"mfa":             "institution",
	"csis":            "institution",
	"ufwd":            "institution",
	"mss":             "institution",
	"huawei":          "org",
	"canola":          "commodity",
	"rare_earths":     "commodity",
	"softwood_lumber": "commodity",
}

// DirectoryEntry is one matched entity with its day-level mention
// count and display metadata.
type DirectoryEntry struct {
	ID          string               `json:"id"`
	Name        signal.BilingualText `json:"name"`
	Type        string               `json:"type"`
	Mentions    int                  `json:"mentions"`
	Description signal.BilingualText `json:"description"`
}

// Matcher finds entity aliases in signal text.
type Matcher struct {
	entities map[string]config.LangKeywords
}

// NewMatcher builds a matcher over the configured alias tables.
func NewMatcher(kw *config.Keywords) *Matcher {
	return &Matcher{entities: kw.Entities}
}

// Match returns the sorted, de-duplicated entity IDs whose aliases
// appear in the text. English aliases match case-insensitively; the
// Chinese aliases are only consulted when no English alias hit.
func (m *Matcher) Match(searchText string) []string {
	if searchText == "" {
		return nil
	}
	lowered := strings.ToLower(searchText)

	var ids []string
	for id, aliases := range m.entities {
		if matchAliases(lowered, searchText, aliases) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func matchAliases(lowered, raw string, aliases config.LangKeywords) bool {
	for _, alias := range aliases.EN {
		if strings.Contains(lowered, strings.ToLower(alias)) {
			return true
		}
	}
	for _, alias := range aliases.ZH {
		if strings.Contains(raw, alias) {
			return true
		}
	}
	return false
}

// MatchSignal tags the signal's EntityIDs in place from all of its
// searchable text, implications included.
func (m *Matcher) MatchSignal(sig *signal.Signal) {
	sig.EntityIDs = m.Match(sig.SearchText())
}

// BuildDirectory aggregates mention counts across a day's signals
// into directory entries, sorted by mentions descending with ties
// broken by ID for stable output.
func (m *Matcher) BuildDirectory(signals []*signal.Signal) []DirectoryEntry {
	counts := make(map[string]int)
	for _, sig := range signals {
		for _, id := range sig.EntityIDs {
			counts[id]++
		}
	}

	entries := make([]DirectoryEntry, 0, len(counts))
	for id, n := range counts {
		entries = append(entries, DirectoryEntry{
			ID:       id,
			Name:     m.displayName(id),
			Type:     typeOf(id),
			Mentions: n,
			Description: signal.BilingualText{
				EN: fmt.Sprintf("Mentioned in %d signal(s) today.", n),
				ZH: fmt.Sprintf("今日在%d条信号中被提及。", n),
			},
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Mentions != entries[j].Mentions {
			return entries[i].Mentions > entries[j].Mentions
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// displayName picks the first configured alias per language, falling
// back to the id when a language has no aliases.
func (m *Matcher) displayName(id string) signal.BilingualText {
	aliases := m.entities[id]
	name := signal.BilingualText{EN: id, ZH: id}
	if len(aliases.EN) > 0 {
		name.EN = aliases.EN[0]
	}
	if len(aliases.ZH) > 0 {
		name.ZH = aliases.ZH[0]
	}
	return name
}

func typeOf(id string) string {
	if t, ok := entityTypes[id]; ok {
		return t
	}
	return "org"
}
