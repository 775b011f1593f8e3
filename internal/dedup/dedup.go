// Package dedup collapses near-duplicate signals within the current
// day and across a multi-day lookback window.
//
// Four tiers of matching run in order, stopping at the first hit:
//
//  1. URL match: identical source URL after normalization
//  2. Title match: similarity ratio over the language threshold
//     (0.80 English, 0.70 Chinese — shorter headlines)
//  3. Title + body: title ratio in the fuzzy range AND body Jaccard
//  4. Same story, different outlet: same category, a shared entity,
//     and body Jaccard over a lower bar
//
// Signals below every threshold are distinct and kept; the first-seen
// signal wins. Tier 4 requires category and entity IDs, so the
// pre-classification pass must run before deduplication.
package dedup

import (
	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/logging"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/text"
)

// Reason identifies which cascade tier flagged a duplicate.
type Reason string

const (
	ReasonNone       Reason = ""
	ReasonURL        Reason = "url"
	ReasonTitle      Reason = "title"
	ReasonTitleBody  Reason = "title+body"
	ReasonEntityBody Reason = "entity+body"
)

// Stats counts drops per cascade tier for one deduplication pass.
type Stats struct {
	TotalBefore       int `json:"total_before"`
	TotalAfter        int `json:"total_after"`
	DroppedURL        int `json:"dropped_url"`
	DroppedTitle      int `json:"dropped_title"`
	DroppedTitleBody  int `json:"dropped_title_body"`
	DroppedEntityBody int `json:"dropped_entity_body"`
}

// TotalDropped sums drops across all tiers.
func (s Stats) TotalDropped() int {
	return s.DroppedURL + s.DroppedTitle + s.DroppedTitleBody + s.DroppedEntityBody
}

func (s *Stats) record(reason Reason) {
	switch reason {
	case ReasonURL:
		s.DroppedURL++
	case ReasonTitle:
		s.DroppedTitle++
	case ReasonEntityBody:
		s.DroppedEntityBody++
	default:
		s.DroppedTitleBody++
	}
}

// Engine runs the four-tier duplicate cascade with configured
// thresholds.
type Engine struct {
	cfg config.DedupConfig
}

// NewEngine creates an engine with the given thresholds.
func NewEngine(cfg config.DedupConfig) *Engine {
	return &Engine{cfg: cfg}
}

// comparable holds the extracted plain-text view of a signal used by
// the cascade. English text is preferred when both sides exist.
type comparableText struct {
	title string
	body  string
	url   string
}

func extract(sig *signal.Signal) comparableText {
	title := sig.Title.EN
	if title == "" {
		title = sig.Title.ZH
	}

	body := sig.Body.EN
	if body == "" {
		body = sig.Body.ZH
	}
	if body == "" {
		body = sig.Summary.Join()
	}

	return comparableText{title: title, body: body, url: sig.URL}
}

// IsDuplicate reports whether a duplicates b, and the tier that
// fired. Tier order is fixed: URL short-circuits everything else.
func (e *Engine) IsDuplicate(a, b *signal.Signal) (bool, Reason) {
	ca, cb := extract(a), extract(b)

	// Tier 1: URL exact match.
	if ca.url != "" && cb.url != "" {
		if text.NormalizeURL(ca.url) == text.NormalizeURL(cb.url) {
			return true, ReasonURL
		}
	}

	// Chinese headlines run shorter, so either side being Chinese
	// lowers the title bar.
	titleThreshold := e.cfg.TitleThresholdEN
	if text.ContainsCJK(ca.title+ca.body) || text.ContainsCJK(cb.title+cb.body) {
		titleThreshold = e.cfg.TitleThresholdZH
	}

	// Tier 2: title similarity.
	titleSim := text.Ratio(text.Normalize(ca.title), text.Normalize(cb.title))
	if titleSim >= titleThreshold {
		return true, ReasonTitle
	}

	// Tier 3: fuzzy title plus body overlap.
	if titleSim >= e.cfg.TitleFuzzyLow {
		if text.Jaccard(ca.body, cb.body) >= e.cfg.BodyJaccard {
			return true, ReasonTitleBody
		}
	}

	// Tier 4: same story from a different outlet.
	if a.Category != "" && a.Category == b.Category && sharesEntity(a.EntityIDs, b.EntityIDs) {
		if text.Jaccard(ca.body, cb.body) >= e.cfg.EntityBodyJaccard {
			return true, ReasonEntityBody
		}
	}

	return false, ReasonNone
}

func sharesEntity(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := seen[id]; ok {
			return true
		}
	}
	return false
}

// Deduplicate removes duplicates from the current batch in two
// passes: within-day pairwise comparison (first occurrence kept),
// then each survivor against the lookback window. Processing order is
// the caller's arrival order; only already-kept signals are compared
// against.
func (e *Engine) Deduplicate(signals, window []*signal.Signal) ([]*signal.Signal, Stats) {
	stats := Stats{TotalBefore: len(signals)}

	kept := make([]*signal.Signal, 0, len(signals))
	for _, sig := range signals {
		if dup, reason := e.findDuplicate(sig, kept); dup {
			stats.record(reason)
			continue
		}
		kept = append(kept, sig)
	}

	if len(window) > 0 {
		final := kept[:0]
		for _, sig := range kept {
			if dup, reason := e.findDuplicate(sig, window); dup {
				stats.record(reason)
				continue
			}
			final = append(final, sig)
		}
		kept = final
	}

	stats.TotalAfter = len(kept)
	logging.Info("dedup pass complete",
		"before", stats.TotalBefore,
		"after", stats.TotalAfter,
		"url", stats.DroppedURL,
		"title", stats.DroppedTitle,
		"title+body", stats.DroppedTitleBody,
		"entity+body", stats.DroppedEntityBody,
	)
	return kept, stats
}

func (e *Engine) findDuplicate(sig *signal.Signal, against []*signal.Signal) (bool, Reason) {
	for _, existing := range against {
		if dup, reason := e.IsDuplicate(sig, existing); dup {
			logging.Debug("dedup drop",
				"reason", reason,
				"title", extract(sig).title,
				"matches", extract(existing).title,
			)
			return true, reason
		}
	}
	return false, ReasonNone
}
