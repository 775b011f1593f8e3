// Package pipeline runs one day of analysis end to end: classify,
// dedup, score, aggregate. The caller supplies plain data and handles
// all persistence and serialization around it.
package pipeline

import (
	"time"

	"github.com/abelbrown/tensionwatch/internal/classify"
	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/dedup"
	"github.com/abelbrown/tensionwatch/internal/entity"
	"github.com/abelbrown/tensionwatch/internal/logging"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/situation"
	"github.com/abelbrown/tensionwatch/internal/sources"
	"github.com/abelbrown/tensionwatch/internal/tension"
)

// Result is the complete output document for one analysis day.
type Result struct {
	Date       string                  `json:"date"`
	Index      tension.Index           `json:"index"`
	Signals    []*signal.Signal        `json:"signals"`
	Directory  []entity.DirectoryEntry `json:"entity_directory"`
	Situations []situation.Active      `json:"active_situations"`
	Dedup      dedup.Stats             `json:"dedup_stats"`
}

// Pipeline wires the classifiers, deduper and aggregators together.
type Pipeline struct {
	categories *classify.CategoryClassifier
	severity   *classify.SeverityScorer
	entities   *entity.Matcher
	deduper    *dedup.Engine
	calculator *tension.Calculator
	situations *situation.Tracker
}

// New builds a pipeline from validated configuration and keyword
// tables.
func New(cfg config.Config, kw *config.Keywords) *Pipeline {
	return &Pipeline{
		categories: classify.NewCategoryClassifier(kw),
		severity:   classify.NewSeverityScorer(kw),
		entities:   entity.NewMatcher(kw),
		deduper:    dedup.NewEngine(cfg.Dedup),
		calculator: tension.NewCalculator(cfg.Tension.CapDenominator),
		situations: situation.NewTracker(),
	}
}

// Run analyzes one day. signals is the raw ingested batch, window the
// previously kept signals inside the lookback span, prev yesterday's
// index values, and date the analysis date. Zero signals is a normal
// quiet day, not an error.
func (p *Pipeline) Run(signals, window []*signal.Signal, prev tension.Previous, date time.Time) Result {
	// Category and entities come first: the last dedup tier compares
	// them.
	for _, sig := range signals {
		p.categories.ClassifySignal(sig)
		p.entities.MatchSignal(sig)
	}

	kept, stats := p.deduper.Deduplicate(signals, window)

	for _, sig := range kept {
		tier := sources.ResolveBilingual(sig.Source)
		p.severity.ScoreSignal(sig, tier, date)
	}

	idx := p.calculator.Compute(kept, prev)

	result := Result{
		Date:       date.Format("2006-01-02"),
		Index:      idx,
		Signals:    kept,
		Directory:  p.entities.BuildDirectory(kept),
		Situations: p.situations.Track(kept, date),
		Dedup:      stats,
	}
	logging.Info("analysis complete",
		"date", result.Date,
		"signals", len(kept),
		"composite", idx.Composite,
		"level", idx.Level,
		"situations", len(result.Situations),
	)
	return result
}
