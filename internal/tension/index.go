// Package tension aggregates a day's classified signals into the
// weighted composite index and its six component scores.
package tension

import (
	"fmt"
	"math"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

// Level buckets a composite score for display.
type Level string

const (
	LevelCritical Level = "Critical"
	LevelHigh     Level = "High"
	LevelElevated Level = "Elevated"
	LevelModerate Level = "Moderate"
	LevelLow      Level = "Low"
)

var levelZH = map[Level]string{
	LevelCritical: "危急",
	LevelHigh:     "高",
	LevelElevated: "升高",
	LevelModerate: "中等",
	LevelLow:      "低",
}

// Label returns the level name in both languages.
func (l Level) Label() signal.BilingualText {
	return signal.BilingualText{EN: string(l), ZH: levelZH[l]}
}

// LevelForComposite maps a composite score to its display level.
func LevelForComposite(composite float64) Level {
	switch {
	case composite >= 9.0:
		return LevelCritical
	case composite >= 7.0:
		return LevelHigh
	case composite >= 4.1:
		return LevelElevated
	case composite >= 2.1:
		return LevelModerate
	default:
		return LevelLow
	}
}

// componentDef fixes the weight and display name of one index
// component. Economic and legal signals classify normally but carry
// no index weight.
type componentDef struct {
	category signal.Category
	weight   float64
	nameZH   string
}

var componentDefs = []componentDef{
	{signal.CategoryDiplomatic, 0.25, "外交"},
	{signal.CategoryTrade, 0.25, "贸易"},
	{signal.CategoryMilitary, 0.15, "军事"},
	{signal.CategoryPolitical, 0.15, "政治"},
	{signal.CategoryTechnology, 0.10, "科技"},
	{signal.CategorySocial, 0.10, "社会"},
}

func init() {
	sum := 0.0
	for _, def := range componentDefs {
		sum += def.weight
	}
	if math.Abs(sum-1.0) > 1e-9 {
		panic(fmt.Sprintf("tension: component weights sum to %v, want 1.0", sum))
	}
}

var noActivity = signal.BilingualText{EN: "No significant activity", ZH: "无重大活动"}

// Component is one weighted slice of the index.
type Component struct {
	Category  signal.Category      `json:"category"`
	Name      signal.BilingualText `json:"name"`
	Weight    float64              `json:"weight"`
	RawPoints int                  `json:"raw_points"`
	Score     int                  `json:"score"`
	Trend     string               `json:"trend"`
	KeyDriver signal.BilingualText `json:"key_driver"`
}

// Index is the day's composite tension reading.
type Index struct {
	Composite  float64              `json:"composite"`
	Level      Level                `json:"level"`
	LevelLabel signal.BilingualText `json:"level_label"`
	Delta      float64              `json:"delta"`
	DeltaText  signal.BilingualText `json:"delta_text"`
	Components []Component          `json:"components"`
}

// Previous carries yesterday's values for delta and trend. A zero
// value means no prior day: delta 0, all trends stable.
type Previous struct {
	Composite float64
	Scores    map[signal.Category]int
	Present   bool
}

// Calculator computes daily index snapshots.
type Calculator struct {
	capDenominator float64
}

// NewCalculator creates a calculator. capDenominator is the raw-point
// total at which a component saturates at 10.
func NewCalculator(capDenominator int) *Calculator {
	return &Calculator{capDenominator: float64(capDenominator)}
}

// Compute builds the index for a day's kept, classified signals.
func (c *Calculator) Compute(signals []*signal.Signal, prev Previous) Index {
	points := make(map[signal.Category]int)
	drivers := make(map[signal.Category]*signal.Signal)
	for _, sig := range signals {
		points[sig.Category] += sig.Severity.Points()
		if best, ok := drivers[sig.Category]; !ok || sig.Severity.Rank() > best.Severity.Rank() {
			drivers[sig.Category] = sig
		}
	}

	composite := 0.0
	components := make([]Component, 0, len(componentDefs))
	for _, def := range componentDefs {
		raw := points[def.category]
		unrounded := math.Min(float64(raw)/c.capDenominator*10, 10)
		score := int(math.Round(unrounded))
		composite += unrounded * def.weight

		comp := Component{
			Category:  def.category,
			Name:      signal.BilingualText{EN: def.category.Title(), ZH: def.nameZH},
			Weight:    def.weight,
			RawPoints: raw,
			Score:     score,
			Trend:     trend(score, def.category, prev),
			KeyDriver: noActivity,
		}
		if sig, ok := drivers[def.category]; ok {
			comp.KeyDriver = sig.Title
		}
		components = append(components, comp)
	}

	composite = math.Round(composite*10) / 10

	idx := Index{
		Composite:  composite,
		Level:      LevelForComposite(composite),
		Components: components,
	}
	idx.LevelLabel = idx.Level.Label()
	if prev.Present {
		idx.Delta = math.Round((composite-prev.Composite)*10) / 10
	}
	idx.DeltaText = deltaText(idx.Delta)
	return idx
}

func trend(score int, cat signal.Category, prev Previous) string {
	if !prev.Present {
		return "stable"
	}
	prevScore := prev.Scores[cat]
	switch {
	case score > prevScore:
		return "up"
	case score < prevScore:
		return "down"
	default:
		return "stable"
	}
}

func deltaText(delta float64) signal.BilingualText {
	switch {
	case delta > 0:
		return signal.BilingualText{
			EN: fmt.Sprintf("Up %.1f from previous day", delta),
			ZH: fmt.Sprintf("较前一日上升%.1f", delta),
		}
	case delta < 0:
		return signal.BilingualText{
			EN: fmt.Sprintf("Down %.1f from previous day", -delta),
			ZH: fmt.Sprintf("较前一日下降%.1f", -delta),
		}
	default:
		return signal.BilingualText{EN: "Unchanged from previous day", ZH: "与前一日持平"}
	}
}

// Scores extracts the per-category integer scores, the shape the
// archive stores for tomorrow's trend comparison.
func (i Index) Scores() map[signal.Category]int {
	out := make(map[signal.Category]int, len(i.Components))
	for _, comp := range i.Components {
		out[comp.Category] = comp.Score
	}
	return out
}
