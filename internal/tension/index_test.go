package tension

import (
	"testing"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

func classified(title string, cat signal.Category, sev signal.Severity) *signal.Signal {
	return &signal.Signal{
		Title:    signal.BilingualText{EN: title},
		Category: cat,
		Severity: sev,
	}
}

func TestComputeEmptyDay(t *testing.T) {
	c := NewCalculator(20)

	idx := c.Compute(nil, Previous{})
	if idx.Composite != 0.0 {
		t.Fatalf("Composite = %v, want 0.0", idx.Composite)
	}
	if idx.Level != LevelLow {
		t.Fatalf("Level = %q, want %q", idx.Level, LevelLow)
	}
	if idx.LevelLabel.ZH != "低" {
		t.Errorf("LevelLabel.ZH = %q, want 低", idx.LevelLabel.ZH)
	}
	if idx.Delta != 0 {
		t.Errorf("Delta = %v, want 0", idx.Delta)
	}
	if len(idx.Components) != 6 {
		t.Fatalf("got %d components, want 6", len(idx.Components))
	}
	for _, comp := range idx.Components {
		if comp.Score != 0 || comp.RawPoints != 0 {
			t.Errorf("%s: score=%d raw=%d, want zeros", comp.Category, comp.Score, comp.RawPoints)
		}
		if comp.Trend != "stable" {
			t.Errorf("%s: trend = %q, want stable", comp.Category, comp.Trend)
		}
		if comp.KeyDriver.EN != "No significant activity" || comp.KeyDriver.ZH != "无重大活动" {
			t.Errorf("%s: key driver = %+v", comp.Category, comp.KeyDriver)
		}
	}
}

func TestComputeSaturation(t *testing.T) {
	c := NewCalculator(20)

	// Four critical signals per weighted category pin every
	// component at 10.
	var signals []*signal.Signal
	for _, cat := range []signal.Category{
		signal.CategoryDiplomatic, signal.CategoryTrade,
		signal.CategoryMilitary, signal.CategoryPolitical,
		signal.CategoryTechnology, signal.CategorySocial,
	} {
		for i := 0; i < 4; i++ {
			signals = append(signals, classified("crisis headline", cat, signal.SeverityCritical))
		}
	}

	idx := c.Compute(signals, Previous{})
	if idx.Composite != 10.0 {
		t.Fatalf("Composite = %v, want 10.0", idx.Composite)
	}
	if idx.Level != LevelCritical {
		t.Fatalf("Level = %q, want %q", idx.Level, LevelCritical)
	}
	for _, comp := range idx.Components {
		if comp.Score != 10 {
			t.Errorf("%s: score = %d, want 10", comp.Category, comp.Score)
		}
	}
}

func TestComputeWeightedComposite(t *testing.T) {
	c := NewCalculator(20)

	// Diplomatic raw 20 -> 10.0, trade raw 10 -> 5.0, rest zero.
	// Composite = 10*0.25 + 5*0.25 = 3.75, rounded to 3.8.
	signals := []*signal.Signal{
		classified("Ambassador expelled", signal.CategoryDiplomatic, signal.SeverityCritical),
		classified("Embassy recalled", signal.CategoryDiplomatic, signal.SeverityCritical),
		classified("Envoy summoned", signal.CategoryDiplomatic, signal.SeverityCritical),
		classified("Consulate closed", signal.CategoryDiplomatic, signal.SeverityCritical),
		classified("Tariffs doubled", signal.CategoryTrade, signal.SeverityCritical),
		classified("Export ban widened", signal.CategoryTrade, signal.SeverityCritical),
	}

	prev := Previous{
		Composite: 2.0,
		Scores: map[signal.Category]int{
			signal.CategoryDiplomatic: 8,
			signal.CategoryTrade:      5,
		},
		Present: true,
	}

	idx := c.Compute(signals, prev)
	if idx.Composite != 3.8 {
		t.Fatalf("Composite = %v, want 3.8", idx.Composite)
	}
	if idx.Level != LevelModerate {
		t.Fatalf("Level = %q, want %q", idx.Level, LevelModerate)
	}
	if idx.Delta != 1.8 {
		t.Fatalf("Delta = %v, want 1.8", idx.Delta)
	}
	if idx.DeltaText.EN != "Up 1.8 from previous day" {
		t.Errorf("DeltaText.EN = %q", idx.DeltaText.EN)
	}

	byCat := make(map[signal.Category]Component)
	for _, comp := range idx.Components {
		byCat[comp.Category] = comp
	}

	dip := byCat[signal.CategoryDiplomatic]
	if dip.Score != 10 || dip.Trend != "up" {
		t.Errorf("diplomatic = %+v, want score 10 trend up", dip)
	}
	if dip.Name.EN != "Diplomatic" || dip.Name.ZH != "外交" {
		t.Errorf("diplomatic name = %+v", dip.Name)
	}

	trade := byCat[signal.CategoryTrade]
	if trade.Score != 5 || trade.Trend != "stable" {
		t.Errorf("trade = %+v, want score 5 trend stable", trade)
	}

	mil := byCat[signal.CategoryMilitary]
	if mil.Score != 0 || mil.Trend != "stable" {
		t.Errorf("military = %+v, want score 0 trend stable", mil)
	}
}

func TestComputeKeyDriverHighestSeverity(t *testing.T) {
	c := NewCalculator(20)

	signals := []*signal.Signal{
		classified("Routine consultation held", signal.CategoryDiplomatic, signal.SeverityLow),
		classified("Ambassador declared persona non grata", signal.CategoryDiplomatic, signal.SeverityHigh),
		classified("Statement issued", signal.CategoryDiplomatic, signal.SeverityModerate),
	}

	idx := c.Compute(signals, Previous{})
	for _, comp := range idx.Components {
		if comp.Category != signal.CategoryDiplomatic {
			continue
		}
		if comp.KeyDriver.EN != "Ambassador declared persona non grata" {
			t.Fatalf("key driver = %q", comp.KeyDriver.EN)
		}
	}
}

func TestComputeExcludesEconomicAndLegal(t *testing.T) {
	c := NewCalculator(20)

	signals := []*signal.Signal{
		classified("Bank fined", signal.CategoryEconomic, signal.SeverityCritical),
		classified("Court ruling issued", signal.CategoryLegal, signal.SeverityCritical),
	}

	idx := c.Compute(signals, Previous{})
	if idx.Composite != 0.0 {
		t.Fatalf("Composite = %v, want 0.0", idx.Composite)
	}
	for _, comp := range idx.Components {
		if comp.Category == signal.CategoryEconomic || comp.Category == signal.CategoryLegal {
			t.Fatalf("unexpected %s component in index", comp.Category)
		}
	}
}

func TestScoresRoundTrip(t *testing.T) {
	c := NewCalculator(20)

	signals := []*signal.Signal{
		classified("Tariffs doubled", signal.CategoryTrade, signal.SeverityCritical),
	}
	idx := c.Compute(signals, Previous{})

	scores := idx.Scores()
	if len(scores) != 6 {
		t.Fatalf("Scores() has %d entries, want 6", len(scores))
	}
	// Raw 5 of 20 -> 2.5, rounds half away from zero to 3.
	if scores[signal.CategoryTrade] != 3 {
		t.Errorf("trade score = %d, want 3", scores[signal.CategoryTrade])
	}
}
