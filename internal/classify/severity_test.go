package classify

import (
	"testing"
	"time"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/signal"
	"github.com/abelbrown/tensionwatch/internal/sources"
)

func newSeverityScorer(t *testing.T) *SeverityScorer {
	t.Helper()
	kw := config.DefaultKeywords()
	if err := kw.Validate(); err != nil {
		t.Fatal(err)
	}
	return NewSeverityScorer(kw)
}

func TestScoreToSeverity(t *testing.T) {
	tests := []struct {
		score int
		want  signal.Severity
	}{
		{15, signal.SeverityCritical},
		{10, signal.SeverityCritical},
		{9, signal.SeverityHigh},
		{7, signal.SeverityHigh},
		{6, signal.SeverityElevated},
		{5, signal.SeverityElevated},
		{4, signal.SeverityModerate},
		{3, signal.SeverityModerate},
		{2, signal.SeverityLow},
		{0, signal.SeverityLow},
	}
	for _, tt := range tests {
		if got := ScoreToSeverity(tt.score); got != tt.want {
			t.Errorf("ScoreToSeverity(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreSourceTierFactor(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	neutral := "community picnic draws a crowd"
	official := s.Score(neutral, sources.TierOfficial, "", ref)
	media := s.Score(neutral, sources.TierMedia, "", ref)
	if official-media != 3 {
		t.Errorf("official-media score gap = %d, want 3", official-media)
	}
}

func TestScoreModifierGroups(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Escalation fires once no matter how many keywords match.
	esc := s.Score("sanctions and arrest follow blockade", sources.TierMedia, "", ref)
	if esc != 1+3 {
		t.Errorf("escalation score = %d, want 4", esc)
	}

	// Chinese keywords match when English ones do not.
	zh := s.Score("当局宣布制裁措施", sources.TierMedia, "", ref)
	// media(1) + escalation(3) + china mention via 中国? absent, so no
	// bilateral points.
	if zh != 4 {
		t.Errorf("zh escalation score = %d, want 4", zh)
	}

	// Opposing groups both fire and offset.
	mixed := s.Score("sanctions lifted under new agreement", sources.TierMedia, "", ref)
	if mixed != 1+3-2 {
		t.Errorf("mixed modifier score = %d, want 2", mixed)
	}
}

func TestScoreFloorsAtZero(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// media(1) + de-escalation(-2) would go negative.
	got := s.Score("agreement reached on dairy cooperation", sources.TierMedia, "", ref)
	if got != 0 {
		t.Errorf("score = %d, want 0 (floored)", got)
	}
	if ScoreToSeverity(got) != signal.SeverityLow {
		t.Error("score 0 must map to low")
	}
}

func TestScoreBilateralDirectness(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	direct := s.Score("Canada-China relations worsen", sources.TierMedia, "", ref)
	generic := s.Score("China unveils new policy", sources.TierMedia, "", ref)
	neither := s.Score("markets quiet in Europe", sources.TierMedia, "", ref)

	if direct != 3 { // media(1) + direct(2)
		t.Errorf("direct bilateral score = %d, want 3", direct)
	}
	if generic != 2 { // media(1) + generic(1)
		t.Errorf("generic mention score = %d, want 2", generic)
	}
	if neither != 1 {
		t.Errorf("no mention score = %d, want 1", neither)
	}
}

func TestScoreRecency(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	neutral := "community picnic draws a crowd"

	tests := []struct {
		name string
		date string
		want int
	}{
		{"same day", "2025-06-10", 2},
		{"within week", "2025-06-05", 1},
		{"older", "2025-05-01", 0},
		{"unparseable", "sometime last week", 1},
		{"empty", "", 1},
	}
	for _, tt := range tests {
		if got := s.Score(neutral, sources.TierMedia, tt.date, ref); got != tt.want {
			t.Errorf("%s: score = %d, want %d", tt.name, got, tt.want)
		}
	}
}

// A same-day wire report on a tariff story naming both countries:
// wire(3) + modifiers(0) + direct bilateral(2) + recency(1) = 6.
func TestScoreWireTariffScenario(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	sig := &signal.Signal{
		Title:  signal.BilingualText{EN: "Canada, China set new tariff schedule"},
		Source: signal.BilingualText{EN: "Reuters"},
		Date:   "2025-06-10",
	}
	tier := sources.ResolveBilingual(sig.Source)
	if tier != sources.TierWire {
		t.Fatalf("tier = %q, want wire", tier)
	}

	s.ScoreSignal(sig, tier, ref)
	if sig.RawScore != 6 {
		t.Errorf("raw score = %d, want 6", sig.RawScore)
	}
	if sig.Severity != signal.SeverityElevated {
		t.Errorf("severity = %q, want elevated", sig.Severity)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s := newSeverityScorer(t)
	ref := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	inputs := []string{
		"", "agreement cooperation dialogue goodwill",
		"agreement on cooperation", "缓和 合作 对话",
	}
	for _, in := range inputs {
		if got := s.Score(in, sources.TierMedia, "2024-01-01", ref); got < 0 {
			t.Errorf("Score(%q) = %d, must not be negative", in, got)
		}
	}
}
