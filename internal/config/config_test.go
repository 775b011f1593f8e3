package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/abelbrown/tensionwatch/internal/signal"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Tension.CapDenominator != 20 {
		t.Errorf("cap denominator = %d, want 20", cfg.Tension.CapDenominator)
	}
	if cfg.Dedup.LookbackDays != 7 {
		t.Errorf("lookback days = %d, want 7", cfg.Dedup.LookbackDays)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero cap", func(c *Config) { c.Tension.CapDenominator = 0 }, ErrInvalidCapDenominator},
		{"negative lookback", func(c *Config) { c.Dedup.LookbackDays = -1 }, ErrInvalidLookback},
		{"threshold above one", func(c *Config) { c.Dedup.BodyJaccard = 1.5 }, ErrInvalidThreshold},
		{"zero workers", func(c *Config) { c.Ingest.Workers = 0 }, ErrInvalidWorkers},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: Validate() = %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "analysis.yaml")
	body := []byte("tension_index:\n  cap_denominator: 30\ndedup:\n  lookback_days: 3\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tension.CapDenominator != 30 {
		t.Errorf("cap denominator = %d, want 30", cfg.Tension.CapDenominator)
	}
	if cfg.Dedup.LookbackDays != 3 {
		t.Errorf("lookback days = %d, want 3", cfg.Dedup.LookbackDays)
	}
	// Untouched fields keep defaults.
	if cfg.Dedup.TitleThresholdEN != 0.80 {
		t.Errorf("title threshold = %v, want default 0.80", cfg.Dedup.TitleThresholdEN)
	}
}

func TestDefaultKeywordsValidate(t *testing.T) {
	kw := DefaultKeywords()
	if err := kw.Validate(); err != nil {
		t.Fatalf("default keywords invalid: %v", err)
	}
	if len(kw.Categories) != 8 {
		t.Errorf("default categories = %d, want 8", len(kw.Categories))
	}
	for _, group := range ModifierGroups {
		if _, ok := kw.Modifiers[group]; !ok {
			t.Errorf("missing modifier group %q", group)
		}
	}
	if kw.Modifiers[ModifierEscalation].Weight != 3 {
		t.Error("escalation weight should be 3")
	}
	if kw.Modifiers[ModifierDeEscalation].Weight != -2 {
		t.Error("de-escalation weight should be -2")
	}
}

func TestKeywordsValidateNormalizesNilLists(t *testing.T) {
	kw := &Keywords{
		Categories: map[signal.Category]LangKeywords{
			signal.CategoryTrade: {EN: []string{"tariff"}},
		},
		Modifiers: map[string]Modifier{
			ModifierEscalation: {EN: []string{"sanctions"}, Weight: 3},
		},
		Entities: map[string]LangKeywords{
			"huawei": {ZH: []string{"华为"}},
		},
	}
	if err := kw.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if kw.Categories[signal.CategoryTrade].ZH == nil {
		t.Error("nil category ZH list should be normalized to empty")
	}
	if kw.Modifiers[ModifierEscalation].ZH == nil {
		t.Error("nil modifier ZH list should be normalized to empty")
	}
	if kw.Entities["huawei"].EN == nil {
		t.Error("nil entity EN list should be normalized to empty")
	}
}

func TestKeywordsValidateRejectsBadShapes(t *testing.T) {
	empty := &Keywords{}
	if err := empty.Validate(); !errors.Is(err, ErrNoCategories) {
		t.Errorf("empty tables: Validate() = %v, want ErrNoCategories", err)
	}

	bad := DefaultKeywords()
	bad.Categories[signal.Category("sports")] = LangKeywords{}
	if err := bad.Validate(); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("unknown category: Validate() = %v, want ErrUnknownCategory", err)
	}

	badMod := DefaultKeywords()
	badMod.Modifiers["hyper_escalation"] = Modifier{Weight: 9}
	if err := badMod.Validate(); !errors.Is(err, ErrUnknownModifier) {
		t.Errorf("unknown modifier: Validate() = %v, want ErrUnknownModifier", err)
	}
}

func TestLoadKeywordsOverride(t *testing.T) {
	dir := t.TempDir()
	body := []byte("trade:\n  en: [tariff]\n  zh: [关税]\n")
	if err := os.WriteFile(filepath.Join(dir, "categories.yaml"), body, 0o644); err != nil {
		t.Fatal(err)
	}

	kw, err := LoadKeywords(dir)
	if err != nil {
		t.Fatalf("LoadKeywords: %v", err)
	}
	// Override file merges over the defaults; other tables stay default.
	if len(kw.Categories[signal.CategoryTrade].EN) != 1 {
		t.Errorf("trade EN keywords = %v, want [tariff]", kw.Categories[signal.CategoryTrade].EN)
	}
	if len(kw.Entities) == 0 {
		t.Error("entities should fall back to defaults")
	}
}
