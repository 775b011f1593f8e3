// Package config provides configuration and keyword table loading for
// the scoring pipeline. Thresholds and keyword dictionaries are
// loaded once at startup, validated, and treated as read-only by
// every downstream stage.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrInvalidCapDenominator = errors.New("tension_index.cap_denominator must be at least 1")
	ErrInvalidLookback       = errors.New("dedup.lookback_days must be non-negative")
	ErrInvalidThreshold      = errors.New("dedup thresholds must be in [0,1]")
	ErrInvalidWorkers        = errors.New("ingest.workers must be at least 1")
	ErrNoCategories          = errors.New("at least one category keyword list is required")
	ErrUnknownCategory       = errors.New("unknown category in keyword table")
	ErrNoModifiers           = errors.New("severity modifier table is empty")
	ErrUnknownModifier       = errors.New("unknown severity modifier group")
	ErrNoEntities            = errors.New("entity alias table is empty")
)

// Config holds runtime settings. Keyword dictionaries are loaded
// separately via LoadKeywords.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Tension TensionConfig `yaml:"tension_index"`
	Dedup   DedupConfig   `yaml:"dedup"`
	Ingest  IngestConfig  `yaml:"ingest"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// TensionConfig tunes the tension index computation.
type TensionConfig struct {
	CapDenominator int `yaml:"cap_denominator"`
}

// DedupConfig holds the deduplication cascade thresholds.
type DedupConfig struct {
	TitleThresholdEN  float64 `yaml:"title_threshold_en"`
	TitleThresholdZH  float64 `yaml:"title_threshold_zh"`
	TitleFuzzyLow     float64 `yaml:"title_fuzzy_low"`
	BodyJaccard       float64 `yaml:"body_jaccard"`
	EntityBodyJaccard float64 `yaml:"entity_body_jaccard"`
	LookbackDays      int     `yaml:"lookback_days"`
}

// IngestConfig controls the upstream loading stage.
type IngestConfig struct {
	Workers int `yaml:"workers"`
}

// Default returns the built-in configuration. Threshold defaults are
// tuned for news headline lengths: Chinese headlines run shorter, so
// their title bar is lower.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Tension: TensionConfig{CapDenominator: 20},
		Dedup: DedupConfig{
			TitleThresholdEN:  0.80,
			TitleThresholdZH:  0.70,
			TitleFuzzyLow:     0.50,
			BodyJaccard:       0.60,
			EntityBodyJaccard: 0.50,
			LookbackDays:      7,
		},
		Ingest: IngestConfig{Workers: 4},
	}
}

// Load reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks shape invariants. Violations here are configuration
// errors and fail at startup, never per-signal.
func (c *Config) Validate() error {
	if c.Tension.CapDenominator < 1 {
		return ErrInvalidCapDenominator
	}
	if c.Dedup.LookbackDays < 0 {
		return ErrInvalidLookback
	}
	for _, th := range []float64{
		c.Dedup.TitleThresholdEN,
		c.Dedup.TitleThresholdZH,
		c.Dedup.TitleFuzzyLow,
		c.Dedup.BodyJaccard,
		c.Dedup.EntityBodyJaccard,
	} {
		if th < 0 || th > 1 {
			return ErrInvalidThreshold
		}
	}
	if c.Ingest.Workers < 1 {
		return ErrInvalidWorkers
	}
	return nil
}

// LoadKeywords reads the keyword dictionary YAML files from dir
// (categories.yaml, severity_modifiers.yaml, entity_aliases.yaml).
// Missing files fall back to the compiled-in defaults for that table,
// so a partial override directory is fine.
func LoadKeywords(dir string) (*Keywords, error) {
	kw := DefaultKeywords()
	if dir == "" {
		return kw, nil
	}

	if err := loadYAMLInto(filepath.Join(dir, "categories.yaml"), &kw.Categories); err != nil {
		return nil, err
	}
	if err := loadYAMLInto(filepath.Join(dir, "severity_modifiers.yaml"), &kw.Modifiers); err != nil {
		return nil, err
	}
	if err := loadYAMLInto(filepath.Join(dir, "entity_aliases.yaml"), &kw.Entities); err != nil {
		return nil, err
	}

	if err := kw.Validate(); err != nil {
		return nil, err
	}
	return kw, nil
}

func loadYAMLInto(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
