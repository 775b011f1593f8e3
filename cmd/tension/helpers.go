package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/abelbrown/tensionwatch/internal/config"
	"github.com/abelbrown/tensionwatch/internal/store"
)

// dataDir returns ~/.tensionwatch/, creating it if needed.
func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("failed to get home directory: %v", err)
	}
	dir := filepath.Join(home, ".tensionwatch")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("failed to create data directory: %v", err)
	}
	return dir
}

// defaultDBPath returns the path to the archive database.
func defaultDBPath() string {
	return filepath.Join(dataDir(), "tensionwatch.db")
}

// openDB opens the archive store or fatals.
func openDB(path string) *store.Store {
	if path == "" {
		path = defaultDBPath()
	}
	st, err := store.Open(path)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	return st
}

// loadConfig loads the optional config file, falling back to
// defaults.
func loadConfig(path string) config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// loadKeywords loads the optional keyword dictionary directory,
// falling back to the compiled-in tables.
func loadKeywords(dir string) *config.Keywords {
	if dir == "" {
		kw := config.DefaultKeywords()
		if err := kw.Validate(); err != nil {
			log.Fatalf("built-in keywords invalid: %v", err)
		}
		return kw
	}
	kw, err := config.LoadKeywords(dir)
	if err != nil {
		log.Fatalf("failed to load keywords: %v", err)
	}
	return kw
}
