package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/abelbrown/tensionwatch/internal/ingest"
	"github.com/abelbrown/tensionwatch/internal/logging"
	"github.com/abelbrown/tensionwatch/internal/pipeline"
	"github.com/abelbrown/tensionwatch/internal/signal"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	date := fs.String("date", time.Now().UTC().Format("2006-01-02"), "Analysis date (YYYY-MM-DD)")
	input := fs.String("input", "", "Fetcher output: a .json file or a directory of them (required)")
	dbPath := fs.String("db", "", "Archive database path (default ~/.tensionwatch/tensionwatch.db)")
	cfgPath := fs.String("config", "", "Config YAML path (default built-in)")
	kwDir := fs.String("keywords", "", "Keyword dictionary directory (default built-in)")
	out := fs.String("out", "", "Write the briefing JSON here instead of stdout")
	fs.Parse(os.Args[1:])

	cfg := loadConfig(*cfgPath)
	logging.Init(cfg.Logging.Level)
	kw := loadKeywords(*kwDir)

	day, err := time.Parse("2006-01-02", *date)
	if err != nil {
		log.Fatalf("bad --date %q: %v", *date, err)
	}
	if *input == "" {
		log.Fatal("--input is required")
	}

	signals, err := loadInput(*input, cfg.Ingest.Workers)
	if err != nil {
		log.Fatalf("failed to load input: %v", err)
	}

	st := openDB(*dbPath)
	defer st.Close()

	window, err := st.LoadWindow(*date, cfg.Dedup.LookbackDays)
	if err != nil {
		log.Fatalf("failed to load lookback window: %v", err)
	}
	prev, err := st.LoadPrevious(*date)
	if err != nil {
		log.Fatalf("failed to load previous index: %v", err)
	}

	result := pipeline.New(cfg, kw).Run(signals, window, prev, day)

	doc, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode briefing: %v", err)
	}
	if err := st.SaveDay(*date, result.Signals, result.Index, doc); err != nil {
		log.Fatalf("failed to archive day: %v", err)
	}

	if *out != "" {
		if err := os.WriteFile(*out, doc, 0o644); err != nil {
			log.Fatalf("failed to write briefing: %v", err)
		}
		fmt.Printf("Briefing written to %s\n", *out)
		return
	}
	fmt.Println(string(doc))
}

func loadInput(path string, workers int) ([]*signal.Signal, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return ingest.LoadDir(path, workers)
	}
	return ingest.LoadFile(path)
}
