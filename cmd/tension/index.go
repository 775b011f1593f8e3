package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/abelbrown/tensionwatch/internal/pipeline"
)

func runIndex() {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	date := fs.String("date", time.Now().UTC().Format("2006-01-02"), "Archived day to print (YYYY-MM-DD)")
	dbPath := fs.String("db", "", "Archive database path (default ~/.tensionwatch/tensionwatch.db)")
	fs.Parse(os.Args[1:])

	result := loadResult(*dbPath, *date)

	idx := result.Index
	fmt.Printf("Tension Index — %s\n\n", result.Date)
	fmt.Printf("Composite:  %.1f (%s / %s)\n", idx.Composite, idx.LevelLabel.EN, idx.LevelLabel.ZH)
	fmt.Printf("Delta:      %+.1f  %s\n\n", idx.Delta, idx.DeltaText.EN)

	fmt.Printf("%-12s %-6s %-7s %s\n", "Component", "Score", "Trend", "Key driver")
	for _, comp := range idx.Components {
		fmt.Printf("%-12s %-6d %-7s %s\n",
			comp.Name.EN, comp.Score, comp.Trend, comp.KeyDriver.EN)
	}

	fmt.Printf("\nSignals kept: %d (dropped %d as duplicates)\n",
		len(result.Signals), result.Dedup.TotalDropped())
}

// loadResult reads an archived day's briefing or fatals.
func loadResult(dbPath, date string) pipeline.Result {
	st := openDB(dbPath)
	defer st.Close()

	doc, err := st.LoadBriefing(date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tension: %v\n", err)
		os.Exit(1)
	}

	var result pipeline.Result
	if err := json.Unmarshal(doc, &result); err != nil {
		log.Fatalf("failed to decode archived briefing: %v", err)
	}
	return result
}
