package main

import (
	"flag"
	"fmt"
	"os"
	"time"
)

func runSituations() {
	fs := flag.NewFlagSet("situations", flag.ExitOnError)
	date := fs.String("date", time.Now().UTC().Format("2006-01-02"), "Archived day to print (YYYY-MM-DD)")
	dbPath := fs.String("db", "", "Archive database path (default ~/.tensionwatch/tensionwatch.db)")
	fs.Parse(os.Args[1:])

	result := loadResult(*dbPath, *date)

	if len(result.Situations) == 0 {
		fmt.Printf("No active situations on %s\n", result.Date)
		return
	}

	fmt.Printf("Active situations — %s\n\n", result.Date)
	for _, sit := range result.Situations {
		fmt.Printf("[%s] %s / %s\n", sit.Severity, sit.Name.EN, sit.Name.ZH)
		fmt.Printf("    day %d, %s\n", sit.DayCount, sit.Detail.EN)
	}
}
