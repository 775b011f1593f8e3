// Command tension is the CLI for the Canada-China tension scoring
// pipeline.
//
// Usage:
//
//	tension                  Show help
//	tension analyze          Run a day's analysis and archive it
//	tension index            Print a day's tension index
//	tension situations       Print a day's active situations
package main

import (
	"fmt"
	"os"
)

const usage = `tension — Canada-China tension scoring CLI

Usage:
  tension <command> [flags]

Commands:
  analyze     Ingest fetcher output, run the scoring pipeline, archive the day
  index       Print the tension index from an archived day
  situations  Print the active situations from an archived day

Run 'tension <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "analyze":
		runAnalyze()
	case "index":
		runIndex()
	case "situations":
		runSituations()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "tension: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
