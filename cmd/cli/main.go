package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"league-analytics/internal/analytics"
	"league-analytics/internal/config"
	"league-analytics/internal/data"
	"league-analytics/internal/model"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "summary":
		cmdSummary(os.Args[2:])
	case "matrix":
		cmdMatrix(os.Args[2:])
	case "winpct":
		cmdWinPct(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli summary [--config config.yaml] [--entities A,B,C] [--weeks 1-14]")
	fmt.Println("  cli matrix  [--config config.yaml] [--entities A,B,C] [--weeks 1-14] [--out matrix.csv]")
	fmt.Println("  cli winpct  [--config config.yaml] [--entities A,B,C] [--weeks 1-14] --out winpct.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - empty --entities selects every entity in the scoreboard")
	fmt.Println("  - empty --weeks uses the observed week bounds")
}

type commonFlags struct {
	cfgPath  string
	entities string
	weeks    string
	out      string
}

func parseCommon(name string, args []string) commonFlags {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	f := commonFlags{}
	fs.StringVar(&f.cfgPath, "config", "", "Path to YAML config")
	fs.StringVar(&f.entities, "entities", "", "Comma-separated entity IDs (empty = all)")
	fs.StringVar(&f.weeks, "weeks", "", "Inclusive week range lo-hi (empty = observed bounds)")
	fs.StringVar(&f.out, "out", "", "Output CSV path")
	_ = fs.Parse(args)
	return f
}

// loadSelection loads the store and resolves the flags into a selection.
func loadSelection(f commonFlags) (*data.Store, model.Selection) {
	cfg, err := config.Load(f.cfgPath)
	if err != nil {
		fatal("load config: %v", err)
	}

	store := data.NewStore(cfg.Data.ScoreboardCSV, cfg.Data.RostersCSV)
	sbErr, _ := store.Load()
	if sbErr != nil {
		fatal("%v", sbErr)
	}
	meta := store.Meta()

	entities := meta.Entities
	if f.entities != "" {
		entities = nil
		for _, e := range strings.Split(f.entities, ",") {
			if e = strings.TrimSpace(e); e != "" {
				entities = append(entities, e)
			}
		}
	}

	lo, hi := meta.WeekMin, meta.WeekMax
	if f.weeks != "" {
		lo, hi, err = parseWeekRange(f.weeks)
		if err != nil {
			fatal("%v", err)
		}
	}

	return store, model.NewSelection(entities, lo, hi)
}

// parseWeekRange parses an inclusive "lo-hi" week range.
func parseWeekRange(s string) (int, int, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid week range %q (want lo-hi)", s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week range %q (want lo-hi)", s)
	}
	hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week range %q (want lo-hi)", s)
	}
	return lo, hi, nil
}

func cmdSummary(args []string) {
	f := parseCommon("summary", args)
	store, sel := loadSelection(f)

	rows, err := store.Scoreboard()
	if err != nil {
		fatal("%v", err)
	}
	s := analytics.Summarize(analytics.FilterScoreboard(rows, sel))

	fmt.Printf("Entities:      %s\n", strings.Join(sel.Entities, ", "))
	fmt.Printf("Weeks:         %d-%d\n", sel.WeekLo, sel.WeekHi)
	fmt.Printf("Average score: %.1f\n", s.AvgPoints)
	fmt.Printf("Highest score: %.1f by %s\n", s.MaxPoints, s.TopScorer)
	fmt.Printf("Total games:   %d\n", s.TotalGames)
	fmt.Printf("Weeks played:  %d\n", s.WeeksPlayed)
}

func cmdMatrix(args []string) {
	f := parseCommon("matrix", args)
	store, sel := loadSelection(f)

	rows, err := store.Scoreboard()
	if err != nil {
		fatal("%v", err)
	}
	m, skipped := analytics.WinMatrix(analytics.FilterScoreboard(rows, sel), sel)

	printMatrix(m)
	if skipped > 0 {
		fmt.Printf("(%d unresolvable pairings skipped)\n", skipped)
	}

	if f.out != "" {
		if err := writeCSV(f.out, func(path string) error {
			return analytics.WriteMatrixCSV(path, m)
		}); err != nil {
			fatal("write matrix: %v", err)
		}
		fmt.Printf("Wrote matrix to %s\n", f.out)
	}
}

func cmdWinPct(args []string) {
	f := parseCommon("winpct", args)
	if f.out == "" {
		fatal("--out is required")
	}
	store, sel := loadSelection(f)

	rows, err := store.Scoreboard()
	if err != nil {
		fatal("%v", err)
	}
	series := analytics.CumulativeWinPct(analytics.FilterScoreboard(rows, sel), sel.Entities)

	if err := writeCSV(f.out, func(path string) error {
		return analytics.WriteWinPctCSV(path, series)
	}); err != nil {
		fatal("write winpct: %v", err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(series), f.out)
}

func printMatrix(m analytics.Matrix) {
	width := 8
	for _, e := range m.Entities {
		if len(e) > width {
			width = len(e)
		}
	}

	fmt.Printf("%*s", width+2, "")
	for _, e := range m.Entities {
		fmt.Printf("%*s", width+2, e)
	}
	fmt.Println()
	for i, e := range m.Entities {
		fmt.Printf("%*s", width+2, e)
		for _, wins := range m.Wins[i] {
			fmt.Printf("%*s", width+2, strconv.Itoa(wins))
		}
		fmt.Println()
	}
}

func writeCSV(path string, write func(string) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return write(path)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
