package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"incomedash/internal/config"
	"incomedash/internal/testkit"
)

func main() {
	out := flag.String("out", config.DefaultDataFile, "output file path")
	rows := flag.Int("rows", 2000, "number of rows")
	format := flag.String("format", "", "output format: csv or xlsx (default inferred from -out)")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	missing := flag.Float64("missing", 0.02, "share of blank optional numeric cells")
	flag.Parse()

	if *rows <= 0 {
		fmt.Fprintln(os.Stderr, "rows must be > 0")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		switch strings.ToLower(filepath.Ext(*out)) {
		case ".xlsx":
			fmtName = "xlsx"
		default:
			fmtName = "csv"
		}
	}

	cfg := testkit.DefaultConfig()
	cfg.Rows = *rows
	cfg.Seed = *seed
	cfg.MissingRate = *missing

	ds, err := testkit.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error generating dataset:", err)
		os.Exit(1)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintln(os.Stderr, "error creating output directory:", err)
			os.Exit(1)
		}
	}

	switch fmtName {
	case "csv":
		err = testkit.WriteCSV(*out, ds)
	case "xlsx":
		err = testkit.WriteXLSX(*out, ds)
	default:
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", fmtName, err)
		os.Exit(1)
	}

	fmt.Printf("Census dataset created: %s\n", *out)
	fmt.Printf("Columns: %d | Rows: %d\n", len(ds.Headers), len(ds.Rows))
}
