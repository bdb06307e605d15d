package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lcoe-plot/internal/config"
	"lcoe-plot/internal/data"
	"lcoe-plot/internal/render"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "render":
		cmdRender(os.Args[2:])
	case "stats":
		cmdStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli render --data lcoe.csv --config chart.yaml --out lcoe.svg --logo logo.png")
	fmt.Println("  cli stats --data lcoe.csv [--out stats.csv]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - render draws the box-and-whisker SVG with every estimate overlaid")
	fmt.Println("  - stats prints the per-category five-number summary table")
	fmt.Println("  - flags override the corresponding config file fields")
}

func cmdRender(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to LCOE CSV (default from config)")
	cfgPath := fs.String("config", "", "Path to YAML chart config (optional)")
	outPath := fs.String("out", "", "Output SVG path (default from config)")
	logoPath := fs.String("logo", "", "Path to PNG logo (optional)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}
	if *outPath != "" {
		cfg.Output = *outPath
	}
	if *logoPath != "" {
		cfg.Logo.Path = *logoPath
	}

	chart, ds := buildChart(cfg)

	// ensure output dir exists
	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			panic(err)
		}
	}
	if err := chart.RenderFile(cfg.Output); err != nil {
		panic(err)
	}

	fmt.Printf("Loaded %d estimates (%d rows skipped)\n", len(ds.Estimates), ds.Skipped)
	fmt.Printf("Wrote %d categories to %s\n", len(chart.Summaries()), cfg.Output)
}

func cmdStats(args []string) {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	dataPath := fs.String("data", "", "Path to LCOE CSV (default from config)")
	cfgPath := fs.String("config", "", "Path to YAML chart config (optional)")
	outPath := fs.String("out", "", "Optional: write the table as CSV")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if *dataPath != "" {
		cfg.Data = *dataPath
	}

	chart, ds := buildChart(cfg)
	summaries := chart.Summaries()

	fmt.Printf("%-16s %-6s %-8s %-8s %-8s %-8s %-8s %-10s\n",
		"category", "count", "min", "q1", "median", "mean", "q3", "max")
	for _, s := range summaries {
		fmt.Printf("%-16s %-6d %-8.2f %-8.2f %-8.2f %-8.2f %-8.2f %-10.2f\n",
			strings.ReplaceAll(s.Category, "\n", " "),
			s.Count, s.Min, s.Q1, s.Median, s.Mean, s.Q3, s.Max)
	}
	if ds.Skipped > 0 {
		fmt.Printf("%d rows skipped (malformed or no usable value)\n", ds.Skipped)
	}

	if *outPath != "" {
		if err := data.WriteStatsCSV(*outPath, summaries); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(summaries), *outPath)
	}
}

// buildChart runs the shared pipeline: load CSV, filter and group, and
// assemble the chart with mean-sorted summaries.
func buildChart(cfg *config.Config) (*render.Chart, *data.Dataset) {
	ds, err := data.LoadCSV(cfg.Data)
	if err != nil {
		panic(err)
	}
	groups := data.Prepare(ds.Estimates, data.PrepareOptions{
		ExcludedTypes:   cfg.ExcludedTypes,
		CategoryRenames: cfg.CategoryRenames,
	})
	if len(groups) == 0 {
		panic(fmt.Errorf("no plottable estimates in %s", cfg.Data))
	}
	return render.New(cfg, groups), ds
}
