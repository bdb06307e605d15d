package data

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"lcoe-plot/internal/analysis"
)

// WriteStatsCSV writes the per-category summary table produced by the
// stats subcommand.
func WriteStatsCSV(path string, summaries []analysis.BoxStats) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writeStats(f, summaries); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeStats(out io.Writer, summaries []analysis.BoxStats) error {
	w := csv.NewWriter(out)

	header := []string{
		"category",
		"count",
		"min",
		"whisker_low",
		"q1",
		"median",
		"mean",
		"q3",
		"whisker_high",
		"max",
		"outliers",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range summaries {
		row := []string{
			// Embedded line breaks are a display concern, not a CSV one.
			strings.ReplaceAll(s.Category, "\n", " "),
			strconv.Itoa(s.Count),
			fmtFloat(s.Min),
			fmtFloat(s.WhiskerLow),
			fmtFloat(s.Q1),
			fmtFloat(s.Median),
			fmtFloat(s.Mean),
			fmtFloat(s.Q3),
			fmtFloat(s.WhiskerHigh),
			fmtFloat(s.Max),
			strconv.Itoa(len(s.Outliers)),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 3, 64)
}
