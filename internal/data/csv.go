package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lcoe-plot/internal/model"
)

// Dataset is the result of loading an LCOE CSV file.
type Dataset struct {
	Estimates []model.Estimate
	// Skipped counts rows that were malformed or carried no usable
	// value. They are reported, not fatal.
	Skipped int
}

// LoadCSV reads LCOE estimates from a CSV file.
//
// Columns are matched by header name, case- and space-insensitively:
// Category, Type, Source, LCOE, LCOE Low, LCOE High. Unknown columns are
// ignored. Category and Type are required headers.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ds, err := ParseCSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ds, nil
}

// ParseCSV reads LCOE estimates from CSV data.
func ParseCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range headers {
		cols[normalizeHeader(h)] = i
	}
	for _, required := range []string{"category", "type"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	ds := &Dataset{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed row: skip and count.
			ds.Skipped++
			continue
		}

		est := model.Estimate{
			Category: field(row, cols, "category"),
			Type:     field(row, cols, "type"),
			Source:   field(row, cols, "source"),
		}
		if est.Category == "" && est.Type == "" {
			ds.Skipped++
			continue
		}
		// Rows where Type is blank fall back to the category name.
		if est.Type == "" {
			est.Type = est.Category
		}

		var bad bool
		est.LCOE, bad = numField(row, cols, "lcoe", bad)
		est.LCOELow, bad = numField(row, cols, "lcoe_low", bad)
		est.LCOEHigh, bad = numField(row, cols, "lcoe_high", bad)
		if bad || !est.Usable() {
			ds.Skipped++
			continue
		}

		ds.Estimates = append(ds.Estimates, est)
	}
	return ds, nil
}

// normalizeHeader converts "LCOE Low" -> "lcoe_low".
func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

func field(row []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// numField parses a numeric cell. An empty cell means "not reported" and
// parses as zero; a non-numeric cell marks the row malformed.
func numField(row []string, cols map[string]int, key string, bad bool) (float64, bool) {
	s := field(row, cols, key)
	if s == "" {
		return 0, bad
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, true
	}
	return v, bad
}
