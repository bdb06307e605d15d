package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultCoversPublishedChart(t *testing.T) {
	c := Default()
	if c.Axis.Max != 50.5 {
		t.Errorf("axis max = %g, want 50.5", c.Axis.Max)
	}
	if got := c.CategoryRenames["Photovoltaics"]; got != "Solar PV" {
		t.Errorf("Photovoltaics renamed to %q, want Solar PV", got)
	}
	if !c.KeyEnabled() {
		t.Error("key disabled by default")
	}
	found := false
	for _, typ := range c.ExcludedTypes {
		if typ == "Depreciated Coal" {
			found = true
		}
	}
	if !found {
		t.Error("Depreciated Coal missing from default exclusions")
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if c.Title != Default().Title {
		t.Errorf("title = %q, want default", c.Title)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	yaml := `
data: other.csv
title: Custom Title
axis:
  max: 60
key:
  enabled: false
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Title != "Custom Title" {
		t.Errorf("title = %q", c.Title)
	}
	if c.Axis.Max != 60 {
		t.Errorf("axis max = %g, want 60", c.Axis.Max)
	}
	if c.KeyEnabled() {
		t.Error("key should be disabled by override")
	}
	// Untouched fields keep their defaults.
	if len(c.Axis.Ticks) == 0 || len(c.ExcludedTypes) == 0 {
		t.Error("defaults lost during merge")
	}
	if filepath.Base(c.Data) != "other.csv" {
		t.Errorf("data = %q", c.Data)
	}
}

func TestLoadGridLineWithoutHeightFrac(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chart.yaml")
	yaml := `
axis:
  grid_lines:
    - x: 5
    - {x: 10, height_frac: 0.75}
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load rejected a grid line with height_frac omitted: %v", err)
	}
	if len(c.Axis.GridLines) != 2 {
		t.Fatalf("grid lines = %+v", c.Axis.GridLines)
	}
	// Zero means full height; the explicit fraction survives.
	if c.Axis.GridLines[0].HeightFrac != 0 {
		t.Errorf("omitted height_frac decoded as %g", c.Axis.GridLines[0].HeightFrac)
	}
	if c.Axis.GridLines[1].HeightFrac != 0.75 {
		t.Errorf("height_frac = %g, want 0.75", c.Axis.GridLines[1].HeightFrac)
	}
}

func TestLoadResolvesPathsRelativeToConfig(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "lcoe.csv")
	if err := os.WriteFile(csvPath, []byte("Category,Type\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(path, []byte("data: lcoe.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Data != csvPath {
		t.Errorf("data = %q, want %q", c.Data, csvPath)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative axis max", func(c *Config) { c.Axis.Max = -1 }},
		{"tick beyond axis", func(c *Config) { c.Axis.Ticks = []Tick{{Value: 100, Label: "100"}} }},
		{"bad grid height frac", func(c *Config) { c.Axis.GridLines = []GridLine{{X: 10, HeightFrac: 2}} }},
		{"too few key values", func(c *Config) { c.Key.Values = []float64{1, 2} }},
		{"bad logo opacity", func(c *Config) {
			c.Logo.Path = "logo.png"
			c.Logo.Opacity = 1.5
		}},
	}
	for _, tc := range cases {
		c := Default()
		tc.mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
