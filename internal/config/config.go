package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk chart configuration shape (YAML). Every field is
// optional; unset fields keep the defaults of the published LCOE chart.
type Config struct {
	Data   string `yaml:"data"`
	Output string `yaml:"output"`

	Title       string   `yaml:"title"`
	Caption     string   `yaml:"caption"`
	Attribution []string `yaml:"attribution"`

	Logo LogoConfig `yaml:"logo"`
	Axis AxisConfig `yaml:"axis"`
	Key  KeyConfig  `yaml:"key"`

	// ExcludedTypes lists technology types that stay out of the plot:
	// depreciated plants, CCS variants, immature or distributed sources.
	ExcludedTypes []string `yaml:"excluded_types"`
	// CategoryRenames maps a dataset Type to the plotted category when
	// the plot's categories differ from the dataset's.
	CategoryRenames map[string]string `yaml:"category_renames"`
}

// LogoConfig places a raster logo on the figure.
type LogoConfig struct {
	Path string `yaml:"path"`
	// Scale divides the logo's pixel dimensions (9 => one ninth size).
	Scale float64 `yaml:"scale"`
	// Opacity fades the logo; 1 is opaque.
	Opacity float64 `yaml:"opacity"`
}

// AxisConfig describes the cost axis.
type AxisConfig struct {
	// Max truncates the axis; values beyond it stay in the statistics
	// but are not drawn.
	Max       float64    `yaml:"max"`
	Ticks     []Tick     `yaml:"ticks"`
	GridLines []GridLine `yaml:"grid_lines"`
}

// Tick is one labelled position on the cost axis.
type Tick struct {
	Value float64 `yaml:"value"`
	Label string  `yaml:"label"`
}

// GridLine is a vertical reference line. HeightFrac < 1 stops the line
// partway up the plot so it does not cross the key diagram; zero or
// omitted means full height.
type GridLine struct {
	X          float64 `yaml:"x"`
	HeightFrac float64 `yaml:"height_frac"`
}

// KeyConfig controls the explanatory key box drawn above the data.
type KeyConfig struct {
	Enabled *bool `yaml:"enabled"`
	// Values are arbitrary sample costs shaped to illustrate the box
	// anatomy for the unfamiliar viewer.
	Values []float64 `yaml:"values"`
}

// Default returns the configuration of the published chart.
func Default() *Config {
	enabled := true
	return &Config{
		Data:   "lcoe.csv",
		Output: "lcoe.svg",
		Title:  "Levelized Cost of Electricity by Source",
		Caption: "Levelized cost of electricity from major sources. LCOE is defined as the price that a\n" +
			"power plant needs to receive for electricity over its lifetime to be profitable. While\n" +
			"informative, the LCOE metric does not include several important costs of producing\n" +
			"electricity, such as transmission infrastructure and environmental impacts.",
		Attribution: []string{
			"urbancruiseship.org",
			"info@urbancruiseship.org",
			"rev. July 7, 2020 by",
			"Lee Nelson and",
			"Michael Goff",
		},
		Logo: LogoConfig{Path: "", Scale: 9, Opacity: 0.5},
		Axis: AxisConfig{
			Max: 50.5,
			Ticks: []Tick{
				{Value: 2, Label: "2"},
				{Value: 4, Label: "4"},
				{Value: 6, Label: "6"},
				{Value: 8, Label: "8"},
				{Value: 10, Label: "10"},
				{Value: 20, Label: "20 ¢/kWh"},
				{Value: 30, Label: "30 ¢/kWh"},
				{Value: 40, Label: "40 ¢/kWh"},
				{Value: 50, Label: "50 ¢/kWh"},
			},
			GridLines: []GridLine{
				{X: 2, HeightFrac: 1}, {X: 4, HeightFrac: 1},
				{X: 6, HeightFrac: 1}, {X: 8, HeightFrac: 1},
				{X: 10, HeightFrac: 1}, {X: 20, HeightFrac: 1},
				{X: 30, HeightFrac: 0.75}, {X: 40, HeightFrac: 0.75},
				{X: 50, HeightFrac: 0.75},
			},
		},
		Key: KeyConfig{
			Enabled: &enabled,
			Values: []float64{
				26, 27, 28, 29, 30, 31, 32, 33, 34, 35,
				36, 37, 38, 39, 47, 48, 79,
			},
		},
		ExcludedTypes: []string{
			"Depreciated Coal", "20-30% CCS", "90+% CCS", "IGCC with CCS",
			"Supercritical with CCS", "Combustion Turbine", "Gas Peaking",
			"Natural Gas CCS", "Diesel Generator", "Biomass Microgrid",
			"Incineration with CCS", "Depreciated Nuclear", "Advanced Nuclear",
			"Small Modular Reactor", "Generation IV", "Sodium-Cooled Fast Reactor",
			"High Temperature Reactor", "Fusion", "Refurbishments", "Organic PV",
			"Solar Updraft Tower", "Space-Based Solar", "Distributed Solar - Small",
			"Distributed Solar - Large", "Community Solar", "High Altitude",
			"Wind Microgrid", "Enhanced Geothermal System", "Hydrothermal Vents",
			"Fuel Cell", "Solid Oxide Fuel Cells", "Molten Carbonate Fuel Cells",
		},
		CategoryRenames: map[string]string{
			"Photovoltaics":      "Solar PV",
			"Crystalline PV":     "Solar PV",
			"Thin Film PV":       "Solar PV",
			"Perovskite":         "Solar PV",
			"Organic PV":         "Solar PV",
			"PV Fixed":           "Solar PV",
			"PV 1-Axis Tracking": "Solar PV",
			"PV 2-Axis Tracking": "Solar PV",

			"Solar Thermal":                 "Solar,\nNon-PV",
			"Solar Thermal without Storage": "Solar,\nNon-PV",
			"Solar Thermal with Storage":    "Solar,\nNon-PV",
			// Concentrated PV is still a PV, but a highly nonstandard design.
			"Concentrated PV": "Solar,\nNon-PV",

			"Onshore Wind":           "Onshore\nWind",
			"Offshore Wind":          "Offshore\nWind",
			"Deep Offshore":          "Offshore\nWind",
			"Floating Offshore":      "Offshore\nWind",
			"Offshore Vertical Axis": "Offshore\nWind",

			"MHK":             "Ocean",
			"Tidal":           "Ocean",
			"Wave":            "Ocean",
			"OTEC":            "Ocean",
			"Osmotic":         "Ocean",
			"Oil Power Plant": "Oil",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. An empty
// path returns the pure defaults.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var over Config
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	merge(c, &over)

	// Prefer interpreting relative paths as relative to the config file
	// directory, but fall back to the provided path (relative to cwd)
	// if that doesn't exist.
	dir := filepath.Dir(path)
	c.Data = resolvePath(dir, c.Data)
	c.Logo.Path = resolvePath(dir, c.Logo.Path)
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Axis.Max <= 0 {
		return errors.New("axis.max must be positive")
	}
	for _, t := range c.Axis.Ticks {
		if t.Value < 0 || t.Value > c.Axis.Max {
			return fmt.Errorf("axis tick %g is outside [0, %g]", t.Value, c.Axis.Max)
		}
	}
	for _, g := range c.Axis.GridLines {
		if g.HeightFrac < 0 || g.HeightFrac > 1 {
			return fmt.Errorf("grid line at x=%g has height_frac %g, want [0, 1]", g.X, g.HeightFrac)
		}
	}
	if c.KeyEnabled() && len(c.Key.Values) < 5 {
		return errors.New("key.values needs at least 5 samples to draw a box")
	}
	if c.Logo.Path != "" {
		if c.Logo.Scale <= 0 {
			return errors.New("logo.scale must be positive")
		}
		if c.Logo.Opacity <= 0 || c.Logo.Opacity > 1 {
			return errors.New("logo.opacity must be in (0, 1]")
		}
	}
	return nil
}

// KeyEnabled reports whether the key diagram should be drawn.
func (c *Config) KeyEnabled() bool {
	return c.Key.Enabled == nil || *c.Key.Enabled
}

// merge overlays non-zero fields from override onto base.
func merge(base, override *Config) {
	if override.Data != "" {
		base.Data = override.Data
	}
	if override.Output != "" {
		base.Output = override.Output
	}
	if override.Title != "" {
		base.Title = override.Title
	}
	if override.Caption != "" {
		base.Caption = override.Caption
	}
	if override.Attribution != nil {
		base.Attribution = override.Attribution
	}
	if override.Logo.Path != "" {
		base.Logo.Path = override.Logo.Path
	}
	if override.Logo.Scale != 0 {
		base.Logo.Scale = override.Logo.Scale
	}
	if override.Logo.Opacity != 0 {
		base.Logo.Opacity = override.Logo.Opacity
	}
	if override.Axis.Max != 0 {
		base.Axis.Max = override.Axis.Max
	}
	if override.Axis.Ticks != nil {
		base.Axis.Ticks = override.Axis.Ticks
	}
	if override.Axis.GridLines != nil {
		base.Axis.GridLines = override.Axis.GridLines
	}
	if override.Key.Enabled != nil {
		base.Key.Enabled = override.Key.Enabled
	}
	if override.Key.Values != nil {
		base.Key.Values = override.Key.Values
	}
	if override.ExcludedTypes != nil {
		base.ExcludedTypes = override.ExcludedTypes
	}
	if override.CategoryRenames != nil {
		base.CategoryRenames = override.CategoryRenames
	}
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	cand := filepath.Join(dir, path)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return path
}
