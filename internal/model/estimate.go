package model

// Estimate represents one study's levelized cost of electricity estimate.
//
// A study reports a single central value, a low/high range, or both.
// Values are in cents per kWh; zero means the study did not report that
// value.
type Estimate struct {
	// Category is the broad generation type (Coal, Natural Gas, ...).
	Category string
	// Type is the specific technology (IGCC, Supercritical, ...).
	// When the source lacks specificity, Type equals Category.
	Type string
	// Source is optional attribution for the estimate.
	Source string

	// Costs in ¢/kWh.
	LCOE     float64
	LCOELow  float64
	LCOEHigh float64
}

// Usable reports whether the estimate carries at least one value.
func (e Estimate) Usable() bool {
	return e.LCOE > 0 || e.LCOELow > 0 || e.LCOEHigh > 0
}

// Imputed returns the estimate with all three values filled in so that
// every study carries equal weight in the plot:
//   - missing central value => midpoint of low and high
//   - missing low or high   => the central value
func (e Estimate) Imputed() Estimate {
	out := e
	if out.LCOE <= 0 {
		out.LCOE = (out.LCOELow + out.LCOEHigh) / 2
	}
	if out.LCOELow <= 0 {
		out.LCOELow = out.LCOE
	}
	if out.LCOEHigh <= 0 {
		out.LCOEHigh = out.LCOE
	}
	return out
}

// Values returns the three plotted values (low, central, high) of an
// imputed estimate.
func (e Estimate) Values() [3]float64 {
	return [3]float64{e.LCOELow, e.LCOE, e.LCOEHigh}
}

// Group is one plotted category and the pooled values of every estimate
// assigned to it.
type Group struct {
	// Name is the display label, possibly with embedded line breaks
	// (e.g. "Solar,\nNon-PV").
	Name   string
	Values []float64
}
