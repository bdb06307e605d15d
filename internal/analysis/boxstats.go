package analysis

import (
	"math"
	"sort"

	"lcoe-plot/internal/model"
)

// BoxStats is the per-category summary behind one box in the plot.
// Whiskers follow the Tukey convention: the most extreme data points
// within 1.5x the interquartile range of the box, never closer to the
// median than the quartiles themselves.
type BoxStats struct {
	Category string

	Count int

	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Q1     float64
	Q3     float64

	WhiskerLow  float64
	WhiskerHigh float64

	// Outliers are values beyond the whiskers. They are kept in the
	// statistics; the renderer decides how (or whether) to draw them.
	Outliers []float64
}

// IQR returns the interquartile range.
func (s BoxStats) IQR() float64 { return s.Q3 - s.Q1 }

// Compute summarizes one pool of values. Empty input yields a zero
// BoxStats; a single value collapses the box to a point.
func Compute(values []float64) BoxStats {
	s := BoxStats{}
	if len(values) == 0 {
		return s
	}
	s.Count = len(values)

	sum := 0.0
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	for _, v := range sorted {
		sum += v
	}
	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Mean = sum / float64(len(sorted))
	s.Median = percentileSorted(sorted, 0.5)
	s.Q1 = percentileSorted(sorted, 0.25)
	s.Q3 = percentileSorted(sorted, 0.75)

	fence := 1.5 * s.IQR()
	s.WhiskerLow = s.Q1
	s.WhiskerHigh = s.Q3
	for _, v := range sorted {
		if v >= s.Q1-fence {
			s.WhiskerLow = v
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= s.Q3+fence {
			s.WhiskerHigh = sorted[i]
			break
		}
	}
	// On skewed pools the nearest in-fence point can sit past a
	// quartile; the whisker never crosses into the box.
	if s.WhiskerLow > s.Q1 {
		s.WhiskerLow = s.Q1
	}
	if s.WhiskerHigh < s.Q3 {
		s.WhiskerHigh = s.Q3
	}
	for _, v := range sorted {
		if v < s.WhiskerLow || v > s.WhiskerHigh {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s
}

// Summarize computes one BoxStats per group, preserving group order.
func Summarize(groups []model.Group) []BoxStats {
	out := make([]BoxStats, 0, len(groups))
	for _, g := range groups {
		s := Compute(g.Values)
		s.Category = g.Name
		out = append(out, s)
	}
	return out
}

// SortByMean orders summaries by descending mean. The renderer assigns
// positions bottom-up, so the cheapest source ends up at the top of the
// chart.
func SortByMean(summaries []BoxStats) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Mean > summaries[j].Mean
	})
}

// percentileSorted interpolates linearly between order statistics, the
// same convention numpy uses for quartiles.
func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
