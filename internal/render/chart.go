package render

import (
	"fmt"
	"image/color"
	"strings"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"lcoe-plot/internal/analysis"
)

// Translucent blacks matching the published chart's palette.
var (
	boxGray   = color.NRGBA{A: 0x77}
	pointGray = color.NRGBA{A: 0x44}
	gridGray  = color.NRGBA{A: 0x22}
	black     = color.NRGBA{A: 0xff}
)

// buildPlot assembles the box plot: one horizontal box per category at
// integer Y positions (most expensive source at the bottom), every
// estimate overlaid as a point, mean markers and labels, custom ticks
// and gridlines, and the explanatory key diagram in the upper right.
func (c *Chart) buildPlot() (*plot.Plot, error) {
	n := len(c.summaries)
	if n == 0 {
		return nil, fmt.Errorf("no categories to plot")
	}

	p := plot.New()
	p.Title.Text = c.cfg.Title
	p.Title.TextStyle.Font.Size = vg.Points(25)
	p.Title.TextStyle.Font.Weight = xfont.WeightBold

	p.X.Min, p.X.Max = 0, c.cfg.Axis.Max
	p.Y.Min = 0.001
	p.Y.Max = float64(n) + 0.5
	if c.cfg.KeyEnabled() {
		// Room for the key box and its labels above the data.
		p.Y.Max = float64(n) + 2.6
	}

	xTicks := make([]plot.Tick, 0, len(c.cfg.Axis.Ticks))
	for _, t := range c.cfg.Axis.Ticks {
		xTicks = append(xTicks, plot.Tick{Value: t.Value, Label: t.Label})
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)

	yTicks := make([]plot.Tick, 0, n)
	for i, s := range c.summaries {
		yTicks = append(yTicks, plot.Tick{Value: float64(i + 1), Label: s.Category})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	// No spines, no tick marks; the gridlines carry the scale.
	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0
	p.X.Tick.LineStyle.Width = 0
	p.Y.Tick.LineStyle.Width = 0
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0

	p.Add(gridLines{
		lines: c.cfg.Axis.GridLines,
		style: draw.LineStyle{Color: gridGray, Width: vg.Points(0.7)},
	})

	for i, s := range c.summaries {
		pos := float64(i + 1)
		if err := c.addBox(p, c.values[s.Category], s, pos); err != nil {
			return nil, fmt.Errorf("box for %q: %w", s.Category, err)
		}
		if err := c.addPoints(p, c.values[s.Category], pos); err != nil {
			return nil, err
		}
		if err := addLabel(p, labelItem{
			x: s.Mean - 1, y: pos - 0.55,
			text: fmt.Sprintf("%.1f¢/kWh", s.Mean),
			size: vg.Points(11),
		}); err != nil {
			return nil, err
		}
	}

	if c.cfg.KeyEnabled() {
		if err := c.addKey(p, n); err != nil {
			return nil, err
		}
	}

	if note := c.truncationNote(); note != "" {
		if err := addLabel(p, labelItem{
			x: c.cfg.Axis.Max - 1.5, y: 0.3,
			text: note,
			size: vg.Points(8), xAlign: draw.XRight,
		}); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// addBox draws one box. The box statistics come from the analysis
// package rather than gonum's own quartile code, so the drawn box, the
// stats table, and the mean labels always agree.
func (c *Chart) addBox(p *plot.Plot, values []float64, s analysis.BoxStats, pos float64) error {
	b, err := plotter.NewBoxPlot(vg.Points(16), pos, plotter.Values(values))
	if err != nil {
		return err
	}
	b.Horizontal = true
	b.Median = s.Median
	b.Quartile1 = s.Q1
	b.Quartile3 = s.Q3
	b.AdjLow = s.WhiskerLow
	b.AdjHigh = s.WhiskerHigh
	// Every value is overlaid explicitly, so the box draws no fliers of
	// its own.
	b.Outside = nil
	b.BoxStyle = draw.LineStyle{Color: boxGray, Width: vg.Points(1)}
	b.WhiskerStyle = draw.LineStyle{Color: boxGray, Width: vg.Points(1)}
	b.MedianStyle = draw.LineStyle{Color: black, Width: vg.Points(1)}
	p.Add(b)

	mean, err := plotter.NewScatter(plotter.XYs{{X: s.Mean, Y: pos}})
	if err != nil {
		return err
	}
	mean.GlyphStyle = draw.GlyphStyle{
		Color:  black,
		Radius: vg.Points(3),
		Shape:  diamondGlyph{},
	}
	p.Add(mean)
	return nil
}

// addPoints overlays every individual estimate. Showing all data points
// on a box plot is nonstandard; the published chart does it so no study
// is hidden inside the box. Values beyond the axis maximum are kept in
// the statistics but not drawn.
func (c *Chart) addPoints(p *plot.Plot, values []float64, pos float64) error {
	xys := make(plotter.XYs, 0, len(values))
	for _, v := range values {
		if v > c.cfg.Axis.Max {
			continue
		}
		xys = append(xys, plotter.XY{X: v, Y: pos})
	}
	if len(xys) == 0 {
		return nil
	}
	sc, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{
		Color:  pointGray,
		Radius: vg.Points(2),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(sc)
	return nil
}

// addKey draws the explanatory box in the upper right from the
// configured sample values, with labels naming each part of the anatomy.
func (c *Chart) addKey(p *plot.Plot, n int) error {
	s := analysis.Compute(c.cfg.Key.Values)
	loc := float64(n) + 0.9
	if err := c.addBox(p, c.cfg.Key.Values, s, loc); err != nil {
		return fmt.Errorf("key box: %w", err)
	}

	items := []labelItem{
		{x: s.Mean, y: loc + 0.5, text: "Mean", xAlign: draw.XCenter},
		{x: s.Median, y: loc - 0.5, text: "Median", xAlign: draw.XCenter, yAlign: draw.YTop},
		{x: s.Q1, y: loc + 1.05, text: "25th\nPercentile", xAlign: draw.XCenter},
		{x: s.Q3, y: loc + 1.05, text: "75th\nPercentile", xAlign: draw.XCenter},
		{
			x: s.WhiskerLow - 0.5, y: loc,
			text:   "25th Percentile\nminus 1.5X\nInterquartile Range",
			xAlign: draw.XRight, yAlign: draw.YCenter,
		},
		{
			x: s.WhiskerHigh + 0.5, y: loc,
			text:   "75th Percentile\nplus 1.5X\nInterquartile Range",
			xAlign: draw.XLeft, yAlign: draw.YCenter,
		},
	}
	for _, it := range items {
		it.size = vg.Points(8)
		if err := addLabel(p, it); err != nil {
			return err
		}
	}
	return nil
}

// truncationNote names the categories with values beyond the axis
// maximum, e.g. "Ocean outliers exceeding 50¢/kWh not shown".
func (c *Chart) truncationNote() string {
	var names []string
	for _, s := range c.summaries {
		if s.Max > c.cfg.Axis.Max {
			names = append(names, strings.ReplaceAll(s.Category, "\n", " "))
		}
	}
	if len(names) == 0 {
		return ""
	}
	return fmt.Sprintf("%s outliers\nexceeding %.0f¢/kWh not shown",
		strings.Join(names, ", "), c.cfg.Axis.Max)
}

// labelItem is one positioned text annotation in data coordinates.
type labelItem struct {
	x, y   float64
	text   string
	size   vg.Length
	xAlign draw.XAlignment
	yAlign draw.YAlignment
}

func addLabel(p *plot.Plot, it labelItem) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: it.x, Y: it.y}},
		Labels: []string{it.text},
	})
	if err != nil {
		return err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = it.size
		l.TextStyle[i].XAlign = it.xAlign
		l.TextStyle[i].YAlign = it.yAlign
	}
	p.Add(l)
	return nil
}
