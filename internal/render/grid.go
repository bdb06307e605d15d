package render

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"lcoe-plot/internal/config"
)

// gridLines draws vertical reference lines at fixed cost values. A line
// with HeightFrac < 1 stops partway up so it stays clear of the key
// diagram in the upper right; a zero fraction means full height.
type gridLines struct {
	lines []config.GridLine
	style draw.LineStyle
}

var _ plot.Plotter = gridLines{}

func (g gridLines) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	for _, ln := range g.lines {
		x := trX(ln.X)
		if !c.ContainsX(x) {
			continue
		}
		frac := ln.HeightFrac
		if frac == 0 {
			frac = 1
		}
		top := c.Min.Y + vg.Length(frac)*(c.Max.Y-c.Min.Y)
		c.StrokeLine2(g.style, x, c.Min.Y, x, top)
	}
}
