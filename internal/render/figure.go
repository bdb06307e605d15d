package render

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"lcoe-plot/internal/analysis"
	"lcoe-plot/internal/config"
	"lcoe-plot/internal/model"
)

const (
	figureWidth  = 9 * vg.Inch
	figureHeight = 8 * vg.Inch
	// footerStrip is reserved below the plot for the caption,
	// attribution, and logo.
	footerStrip = 1.25 * vg.Inch
	// logoDPI converts logo pixels to canvas lengths.
	logoDPI = 100
)

// Chart renders one LCOE box-plot figure.
type Chart struct {
	cfg       *config.Config
	summaries []analysis.BoxStats
	values    map[string][]float64
}

// New prepares a chart from grouped estimates. Categories are ordered by
// descending mean cost, which puts the cheapest source at the top of the
// figure.
func New(cfg *config.Config, groups []model.Group) *Chart {
	summaries := analysis.Summarize(groups)
	analysis.SortByMean(summaries)
	values := make(map[string][]float64, len(groups))
	for _, g := range groups {
		values[g.Name] = g.Values
	}
	return &Chart{cfg: cfg, summaries: summaries, values: values}
}

// Summaries returns the per-category statistics in plot order (bottom of
// the chart first).
func (c *Chart) Summaries() []analysis.BoxStats {
	return c.summaries
}

// Render writes the figure as SVG.
func (c *Chart) Render(w io.Writer) error {
	p, err := c.buildPlot()
	if err != nil {
		return err
	}

	canvas := vgsvg.New(figureWidth, figureHeight)
	dc := draw.New(canvas)
	p.Draw(draw.Crop(dc, 0, 0, footerStrip, 0))
	if err := c.drawFooter(dc); err != nil {
		return err
	}

	if _, err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

// RenderFile renders the figure into a file.
func (c *Chart) RenderFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawFooter places the caption (left), attribution block (right), and
// logo in the strip below the plot.
func (c *Chart) drawFooter(dc draw.Canvas) error {
	top := dc.Min.Y + footerStrip - 0.15*vg.Inch

	if c.cfg.Caption != "" {
		sty := footerTextStyle(vg.Points(10))
		dc.FillText(sty, vg.Point{X: dc.Min.X + 0.4*vg.Inch, Y: top}, c.cfg.Caption)
	}

	if len(c.cfg.Attribution) > 0 {
		sty := footerTextStyle(vg.Points(7))
		x := dc.Min.X + 0.8*(dc.Max.X-dc.Min.X)
		dc.FillText(sty, vg.Point{X: x, Y: top}, strings.Join(c.cfg.Attribution, "\n"))
	}

	if c.cfg.Logo.Path != "" {
		img, err := loadLogo(c.cfg.Logo)
		if err != nil {
			return err
		}
		b := img.Bounds()
		w := vg.Length(b.Dx()) / logoDPI * vg.Inch
		h := vg.Length(b.Dy()) / logoDPI * vg.Inch
		x := dc.Min.X + 0.66*(dc.Max.X-dc.Min.X)
		y := dc.Min.Y + 0.05*vg.Inch
		dc.DrawImage(vg.Rectangle{
			Min: vg.Point{X: x, Y: y},
			Max: vg.Point{X: x + w, Y: y + h},
		}, img)
	}
	return nil
}

func footerTextStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Sans", Size: size},
		XAlign:  draw.XLeft,
		YAlign:  draw.YTop,
		Handler: text.Plain{Fonts: font.DefaultCache},
	}
}
