package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/stats"
)

// ViolinSpec describes one distribution per category.
type ViolinSpec struct {
	File       string
	Title      string
	XLabel     string
	YLabel     string
	Categories []string
	Samples    [][]float64
}

// Violins draws a mirrored kernel density per category with an inner
// box for the quartiles and a dot at the median.
func Violins(spec ViolinSpec) (*Chart, error) {
	if len(spec.Categories) != len(spec.Samples) {
		return nil, fmt.Errorf("chart %s: %d categories for %d samples", spec.File, len(spec.Categories), len(spec.Samples))
	}
	c := newChart(spec.File, spec.Title, 1, 15*vg.Inch, 10*vg.Inch)
	c.XLabel = spec.XLabel
	c.YLabel = spec.YLabel

	p := newPlot(spec.Title, spec.XLabel, spec.YLabel)
	panel := Panel{Title: spec.Title}
	for i, name := range spec.Categories {
		sample := spec.Samples[i]
		if len(sample) == 0 {
			return nil, fmt.Errorf("chart %s: empty sample for %s", spec.File, name)
		}
		v := newViolin(float64(i), sample)
		v.Color = Categorical(i)
		p.Add(v)

		s := Series{Name: name}
		for _, y := range sample {
			s.Points = append(s.Points, plotter.XY{X: float64(i), Y: y})
		}
		panel.Series = append(panel.Series, s)
	}
	p.NominalX(spec.Categories...)

	c.add(panel, p)
	return c, nil
}

// violin implements plot.Plotter and plot.DataRanger.
type violin struct {
	Loc       float64
	HalfWidth float64
	Color     color.Color
	LineStyle draw.LineStyle

	values  []float64 // along the value axis
	density []float64
	summary stats.Summary
}

func newViolin(loc float64, sample []float64) *violin {
	xs, ys := stats.NewKDE(sample).Curve(2, 100)
	return &violin{
		Loc:       loc,
		HalfWidth: 0.4,
		LineStyle: draw.LineStyle{Color: color.Gray{Y: 60}, Width: vg.Points(1)},
		values:    xs,
		density:   ys,
		summary:   stats.Summarize(sample),
	}
}

// Plot implements plot.Plotter.
func (v *violin) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	peak := floats.Max(v.density)
	n := len(v.values)
	outline := make([]vg.Point, 0, 2*n+1)
	for i := 0; i < n; i++ {
		w := v.density[i] / peak * v.HalfWidth
		outline = append(outline, vg.Point{X: trX(v.Loc + w), Y: trY(v.values[i])})
	}
	for i := n - 1; i >= 0; i-- {
		w := v.density[i] / peak * v.HalfWidth
		outline = append(outline, vg.Point{X: trX(v.Loc - w), Y: trY(v.values[i])})
	}
	c.FillPolygon(v.Color, c.ClipPolygonXY(outline))
	outline = append(outline, outline[0])
	c.StrokeLines(v.LineStyle, c.ClipLinesXY(outline)...)

	x := trX(v.Loc)
	s := v.summary
	c.StrokeLine2(draw.LineStyle{Color: color.Black, Width: vg.Points(1)}, x, trY(s.Min), x, trY(s.Max))
	c.StrokeLine2(draw.LineStyle{Color: color.Black, Width: vg.Points(5)}, x, trY(s.Q1), x, trY(s.Q3))
	c.DrawGlyph(draw.GlyphStyle{Color: color.White, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}}, vg.Point{X: x, Y: trY(s.Median)})
}

// DataRange implements plot.DataRanger.
func (v *violin) DataRange() (xmin, xmax, ymin, ymax float64) {
	return v.Loc - v.HalfWidth, v.Loc + v.HalfWidth, v.values[0], v.values[len(v.values)-1]
}
