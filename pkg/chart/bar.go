package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// BarSpec describes a single-series bar chart over nominal categories.
type BarSpec struct {
	File       string
	Title      string
	YLabel     string
	Categories []string
	Values     []float64
	Color      color.Color
}

// Bar draws one bar per category.
func Bar(spec BarSpec) (*Chart, error) {
	if len(spec.Categories) != len(spec.Values) {
		return nil, fmt.Errorf("chart %s: %d categories for %d values", spec.File, len(spec.Categories), len(spec.Values))
	}
	c := newChart(spec.File, spec.Title, 1, 6*vg.Inch, 4*vg.Inch)
	c.YLabel = spec.YLabel

	p := newPlot(spec.Title, "", spec.YLabel)
	bars, err := plotter.NewBarChart(plotter.Values(spec.Values), vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", spec.File, err)
	}
	bars.Color = spec.Color
	if bars.Color == nil {
		bars.Color = Categorical(0)
	}
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(spec.Categories...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	panel := Panel{Title: spec.Title}
	for i, name := range spec.Categories {
		panel.Series = append(panel.Series, Series{
			Name:   name,
			Points: plotter.XYs{{X: float64(i), Y: spec.Values[i]}},
		})
	}
	c.add(panel, p)
	return c, nil
}

// GroupedBarSpec describes clusters of bars: one cluster per category, one
// bar per group inside each cluster. Values[g][i] is group g, category i.
type GroupedBarSpec struct {
	File       string
	Title      string
	YLabel     string
	Categories []string
	Groups     []string
	Values     [][]float64
}

// GroupedBar draws clustered bars with a legend keyed by group.
func GroupedBar(spec GroupedBarSpec) (*Chart, error) {
	if len(spec.Groups) == 0 || len(spec.Groups) != len(spec.Values) {
		return nil, fmt.Errorf("chart %s: %d groups for %d value rows", spec.File, len(spec.Groups), len(spec.Values))
	}
	c := newChart(spec.File, spec.Title, 1, 12*vg.Inch, 8*vg.Inch)
	c.YLabel = spec.YLabel

	p := newPlot(spec.Title, "", spec.YLabel)
	p.Legend.Top = true
	p.Legend.Left = false

	const clusterWidth = 96.0 // points
	barWidth := vg.Points(clusterWidth / float64(len(spec.Groups)))
	colors := Sequential(len(spec.Groups))

	panel := Panel{Title: spec.Title}
	for g, name := range spec.Groups {
		if len(spec.Values[g]) != len(spec.Categories) {
			return nil, fmt.Errorf("chart %s: group %s has %d values for %d categories", spec.File, name, len(spec.Values[g]), len(spec.Categories))
		}
		bars, err := plotter.NewBarChart(plotter.Values(spec.Values[g]), barWidth)
		if err != nil {
			return nil, fmt.Errorf("chart %s: group %s: %w", spec.File, name, err)
		}
		bars.Color = colors[g]
		bars.LineStyle.Width = 0
		bars.Offset = vg.Length(float64(g)-float64(len(spec.Groups)-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(name, bars)

		s := Series{Name: name}
		for i, v := range spec.Values[g] {
			s.Points = append(s.Points, plotter.XY{X: float64(i), Y: v})
		}
		panel.Series = append(panel.Series, s)
	}
	p.NominalX(spec.Categories...)
	p.Y.Min = 0

	c.add(panel, p)
	return c, nil
}
