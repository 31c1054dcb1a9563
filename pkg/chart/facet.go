package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// FacetSpec describes a grid of panels sharing both axes.
type FacetSpec struct {
	File      string
	Title     string
	XLabel    string
	YLabel    string
	Cols      int
	PanelSize vg.Length // width and height of one panel
	Panels    []Panel

	// Hue orders the series names for coloring; a name keeps its color in
	// every panel. Names not listed are colored after the listed ones.
	Hue []string
	// Legend adds a legend of the series names to the first panel.
	Legend bool
	// XTicks, when set, replaces the default x tick marks.
	XTicks []float64
}

// ScatterFacet draws every series of every panel as scatter points.
func ScatterFacet(spec FacetSpec) (*Chart, error) {
	return facet(spec, func(s Series, clr color.Color) (plot.Plotter, plot.Thumbnailer, error) {
		sc, err := plotter.NewScatter(s.Points)
		if err != nil {
			return nil, nil, err
		}
		sc.GlyphStyle.Color = clr
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		return sc, sc, nil
	})
}

// LineFacet draws every series of every panel as a connected line in
// point order.
func LineFacet(spec FacetSpec) (*Chart, error) {
	return facet(spec, func(s Series, clr color.Color) (plot.Plotter, plot.Thumbnailer, error) {
		l, err := plotter.NewLine(s.Points)
		if err != nil {
			return nil, nil, err
		}
		l.LineStyle.Color = clr
		l.LineStyle.Width = vg.Points(1.5)
		return l, l, nil
	})
}

type drawSeries func(s Series, clr color.Color) (plot.Plotter, plot.Thumbnailer, error)

func facet(spec FacetSpec, drawFn drawSeries) (*Chart, error) {
	if len(spec.Panels) == 0 {
		return nil, fmt.Errorf("chart %s: no panels", spec.File)
	}
	size := spec.PanelSize
	if size == 0 {
		size = 3 * vg.Inch
	}
	c := newChart(spec.File, spec.Title, spec.Cols, 0, 0)
	c.XLabel = spec.XLabel
	c.YLabel = spec.YLabel
	rows, cols := (len(spec.Panels)+c.cols-1)/c.cols, c.cols
	if len(spec.Panels) < cols {
		cols = len(spec.Panels)
	}
	c.width = vg.Length(cols) * size
	c.height = vg.Length(rows)*size + vg.Points(titleBand)

	colors := hueIndex(spec.Hue, spec.Panels)
	xmin, xmax, ymin, ymax := extent(spec.Panels)

	for i, panel := range spec.Panels {
		// Axis labels only on the outer edge of the grid.
		var xl, yl string
		if i+cols >= len(spec.Panels) {
			xl = spec.XLabel
		}
		if i%cols == 0 {
			yl = spec.YLabel
		}
		p := newPlot(panel.Title, xl, yl)
		for _, s := range panel.Series {
			pl, thumb, err := drawFn(s, Categorical(colors[s.Name]))
			if err != nil {
				return nil, fmt.Errorf("chart %s: panel %s: series %s: %w", spec.File, panel.Title, s.Name, err)
			}
			p.Add(pl)
			if i == 0 && spec.Legend {
				p.Legend.Add(s.Name, thumb)
			}
		}
		p.Legend.Top = true
		p.X.Min, p.X.Max = xmin, xmax
		p.Y.Min, p.Y.Max = ymin, ymax
		if len(spec.XTicks) > 0 {
			p.X.Tick.Marker = constantTicks(spec.XTicks)
		}
		c.add(panel, p)
	}
	return c, nil
}

func hueIndex(order []string, panels []Panel) map[string]int {
	idx := make(map[string]int)
	for _, name := range order {
		if _, ok := idx[name]; !ok {
			idx[name] = len(idx)
		}
	}
	for _, p := range panels {
		for _, s := range p.Series {
			if _, ok := idx[s.Name]; !ok {
				idx[s.Name] = len(idx)
			}
		}
	}
	return idx
}

// extent returns the padded data range over all panels.
func extent(panels []Panel) (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, p := range panels {
		for _, s := range p.Series {
			for _, pt := range s.Points {
				xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
				ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
			}
		}
	}
	if math.IsInf(xmin, 1) {
		return 0, 1, 0, 1
	}
	xmin, xmax = pad(xmin, xmax)
	ymin, ymax = pad(ymin, ymax)
	return xmin, xmax, ymin, ymax
}

func pad(lo, hi float64) (float64, float64) {
	d := (hi - lo) * 0.05
	if d == 0 {
		d = math.Max(math.Abs(lo)*0.05, 1)
	}
	return lo - d, hi + d
}

func constantTicks(at []float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(at))
	for i, v := range at {
		ticks[i] = plot.Tick{Value: v, Label: fmt.Sprintf("%g", v)}
	}
	return ticks
}
