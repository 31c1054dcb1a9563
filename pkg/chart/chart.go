// Package chart draws the report figures with gonum/plot and keeps the data
// each figure is bound to, so figures can be compared without pixels.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultDPI is used when a Sink has no DPI set.
const DefaultDPI = 96

const titleBand = 36 // points reserved above a facet grid for its title

// Series is one named run of points drawn on a panel.
type Series struct {
	Name   string
	Points plotter.XYs
}

// Panel is one facet of a chart. Single-panel charts have exactly one.
type Panel struct {
	Title  string
	Series []Series
}

// Len returns the number of points over all series of the panel.
func (p Panel) Len() int {
	n := 0
	for _, s := range p.Series {
		n += len(s.Points)
	}
	return n
}

// Chart is a rendered figure together with its data bindings.
type Chart struct {
	File   string
	Title  string
	XLabel string
	YLabel string
	Panels []Panel

	cols          int
	width, height vg.Length
	plots         []*plot.Plot
}

func newChart(file, title string, cols int, width, height vg.Length) *Chart {
	if cols < 1 {
		cols = 1
	}
	return &Chart{File: file, Title: title, cols: cols, width: width, height: height}
}

func (c *Chart) add(panel Panel, p *plot.Plot) {
	c.Panels = append(c.Panels, panel)
	c.plots = append(c.plots, p)
}

// Grid returns the facet layout as rows and columns.
func (c *Chart) Grid() (rows, cols int) {
	n := len(c.plots)
	if n == 0 {
		return 0, 0
	}
	cols = c.cols
	if n < cols {
		cols = n
	}
	return (n + cols - 1) / cols, cols
}

// Size returns the figure size.
func (c *Chart) Size() (width, height vg.Length) {
	return c.width, c.height
}

// WritePNG draws the chart and encodes it as PNG.
func (c *Chart) WritePNG(w io.Writer, dpi int) (int64, error) {
	if len(c.plots) == 0 {
		return 0, fmt.Errorf("chart %s: nothing to draw", c.File)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	img := vgimg.NewWith(vgimg.UseWH(c.width, c.height), vgimg.UseDPI(dpi))
	dc := draw.New(img)

	// Plain white background; vgimg starts transparent.
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	if len(c.plots) == 1 {
		c.plots[0].Draw(dc)
	} else {
		c.drawGrid(dc)
	}

	png := vgimg.PngCanvas{Canvas: img}
	return png.WriteTo(w)
}

func (c *Chart) drawGrid(dc draw.Canvas) {
	dc.FillText(text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(16)),
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(8)}, c.Title)
	body := draw.Crop(dc, 0, 0, 0, -vg.Points(titleBand))

	rows, cols := c.Grid()
	grid := make([][]*plot.Plot, rows)
	for r := range grid {
		grid[r] = make([]*plot.Plot, cols)
		for col := range grid[r] {
			if i := r*cols + col; i < len(c.plots) {
				grid[r][col] = c.plots[i]
			}
		}
	}

	tiles := draw.Tiles{
		Rows:      rows,
		Cols:      cols,
		PadX:      vg.Millimeter * 2,
		PadY:      vg.Millimeter * 2,
		PadTop:    vg.Millimeter,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	canvases := plot.Align(grid, tiles, body)
	for r := range grid {
		for col, p := range grid[r] {
			if p != nil {
				p.Draw(canvases[r][col])
			}
		}
	}
}

func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}
