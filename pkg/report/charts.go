package report

import (
	"fmt"
	"strconv"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
)

// Artifact file names, in pipeline order.
const (
	FileGDPBar        = "GDP_Country_bar.png"
	FileLifeBar       = "Life_Country_bar.png"
	FileLifeViolin    = "Life_Country_violin.png"
	FileGDPYearBar    = "GDP_Country_Year_bar.png"
	FileLifeYearBar   = "Life_Country_Year_bar.png"
	FileGDPLifeFacet  = "GDP_Life_Country_Year_facet.png"
	FileLifeYearFacet = "Life_Country_Year_facet.png"
	FileGDPYearFacet  = "GDP_Country_Year_facet.png"
)

const (
	gdpLabel  = "GDP in USD"
	lifeLabel = "Life Expectancy (Years)"
)

var yearTicks = []float64{2000, 2005, 2010, 2015}

type measure func(data.Observation) float64

func gdp(o data.Observation) float64  { return o.GDP }
func life(o data.Observation) float64 { return o.LifeExpectancy }

// RenderGDPBar draws GDP per country, one bar per country.
func RenderGDPBar(t *data.Table) (*chart.Chart, error) {
	return countryBar(t, FileGDPBar, "GDP by Country", gdpLabel, gdp)
}

// RenderLifeBar draws life expectancy per country, one bar per country.
func RenderLifeBar(t *data.Table) (*chart.Chart, error) {
	return countryBar(t, FileLifeBar, "Life Expectancy by Country", lifeLabel, life)
}

// countryBar plots the first row of each country.
func countryBar(t *data.Table, file, title, ylabel string, m measure) (*chart.Chart, error) {
	first := t.FirstByCountry()
	spec := chart.BarSpec{File: file, Title: title, YLabel: ylabel}
	for _, o := range first {
		spec.Categories = append(spec.Categories, o.Country)
		spec.Values = append(spec.Values, m(o))
	}
	return chart.Bar(spec)
}

// RenderLifeViolin draws the distribution of life expectancy over all years
// for each country.
func RenderLifeViolin(t *data.Table) (*chart.Chart, error) {
	spec := chart.ViolinSpec{
		File:   FileLifeViolin,
		Title:  "Distribution of Life Expectancies per Country",
		XLabel: "Country",
		YLabel: lifeLabel,
	}
	for _, c := range countries(t) {
		var sample []float64
		for _, o := range t.ByCountry(c) {
			sample = append(sample, o.LifeExpectancy)
		}
		spec.Categories = append(spec.Categories, c)
		spec.Samples = append(spec.Samples, sample)
	}
	return chart.Violins(spec)
}

// RenderGDPByYear draws a cluster of yearly GDP bars per country.
func RenderGDPByYear(t *data.Table) (*chart.Chart, error) {
	return yearBars(t, FileGDPYearBar, "GDP in each Country over Time", gdpLabel, gdp)
}

// RenderLifeByYear draws a cluster of yearly life expectancy bars per country.
func RenderLifeByYear(t *data.Table) (*chart.Chart, error) {
	return yearBars(t, FileLifeYearBar, "Life Expectancy in each Country over Time", "Life Expectancy at Birth (Years)", life)
}

func yearBars(t *data.Table, file, title, ylabel string, m measure) (*chart.Chart, error) {
	spec := chart.GroupedBarSpec{
		File:       file,
		Title:      title,
		YLabel:     ylabel,
		Categories: countries(t),
	}
	for _, y := range t.Years() {
		row := make([]float64, len(spec.Categories))
		for i, c := range spec.Categories {
			o, ok := t.Lookup(c, y)
			if !ok {
				return nil, fmt.Errorf("chart %s: no row for %s/%d", file, c, y)
			}
			row[i] = m(o)
		}
		spec.Groups = append(spec.Groups, strconv.Itoa(y))
		spec.Values = append(spec.Values, row)
	}
	return chart.GroupedBar(spec)
}

// RenderGDPLifeFacet draws one scatter panel per year with one point per
// country at (GDP, life expectancy).
func RenderGDPLifeFacet(t *data.Table) (*chart.Chart, error) {
	spec := chart.FacetSpec{
		File:      FileGDPLifeFacet,
		Title:     "GDP vs. Life Expectancy per Year",
		XLabel:    "GDP",
		YLabel:    data.LifeExpectancyField,
		Cols:      4,
		PanelSize: 5 * vg.Inch / 2,
		Hue:       data.Countries,
		Legend:    true,
	}
	for _, y := range t.Years() {
		panel := chart.Panel{Title: strconv.Itoa(y)}
		for _, o := range t.ByYear(y) {
			panel.Series = append(panel.Series, chart.Series{
				Name:   o.Country,
				Points: plotter.XYs{{X: o.GDP, Y: o.LifeExpectancy}},
			})
		}
		spec.Panels = append(spec.Panels, panel)
	}
	return chart.ScatterFacet(spec)
}

// RenderLifeYearFacet draws one panel per country with life expectancy
// connected in year order.
func RenderLifeYearFacet(t *data.Table) (*chart.Chart, error) {
	return yearLines(t, FileLifeYearFacet, "Life Expectancy vs. Year per Country", "Life Expectancy", life)
}

// RenderGDPYearFacet draws one panel per country with GDP connected in year
// order.
func RenderGDPYearFacet(t *data.Table) (*chart.Chart, error) {
	return yearLines(t, FileGDPYearFacet, "GDP vs. Year per Country", gdpLabel, gdp)
}

func yearLines(t *data.Table, file, title, ylabel string, m measure) (*chart.Chart, error) {
	spec := chart.FacetSpec{
		File:      file,
		Title:     title,
		XLabel:    "Year",
		YLabel:    ylabel,
		Cols:      3,
		PanelSize: 4 * vg.Inch,
		Hue:       data.Countries,
		XTicks:    yearTicks,
	}
	for _, c := range countries(t) {
		s := chart.Series{Name: c}
		for _, o := range t.ByCountry(c) {
			s.Points = append(s.Points, plotter.XY{X: float64(o.Year), Y: m(o)})
		}
		spec.Panels = append(spec.Panels, chart.Panel{Title: c, Series: []chart.Series{s}})
	}
	return chart.LineFacet(spec)
}

// countries returns the fixed country order restricted to those present.
func countries(t *data.Table) []string {
	var out []string
	for _, o := range t.FirstByCountry() {
		out = append(out, o.Country)
	}
	return out
}
