// Package report runs the GDP and life expectancy report: it loads the
// country/year table, draws the eight charts in a fixed order and prints the
// observations that go with them.
package report

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/pipeline"
)

// Options configures Run.
type Options struct {
	Fs          afero.Fs
	Input       string
	OutputDir   string
	DPI         int
	PreviewRows int
	Stdout      io.Writer
	Viewer      pipeline.Viewer
	Logger      *zap.Logger
}

// Result is what a successful (or partially successful) Run produced.
type Result struct {
	Table     *data.Table
	Artifacts []string
}

// Steps returns the chart steps of the report in order.
func Steps() []pipeline.Step {
	return []pipeline.Step{
		{Name: "gdp by country", Render: RenderGDPBar},
		{Name: "life expectancy by country", Render: RenderLifeBar, Commentary: barObservations},
		{Name: "life expectancy distribution", Render: RenderLifeViolin, Commentary: violinObservations},
		{Name: "gdp by country and year", Render: RenderGDPByYear},
		{Name: "life expectancy by country and year", Render: RenderLifeByYear, Commentary: yearBarObservations},
		{Name: "gdp vs life expectancy per year", Render: RenderGDPLifeFacet, Commentary: scatterObservations},
		{Name: "life expectancy vs year per country", Render: RenderLifeYearFacet, Commentary: lifeLineObservations},
		{Name: "gdp vs year per country", Render: RenderGDPYearFacet, Commentary: gdpLineObservations},
	}
}

// Run loads the input and produces every chart. A *data.LoadError is
// returned before anything is written.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	log := opts.Logger

	t, err := data.LoadFile(opts.Fs, opts.Input)
	if err != nil {
		return nil, err
	}
	if err := t.CheckGrid(); err != nil {
		var loadErr *data.LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = opts.Input
		}
		return nil, err
	}
	log.Info("table loaded",
		zap.String("input", opts.Input),
		zap.Int("rows", t.Len()),
		zap.Strings("columns", t.Columns()),
	)

	if err := writeOverview(opts.Stdout, t, opts.PreviewRows); err != nil {
		return &Result{Table: t}, err
	}

	p, err := pipeline.NewPipeline(pipeline.Config{
		Sink:   &chart.Sink{Fs: opts.Fs, Dir: opts.OutputDir, DPI: opts.DPI},
		Viewer: opts.Viewer,
		Out:    opts.Stdout,
		Logger: log,
	}, Steps()...)
	if err != nil {
		return &Result{Table: t}, err
	}

	written, err := p.Run(ctx, t)
	res := &Result{Table: t, Artifacts: written}
	if err != nil {
		return res, err
	}
	if err := writeSummary(opts.Stdout, t); err != nil {
		return res, err
	}
	log.Info("report done", zap.Int("charts", len(written)))
	return res, nil
}
