package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
)

// Viewer shows a chart once it has been written.
type Viewer interface {
	Show(c *chart.Chart, path string) error
}

// LogViewer announces each chart through a logger.
type LogViewer struct {
	Logger *zap.Logger
}

func (v LogViewer) Show(c *chart.Chart, path string) error {
	v.Logger.Info("chart ready", zap.String("title", c.Title), zap.String("file", path))
	return nil
}

// NopViewer shows nothing.
type NopViewer struct{}

func (NopViewer) Show(*chart.Chart, string) error { return nil }

// ErrNoSink is returned by NewPipeline when Config.Sink is nil.
var ErrNoSink = errors.New("pipeline: no sink configured")

// Config wires the side effects of a Pipeline. Sink is required.
type Config struct {
	Sink   *chart.Sink
	Viewer Viewer
	Out    io.Writer // commentary
	Logger *zap.Logger
}

// Pipeline runs chart steps in order over one table.
type Pipeline struct {
	cfg   Config
	steps []Step
}

func NewPipeline(cfg Config, steps ...Step) (*Pipeline, error) {
	if cfg.Sink == nil {
		return nil, ErrNoSink
	}
	if cfg.Viewer == nil {
		cfg.Viewer = NopViewer{}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Out == nil {
		cfg.Out = io.Discard
	}
	return &Pipeline{cfg: cfg, steps: steps}, nil
}

// Steps returns the configured steps.
func (p *Pipeline) Steps() []Step {
	return append([]Step(nil), p.steps...)
}

// Run renders, saves and shows every step, printing its commentary after it.
// The first error stops the run; paths of charts already written are
// returned with it.
func (p *Pipeline) Run(ctx context.Context, t *data.Table) ([]string, error) {
	var written []string
	for i, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		log := p.cfg.Logger.With(zap.Int("step", i+1), zap.String("name", step.Name))
		start := time.Now()

		c, err := step.Render(t)
		if err != nil {
			return written, fmt.Errorf("step %q: render: %w", step.Name, err)
		}
		path, err := p.cfg.Sink.Save(c)
		if err != nil {
			return written, fmt.Errorf("step %q: %w", step.Name, err)
		}
		written = append(written, path)
		if err := p.cfg.Viewer.Show(c, path); err != nil {
			return written, fmt.Errorf("step %q: show: %w", step.Name, err)
		}
		log.Debug("step done", zap.String("file", path), zap.Duration("duration", time.Since(start)))

		for _, line := range step.Commentary {
			if _, err := fmt.Fprintln(p.cfg.Out, line); err != nil {
				return written, fmt.Errorf("step %q: commentary: %w", step.Name, err)
			}
		}
	}
	return written, nil
}
