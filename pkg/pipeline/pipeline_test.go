package pipeline

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data/datatest"
)

type recordingViewer struct {
	shown []string
}

func (v *recordingViewer) Show(c *chart.Chart, path string) error {
	v.shown = append(v.shown, path)
	return nil
}

func barStep(file string, commentary ...string) Step {
	return Step{
		Name: file,
		Render: func(t *data.Table) (*chart.Chart, error) {
			first := t.FirstByCountry()
			names := make([]string, len(first))
			values := make([]float64, len(first))
			for i, r := range first {
				names[i], values[i] = r.Country, r.GDP
			}
			return chart.Bar(chart.BarSpec{File: file, Title: file, Categories: names, Values: values})
		},
		Commentary: commentary,
	}
}

func TestPipeline_Run(t *testing.T) {
	fs := afero.NewMemMapFs()
	viewer := &recordingViewer{}
	var out bytes.Buffer

	p, err := NewPipeline(Config{
		Sink:   &chart.Sink{Fs: fs, DPI: 32},
		Viewer: viewer,
		Out:    &out,
		Logger: zaptest.NewLogger(t),
	}, barStep("one.png", "first"), barStep("two.png", "second", "third"))
	require.NoError(t, err)

	written, err := p.Run(context.Background(), data.NewTable(datatest.Grid()))
	require.NoError(t, err)

	assert.Equal(t, []string{"one.png", "two.png"}, written)
	assert.Equal(t, written, viewer.shown)
	assert.Equal(t, "first\nsecond\nthird\n", out.String())
	for _, path := range written {
		ok, err := afero.Exists(fs, path)
		require.NoError(t, err)
		assert.True(t, ok, path)
	}
}

func TestPipeline_StopsOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	boom := errors.New("boom")

	failing := Step{
		Name:   "failing",
		Render: func(*data.Table) (*chart.Chart, error) { return nil, boom },
	}
	p, err := NewPipeline(Config{Sink: &chart.Sink{Fs: fs}, Out: &out},
		barStep("one.png", "first"), failing, barStep("three.png", "third"))
	require.NoError(t, err)

	written, err := p.Run(context.Background(), data.NewTable(datatest.Grid()))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"one.png"}, written)
	assert.Equal(t, "first\n", out.String())

	ok, _ := afero.Exists(fs, "three.png")
	assert.False(t, ok)
}

func TestPipeline_Canceled(t *testing.T) {
	fs := afero.NewMemMapFs()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := NewPipeline(Config{Sink: &chart.Sink{Fs: fs}}, barStep("one.png"))
	require.NoError(t, err)
	written, err := p.Run(ctx, data.NewTable(datatest.Grid()))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, written)
}

func TestNewPipeline_RequiresSink(t *testing.T) {
	p, err := NewPipeline(Config{Out: &bytes.Buffer{}}, barStep("one.png"))
	assert.ErrorIs(t, err, ErrNoSink)
	assert.Nil(t, p)
}
