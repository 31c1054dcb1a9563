package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data/datatest"
)

var allFiles = []string{
	FileGDPBar,
	FileLifeBar,
	FileLifeViolin,
	FileGDPYearBar,
	FileLifeYearBar,
	FileGDPLifeFacet,
	FileLifeYearFacet,
	FileGDPYearFacet,
}

type recordingViewer struct {
	titles []string
}

func (v *recordingViewer) Show(c *chart.Chart, _ string) error {
	v.titles = append(v.titles, c.Title)
	return nil
}

func fixtureFs(t *testing.T, csv string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/all_data.csv", []byte(csv), 0o644))
	return fs
}

func pngFiles(t *testing.T, fs afero.Fs) []string {
	t.Helper()
	var out []string
	require.NoError(t, afero.Walk(fs, "/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".png") {
			out = append(out, filepath.Base(path))
		}
		return nil
	}))
	return out
}

func run(t *testing.T, fs afero.Fs) (*Result, string, error) {
	t.Helper()
	var stdout bytes.Buffer
	res, err := Run(context.Background(), Options{
		Fs:        fs,
		Input:     "/all_data.csv",
		OutputDir: "/out",
		DPI:       24,
		Stdout:    &stdout,
		Logger:    zaptest.NewLogger(t),
	})
	return res, stdout.String(), err
}

func TestRun(t *testing.T) {
	fs := fixtureFs(t, datatest.GridCSV())
	viewer := &recordingViewer{}
	var stdout bytes.Buffer

	res, err := Run(context.Background(), Options{
		Fs:        fs,
		Input:     "/all_data.csv",
		OutputDir: "/out",
		DPI:       24,
		Stdout:    &stdout,
		Viewer:    viewer,
		Logger:    zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	require.Len(t, res.Artifacts, 8)
	for i, name := range allFiles {
		assert.Equal(t, filepath.Join("/out", name), res.Artifacts[i])
		b, err := afero.ReadFile(fs, res.Artifacts[i])
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), name)
	}
	assert.ElementsMatch(t, allFiles, pngFiles(t, fs))
	assert.Len(t, viewer.titles, 8)

	out := stdout.String()
	assert.Contains(t, out, "LEABY")
	assert.Contains(t, out, "The countries represented are: Chile, China, Germany, Mexico, USA, Zimbabwe.")
	assert.Contains(t, out, "The years represented are: 2000-2015.")
	assert.Contains(t, out, "Average life expectancy across all countries")

	// commentary comes in chart order
	first := strings.Index(out, barObservations[0])
	last := strings.Index(out, gdpLineObservations[len(gdpLineObservations)-1])
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, last)
	assert.Less(t, first, strings.Index(out, violinObservations[0]))
	assert.Less(t, strings.Index(out, scatterObservations[0]), last)
}

func TestRun_Deterministic(t *testing.T) {
	res1, out1, err := run(t, fixtureFs(t, datatest.GridCSV()))
	require.NoError(t, err)
	res2, out2, err := run(t, fixtureFs(t, datatest.GridCSV()))
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, res1.Artifacts, res2.Artifacts)

	for _, step := range Steps() {
		c1, err := step.Render(res1.Table)
		require.NoError(t, err)
		c2, err := step.Render(res2.Table)
		require.NoError(t, err)
		assert.Equal(t, c1.Panels, c2.Panels, step.Name)
	}
}

func TestRun_MissingInput(t *testing.T) {
	fs := afero.NewMemMapFs()

	res, out, err := run(t, fs)
	var loadErr *data.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Nil(t, res)
	assert.Empty(t, out)
	assert.Empty(t, pngFiles(t, fs))
}

func TestRun_IncompleteGrid(t *testing.T) {
	fs := fixtureFs(t, datatest.CSV(datatest.Grid()[:95]))

	_, out, err := run(t, fs)
	var loadErr *data.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "/all_data.csv", loadErr.Path)
	assert.Contains(t, err.Error(), "missing Zimbabwe/2015")
	assert.Empty(t, out)
	assert.Empty(t, pngFiles(t, fs))
}

func TestRun_UnexpectedHeader(t *testing.T) {
	csv := strings.Replace(datatest.GridCSV(), data.LifeExpectancyHeader, "Life expectancy", 1)
	fs := fixtureFs(t, csv)

	_, _, err := run(t, fs)
	var loadErr *data.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Empty(t, pngFiles(t, fs))
}
