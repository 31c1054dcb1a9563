package data

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/spf13/afero"
)

// columnTypes pins the type of every expected column so gota never guesses.
var columnTypes = map[string]series.Type{
	CountryHeader:        series.String,
	YearHeader:           series.Int,
	GDPHeader:            series.Float,
	LifeExpectancyHeader: series.Float,
}

// LoadFile opens path on fsys and loads it with Load.
func LoadFile(fsys afero.Fs, path string) (*Table, error) {
	file, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, loadErr(path, "source not found", err)
		}
		return nil, loadErr(path, "open source", err)
	}
	defer file.Close()

	return load(path, bufio.NewReader(file))
}

// Load parses CSV rows with a header line into a Table and renames the
// life-expectancy column to LifeExpectancyField.
func Load(r io.Reader) (*Table, error) {
	return load("", r)
}

func load(path string, r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(columnTypes),
	)
	if df.Err != nil {
		return nil, loadErr(path, "malformed csv", df.Err)
	}

	before := df.Names()
	for _, h := range []string{CountryHeader, YearHeader, GDPHeader, LifeExpectancyHeader} {
		if !slices.Contains(before, h) {
			return nil, loadErr(path, fmt.Sprintf("missing column %q", h), nil)
		}
	}
	if slices.Contains(before, LifeExpectancyField) {
		return nil, loadErr(path, fmt.Sprintf("column %q already present", LifeExpectancyField), nil)
	}

	// The rename only swaps a label; the column set keeps its size.
	df = df.Rename(LifeExpectancyField, LifeExpectancyHeader)
	if df.Err != nil {
		return nil, loadErr(path, "rename column", df.Err)
	}
	after := df.Names()
	if len(after) != len(before) {
		return nil, loadErr(path, fmt.Sprintf("rename changed field count from %d to %d", len(before), len(after)), nil)
	}

	rows, err := observations(df)
	if err != nil {
		return nil, loadErr(path, "invalid value", err)
	}
	return newTable(after, rows), nil
}

func observations(df dataframe.DataFrame) ([]Observation, error) {
	countries := df.Col(CountryHeader).Records()
	years, err := df.Col(YearHeader).Int()
	if err != nil {
		return nil, fmt.Errorf("column %q: %w", YearHeader, err)
	}
	gdp := df.Col(GDPHeader).Float()
	life := df.Col(LifeExpectancyField).Float()

	out := make([]Observation, df.Nrow())
	for i := range out {
		if countries[i] == "" {
			return nil, fmt.Errorf("row %d: empty %q", i+1, CountryHeader)
		}
		if err := checkMeasure(GDPHeader, i, gdp[i]); err != nil {
			return nil, err
		}
		if err := checkMeasure(LifeExpectancyField, i, life[i]); err != nil {
			return nil, err
		}
		out[i] = Observation{
			Country:        countries[i],
			Year:           years[i],
			GDP:            gdp[i],
			LifeExpectancy: life[i],
		}
	}
	return out, nil
}

func checkMeasure(col string, row int, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Errorf("row %d: %q is not a number", row+1, col)
	case v < 0:
		return fmt.Errorf("row %d: %q is negative (%g)", row+1, col, v)
	}
	return nil
}
