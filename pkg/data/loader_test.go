package data_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data/datatest"
)

func TestLoad_RenamesLifeExpectancy(t *testing.T) {
	in := datatest.Header + "\nChile,2000,77.3,7.786e10\n"

	tbl, err := data.Load(strings.NewReader(in))
	require.NoError(t, err)

	require.Equal(t, 1, tbl.Len())
	row, ok := tbl.Lookup("Chile", 2000)
	require.True(t, ok)
	assert.Equal(t, 77.3, row.LifeExpectancy)
	assert.Equal(t, 7.786e10, row.GDP)

	assert.Contains(t, tbl.Columns(), data.LifeExpectancyField)
	assert.NotContains(t, tbl.Columns(), data.LifeExpectancyHeader)
}

func TestLoad_FieldCountUnchanged(t *testing.T) {
	tbl, err := data.Load(strings.NewReader(datatest.GridCSV()))
	require.NoError(t, err)

	header := strings.Split(datatest.Header, ",")
	assert.Len(t, tbl.Columns(), len(header))
	assert.Equal(t, []string{"Country", "Year", "LEABY", "GDP"}, tbl.Columns())
}

func TestLoad_FullGrid(t *testing.T) {
	tbl, err := data.Load(strings.NewReader(datatest.GridCSV()))
	require.NoError(t, err)
	require.NoError(t, tbl.CheckGrid())

	assert.Equal(t, 96, tbl.Len())
	assert.Equal(t, data.Countries, tbl.Countries())
	assert.Equal(t, data.Years(), tbl.Years())

	count := make(map[string]int)
	for _, r := range tbl.Rows() {
		count[r.String()]++
	}
	for _, c := range data.Countries {
		for _, y := range data.Years() {
			r, ok := tbl.Lookup(c, y)
			require.True(t, ok, "%s/%d", c, y)
			assert.Equal(t, 1, count[r.String()])
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason string
	}{
		{
			name:   "empty",
			input:  "",
			reason: "malformed csv",
		},
		{
			name:   "long header absent",
			input:  "Country,Year,LEABY,GDP\nChile,2000,77.3,7.786e10\n",
			reason: `missing column "Life expectancy at birth (years)"`,
		},
		{
			name:   "short name already taken",
			input:  "Country,Year,LEABY,Life expectancy at birth (years),GDP\nChile,2000,1,77.3,7.786e10\n",
			reason: `column "LEABY" already present`,
		},
		{
			name:   "gdp column absent",
			input:  "Country,Year,Life expectancy at birth (years)\nChile,2000,77.3\n",
			reason: `missing column "GDP"`,
		},
		{
			name:   "ragged row",
			input:  datatest.Header + "\nChile,2000,77.3\n",
			reason: "malformed csv",
		},
		{
			name:   "non numeric gdp",
			input:  datatest.Header + "\nChile,2000,77.3,lots\n",
			reason: "invalid value",
		},
		{
			name:   "non integer year",
			input:  datatest.Header + "\nChile,two thousand,77.3,7.786e10\n",
			reason: "invalid value",
		},
		{
			name:   "negative life expectancy",
			input:  datatest.Header + "\nChile,2000,-1,7.786e10\n",
			reason: "invalid value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := data.Load(strings.NewReader(tt.input))
			require.Error(t, err)

			var loadErr *data.LoadError
			require.True(t, errors.As(err, &loadErr), "got %T", err)
			assert.Equal(t, tt.reason, loadErr.Reason)
		})
	}
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "all_data.csv", []byte(datatest.GridCSV()), 0o644))

	tbl, err := data.LoadFile(fs, "all_data.csv")
	require.NoError(t, err)
	assert.Equal(t, 96, tbl.Len())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := data.LoadFile(afero.NewMemMapFs(), "all_data.csv")

	var loadErr *data.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "all_data.csv", loadErr.Path)
	assert.Equal(t, "source not found", loadErr.Reason)
	assert.Contains(t, err.Error(), "load all_data.csv: source not found")
}
