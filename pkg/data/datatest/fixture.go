// Package datatest builds CSV fixtures shaped like the country/year dataset.
package datatest

import (
	"fmt"
	"strings"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
)

// Header is the header line of the source file, column order included.
const Header = "Country,Year,Life expectancy at birth (years),GDP"

// base values per country: GDP in 2000 and life expectancy in 2000.
var base = map[string][2]float64{
	"Chile":    {7.786e10, 77.3},
	"China":    {1.211e12, 71.7},
	"Germany":  {1.950e12, 78.0},
	"Mexico":   {6.836e11, 74.8},
	"USA":      {1.030e13, 76.8},
	"Zimbabwe": {6.690e9, 46.0},
}

// Row returns a deterministic observation for (country, year).
func Row(country string, year int) data.Observation {
	b := base[country]
	n := float64(year - data.FirstYear)
	return data.Observation{
		Country:        country,
		Year:           year,
		GDP:            b[0] * (1 + 0.05*n),
		LifeExpectancy: b[1] + 0.25*n,
	}
}

// Grid returns the full countries x years grid in source order.
func Grid() []data.Observation {
	var out []data.Observation
	for _, c := range data.Countries {
		for _, y := range data.Years() {
			out = append(out, Row(c, y))
		}
	}
	return out
}

// CSV renders rows with Header.
func CSV(rows []data.Observation) string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteByte('\n')
	for _, r := range rows {
		fmt.Fprintf(&b, "%s,%d,%g,%g\n", r.Country, r.Year, r.LifeExpectancy, r.GDP)
	}
	return b.String()
}

// GridCSV is CSV(Grid()).
func GridCSV() string {
	return CSV(Grid())
}
