package data

import (
	"fmt"
	"sort"
)

type key struct {
	country string
	year    int
}

// Table is the loaded dataset. It is read-only once Load returns.
type Table struct {
	columns []string
	rows    []Observation
	index   map[key]int
}

func newTable(columns []string, rows []Observation) *Table {
	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    rows,
		index:   make(map[key]int, len(rows)),
	}
	for i, r := range rows {
		k := key{r.Country, r.Year}
		if _, ok := t.index[k]; !ok {
			t.index[k] = i
		}
	}
	return t
}

// NewTable builds a Table from already parsed observations. Columns are the
// post-rename headers.
func NewTable(rows []Observation) *Table {
	cp := append([]Observation(nil), rows...)
	return newTable([]string{CountryHeader, YearHeader, GDPHeader, LifeExpectancyField}, cp)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Columns returns the header names after the rename.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// At returns row i in source order.
func (t *Table) At(i int) Observation { return t.rows[i] }

// Rows returns a copy of all rows in source order.
func (t *Table) Rows() []Observation {
	return append([]Observation(nil), t.rows...)
}

// Head returns up to n rows from the top of the table.
func (t *Table) Head(n int) []Observation {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n < 0 {
		n = 0
	}
	return append([]Observation(nil), t.rows[:n]...)
}

// Lookup returns the first row for (country, year).
func (t *Table) Lookup(country string, year int) (Observation, bool) {
	i, ok := t.index[key{country, year}]
	if !ok {
		return Observation{}, false
	}
	return t.rows[i], true
}

// Countries returns the distinct countries in first-seen order.
func (t *Table) Countries() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range t.rows {
		if !seen[r.Country] {
			seen[r.Country] = true
			out = append(out, r.Country)
		}
	}
	return out
}

// Years returns the distinct years in ascending order.
func (t *Table) Years() []int {
	seen := make(map[int]bool)
	var out []int
	for _, r := range t.rows {
		if !seen[r.Year] {
			seen[r.Year] = true
			out = append(out, r.Year)
		}
	}
	sort.Ints(out)
	return out
}

// ByCountry returns the rows of one country ordered by year.
func (t *Table) ByCountry(country string) []Observation {
	var out []Observation
	for _, r := range t.rows {
		if r.Country == country {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// ByYear returns the rows of one year ordered by the Countries order;
// unknown countries follow in source order.
func (t *Table) ByYear(year int) []Observation {
	var out []Observation
	for _, r := range t.rows {
		if r.Year == year {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return countryRank(out[i].Country) < countryRank(out[j].Country) })
	return out
}

// FirstByCountry returns the first occurrence of each of Countries.
// Countries absent from the table are skipped.
func (t *Table) FirstByCountry() []Observation {
	out := make([]Observation, 0, len(Countries))
	for _, c := range Countries {
		for _, r := range t.rows {
			if r.Country == c {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// GDP returns the GDP column in source order.
func (t *Table) GDP() []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.GDP
	}
	return out
}

// LifeExpectancy returns the LEABY column in source order.
func (t *Table) LifeExpectancy() []float64 {
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i] = r.LifeExpectancy
	}
	return out
}

// CheckGrid verifies the table is exactly Countries x [FirstYear, LastYear]
// with one row per pair.
func (t *Table) CheckGrid() error {
	want := len(Countries) * (LastYear - FirstYear + 1)
	seen := make(map[key]bool, len(t.rows))
	for i, r := range t.rows {
		if !isKnownCountry(r.Country) {
			return loadErr("", fmt.Sprintf("row %d: unknown country %q", i+1, r.Country), nil)
		}
		if r.Year < FirstYear || r.Year > LastYear {
			return loadErr("", fmt.Sprintf("row %d: year %d outside %d-%d", i+1, r.Year, FirstYear, LastYear), nil)
		}
		k := key{r.Country, r.Year}
		if seen[k] {
			return loadErr("", fmt.Sprintf("row %d: duplicate %s", i+1, r), nil)
		}
		seen[k] = true
	}
	if len(t.rows) != want {
		for _, c := range Countries {
			for _, y := range Years() {
				if !seen[key{c, y}] {
					return loadErr("", fmt.Sprintf("missing %s/%d (%d of %d rows)", c, y, len(t.rows), want), nil)
				}
			}
		}
	}
	return nil
}

func countryRank(name string) int {
	for i, c := range Countries {
		if c == name {
			return i
		}
	}
	return len(Countries)
}
