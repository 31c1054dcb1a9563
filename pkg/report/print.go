package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/stats"
)

const defaultPreviewRows = 5

// writeOverview prints the head of the table and the countries and years
// it covers.
func writeOverview(w io.Writer, t *data.Table, rows int) error {
	if rows <= 0 {
		rows = defaultPreviewRows
	}
	cols := t.Columns()

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	header := make(table.Row, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	tw.AppendHeader(header)
	for _, o := range t.Head(rows) {
		row := make(table.Row, len(cols))
		for i, c := range cols {
			row[i] = cell(o, c)
		}
		tw.AppendRow(row)
	}
	tw.Render()

	years := t.Years()
	_, err := fmt.Fprintf(w, "\nThe countries represented are: %s.\nThe years represented are: %d-%d.\n",
		strings.Join(t.Countries(), ", "), years[0], years[len(years)-1])
	return err
}

func cell(o data.Observation, column string) string {
	switch column {
	case data.CountryHeader:
		return o.Country
	case data.YearHeader:
		return strconv.Itoa(o.Year)
	case data.GDPHeader:
		return strconv.FormatFloat(o.GDP, 'e', 6, 64)
	case data.LifeExpectancyField:
		return strconv.FormatFloat(o.LifeExpectancy, 'f', 1, 64)
	}
	return ""
}

// writeSummary prints per-country statistics answering the report's
// questions: average life expectancy, its spread, GDP growth and how GDP
// and life expectancy move together.
func writeSummary(w io.Writer, t *data.Table) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Life expectancy and GDP, %d-%d", data.FirstYear, data.LastYear)
	tw.AppendHeader(table.Row{"Country", "Mean LEABY", "Std", "Min", "Max", "GDP growth", "r(GDP, LEABY)"})

	for _, c := range countries(t) {
		rows := t.ByCountry(c)
		g := make([]float64, len(rows))
		l := make([]float64, len(rows))
		for i, o := range rows {
			g[i], l[i] = o.GDP, o.LifeExpectancy
		}
		s := stats.Summarize(l)
		tw.AppendRow(table.Row{
			c,
			fmt.Sprintf("%.2f", s.Mean),
			fmt.Sprintf("%.2f", s.Std),
			fmt.Sprintf("%.1f", s.Min),
			fmt.Sprintf("%.1f", s.Max),
			fmt.Sprintf("%+.1f%%", stats.Growth(g)*100),
			fmt.Sprintf("%.3f", stats.Correlation(g, l)),
		})
	}
	fmt.Fprintln(w)
	tw.Render()

	all := stats.Summarize(t.LifeExpectancy())
	_, err := fmt.Fprintf(w, "\nAverage life expectancy across all countries: %.2f years (median %.2f).\nCorrelation of GDP and life expectancy over all rows: %.3f.\n",
		all.Mean, all.Median, stats.Correlation(t.GDP(), t.LifeExpectancy()))
	return err
}
