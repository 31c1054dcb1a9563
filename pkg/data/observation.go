package data

import "fmt"

// Column headers of the source file.
const (
	CountryHeader        = "Country"
	YearHeader           = "Year"
	GDPHeader            = "GDP"
	LifeExpectancyHeader = "Life expectancy at birth (years)"

	// LifeExpectancyField replaces LifeExpectancyHeader once the table is loaded.
	LifeExpectancyField = "LEABY"
)

// Year range covered by the dataset.
const (
	FirstYear = 2000
	LastYear  = 2015
)

// Countries lists the countries of the dataset in chart order.
var Countries = []string{"Chile", "China", "Germany", "Mexico", "USA", "Zimbabwe"}

// Observation is one (country, year) record.
type Observation struct {
	Country        string
	Year           int
	GDP            float64 // current US dollars
	LifeExpectancy float64 // years at birth
}

func (o Observation) String() string {
	return fmt.Sprintf("%s/%d", o.Country, o.Year)
}

// Years returns the integer range FirstYear..LastYear.
func Years() []int {
	years := make([]int, 0, LastYear-FirstYear+1)
	for y := FirstYear; y <= LastYear; y++ {
		years = append(years, y)
	}
	return years
}

func isKnownCountry(name string) bool {
	return countryRank(name) < len(Countries)
}
