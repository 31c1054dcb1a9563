package pipeline

import (
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/chart"
	"github.com/paulwhkim/codecademy-capstoneproject-gdp-vs-lifeexpectancy/pkg/data"
)

// Renderer draws one chart from the loaded table. It must not modify t.
type Renderer func(t *data.Table) (*chart.Chart, error)

// Step is one chart of the report followed by its printed observations.
type Step struct {
	Name       string
	Render     Renderer
	Commentary []string
}
