// Package hood holds the types shared by the neighbourhood join: the
// per-neighbourhood statistic maps and the error taxonomy.
package hood

import "errors"

// Counts maps a canonical neighbourhood name to its number of case records.
type Counts map[string]int

// Populations maps a canonical neighbourhood name to its 2016 population.
type Populations map[string]int

// A Stat is one joined neighbourhood row.
type Stat struct {
	Name       string
	CaseCount  int
	Population int
}

// Property names added to every boundary feature.
const (
	CaseCountProperty  = "covid_case_count"
	PopulationProperty = "population"
)

var (
	// ErrMalformedRecord is returned when a structural field of an input
	// record does not have the expected type.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrMissingAreaName is returned when a boundary feature has no string
	// area name property.
	ErrMissingAreaName = errors.New("missing area name")

	// ErrMissingCategoryRow is returned when the census data does not
	// contain exactly one 2016 population row.
	ErrMissingCategoryRow = errors.New("missing category row")

	// ErrUnjoinedNeighbourhood is returned when a boundary feature's
	// canonical name has no case count or no population entry.
	ErrUnjoinedNeighbourhood = errors.New("unjoined neighbourhood")
)
