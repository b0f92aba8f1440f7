// Package data holds the static lookup tables and dataset declarations
// shipped with hoodstats.
package data

import (
	// for go:embed
	_ "embed"

	"github.com/hoodstats/go-hoodstats/qyaml"
)

//go:embed neighbourhoods.yml
var neighbourhoodsYAML []byte

//go:embed sources.yml
var sourcesYAML []byte

// Neighbourhoods is the neighbourhood name data.
type Neighbourhoods struct {
	qyaml.YAML
}

// NeighbourhoodData parses neighbourhoods.yml, panicking on error.
func NeighbourhoodData() Neighbourhoods {
	return Neighbourhoods{qyaml.MustParse(neighbourhoodsYAML)}
}

// CanonicalNames gets the ordered list of canonical neighbourhood names.
func (n Neighbourhoods) CanonicalNames() []string {
	return n.StringSlice("canonical-names")
}

// NameVariants gets the [variant, canonical] spelling pairs.
func (n Neighbourhoods) NameVariants() [][]string {
	return n.StringPairs("name-variants")
}

// Sources parses sources.yml, panicking on error.
func Sources() qyaml.YAML {
	return qyaml.MustParse(sourcesYAML)
}
