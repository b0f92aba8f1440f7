// Package name maps the neighbourhood spellings used by the boundary, case
// and census datasets to one canonical spelling.
package name

import (
	"github.com/hoodstats/go-hoodstats/conv"
	"github.com/hoodstats/go-hoodstats/data"
	"github.com/hoodstats/go-hoodstats/stringnorm"
)

// QualifierSep separates a boundary area name from its parenthetical
// qualifier, as in "Mimico (includes Humber Bay Shores)".
const QualifierSep = " ("

// A Normalizer maps raw neighbourhood names to canonical names.
type Normalizer struct {
	norm stringnorm.Normalizer
}

// NewNormalizer creates a Normalizer that truncates names at QualifierSep
// and then replaces known spelling variants.
func NewNormalizer(variants stringnorm.VariantMap) *Normalizer {
	return &Normalizer{
		norm: stringnorm.Combine(stringnorm.PrefixCut{Sep: QualifierSep}, variants),
	}
}

// Normalize returns the canonical form of raw. Unknown spellings are returned
// unchanged after truncation.
func (n *Normalizer) Normalize(raw string) string {
	return stringnorm.NormalizeNoErr(n.norm, raw)
}

var (
	neighbourhoods = data.NeighbourhoodData()
	canonicalNames = neighbourhoods.CanonicalNames()
	canonicalSet   = conv.StringSliceSet(canonicalNames)
	variants       = mustVariants(neighbourhoods.NameVariants())
	defaultNorm    = NewNormalizer(variants)
)

func mustVariants(pairs [][]string) stringnorm.VariantMap {
	m, err := stringnorm.ParseVariantPairs(pairs)
	if err != nil {
		panic(err)
	}
	return m
}

// Normalize maps raw to its canonical neighbourhood name using the built-in
// variant table.
func Normalize(raw string) string {
	return defaultNorm.Normalize(raw)
}

// Registry returns the ordered list of canonical names.
func Registry() []string {
	res := make([]string, len(canonicalNames))
	copy(res, canonicalNames)
	return res
}

// IsCanonical reports whether name is in the canonical name registry.
func IsCanonical(name string) bool {
	return canonicalSet[name]
}

// Variants returns the built-in spelling variants of canonical.
func Variants(canonical string) []string {
	return variants.Invert()[canonical]
}
