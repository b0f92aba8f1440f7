package stringnorm

import "fmt"

// A VariantMap replaces each known spelling variant with its canonical
// spelling. Text that is not a known variant is returned unmodified.
type VariantMap map[string]string

// ParseVariantPairs builds a VariantMap from [variant, canonical] pairs.
// A variant listed twice with different targets is an error.
func ParseVariantPairs(pairs [][]string) (VariantMap, error) {
	res := make(VariantMap, len(pairs))
	for _, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("variant pair %#v: want [variant, canonical]", pair)
		}
		variant, canonical := pair[0], pair[1]
		if existing, ok := res[variant]; ok && existing != canonical {
			return nil, fmt.Errorf("variant %#v maps to both %#v and %#v", variant, existing, canonical)
		}
		res[variant] = canonical
	}
	return res, nil
}

// Normalize returns the canonical spelling for text, or text if it is not a
// known variant.
func (m VariantMap) Normalize(text string) (string, error) {
	if canonical, ok := m[text]; ok {
		return canonical, nil
	}
	return text, nil
}

// Map is Normalize without the error.
func (m VariantMap) Map(text string) string {
	res, _ := m.Normalize(text)
	return res
}

// Invert maps each canonical spelling to all of its variants.
func (m VariantMap) Invert() map[string][]string {
	res := map[string][]string{}
	for variant, canonical := range m {
		res[canonical] = append(res[canonical], variant)
	}
	return res
}
