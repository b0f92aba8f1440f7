package name

import (
	"testing"

	"github.com/hoodstats/go-hoodstats/stringnorm"
)

// Spellings seen across the three datasets, paired with the canonical name
// they must resolve to.
var spellingTests = []struct {
	raw       string
	canonical string
}{
	{"Weston-Pellam Park", "Weston-Pellam Park"},
	{"Weston-Pelham Park", "Weston-Pellam Park"},
	{"Weston-Pellam Park (91)", "Weston-Pellam Park"},
	{"Briar Hill - Belgravia", "Briar Hill-Belgravia"},
	{"Briar Hill-Belgravia", "Briar Hill-Belgravia"},
	{"Briar Hill-Belgravia (also known as X)", "Briar Hill-Belgravia"},
	{"Cabbagetown-South St. James Town", "Cabbagetown-South St.James Town"},
	{"Cabbagetown-South St.James Town (71)", "Cabbagetown-South St.James Town"},
	{"North St. James Town", "North St.James Town"},
	{"North St.James Town", "North St.James Town"},
	{"Mimico (includes Humber Bay Shores)", "Mimico"},
	{"Mimico (includes Humber Bay Shores) (17)", "Mimico"},
	{"Mimico", "Mimico"},
	{"Danforth East York", "Danforth East York"},
	{"Danforth-East York", "Danforth East York"},
	{"Danforth-East York (59)", "Danforth East York"},
	{"Casa Loma (96)", "Casa Loma"},
	{"City of Toronto", "City of Toronto"},
}

func TestNormalizeSpellings(t *testing.T) {
	for _, test := range spellingTests {
		if res := Normalize(test.raw); res != test.canonical {
			t.Errorf("Normalize(%#v) == %#v, expected %#v", test.raw, res, test.canonical)
		}
		if !IsCanonical(test.canonical) {
			t.Errorf("%#v is not in the registry", test.canonical)
		}
	}
}

func TestNormalizeUnknownPassesThrough(t *testing.T) {
	for _, test := range [][]string{
		{"Atlantis", "Atlantis"},
		{"Atlantis (lost)", "Atlantis"},
		{"", ""},
	} {
		if res := Normalize(test[0]); res != test[1] {
			t.Errorf("Normalize(%#v) == %#v, expected %#v", test[0], res, test[1])
		}
	}
}

func TestRegistryIsFixedPoint(t *testing.T) {
	registry := Registry()
	if len(registry) != 141 {
		t.Fatalf("registry has %d names, expected 141", len(registry))
	}
	seen := map[string]bool{}
	for _, name := range registry {
		if seen[name] {
			t.Errorf("duplicate registry name %#v", name)
		}
		seen[name] = true
		if res := Normalize(name); res != name {
			t.Errorf("Normalize(%#v) == %#v, canonical names must normalize to themselves", name, res)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := Registry()
	for _, test := range spellingTests {
		inputs = append(inputs, test.raw)
	}
	for variant := range variants {
		inputs = append(inputs, variant)
	}
	for _, raw := range inputs {
		once := Normalize(raw)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%#v)) == %#v, expected %#v", raw, twice, once)
		}
	}
}

func TestVariantsResolveIntoRegistry(t *testing.T) {
	for variant, canonical := range variants {
		if !IsCanonical(canonical) {
			t.Errorf("variant %#v targets %#v, which is not in the registry", variant, canonical)
		}
		if IsCanonical(variant) {
			t.Errorf("variant %#v is itself in the registry", variant)
		}
	}
	found := false
	for _, v := range Variants("Danforth East York") {
		found = found || v == "Danforth-East York"
	}
	if !found {
		t.Errorf("Variants(Danforth East York) == %#v", Variants("Danforth East York"))
	}
}

func TestRegistryReturnsCopy(t *testing.T) {
	registry := Registry()
	registry[0] = "Atlantis"
	if Registry()[0] == "Atlantis" {
		t.Errorf("Registry must not expose the underlying table")
	}
}

func TestNewNormalizer(t *testing.T) {
	n := NewNormalizer(stringnorm.VariantMap{"Old Name": "New Name"})
	if res := n.Normalize("Old Name (1)"); res != "New Name" {
		t.Errorf("Normalize(Old Name (1)) == %#v", res)
	}
	if res := n.Normalize("Danforth-East York"); res != "Danforth-East York" {
		t.Errorf("custom normalizer should not use the built-in table, got %#v", res)
	}
}
