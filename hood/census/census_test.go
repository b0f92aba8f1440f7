package census

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/pkg/errors"
)

const profileJSON = `[
  {"_id": 1, "Category": "Neighbourhood Information", "Topic": "Neighbourhood Information",
   "Data Source": "City of Toronto", "Characteristic": "Neighbourhood Number",
   "City of Toronto": null, "Mimico (includes Humber Bay Shores)": "17", "Weston-Pelham Park": "91"},
  {"_id": 3, "Category": "Population", "Topic": "Population and dwellings",
   "Data Source": "Census Profile 98-316-X2016001", "Characteristic": "Population, 2016",
   "City of Toronto": "2,731,571", "Mimico (includes Humber Bay Shores)": "33,964",
   "Weston-Pelham Park": "11,098", "Danforth-East York": "17,180", "Rouge": null, "Annex": "n/a",
   "Casa Loma": 10968},
  {"_id": 4, "Category": "Population", "Topic": "Population and dwellings",
   "Data Source": "Census Profile 98-316-X2016001", "Characteristic": "Population, 2011",
   "City of Toronto": "2,615,060", "Mimico (includes Humber Bay Shores)": "26,541"}
]`

func TestDecode(t *testing.T) {
	rows, err := Decode(strings.NewReader(profileJSON))
	if err != nil {
		t.Fatalf("Decode failed: %s", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	categories := []Category{rows[0].Category, rows[1].Category, rows[2].Category}
	if !reflect.DeepEqual(categories, []Category{NeighbourhoodInformation, Population2016, Other}) {
		t.Errorf("categories == %v", categories)
	}
	row := rows[1]
	if row.ID != 3 || row.Topic != "Population and dwellings" || row.DataSource != "Census Profile 98-316-X2016001" {
		t.Errorf("row metadata == %#v", row)
	}
	if _, ok := row.Values["Characteristic"]; ok {
		t.Errorf("metadata keys must not appear in Values")
	}
	if v, ok := row.Values["Rouge"]; !ok || v != nil {
		t.Errorf("Rouge cell should be present and nil, got %v, %v", v, ok)
	}
	if v := row.Values["Casa Loma"]; v == nil || *v != "10968" {
		t.Errorf("numeric cell should keep its text, got %v", v)
	}
}

func TestDecodeMalformedCell(t *testing.T) {
	for _, doc := range []string{
		`[{"_id": 1, "Characteristic": "Population, 2016", "Annex": true}]`,
		`[{"_id": 1, "Characteristic": "Population, 2016", "Annex": {"a": 1}}]`,
		`[{"_id": "one"}]`,
		`[{"Characteristic": 2016}]`,
		`[42]`,
	} {
		if _, err := Decode(strings.NewReader(doc)); errors.Cause(err) != hood.ErrMalformedRecord {
			t.Errorf("Decode(%s) err == %v, expected ErrMalformedRecord", doc, err)
		}
	}
}

func TestBuildPopulationTable(t *testing.T) {
	rows, err := Decode(strings.NewReader(profileJSON))
	if err != nil {
		t.Fatalf("Decode failed: %s", err)
	}
	pop, err := BuildPopulationTable(rows)
	if err != nil {
		t.Fatalf("BuildPopulationTable failed: %s", err)
	}
	expected := hood.Populations{
		"City of Toronto":    2731571,
		"Mimico":             33964,
		"Weston-Pellam Park": 11098,
		"Danforth East York": 17180,
		"Casa Loma":          10968,
	}
	if !reflect.DeepEqual(pop, expected) {
		t.Errorf("BuildPopulationTable == %#v, expected %#v", pop, expected)
	}
}

func popRow(id int, values map[string]*string) Row {
	return Row{ID: id, Category: Population2016, Characteristic: Population2016Characteristic, Values: values}
}

func str(s string) *string { return &s }

func TestBuildPopulationTableCells(t *testing.T) {
	pop, err := BuildPopulationTable([]Row{popRow(1, map[string]*string{
		"Annex":     str("12,345"),
		"Rouge":     nil,
		"Malvern":   str("n/a"),
		"Woburn":    str(""),
		"Guildwood": str("-3"),
		"Topic":     str("Population and dwellings"),
	})})
	if err != nil {
		t.Fatalf("BuildPopulationTable failed: %s", err)
	}
	if !reflect.DeepEqual(pop, hood.Populations{"Annex": 12345}) {
		t.Errorf("BuildPopulationTable == %#v", pop)
	}
}

func TestBuildPopulationTableRowSelection(t *testing.T) {
	other := Row{ID: 9, Category: Other, Values: map[string]*string{"Annex": str("1")}}
	for _, test := range []struct {
		name string
		rows []Row
	}{
		{"none", nil},
		{"only others", []Row{other}},
		{"duplicate", []Row{popRow(1, nil), other, popRow(2, nil)}},
	} {
		if _, err := BuildPopulationTable(test.rows); errors.Cause(err) != hood.ErrMissingCategoryRow {
			t.Errorf("%s: err == %v, expected ErrMissingCategoryRow", test.name, err)
		}
	}
}

func TestBuildPopulationTableDuplicateColumn(t *testing.T) {
	_, err := BuildPopulationTable([]Row{popRow(1, map[string]*string{
		"Weston-Pelham Park": str("11,098"),
		"Weston-Pellam Park": str("11,098"),
	})})
	if errors.Cause(err) != hood.ErrMalformedRecord {
		t.Errorf("err == %v, expected ErrMalformedRecord", err)
	}
}

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		category, characteristic string
		expected                 Category
	}{
		{"Population", "Population, 2016", Population2016},
		{"Neighbourhood Information", "Neighbourhood Number", NeighbourhoodInformation},
		{"Population", "Population, 2011", Other},
		{"", "", Other},
	} {
		if c := Classify(test.category, test.characteristic); c != test.expected {
			t.Errorf("Classify(%#v, %#v) == %s, expected %s", test.category, test.characteristic, c, test.expected)
		}
	}
}
