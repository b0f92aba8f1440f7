// Package census extracts per-neighbourhood population from the wide
// neighbourhood profile table.
package census

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/hoodstats/go-hoodstats/hood/name"
	"github.com/hoodstats/go-hoodstats/text"
	"github.com/pkg/errors"
)

// A Row is one statistic of the neighbourhood profile table. Values maps
// each column header (a raw neighbourhood name) to its cell; a nil cell is
// suppressed or missing.
type Row struct {
	ID             int
	Category       Category
	CategoryLabel  string
	Topic          string
	DataSource     string
	Characteristic string
	Values         map[string]*string
}

// Metadata keys of a row; every other key is a value column.
const (
	idKey             = "_id"
	categoryKey       = "Category"
	topicKey          = "Topic"
	dataSourceKey     = "Data Source"
	characteristicKey = "Characteristic"
)

// UnmarshalJSON decodes a row object, collecting unknown keys into Values.
func (r *Row) UnmarshalJSON(b []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return errors.Wrapf(hood.ErrMalformedRecord, "census row: %s", err)
	}
	row := Row{Values: make(map[string]*string, len(fields))}
	for key, raw := range fields {
		var err error
		switch key {
		case idKey:
			err = json.Unmarshal(raw, &row.ID)
		case categoryKey:
			err = json.Unmarshal(raw, &row.CategoryLabel)
		case topicKey:
			err = json.Unmarshal(raw, &row.Topic)
		case dataSourceKey:
			err = json.Unmarshal(raw, &row.DataSource)
		case characteristicKey:
			err = json.Unmarshal(raw, &row.Characteristic)
		default:
			row.Values[key], err = cellValue(raw)
		}
		if err != nil {
			return errors.Wrapf(hood.ErrMalformedRecord, "census row field %#v: %s", key, err)
		}
	}
	row.Category = Classify(row.CategoryLabel, row.Characteristic)
	*r = row
	return nil
}

// cellValue decodes a string, number or null cell. Numbers keep their
// literal text.
func cellValue(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return &s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, errors.Errorf("cell %s is not a string, number or null", raw)
	}
	s := n.String()
	return &s, nil
}

// Decode reads a JSON array of census rows.
func Decode(r io.Reader) ([]Row, error) {
	var rows []Row
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, errors.Wrap(err, "census rows")
	}
	return rows, nil
}

// PopulationRow returns the single Population2016 row in rows.
func PopulationRow(rows []Row) (*Row, error) {
	var found *Row
	for i := range rows {
		if rows[i].Category != Population2016 {
			continue
		}
		if found != nil {
			return nil, errors.Wrapf(hood.ErrMissingCategoryRow,
				"%s: duplicate rows _id=%d and _id=%d", Population2016, found.ID, rows[i].ID)
		}
		found = &rows[i]
	}
	if found == nil {
		return nil, errors.Wrapf(hood.ErrMissingCategoryRow, "%s: no row", Population2016)
	}
	return found, nil
}

// BuildPopulationTable maps each canonical neighbourhood name to its 2016
// population. Suppressed cells and cells that are not non-negative integers
// are skipped.
func BuildPopulationTable(rows []Row) (hood.Populations, error) {
	row, err := PopulationRow(rows)
	if err != nil {
		return nil, err
	}
	res := hood.Populations{}
	rawNames := map[string]string{}
	for rawName, value := range row.Values {
		if value == nil {
			continue
		}
		population, err := text.ParseCount(*value)
		if err != nil {
			continue
		}
		canonical := name.Normalize(rawName)
		if prev, dup := rawNames[canonical]; dup {
			return nil, errors.Wrapf(hood.ErrMalformedRecord,
				"population columns %#v and %#v both resolve to %#v", prev, rawName, canonical)
		}
		rawNames[canonical] = rawName
		res[canonical] = population
	}
	return res, nil
}
