// Package boundary joins per-neighbourhood statistics onto neighbourhood
// boundary features.
package boundary

import (
	"encoding/json"
	"strconv"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/hoodstats/go-hoodstats/hood/name"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
)

// DefaultAreaNameProperty is the boundary property holding the raw area
// name, e.g. "Casa Loma (96)".
const DefaultAreaNameProperty = "AREA_NAME"

// An Enricher joins case counts and populations onto boundary features.
type Enricher struct {
	AreaNameProperty string
	Counts           hood.Counts
	Populations      hood.Populations
}

// New creates an Enricher reading area names from DefaultAreaNameProperty.
func New(counts hood.Counts, populations hood.Populations) *Enricher {
	return &Enricher{
		AreaNameProperty: DefaultAreaNameProperty,
		Counts:           counts,
		Populations:      populations,
	}
}

// AreaName returns the canonical neighbourhood name of f.
func (e *Enricher) AreaName(f *Feature) (string, error) {
	raw, ok := f.Properties[e.AreaNameProperty]
	if !ok {
		return "", errors.Wrapf(hood.ErrMissingAreaName, "feature %s: no %s", f.ID(), e.AreaNameProperty)
	}
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", errors.Wrapf(hood.ErrMalformedRecord, "feature %s: %s: %s", f.ID(), e.AreaNameProperty, err)
	}
	areaName, ok := value.(string)
	if !ok {
		return "", errors.Wrapf(hood.ErrMissingAreaName, "feature %s: %s is %s, not a string",
			f.ID(), e.AreaNameProperty, raw)
	}
	return name.Normalize(areaName), nil
}

// Stat looks up the joined statistics for f.
func (e *Enricher) Stat(f *Feature) (hood.Stat, error) {
	canonical, err := e.AreaName(f)
	if err != nil {
		return hood.Stat{}, err
	}
	count, ok := e.Counts[canonical]
	if !ok {
		return hood.Stat{}, errors.Wrapf(hood.ErrUnjoinedNeighbourhood, "%#v: no case count", canonical)
	}
	population, ok := e.Populations[canonical]
	if !ok {
		return hood.Stat{}, errors.Wrapf(hood.ErrUnjoinedNeighbourhood, "%#v: no population", canonical)
	}
	return hood.Stat{Name: canonical, CaseCount: count, Population: population}, nil
}

// Joined returns the statistics of every feature, in feature order.
func (e *Enricher) Joined(features []*Feature) ([]hood.Stat, error) {
	stats := make([]hood.Stat, len(features))
	for i, f := range features {
		if err := checkGeometry(f); err != nil {
			return nil, err
		}
		stat, err := e.Stat(f)
		if err != nil {
			return nil, err
		}
		stats[i] = stat
	}
	return stats, nil
}

// Enrich returns copies of features with the case count and population
// properties added. Input features are not modified, and nothing is
// returned unless every feature joins.
func (e *Enricher) Enrich(features []*Feature) ([]*Feature, error) {
	stats, err := e.Joined(features)
	if err != nil {
		return nil, err
	}
	res := make([]*Feature, len(features))
	for i, f := range features {
		props, err := extendProperties(f, stats[i])
		if err != nil {
			return nil, err
		}
		res[i] = f.withProperties(props)
	}
	return res, nil
}

func extendProperties(f *Feature, stat hood.Stat) (map[string]json.RawMessage, error) {
	props := make(map[string]json.RawMessage, len(f.Properties)+2)
	for k, v := range f.Properties {
		props[k] = v
	}
	for _, prop := range []string{hood.CaseCountProperty, hood.PopulationProperty} {
		if _, exists := props[prop]; exists {
			return nil, errors.Wrapf(hood.ErrMalformedRecord, "%#v: property %s already set", stat.Name, prop)
		}
	}
	props[hood.CaseCountProperty] = json.RawMessage(strconv.Itoa(stat.CaseCount))
	props[hood.PopulationProperty] = json.RawMessage(strconv.Itoa(stat.Population))
	return props, nil
}

func checkGeometry(f *Feature) error {
	switch f.Geometry.(type) {
	case *geom.Polygon, *geom.MultiPolygon:
		return nil
	default:
		return errors.Wrapf(hood.ErrMalformedRecord, "feature %s: geometry %T is not a polygon", f.ID(), f.Geometry)
	}
}

// Enrich joins counts and populations onto fc, returning a new collection
// with the members of fc.
func Enrich(fc *FeatureCollection, counts hood.Counts, populations hood.Populations) (*FeatureCollection, error) {
	features, err := New(counts, populations).Enrich(fc.Features)
	if err != nil {
		return nil, err
	}
	return fc.WithFeatures(features), nil
}
