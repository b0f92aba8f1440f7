package boundary

import (
	"bytes"
	"encoding/json"
	"io"
	"io/ioutil"

	"github.com/hoodstats/go-hoodstats/hood"
	"github.com/pkg/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// A Feature is one GeoJSON feature. Members other than geometry and
// properties are kept as read, and a decoded geometry is written back as
// read.
type Feature struct {
	Geometry   geom.T
	Properties map[string]json.RawMessage
	// Members holds every other member of the feature, e.g. type and id.
	Members map[string]json.RawMessage

	geometry json.RawMessage
}

// NewFeature creates a feature from a geometry and plain property values.
func NewFeature(g geom.T, props map[string]interface{}) (*Feature, error) {
	f := &Feature{
		Geometry:   g,
		Properties: make(map[string]json.RawMessage, len(props)),
		Members:    map[string]json.RawMessage{"type": json.RawMessage(`"Feature"`)},
	}
	for k, v := range props {
		raw, err := marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "property %s", k)
		}
		f.Properties[k] = raw
	}
	return f, nil
}

// ID returns the feature id as JSON text, or "" if the feature has none.
func (f *Feature) ID() string {
	return string(f.Members["id"])
}

// withProperties returns a copy of f with props in place of its
// properties.
func (f *Feature) withProperties(props map[string]json.RawMessage) *Feature {
	members := make(map[string]json.RawMessage, len(f.Members))
	for k, v := range f.Members {
		members[k] = v
	}
	return &Feature{Geometry: f.Geometry, Properties: props, Members: members, geometry: f.geometry}
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if err := checkType(members, "Feature"); err != nil {
		return err
	}
	if raw, ok := members["properties"]; ok {
		if err := json.Unmarshal(raw, &f.Properties); err != nil {
			return errors.Wrap(err, "properties")
		}
		delete(members, "properties")
	}
	if raw, ok := members["geometry"]; ok {
		if err := geojson.Unmarshal(raw, &f.Geometry); err != nil {
			return errors.Wrap(err, "geometry")
		}
		f.geometry = raw
		delete(members, "geometry")
	}
	f.Members = members
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f *Feature) MarshalJSON() ([]byte, error) {
	members := make(map[string]json.RawMessage, len(f.Members)+2)
	for k, v := range f.Members {
		members[k] = v
	}
	if _, ok := members["type"]; !ok {
		members["type"] = json.RawMessage(`"Feature"`)
	}
	geometry := f.geometry
	if geometry == nil {
		var err error
		if geometry, err = geojson.Marshal(f.Geometry); err != nil {
			return nil, errors.Wrap(err, "geometry")
		}
	}
	members["geometry"] = geometry
	props, err := marshal(f.Properties)
	if err != nil {
		return nil, err
	}
	members["properties"] = props
	return marshal(members)
}

// A FeatureCollection is a GeoJSON feature collection. Members other than
// features, such as name and crs, are kept as read.
type FeatureCollection struct {
	Features []*Feature
	Members  map[string]json.RawMessage
}

// WithFeatures returns a collection with the members of fc and the given
// features.
func (fc *FeatureCollection) WithFeatures(features []*Feature) *FeatureCollection {
	members := make(map[string]json.RawMessage, len(fc.Members))
	for k, v := range fc.Members {
		members[k] = v
	}
	return &FeatureCollection{Features: features, Members: members}
}

// UnmarshalJSON implements json.Unmarshaler.
func (fc *FeatureCollection) UnmarshalJSON(data []byte) error {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	if err := checkType(members, "FeatureCollection"); err != nil {
		return err
	}
	raw, ok := members["features"]
	if !ok {
		return errors.New("no features")
	}
	if err := json.Unmarshal(raw, &fc.Features); err != nil {
		return errors.Wrap(err, "features")
	}
	for i, f := range fc.Features {
		if f == nil {
			return errors.Errorf("feature %d is null", i)
		}
	}
	delete(members, "features")
	fc.Members = members
	return nil
}

// MarshalJSON implements json.Marshaler.
func (fc *FeatureCollection) MarshalJSON() ([]byte, error) {
	members := make(map[string]json.RawMessage, len(fc.Members)+1)
	for k, v := range fc.Members {
		members[k] = v
	}
	if _, ok := members["type"]; !ok {
		members["type"] = json.RawMessage(`"FeatureCollection"`)
	}
	features := fc.Features
	if features == nil {
		features = []*Feature{}
	}
	raw, err := marshal(features)
	if err != nil {
		return nil, err
	}
	members["features"] = raw
	return marshal(members)
}

func checkType(members map[string]json.RawMessage, expected string) error {
	var typ string
	if raw, ok := members["type"]; ok {
		if err := json.Unmarshal(raw, &typ); err != nil {
			return errors.Wrap(err, "type")
		}
	}
	if typ != expected {
		return errors.Errorf("type %#v is not a %s", typ, expected)
	}
	return nil
}

// marshal encodes v without escaping HTML characters, so that names such as
// "A & B" are written as read.
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode reads a GeoJSON feature collection.
func Decode(r io.Reader) (*FeatureCollection, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fc := &FeatureCollection{}
	if err := json.Unmarshal(b, fc); err != nil {
		return nil, errors.Wrapf(hood.ErrMalformedRecord, "boundaries: %s", err)
	}
	return fc, nil
}

// Encode writes fc as GeoJSON.
func Encode(w io.Writer, fc *FeatureCollection) error {
	b, err := marshal(fc)
	if err != nil {
		return errors.Wrap(err, "encode boundaries")
	}
	_, err = w.Write(b)
	return err
}
