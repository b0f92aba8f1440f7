// Package qyaml provides quick access to loosely typed YAML documents.
package qyaml

import (
	"github.com/hoodstats/go-hoodstats/conv"
	"github.com/hoodstats/go-hoodstats/text"
	"gopkg.in/yaml.v2"
)

// YAML wraps a parsed YAML document.
type YAML struct {
	YAML interface{}
}

// Parse parses YAML source into a YAML object.
func Parse(source []byte) (YAML, error) {
	var res interface{}
	err := yaml.Unmarshal(source, &res)
	return YAML{res}, err
}

// MustParse parses YAML source, panicking on error.
func MustParse(source []byte) YAML {
	res, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return res
}

// Key returns the value for key if y is a map, or nil.
func (y YAML) Key(key string) interface{} {
	if v, ok := y.YAML.(map[interface{}]interface{}); ok {
		return v[key]
	}
	return nil
}

// Sub returns the value for key as a YAML object.
func (y YAML) Sub(key string) YAML {
	return YAML{y.Key(key)}
}

// String returns the value for key as a string.
func (y YAML) String(key string) string {
	return text.Str(y.Key(key))
}

// Map returns the value for key if it is a map, or nil.
func (y YAML) Map(key string) map[interface{}]interface{} {
	if vmap, ok := y.Key(key).(map[interface{}]interface{}); ok {
		return vmap
	}
	return nil
}

// StringSlice returns the value for key as a []string.
func (y YAML) StringSlice(key string) []string {
	return conv.IStringSlice(y.Key(key))
}

// StringMap returns the value for key as a map[string]string.
func (y YAML) StringMap(key string) map[string]string {
	return conv.IStringMap(y.Key(key))
}

// StringPairs returns the value for key as a list of string pairs.
func (y YAML) StringPairs(key string) [][]string {
	return conv.IStringPairs(y.Key(key))
}
