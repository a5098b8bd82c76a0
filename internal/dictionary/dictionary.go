// Package dictionary loads and queries the service dictionary: the lookup
// table mapping known service aliases to a canonical service name and an
// ARM resource type.
package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Entry maps a set of known aliases to canonical identifiers.
type Entry struct {
	Names   []string `yaml:"names" json:"names"`
	Service string   `yaml:"service" json:"service"`
	ARM     string   `yaml:"arm" json:"arm"`
}

// Dictionary is an ordered list of entries. Order matters: alias lookups
// scan in sequence and return on the first hit, so overlapping alias lists
// resolve to whichever entry comes first.
type Dictionary []Entry

// LoadFile loads and parses a dictionary file. YAML and JSON are both
// accepted (JSON is a subset of YAML as far as the parser is concerned).
func LoadFile(path string) (Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("dictionary: parse %s: %w", path, err)
	}
	return d, nil
}

// Parse parses dictionary data.
func Parse(data []byte) (Dictionary, error) {
	var d Dictionary
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return d, nil
}

// CanonicalService returns the canonical service name for the first entry
// whose Names contains name (exact, case-sensitive match). If nothing
// matches, or the dictionary is empty, name is returned unchanged.
func (d Dictionary) CanonicalService(name string) string {
	for _, e := range d {
		for _, n := range e.Names {
			if n == name {
				return e.Service
			}
		}
	}
	return name
}

// ResourceType returns the ARM resource type of the first entry whose Names
// contains name. This is an independent scan, not derived from
// CanonicalService, matching the legacy converter's two separate lookups.
func (d Dictionary) ResourceType(name string) (string, bool) {
	for _, e := range d {
		for _, n := range e.Names {
			if n == name {
				return e.ARM, true
			}
		}
	}
	return "", false
}
