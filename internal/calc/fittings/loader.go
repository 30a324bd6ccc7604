package fittings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// tableFile is the YAML document shape for override coefficient tables.
// The layout mirrors the built-in set: a meta block, the type
// descriptors, then the flat coefficient list.
type tableFile struct {
	Meta         Metadata      `yaml:"meta"`
	Types        []FittingType `yaml:"types"`
	Coefficients []Coefficient `yaml:"coefficients"`
}

// ParseTable builds a Table from YAML bytes, applying the same
// construction checks as the built-in set.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse coefficient table: %w", err)
	}
	if len(f.Types) == 0 {
		return nil, fmt.Errorf("coefficient table defines no fitting types")
	}
	return newTable(f.Meta, f.Types, f.Coefficients)
}

// LoadTable reads a YAML coefficient table from disk. Deployments that
// track a newer data edition point COEFF_TABLE at one of these instead
// of rebuilding.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}
