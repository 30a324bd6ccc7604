// Package fittings resolves duct fitting loss coefficients from a sparse
// tabulated data set and computes the resulting pressure losses. The
// resolver never fails: unknown fittings and untabulated configurations
// degrade to documented defaults with warnings so a system total can
// always be shown.
package fittings

import (
	"fmt"
	"sort"
	"strings"

	"Plenum/internal/standards"
)

// Family groups fitting types for the advisory checks. The thresholds
// that drive each check live on the FittingType entries, not here.
type Family string

const (
	FamilyElbow      Family = "elbow"
	FamilyMiter      Family = "miter"
	FamilyTee        Family = "tee"
	FamilyTransition Family = "transition"
	FamilyDamper     Family = "damper"
	FamilyEntry      Family = "entry"
	FamilyExit       Family = "exit"
)

// FallbackK is the conservative loss coefficient used when a fitting type
// is not in the table at all. Downstream consumers always need a number
// to render.
const FallbackK = 0.5

// noParam keys table entries for fitting types that have no numeric
// configuration parameter.
const noParam = "default"

// Advisory carries the per-type thresholds of the family checks. A zero
// value disables the check for that type. Mitered elbows need no
// threshold; the miter family warns unconditionally.
type Advisory struct {
	SharpRadiusMax float64 `yaml:"sharp_radius_max,omitempty" json:"sharp_radius_max,omitempty"`
	BranchRatioMin float64 `yaml:"branch_ratio_min,omitempty" json:"branch_ratio_min,omitempty"`
	ShortLengthMin float64 `yaml:"short_length_min,omitempty" json:"short_length_min,omitempty"`
	RestrictiveDeg float64 `yaml:"restrictive_deg,omitempty" json:"restrictive_deg,omitempty"`
}

// FittingType describes one family of coefficient-table entries: its
// shape, advisory family, parameter naming and the default configuration
// the resolver falls back to.
type FittingType struct {
	Key          string             `yaml:"key" json:"key"`
	Shape        standards.DuctType `yaml:"shape" json:"shape"`
	Family       Family             `yaml:"family" json:"family"`
	Label        string             `yaml:"label" json:"label"`
	ParamName    string             `yaml:"param_name,omitempty" json:"param_name,omitempty"`
	DefaultSub   string             `yaml:"default_subtype,omitempty" json:"default_subtype,omitempty"`
	DefaultParam string             `yaml:"default_param,omitempty" json:"default_param,omitempty"`
	Advisory     Advisory           `yaml:"advisory,omitempty" json:"advisory,omitempty"`
}

// Coefficient is one tabulated loss coefficient at a discrete
// configuration point. The table is sparse and there is no interpolation
// between points.
type Coefficient struct {
	Fitting   string  `yaml:"fitting" json:"fitting"`
	Subtype   string  `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Parameter string  `yaml:"parameter,omitempty" json:"parameter,omitempty"`
	K         float64 `yaml:"k" json:"k"`
}

// Metadata identifies the coefficient data set a result was computed
// against.
type Metadata struct {
	Standard string `yaml:"standard" json:"standard"`
	Source   string `yaml:"source" json:"source"`
	Version  string `yaml:"version" json:"version"`
}

type coeffKey struct {
	fitting   string
	subtype   string
	parameter string
}

// Table is an immutable coefficient table. Build one with DefaultTable or
// LoadTable and inject it where needed; it is never mutated after
// construction, so a single instance is safe for concurrent use.
type Table struct {
	meta   Metadata
	types  map[string]FittingType
	coeffs map[coeffKey]float64
}

func newTable(meta Metadata, types []FittingType, coeffs []Coefficient) (*Table, error) {
	t := &Table{
		meta:   meta,
		types:  make(map[string]FittingType, len(types)),
		coeffs: make(map[coeffKey]float64, len(coeffs)),
	}
	for _, ft := range types {
		if ft.Key == "" {
			return nil, fmt.Errorf("fitting type with empty key")
		}
		if !standards.ValidDuctType(ft.Shape) {
			return nil, fmt.Errorf("fitting type %q has unknown shape %q", ft.Key, ft.Shape)
		}
		if _, dup := t.types[ft.Key]; dup {
			return nil, fmt.Errorf("duplicate fitting type %q", ft.Key)
		}
		if ft.DefaultParam == "" {
			ft.DefaultParam = noParam
		}
		t.types[ft.Key] = ft
	}
	for _, c := range coeffs {
		if _, ok := t.types[c.Fitting]; !ok {
			return nil, fmt.Errorf("coefficient for unknown fitting type %q", c.Fitting)
		}
		if c.K < 0 {
			return nil, fmt.Errorf("negative loss coefficient for %q", c.Fitting)
		}
		if c.Parameter == "" {
			c.Parameter = noParam
		}
		t.coeffs[coeffKey{c.Fitting, c.Subtype, c.Parameter}] = c.K
	}
	// Every type must resolve at its documented default configuration,
	// otherwise the degradation chain has no floor.
	for key, ft := range t.types {
		if _, ok := t.coeffs[coeffKey{key, ft.DefaultSub, ft.DefaultParam}]; !ok {
			return nil, fmt.Errorf("fitting type %q has no coefficient at its default configuration", key)
		}
	}
	return t, nil
}

// Meta returns the data set identification.
func (t *Table) Meta() Metadata { return t.meta }

// TypeInfo returns the descriptor for a fitting key.
func (t *Table) TypeInfo(key string) (FittingType, bool) {
	ft, ok := t.types[key]
	return ft, ok
}

// Len returns the number of tabulated coefficients.
func (t *Table) Len() int { return len(t.coeffs) }

// Info is a listing row for the fitting selection UI.
type Info struct {
	Key       string             `json:"key"`
	Label     string             `json:"label"`
	Shape     standards.DuctType `json:"shape"`
	Family    Family             `json:"family"`
	ParamName string             `json:"param_name,omitempty"`
	Default   string             `json:"default_configuration"`
}

// Available lists the fitting types defined for a shape, sorted by key.
// An empty shape lists everything.
func (t *Table) Available(shape standards.DuctType) []Info {
	out := make([]Info, 0, len(t.types))
	for key, ft := range t.types {
		if shape != "" && ft.Shape != shape {
			continue
		}
		out = append(out, Info{
			Key:       key,
			Label:     ft.Label,
			Shape:     ft.Shape,
			Family:    ft.Family,
			ParamName: ft.ParamName,
			Default:   configLabel(ft, ft.DefaultSub, ft.DefaultParam),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// configLabel renders a resolved configuration the way it is shown to the
// user, for example "R/D = 1.0" or "no vanes".
func configLabel(ft FittingType, sub, param string) string {
	parts := make([]string, 0, 2)
	if sub != "" {
		parts = append(parts, strings.ReplaceAll(sub, "_", " "))
	}
	if param != "" && param != noParam {
		parts = append(parts, fmt.Sprintf("%s = %s", ft.ParamName, param))
	}
	if len(parts) == 0 {
		return ft.Label
	}
	return strings.Join(parts, ", ")
}
