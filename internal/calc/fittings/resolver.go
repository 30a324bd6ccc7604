package fittings

import (
	"fmt"
	"strconv"

	"Plenum/internal/standards"
)

// Config describes one fitting instance as a client submits it. Subtype
// and Parameter are optional; the resolver substitutes the type's
// documented defaults for anything missing. An empty Shape means round.
type Config struct {
	Type       string             `json:"type" yaml:"type"`
	Shape      standards.DuctType `json:"duct_shape,omitempty" yaml:"duct_shape,omitempty"`
	DiameterIn float64            `json:"diameter_in,omitempty" yaml:"diameter_in,omitempty"`
	WidthIn    float64            `json:"width_in,omitempty" yaml:"width_in,omitempty"`
	HeightIn   float64            `json:"height_in,omitempty" yaml:"height_in,omitempty"`
	Subtype    string             `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Parameter  string             `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// Resolution is the outcome of a coefficient lookup. It always carries a
// usable K factor; degraded lookups add warnings instead of failing.
type Resolution struct {
	KFactor         float64  `json:"k_factor"`
	Label           string   `json:"configuration"`
	Warnings        []string `json:"warnings,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// ResolveK resolves the loss coefficient for a fitting configuration.
// The lookup tries the requested point first, then the documented default
// parameter, then the default subtype, so a known type always lands
// somewhere. Unknown types resolve to the fixed fallback coefficient.
// A caller-supplied subtype or parameter that had to be substituted adds
// a warning; omitted fields default silently and show up in the label.
func (t *Table) ResolveK(cfg Config) Resolution {
	ft, ok := t.types[cfg.Type]
	if !ok {
		return Resolution{
			KFactor: FallbackK,
			Label:   "unknown fitting",
			Warnings: []string{fmt.Sprintf(
				"Fitting type %q not found in the %s coefficient table; using K = %.2f",
				cfg.Type, t.meta.Standard, FallbackK)},
		}
	}

	sub := cfg.Subtype
	if sub == "" {
		sub = ft.DefaultSub
	}
	param := cfg.Parameter
	if param == "" {
		param = ft.DefaultParam
	}

	type point struct{ sub, param string }
	candidates := []point{
		{sub, param},
		{sub, ft.DefaultParam},
		{ft.DefaultSub, param},
		{ft.DefaultSub, ft.DefaultParam},
	}
	// The table constructor guarantees the last candidate exists.
	var k float64
	landed := candidates[len(candidates)-1]
	for _, c := range candidates {
		if v, ok := t.coeffs[coeffKey{ft.Key, c.sub, c.param}]; ok {
			k, landed = v, c
			break
		}
	}

	res := Resolution{KFactor: k, Label: configLabel(ft, landed.sub, landed.param)}
	if cfg.Parameter != "" && landed.param != cfg.Parameter {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"%s = %s is not tabulated for %q; using %s = %s",
			ft.ParamName, cfg.Parameter, ft.Key, ft.ParamName, landed.param))
	}
	if cfg.Subtype != "" && landed.sub != cfg.Subtype {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Subtype %q is not tabulated for %q; using %q",
			cfg.Subtype, ft.Key, landed.sub))
	}
	applyAdvisories(ft, landed.param, &res)
	return res
}

// applyAdvisories attaches the family-specific design warnings. They
// evaluate the resolved configuration, so a degraded lookup is advised on
// what it actually resolved to.
func applyAdvisories(ft FittingType, param string, res *Resolution) {
	val, perr := strconv.ParseFloat(param, 64)
	numeric := perr == nil

	switch ft.Family {
	case FamilyElbow:
		if numeric && ft.Advisory.SharpRadiusMax > 0 && val <= ft.Advisory.SharpRadiusMax {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Sharp radius elbow (%s = %s) increases pressure loss", ft.ParamName, param))
			res.Recommendations = append(res.Recommendations, fmt.Sprintf(
				"Increase the centerline radius to %s = 1.0 or more", ft.ParamName))
		}
	case FamilyMiter:
		res.Warnings = append(res.Warnings,
			"Mitered elbow carries a high loss coefficient")
		res.Recommendations = append(res.Recommendations,
			"Use a smooth radius elbow or add turning vanes")
	case FamilyTee:
		if numeric && ft.Advisory.BranchRatioMin > 0 && val >= ft.Advisory.BranchRatioMin {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Large branch area ratio (%s = %s) makes the branch hard to balance",
				ft.ParamName, param))
		}
	case FamilyTransition:
		if numeric && ft.Advisory.ShortLengthMin > 0 && val < ft.Advisory.ShortLengthMin {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Short transition (%s = %s) causes abrupt area change losses",
				ft.ParamName, param))
		}
	case FamilyDamper:
		if numeric && ft.Advisory.RestrictiveDeg > 0 && val >= ft.Advisory.RestrictiveDeg {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Damper blade at %s degrees is significantly restricting the airflow", param))
		}
	}
}
