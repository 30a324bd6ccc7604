package fittings

import (
	"strings"
	"testing"
)

func hasSubstring(msgs []string, want string) bool {
	for _, m := range msgs {
		if strings.Contains(m, want) {
			return true
		}
	}
	return false
}

func TestResolveKDefaults(t *testing.T) {
	table := DefaultTable()

	// Omitted parameter resolves silently to the documented default.
	res := table.ResolveK(Config{Type: "90deg_round_smooth"})
	if res.KFactor != 0.25 {
		t.Errorf("default elbow K = %v, want 0.25", res.KFactor)
	}
	if res.Label != "R/D = 1.0" {
		t.Errorf("default elbow label = %q, want \"R/D = 1.0\"", res.Label)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("default elbow should not warn, got %v", res.Warnings)
	}
}

func TestResolveKExactPoints(t *testing.T) {
	table := DefaultTable()
	cases := []struct {
		cfg   Config
		k     float64
		label string
	}{
		{Config{Type: "90deg_round_smooth", Parameter: "1.5"}, 0.15, "R/D = 1.5"},
		{Config{Type: "90deg_round_smooth", Parameter: "2.0"}, 0.11, "R/D = 2.0"},
		{Config{Type: "45deg_round_smooth", Parameter: "0.5"}, 0.34, "R/D = 0.5"},
		{Config{Type: "tee_round_branch", Parameter: "0.25"}, 1.00, "Ab/Ac = 0.25"},
		{Config{Type: "transition_round", Subtype: "contraction", Parameter: "2.0"}, 0.04, "contraction, L/D = 2.0"},
		{Config{Type: "damper_butterfly_round", Parameter: "30"}, 3.91, "blade angle = 30"},
		{Config{Type: "duct_entry_round", Subtype: "bellmouth"}, 0.03, "bellmouth"},
		{Config{Type: "duct_exit_round"}, 1.00, "Duct exit"},
		{Config{Type: "90deg_rect_smooth", Parameter: "0.75"}, 0.47, "R/W = 0.75"},
		{Config{Type: "90deg_rect_mitered", Subtype: "double_vanes"}, 0.11, "double vanes"},
	}
	for _, tc := range cases {
		res := table.ResolveK(tc.cfg)
		if res.KFactor != tc.k {
			t.Errorf("%s/%s/%s: K = %v, want %v",
				tc.cfg.Type, tc.cfg.Subtype, tc.cfg.Parameter, res.KFactor, tc.k)
		}
		if res.Label != tc.label {
			t.Errorf("%s: label = %q, want %q", tc.cfg.Type, res.Label, tc.label)
		}
	}
}

func TestResolveKUnknownType(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "hyperbolic_elbow"})
	if res.KFactor != FallbackK {
		t.Errorf("unknown fitting K = %v, want fallback %v", res.KFactor, FallbackK)
	}
	if !hasSubstring(res.Warnings, "not found") {
		t.Errorf("unknown fitting should warn about the lookup, got %v", res.Warnings)
	}
	if !hasSubstring(res.Warnings, "hyperbolic_elbow") {
		t.Errorf("warning should name the requested type, got %v", res.Warnings)
	}
}

func TestResolveKUntabulatedParameter(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "90deg_round_smooth", Parameter: "1.25"})
	if res.KFactor != 0.25 {
		t.Errorf("untabulated R/D should fall back to the default point, K = %v", res.KFactor)
	}
	if !hasSubstring(res.Warnings, "not tabulated") {
		t.Errorf("substituted parameter should warn, got %v", res.Warnings)
	}
	if res.Label != "R/D = 1.0" {
		t.Errorf("label should show the resolved point, got %q", res.Label)
	}
}

func TestResolveKUntabulatedSubtype(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "duct_entry_round", Subtype: "trumpet"})
	if res.KFactor != 0.50 {
		t.Errorf("unknown entry subtype should fall back to plain, K = %v", res.KFactor)
	}
	if !hasSubstring(res.Warnings, "trumpet") {
		t.Errorf("substituted subtype should warn, got %v", res.Warnings)
	}
}

func TestSharpRadiusAdvisory(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "90deg_round_smooth", Parameter: "0.5"})
	if res.KFactor != 0.60 {
		t.Errorf("sharp elbow K = %v, want 0.60", res.KFactor)
	}
	if !hasSubstring(res.Warnings, "Sharp radius") {
		t.Errorf("sharp elbow should carry the radius warning, got %v", res.Warnings)
	}
	if len(res.Recommendations) == 0 {
		t.Error("sharp elbow should recommend a larger radius")
	}

	// A generous radius is clean.
	res = table.ResolveK(Config{Type: "90deg_round_smooth", Parameter: "2.0"})
	if len(res.Warnings) != 0 {
		t.Errorf("R/D = 2.0 should not warn, got %v", res.Warnings)
	}
}

func TestMiterAdvisoryAlwaysFires(t *testing.T) {
	table := DefaultTable()
	for _, cfg := range []Config{
		{Type: "90deg_round_mitered"},
		{Type: "90deg_round_mitered", Subtype: "five_gore"},
		{Type: "45deg_round_mitered"},
		{Type: "90deg_rect_mitered", Subtype: "double_vanes"},
	} {
		res := table.ResolveK(cfg)
		if !hasSubstring(res.Warnings, "Mitered") {
			t.Errorf("%s/%s: mitered elbow must warn, got %v", cfg.Type, cfg.Subtype, res.Warnings)
		}
		if len(res.Recommendations) == 0 {
			t.Errorf("%s: mitered elbow should carry a recommendation", cfg.Type)
		}
	}

	res := table.ResolveK(Config{Type: "90deg_round_mitered"})
	if res.KFactor != 1.20 {
		t.Errorf("default miter resolves to single gore, K = %v, want 1.20", res.KFactor)
	}
	if res.Label != "single gore" {
		t.Errorf("default miter label = %q, want \"single gore\"", res.Label)
	}
}

func TestBranchRatioAdvisory(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "tee_round_branch", Parameter: "1.0"})
	if !hasSubstring(res.Warnings, "hard to balance") {
		t.Errorf("large branch ratio should warn, got %v", res.Warnings)
	}

	// The straight-through run has no branch advisory.
	res = table.ResolveK(Config{Type: "tee_round_straight", Parameter: "1.0"})
	if len(res.Warnings) != 0 {
		t.Errorf("straight run should not warn, got %v", res.Warnings)
	}
}

func TestShortTransitionAdvisory(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "transition_round", Subtype: "expansion", Parameter: "0.5"})
	if res.KFactor != 0.60 {
		t.Errorf("short expansion K = %v, want 0.60", res.KFactor)
	}
	if !hasSubstring(res.Warnings, "Short transition") {
		t.Errorf("short transition should warn, got %v", res.Warnings)
	}
}

func TestRestrictiveDamperAdvisory(t *testing.T) {
	table := DefaultTable()
	res := table.ResolveK(Config{Type: "damper_butterfly_round", Parameter: "60"})
	if res.KFactor != 118 {
		t.Errorf("damper at 60 degrees K = %v, want 118", res.KFactor)
	}
	if !hasSubstring(res.Warnings, "restricting") {
		t.Errorf("restrictive damper should warn, got %v", res.Warnings)
	}

	res = table.ResolveK(Config{Type: "damper_butterfly_round"})
	if res.KFactor != 0.20 || len(res.Warnings) != 0 {
		t.Errorf("open damper = K %v with %v, want 0.20 and no warnings", res.KFactor, res.Warnings)
	}
}
