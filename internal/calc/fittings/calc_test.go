package fittings

import (
	"math"
	"testing"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

func TestFittingLossRoundElbow(t *testing.T) {
	calc := NewCalculator(nil)

	// 1000 CFM through a 10 in round 90 with R/D = 1.5: about 1833 fpm,
	// VP about 0.21 in. w.g., loss = 0.15 * VP.
	res, err := calc.FittingLoss(Config{
		Type:       "90deg_round_smooth",
		Shape:      standards.Round,
		DiameterIn: 10,
		Parameter:  "1.5",
	}, 1000)
	if err != nil {
		t.Fatalf("FittingLoss returned error: %v", err)
	}
	if math.Abs(res.VelocityFPM-1833.46) > 0.01 {
		t.Errorf("velocity = %v, want about 1833.46", res.VelocityFPM)
	}
	if math.Abs(res.VelocityPressure-0.2096) > 0.0005 {
		t.Errorf("velocity pressure = %v, want about 0.2096", res.VelocityPressure)
	}
	if res.KFactor != 0.15 {
		t.Errorf("K = %v, want 0.15", res.KFactor)
	}
	if math.Abs(res.PressureLoss-0.0314) > 0.0005 {
		t.Errorf("pressure loss = %v, want about 0.0314", res.PressureLoss)
	}
	if res.PressureLoss != res.KFactor*res.VelocityPressure {
		t.Error("pressure loss must equal K times velocity pressure")
	}
	if res.Configuration != "R/D = 1.5" {
		t.Errorf("configuration = %q, want \"R/D = 1.5\"", res.Configuration)
	}
}

func TestFittingLossRectMiter(t *testing.T) {
	calc := NewCalculator(nil)

	// 2000 CFM through a 24x8 unvaned miter: 1500 fpm, K = 1.25.
	res, err := calc.FittingLoss(Config{
		Type:     "90deg_rect_mitered",
		Shape:    standards.Rectangular,
		WidthIn:  24,
		HeightIn: 8,
		Subtype:  "no_vanes",
	}, 2000)
	if err != nil {
		t.Fatalf("FittingLoss returned error: %v", err)
	}
	if math.Abs(res.VelocityFPM-1500) > 1e-9 {
		t.Errorf("velocity = %v, want 1500", res.VelocityFPM)
	}
	if math.Abs(res.PressureLoss-0.1753) > 0.0005 {
		t.Errorf("pressure loss = %v, want about 0.1753", res.PressureLoss)
	}
	if len(res.Warnings) == 0 {
		t.Error("mitered elbow should warn")
	}
}

func TestFittingLossUnknownTypeDegrades(t *testing.T) {
	calc := NewCalculator(nil)
	res, err := calc.FittingLoss(Config{
		Type:       "vortex_manifold",
		Shape:      standards.Round,
		DiameterIn: 12,
	}, 800)
	if err != nil {
		t.Fatalf("unknown fitting must still compute, got error: %v", err)
	}
	if res.KFactor != FallbackK {
		t.Errorf("K = %v, want the fallback %v", res.KFactor, FallbackK)
	}
	if res.PressureLoss <= 0 {
		t.Errorf("degraded loss should still be positive, got %v", res.PressureLoss)
	}
	if len(res.Warnings) == 0 {
		t.Error("degraded lookup should warn")
	}
}

func TestFittingLossValidation(t *testing.T) {
	calc := NewCalculator(nil)
	cases := []struct {
		name    string
		cfg     Config
		airflow float64
	}{
		{"zero airflow", Config{Type: "duct_exit_round", DiameterIn: 10}, 0},
		{"negative airflow", Config{Type: "duct_exit_round", DiameterIn: 10}, -50},
		{"round without diameter", Config{Type: "duct_exit_round"}, 1000},
		{"rect without height", Config{Type: "duct_exit_rect", Shape: standards.Rectangular, WidthIn: 24}, 1000},
		{"unknown shape", Config{Type: "duct_exit_round", Shape: "oval", DiameterIn: 10}, 1000},
	}
	for _, tc := range cases {
		if _, err := calc.FittingLoss(tc.cfg, tc.airflow); !airflow.IsValidation(err) {
			t.Errorf("%s: got %v, want validation error", tc.name, err)
		}
	}
}

func TestSystemLoss(t *testing.T) {
	calc := NewCalculator(nil)
	cfgs := []Config{
		{Type: "duct_entry_round", DiameterIn: 14, Subtype: "conical"},
		{Type: "90deg_round_smooth", DiameterIn: 14, Parameter: "1.5"},
		{Type: "tee_round_branch", DiameterIn: 14, Parameter: "0.5"},
		{Type: "duct_exit_round", DiameterIn: 14},
	}
	res, err := calc.SystemLoss(cfgs, 1000)
	if err != nil {
		t.Fatalf("SystemLoss returned error: %v", err)
	}
	if len(res.Fittings) != len(cfgs) {
		t.Fatalf("got %d fitting results, want %d", len(res.Fittings), len(cfgs))
	}

	var sum float64
	for i, fr := range res.Fittings {
		if fr.FittingType != cfgs[i].Type {
			t.Errorf("result %d is %q, want %q (order must be preserved)", i, fr.FittingType, cfgs[i].Type)
		}
		sum += fr.PressureLoss
	}
	if math.Abs(res.TotalPressureLoss-sum) > 1e-12 {
		t.Errorf("total %v != sum of parts %v", res.TotalPressureLoss, sum)
	}
	if res.TotalPressureLoss <= 0 {
		t.Errorf("total should be positive, got %v", res.TotalPressureLoss)
	}
}

func TestSystemLossEmpty(t *testing.T) {
	calc := NewCalculator(nil)
	if _, err := calc.SystemLoss(nil, 1000); !airflow.IsValidation(err) {
		t.Errorf("empty system: got %v, want validation error", err)
	}
}

func TestSystemLossPropagatesValidation(t *testing.T) {
	calc := NewCalculator(nil)
	cfgs := []Config{
		{Type: "duct_entry_round", DiameterIn: 14},
		{Type: "90deg_round_smooth"}, // missing diameter
	}
	if _, err := calc.SystemLoss(cfgs, 1000); !airflow.IsValidation(err) {
		t.Errorf("bad fitting in a system: got %v, want validation error", err)
	}
}

func TestAvailable(t *testing.T) {
	table := DefaultTable()

	all := table.Available("")
	if len(all) != 21 {
		t.Errorf("full listing has %d types, want 21", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].Key <= all[i-1].Key {
			t.Fatalf("listing not sorted at %q", all[i].Key)
		}
	}

	round := table.Available(standards.Round)
	for _, info := range round {
		if info.Shape != standards.Round {
			t.Errorf("round listing includes %q with shape %q", info.Key, info.Shape)
		}
	}
	rect := table.Available(standards.Rectangular)
	if len(round)+len(rect) != len(all) {
		t.Errorf("round (%d) + rectangular (%d) should cover all %d types",
			len(round), len(rect), len(all))
	}

	// The default configuration is rendered for the selection UI.
	for _, info := range all {
		if info.Key == "90deg_round_smooth" && info.Default != "R/D = 1.0" {
			t.Errorf("elbow default configuration = %q, want \"R/D = 1.0\"", info.Default)
		}
	}
}
