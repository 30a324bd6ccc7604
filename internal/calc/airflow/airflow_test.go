package airflow

import (
	"math"
	"testing"
)

func almostEqual(t *testing.T, label string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", label, got, want, tol)
	}
}

func TestVelocityPressure(t *testing.T) {
	almostEqual(t, "VP(4005)", VelocityPressure(4005), 1.0, 1e-12)
	almostEqual(t, "VP(2000)", VelocityPressure(2000), math.Pow(2000.0/4005.0, 2), 1e-12)

	if vp := VelocityPressure(0); vp != 0 {
		t.Errorf("VP(0) = %v, want 0", vp)
	}
	if vp := VelocityPressure(-100); vp != 0 {
		t.Errorf("VP(-100) = %v, want 0", vp)
	}
}

func TestVelocityPressureAtDensity(t *testing.T) {
	full := VelocityPressureAtDensity(1800, StandardAirDensity)
	half := VelocityPressureAtDensity(1800, StandardAirDensity/2)
	almostEqual(t, "VP at half density", half, full/2, 1e-12)

	// Non-positive density falls back to standard air.
	almostEqual(t, "VP at zero density", VelocityPressureAtDensity(1800, 0), full, 1e-12)
	almostEqual(t, "VP at negative density", VelocityPressureAtDensity(1800, -1), full, 1e-12)
}

func TestVelocity(t *testing.T) {
	// 1000 CFM through a 10 in round duct (0.5454 sq ft) is about 1833 fpm.
	v, err := Velocity(1000, RoundArea(10))
	if err != nil {
		t.Fatalf("Velocity returned error: %v", err)
	}
	almostEqual(t, "velocity in 10 in round", v, 1833.46, 0.01)

	if _, err := Velocity(0, 1); err == nil || !IsValidation(err) {
		t.Errorf("Velocity with zero airflow: got %v, want validation error", err)
	}
	if _, err := Velocity(-500, 1); err == nil || !IsValidation(err) {
		t.Errorf("Velocity with negative airflow: got %v, want validation error", err)
	}
	if _, err := Velocity(1000, 0); err == nil || !IsValidation(err) {
		t.Errorf("Velocity with zero area: got %v, want validation error", err)
	}
}

func TestAreas(t *testing.T) {
	almostEqual(t, "RoundArea(10)", RoundArea(10), math.Pi*100/4/144, 1e-12)
	almostEqual(t, "RectArea(24,12)", RectArea(24, 12), 2.0, 1e-12)
	if a := RoundArea(0); a != 0 {
		t.Errorf("RoundArea(0) = %v, want 0", a)
	}
	if a := RectArea(10, -1); a != 0 {
		t.Errorf("RectArea(10,-1) = %v, want 0", a)
	}

	// RoundDiameterForArea inverts RoundArea.
	almostEqual(t, "diameter round trip", RoundDiameterForArea(RoundArea(13.7)), 13.7, 1e-9)
}

func TestEquivalentDiameter(t *testing.T) {
	// 16x6 is a common low-plenum section; Huebscher gives about 10.4 in.
	almostEqual(t, "De(16x6)", EquivalentDiameter(16, 6), 10.41, 0.05)
	almostEqual(t, "De(14x14)", EquivalentDiameter(14, 14), 15.30, 0.05)
	almostEqual(t, "De(24x8)", EquivalentDiameter(24, 8), 14.61, 0.05)

	if EquivalentDiameter(16, 6) != EquivalentDiameter(6, 16) {
		t.Error("EquivalentDiameter is not symmetric in its sides")
	}
	if de := EquivalentDiameter(0, 6); de != 0 {
		t.Errorf("De with zero side = %v, want 0", de)
	}
}

func TestAspectRatio(t *testing.T) {
	almostEqual(t, "AspectRatio(24,8)", AspectRatio(24, 8), 3.0, 1e-12)
	almostEqual(t, "AspectRatio(8,24)", AspectRatio(8, 24), 3.0, 1e-12)
	almostEqual(t, "AspectRatio(12,12)", AspectRatio(12, 12), 1.0, 1e-12)
}

func TestFrictionRate(t *testing.T) {
	// Larger ducts lose less, faster flows lose more.
	if FrictionRate(1000, 10, 1.0) <= FrictionRate(1000, 14, 1.0) {
		t.Error("friction rate should fall as diameter grows")
	}
	if FrictionRate(2000, 10, 1.0) <= FrictionRate(1000, 10, 1.0) {
		t.Error("friction rate should rise with airflow")
	}

	// The roughness factor scales the baseline linearly.
	base := FrictionRate(1000, 12, 1.0)
	almostEqual(t, "roughness scaling", FrictionRate(1000, 12, 1.9), base*1.9, 1e-12)
	almostEqual(t, "zero roughness baseline", FrictionRate(1000, 12, 0), base, 1e-12)

	if fr := FrictionRate(0, 10, 1.0); fr != 0 {
		t.Errorf("FrictionRate with zero airflow = %v, want 0", fr)
	}
}

func TestDiameterForFriction(t *testing.T) {
	// 1000 CFM at the common 0.08 in/100ft design rate needs about 14.5 in.
	d, err := DiameterForFriction(1000, 0.08, 1.0)
	if err != nil {
		t.Fatalf("DiameterForFriction returned error: %v", err)
	}
	almostEqual(t, "ideal diameter", d, 14.53, 0.02)

	// Round trip against FrictionRate.
	almostEqual(t, "friction round trip", FrictionRate(1000, d, 1.0), 0.08, 1e-9)

	// Rougher material needs a bigger duct for the same target.
	rough, err := DiameterForFriction(1000, 0.08, 1.5)
	if err != nil {
		t.Fatalf("DiameterForFriction returned error: %v", err)
	}
	if rough <= d {
		t.Errorf("rough-material diameter %v should exceed galvanized %v", rough, d)
	}

	if _, err := DiameterForFriction(0, 0.08, 1.0); !IsValidation(err) {
		t.Errorf("zero airflow: got %v, want validation error", err)
	}
	if _, err := DiameterForFriction(1000, 0, 1.0); !IsValidation(err) {
		t.Errorf("zero friction rate: got %v, want validation error", err)
	}
}
