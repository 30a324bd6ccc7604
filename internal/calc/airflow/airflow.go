// Package airflow holds the velocity-pressure model and the duct geometry
// and friction relations every calculator builds on. All functions are
// pure; hard input failures come back as ValidationError, everything else
// degrades at the caller.
package airflow

import (
	"errors"
	"fmt"
	"math"
)

const (
	// VPConstant converts velocity to velocity pressure for standard air:
	// VP = (V / 4005)^2 with V in fpm and VP in in. w.g.
	VPConstant = 4005.0

	// StandardAirDensity is the density of standard air, lb/ft3.
	StandardAirDensity = 0.075
)

// ASHRAE friction-chart fit for galvanized round duct:
// dP per 100 ft = 0.109136 * Q^1.9 / D^5.02 (Q in CFM, D in inches).
const (
	frictionCoeff   = 0.109136
	frictionFlowExp = 1.9
	frictionDiamExp = 5.02
)

// ValidationError marks a hard input failure (non-positive airflow,
// missing dimension). It propagates to the API boundary as a structured
// error; degraded-but-computable conditions are warnings instead.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// VelocityPressure returns the velocity pressure in in. w.g. for standard
// air. Zero or negative velocity yields zero pressure.
func VelocityPressure(velocityFPM float64) float64 {
	return VelocityPressureAtDensity(velocityFPM, StandardAirDensity)
}

// VelocityPressureAtDensity scales the standard-air velocity pressure
// linearly by airDensity / 0.075. A non-positive density falls back to
// standard air.
func VelocityPressureAtDensity(velocityFPM, airDensity float64) float64 {
	if velocityFPM <= 0 {
		return 0
	}
	if airDensity <= 0 {
		airDensity = StandardAirDensity
	}
	vp := math.Pow(velocityFPM/VPConstant, 2)
	return vp * (airDensity / StandardAirDensity)
}

// Velocity returns duct velocity in fpm for an airflow in CFM through a
// cross-section in sq ft.
func Velocity(airflowCFM, areaSqFt float64) (float64, error) {
	if airflowCFM <= 0 {
		return 0, Validationf("Airflow must be a positive number")
	}
	if areaSqFt <= 0 {
		return 0, Validationf("Duct area must be a positive number")
	}
	return airflowCFM / areaSqFt, nil
}

// RoundArea returns the cross-section in sq ft of a round duct with the
// diameter in inches.
func RoundArea(diameterIn float64) float64 {
	if diameterIn <= 0 {
		return 0
	}
	return math.Pi * diameterIn * diameterIn / 4.0 / 144.0
}

// RectArea returns the cross-section in sq ft of a rectangular duct with
// sides in inches.
func RectArea(widthIn, heightIn float64) float64 {
	if widthIn <= 0 || heightIn <= 0 {
		return 0
	}
	return widthIn * heightIn / 144.0
}

// RoundDiameterForArea inverts RoundArea, returning inches.
func RoundDiameterForArea(areaSqFt float64) float64 {
	if areaSqFt <= 0 {
		return 0
	}
	return math.Sqrt(4.0 * areaSqFt * 144.0 / math.Pi)
}

// EquivalentDiameter returns the round diameter in inches with the same
// friction loss as a rectangular duct, per the Huebscher relation
// De = 1.30 * (a*b)^0.625 / (a+b)^0.25.
func EquivalentDiameter(widthIn, heightIn float64) float64 {
	if widthIn <= 0 || heightIn <= 0 {
		return 0
	}
	return 1.30 * math.Pow(widthIn*heightIn, 0.625) / math.Pow(widthIn+heightIn, 0.25)
}

// AspectRatio returns long side over short side for a rectangular duct.
func AspectRatio(widthIn, heightIn float64) float64 {
	if widthIn <= 0 || heightIn <= 0 {
		return 0
	}
	return math.Max(widthIn, heightIn) / math.Min(widthIn, heightIn)
}

// FrictionRate returns the straight-run pressure loss in in. w.g. per
// 100 ft of round duct. roughnessFactor scales the galvanized baseline of
// 1.0 (see the standards material table); non-positive factors mean the
// baseline.
func FrictionRate(airflowCFM, diameterIn, roughnessFactor float64) float64 {
	if airflowCFM <= 0 || diameterIn <= 0 {
		return 0
	}
	if roughnessFactor <= 0 {
		roughnessFactor = 1.0
	}
	return frictionCoeff * math.Pow(airflowCFM, frictionFlowExp) /
		math.Pow(diameterIn, frictionDiamExp) * roughnessFactor
}

// DiameterForFriction inverts FrictionRate: the round diameter in inches
// whose straight-run loss matches targetRate at the given airflow.
func DiameterForFriction(airflowCFM, targetRate, roughnessFactor float64) (float64, error) {
	if airflowCFM <= 0 {
		return 0, Validationf("Airflow must be a positive number")
	}
	if targetRate <= 0 {
		return 0, Validationf("Friction rate must be a positive number")
	}
	if roughnessFactor <= 0 {
		roughnessFactor = 1.0
	}
	return math.Pow(
		frictionCoeff*math.Pow(airflowCFM, frictionFlowExp)*roughnessFactor/targetRate,
		1.0/frictionDiamExp,
	), nil
}
