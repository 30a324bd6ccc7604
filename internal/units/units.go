// Package units bridges the imperial units the engine computes in and the
// SI units metric clients submit and read. Conversions happen at the API
// boundary only; everything past the handlers is CFM, inches, fpm and
// in. w.g.
package units

const (
	// LpsPerCFM converts airflow: 1 CFM = 0.4719474 L/s.
	LpsPerCFM = 0.4719474

	// MMPerInch converts length.
	MMPerInch = 25.4

	// PaPerInchWG converts pressure at standard air.
	PaPerInchWG = 248.84

	// MetersPer100Ft converts the friction-rate denominator.
	MetersPer100Ft = 30.48

	// PaPerMFromInWG100 converts a friction rate: 1 in. w.g. per 100 ft
	// expressed in Pa per meter.
	PaPerMFromInWG100 = PaPerInchWG / MetersPer100Ft

	// MpsPerFPM converts velocity.
	MpsPerFPM = 0.00508

	// SqMPerSqFt converts area.
	SqMPerSqFt = 0.09290304
)

func CFMFromLps(lps float64) float64 { return lps / LpsPerCFM }
func LpsFromCFM(cfm float64) float64 { return cfm * LpsPerCFM }

func InchesFromMM(mm float64) float64 { return mm / MMPerInch }
func MMFromInches(in float64) float64 { return in * MMPerInch }

func PaFromInchWG(inwg float64) float64 { return inwg * PaPerInchWG }
func InchWGFromPa(pa float64) float64  { return pa / PaPerInchWG }

// FrictionFromPaPerM converts a metric friction rate in Pa/m to
// in. w.g. per 100 ft.
func FrictionFromPaPerM(pam float64) float64 { return pam / PaPerMFromInWG100 }

// PaPerMFromFriction converts an imperial friction rate to Pa/m.
func PaPerMFromFriction(inwg100 float64) float64 { return inwg100 * PaPerMFromInWG100 }

func MpsFromFPM(fpm float64) float64 { return fpm * MpsPerFPM }
func FPMFromMps(mps float64) float64 { return mps / MpsPerFPM }

func SqMFromSqFt(sqft float64) float64 { return sqft * SqMPerSqFt }
func SqFtFromSqM(sqm float64) float64  { return sqm / SqMPerSqFt }
