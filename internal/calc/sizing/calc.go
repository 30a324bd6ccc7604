// Package sizing solves duct dimensions for a target friction rate and
// checks the selection against the published velocity and aspect limits.
package sizing

import (
	"fmt"
	"math"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

// Input is one duct sizing request. Airflow is in CFM and FrictionRate in
// in. w.g. per 100 ft. MaxHeightIn caps the rectangular search when the
// duct has to clear a ceiling plenum, MaxWidthIn when it has to pass a
// joist space or shaft; zero means unconstrained.
type Input struct {
	AirflowCFM   float64             `json:"airflow" yaml:"airflow"`
	FrictionRate float64             `json:"friction_rate" yaml:"friction_rate"`
	DuctType     standards.DuctType  `json:"duct_type" yaml:"duct_type"`
	DuctClass    standards.DuctClass `json:"duct_class,omitempty" yaml:"duct_class,omitempty"`
	Material     string              `json:"material,omitempty" yaml:"material,omitempty"`
	MaxHeightIn  float64             `json:"max_height,omitempty" yaml:"max_height,omitempty"`
	MaxWidthIn   float64             `json:"max_width,omitempty" yaml:"max_width,omitempty"`
}

// Result describes the selected duct and its derived figures. Warnings
// carry the degradations that were applied (catalog overflow, unknown
// material, unreachable target).
type Result struct {
	DuctType             standards.DuctType `json:"duct_type"`
	DiameterIn           float64            `json:"diameter_in,omitempty"`
	WidthIn              float64            `json:"width_in,omitempty"`
	HeightIn             float64            `json:"height_in,omitempty"`
	AreaSqFt             float64            `json:"area_sqft"`
	VelocityFPM          float64            `json:"velocity_fpm"`
	EquivalentDiameterIn float64            `json:"equivalent_diameter_in,omitempty"`
	AspectRatio          float64            `json:"aspect_ratio,omitempty"`
	PressureLossPer100Ft float64            `json:"pressure_loss_inwg_100ft"`
	IdealDiameterIn      float64            `json:"ideal_diameter_in"`
	Material             string             `json:"material"`
	Warnings             []string           `json:"warnings,omitempty"`
}

// SizeLabel renders the duct dimensions for schedules and reports.
func (r Result) SizeLabel() string {
	if r.DuctType == standards.Rectangular {
		return fmt.Sprintf("%.0f x %.0f in", r.WidthIn, r.HeightIn)
	}
	return fmt.Sprintf("%.0f in round", r.DiameterIn)
}

// Size solves for duct dimensions meeting the target friction rate.
// Round ducts snap to the nearest standard manufactured diameter.
// Rectangular ducts search whole-inch sides under the 4:1 aspect ceiling,
// preferring the squarest section that reaches the required equivalent
// diameter. Unreachable targets return a best-effort size with a warning
// rather than failing.
func Size(in Input) (Result, error) {
	if in.AirflowCFM <= 0 {
		return Result{}, airflow.Validationf("Airflow must be a positive number")
	}
	if in.FrictionRate <= 0 {
		return Result{}, airflow.Validationf("Friction rate must be a positive number")
	}
	switch in.DuctType {
	case standards.Round, standards.Rectangular:
	case "":
		in.DuctType = standards.Round
	default:
		return Result{}, airflow.Validationf("Duct type must be %q or %q",
			standards.Round, standards.Rectangular)
	}

	res := Result{DuctType: in.DuctType}

	material := in.Material
	if material == "" {
		material = standards.DefaultMaterial
	}
	rough, known := standards.RoughnessFactor(material)
	if !known {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Unknown duct material %q; assuming galvanized steel", in.Material))
		material = standards.DefaultMaterial
		rough = 1.0
	}
	res.Material = material

	ideal, err := airflow.DiameterForFriction(in.AirflowCFM, in.FrictionRate, rough)
	if err != nil {
		return Result{}, err
	}
	res.IdealDiameterIn = ideal

	if in.DuctType == standards.Round {
		sizeRound(in, ideal, rough, &res)
	} else {
		sizeRect(in, ideal, rough, &res)
	}
	return res, nil
}

func sizeRound(in Input, idealIn, rough float64, res *Result) {
	d, ok := standards.NearestStandardRound(idealIn)
	if !ok {
		// Above the catalog: round up to the next even inch so the duct
		// still meets the target, and say so.
		d = math.Ceil(idealIn)
		if math.Mod(d, 2) != 0 {
			d++
		}
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Required diameter %.1f in exceeds the largest standard size; using %.0f in", idealIn, d))
	}
	res.DiameterIn = d
	res.AreaSqFt = airflow.RoundArea(d)
	res.VelocityFPM = in.AirflowCFM / res.AreaSqFt
	res.PressureLossPer100Ft = airflow.FrictionRate(in.AirflowCFM, d, rough)
}

func sizeRect(in Input, idealIn, rough float64, res *Result) {
	// Start at the squarest fabricable height and widen until the
	// Huebscher equivalent diameter reaches the ideal. The width bound
	// keeps every candidate inside the aspect ceiling.
	height := math.Floor(idealIn)
	if in.MaxHeightIn > 0 && height > in.MaxHeightIn {
		height = math.Floor(in.MaxHeightIn)
	}
	if height < standards.MinRectSideIn {
		if in.MaxHeightIn > 0 && in.MaxHeightIn < standards.MinRectSideIn {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Height limit %.1f in is below the %.0f in fabrication minimum; using %.0f in",
				in.MaxHeightIn, float64(standards.MinRectSideIn), float64(standards.MinRectSideIn)))
		}
		height = standards.MinRectSideIn
	}
	if height > standards.MaxRectSideIn {
		height = standards.MaxRectSideIn
	}

	capWidth := float64(standards.MaxRectSideIn)
	if in.MaxWidthIn > 0 {
		capWidth = math.Floor(in.MaxWidthIn)
		if capWidth < standards.MinRectSideIn {
			res.Warnings = append(res.Warnings, fmt.Sprintf(
				"Width limit %.1f in is below the %.0f in fabrication minimum; using %.0f in",
				in.MaxWidthIn, float64(standards.MinRectSideIn), float64(standards.MinRectSideIn)))
			capWidth = standards.MinRectSideIn
		}
	}

	maxWidth := math.Min(standards.MaxAspectRatio*height, capWidth)
	width := height
	found := false
	for ; width <= maxWidth; width += standards.RectStepIn {
		if airflow.EquivalentDiameter(width, height) >= idealIn {
			found = true
			break
		}
	}
	if !found {
		width = maxWidth
		// Width capped out. Grow the section tall at the width bound if
		// the height limits still allow it. The cap also bounds the
		// starting height: a narrow width can pull the aspect ceiling
		// below the squarest height, and the section must shrink to it.
		tallCap := float64(standards.MaxRectSideIn)
		if in.MaxHeightIn > 0 {
			tallCap = math.Min(tallCap, math.Floor(in.MaxHeightIn))
		}
		tallCap = math.Min(tallCap, standards.MaxAspectRatio*width)
		if tallCap < standards.MinRectSideIn {
			tallCap = standards.MinRectSideIn
		}
		if height > tallCap {
			height = tallCap
		}
		for h := height; h <= tallCap; h += standards.RectStepIn {
			if airflow.EquivalentDiameter(width, h) >= idealIn {
				height = h
				found = true
				break
			}
		}
		if !found && tallCap > height {
			height = tallCap
		}
	}
	if !found {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"No section within the size and %.0f:1 aspect limits reaches the required %.2f in equivalent diameter; best available is %.0f x %.0f in",
			standards.MaxAspectRatio, idealIn, width, height))
	}

	res.WidthIn = width
	res.HeightIn = height
	res.AreaSqFt = airflow.RectArea(width, height)
	res.VelocityFPM = in.AirflowCFM / res.AreaSqFt
	res.EquivalentDiameterIn = airflow.EquivalentDiameter(width, height)
	res.AspectRatio = airflow.AspectRatio(width, height)
	res.PressureLossPer100Ft = airflow.FrictionRate(in.AirflowCFM, res.EquivalentDiameterIn, rough)
}

// Evaluate runs the standards checks for a sizing result.
func Evaluate(std standards.Standard, class standards.DuctClass, res Result) []standards.CheckResult {
	if !standards.ValidDuctClass(class) {
		class = standards.ClassSupply
	}
	return standards.Evaluate(std, class, res.DuctType, res.VelocityFPM, res.AspectRatio)
}
