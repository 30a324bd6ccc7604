package recommend

import (
	"math"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

type RectInput struct {
	DiameterIn  float64 `json:"diameter_in"`
	MaxHeightIn float64 `json:"max_height,omitempty"`
	Limit       int     `json:"limit,omitempty"`
}

type RectOption struct {
	WidthIn              float64 `json:"width_in"`
	HeightIn             float64 `json:"height_in"`
	EquivalentDiameterIn float64 `json:"equivalent_diameter_in"`
	AspectRatio          float64 `json:"aspect_ratio"`
	DeviationPct         float64 `json:"deviation_pct"`
}

type RectResult struct {
	Options []RectOption `json:"options"`
	Notes   string       `json:"notes"`
}

// Sections further than this from the target equivalent diameter are not
// worth suggesting.
const maxDeviation = 0.05

// RectEquivalents suggests whole-inch rectangular sections matching a
// round duct on equivalent diameter, one per height from the squarest
// down, all inside the aspect ceiling.
func RectEquivalents(in RectInput) (RectResult, error) {
	if in.DiameterIn <= 0 {
		return RectResult{}, airflow.Validationf("Diameter must be a positive number")
	}
	limit := in.Limit
	if limit <= 0 {
		limit = 6
	}

	top := math.Floor(in.DiameterIn)
	if in.MaxHeightIn > 0 && top > in.MaxHeightIn {
		top = math.Floor(in.MaxHeightIn)
	}
	if top < standards.MinRectSideIn {
		top = standards.MinRectSideIn
	}

	out := RectResult{
		Notes: "Rectangular sections matched on the Huebscher equivalent diameter.",
	}
	for h := top; h >= standards.MinRectSideIn && len(out.Options) < limit; h-- {
		maxW := math.Min(h*standards.MaxAspectRatio, standards.MaxRectSideIn)
		bestW, bestDe := 0.0, 0.0
		for w := h; w <= maxW; w += standards.RectStepIn {
			de := airflow.EquivalentDiameter(w, h)
			if bestW == 0 || math.Abs(de-in.DiameterIn) < math.Abs(bestDe-in.DiameterIn) {
				bestW, bestDe = w, de
			}
		}
		dev := math.Abs(bestDe-in.DiameterIn) / in.DiameterIn
		if dev <= maxDeviation {
			out.Options = append(out.Options, RectOption{
				WidthIn:              bestW,
				HeightIn:             h,
				EquivalentDiameterIn: bestDe,
				AspectRatio:          airflow.AspectRatio(bestW, h),
				DeviationPct:         dev * 100,
			})
		}
	}
	if len(out.Options) == 0 {
		out.Notes = "No rectangular section matches within 5% under the aspect and height limits."
	}
	return out, nil
}
