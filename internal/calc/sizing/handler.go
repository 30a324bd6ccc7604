package sizing

import (
	"encoding/json"
	"fmt"
	"net/http"

	"Plenum/internal/standards"
	"Plenum/internal/units"
)

// Handler serves the duct sizing endpoint and the supporting listings.
// Calculation failures come back as success=false with error strings in
// the envelope; only a malformed request is an HTTP-level fault.
type Handler struct{}

type request struct {
	Airflow      float64 `json:"airflow"`
	DuctType     string  `json:"duct_type"`
	FrictionRate float64 `json:"friction_rate"`
	Units        string  `json:"units"`
	Material     string  `json:"material"`
	DuctClass    string  `json:"duct_class"`
	MaxHeight    float64 `json:"max_height"`
	MaxWidth     float64 `json:"max_width"`
}

type response struct {
	Success    bool                                        `json:"success"`
	Units      string                                      `json:"units"`
	Results    interface{}                                 `json:"results,omitempty"`
	Compliance map[string]map[string]standards.CheckResult `json:"compliance,omitempty"`
	Warnings   []string                                    `json:"warnings"`
	Errors     []string                                    `json:"errors"`
}

// metricResult mirrors Result in SI units for metric clients. Compliance
// is always evaluated on the imperial figures.
type metricResult struct {
	DuctType             standards.DuctType `json:"duct_type"`
	DiameterMM           float64            `json:"diameter_mm,omitempty"`
	WidthMM              float64            `json:"width_mm,omitempty"`
	HeightMM             float64            `json:"height_mm,omitempty"`
	AreaSqM              float64            `json:"area_sqm"`
	VelocityMPS          float64            `json:"velocity_mps"`
	EquivalentDiameterMM float64            `json:"equivalent_diameter_mm,omitempty"`
	AspectRatio          float64            `json:"aspect_ratio,omitempty"`
	PressureLossPaPerM   float64            `json:"pressure_loss_pa_m"`
	Material             string             `json:"material"`
}

func toMetric(r Result) metricResult {
	return metricResult{
		DuctType:             r.DuctType,
		DiameterMM:           units.MMFromInches(r.DiameterIn),
		WidthMM:              units.MMFromInches(r.WidthIn),
		HeightMM:             units.MMFromInches(r.HeightIn),
		AreaSqM:              units.SqMFromSqFt(r.AreaSqFt),
		VelocityMPS:          units.MpsFromFPM(r.VelocityFPM),
		EquivalentDiameterMM: units.MMFromInches(r.EquivalentDiameterIn),
		AspectRatio:          r.AspectRatio,
		PressureLossPaPerM:   units.PaPerMFromFriction(r.PressureLossPer100Ft),
		Material:             r.Material,
	}
}

// Size handles POST /api/user/tools/ducts/size.
func (h *Handler) Size(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	resp := solve(req)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func solve(req request) response {
	resp := response{Units: req.Units, Warnings: []string{}, Errors: []string{}}

	metric := false
	switch req.Units {
	case "", "imperial":
		resp.Units = "imperial"
	case "metric":
		metric = true
		req.Airflow = units.CFMFromLps(req.Airflow)
		req.FrictionRate = units.FrictionFromPaPerM(req.FrictionRate)
		req.MaxHeight = units.InchesFromMM(req.MaxHeight)
		req.MaxWidth = units.InchesFromMM(req.MaxWidth)
	default:
		resp.Errors = append(resp.Errors,
			fmt.Sprintf("Units must be \"imperial\" or \"metric\", got %q", req.Units))
		return resp
	}

	class := standards.DuctClass(req.DuctClass)
	if class == "" {
		class = standards.ClassSupply
	}
	if !standards.ValidDuctClass(class) {
		resp.Errors = append(resp.Errors,
			fmt.Sprintf("Duct class must be %q, %q or %q",
				standards.ClassSupply, standards.ClassReturn, standards.ClassExhaust))
		return resp
	}

	res, err := Size(Input{
		AirflowCFM:   req.Airflow,
		FrictionRate: req.FrictionRate,
		DuctType:     standards.DuctType(req.DuctType),
		DuctClass:    class,
		Material:     req.Material,
		MaxHeightIn:  req.MaxHeight,
		MaxWidthIn:   req.MaxWidth,
	})
	if err != nil {
		resp.Errors = append(resp.Errors, err.Error())
		return resp
	}

	resp.Success = true
	resp.Warnings = append(resp.Warnings, res.Warnings...)

	checks := Evaluate(standards.SMACNA, class, res)
	resp.Compliance = map[string]map[string]standards.CheckResult{"smacna": {}}
	for _, c := range checks {
		resp.Compliance["smacna"][c.Metric] = c
	}

	if metric {
		resp.Results = toMetric(res)
	} else {
		resp.Results = res
	}
	return resp
}

type sizesResponse struct {
	RoundDiametersIn []float64 `json:"round_diameters_in,omitempty"`
	RectSideMinIn    float64   `json:"rect_side_min_in,omitempty"`
	RectSideMaxIn    float64   `json:"rect_side_max_in,omitempty"`
	RectStepIn       float64   `json:"rect_step_in,omitempty"`
	MaxAspectRatio   float64   `json:"max_aspect_ratio,omitempty"`
}

// Sizes handles GET /api/user/tools/sizes. An optional duct_type query
// narrows the listing to one shape.
func (h *Handler) Sizes(w http.ResponseWriter, r *http.Request) {
	resp := sizesResponse{
		RoundDiametersIn: standards.StandardRoundSizes,
		RectSideMinIn:    standards.MinRectSideIn,
		RectSideMaxIn:    standards.MaxRectSideIn,
		RectStepIn:       standards.RectStepIn,
		MaxAspectRatio:   standards.MaxAspectRatio,
	}
	switch standards.DuctType(r.URL.Query().Get("duct_type")) {
	case standards.Round:
		resp = sizesResponse{RoundDiametersIn: standards.StandardRoundSizes}
	case standards.Rectangular:
		resp.RoundDiametersIn = nil
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// Materials handles GET /api/user/tools/materials.
func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(standards.Materials)
}
