package diagram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/standards"
)

type Handler struct{}

type chartRequest struct {
	Airflow      float64 `json:"airflow"`
	FrictionRate float64 `json:"friction_rate"`
	Material     string  `json:"material,omitempty"`
	DiameterIn   float64 `json:"diameter_in,omitempty"`
}

// Friction handles POST /api/user/tools/chart/png. An image response has
// no warning channel, so an unknown material is rejected outright instead
// of being substituted.
func (h *Handler) Friction(w http.ResponseWriter, r *http.Request) {
	var req chartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	rough := 1.0
	if req.Material != "" {
		f, ok := standards.RoughnessFactor(req.Material)
		if !ok {
			http.Error(w, fmt.Sprintf("Unknown duct material %q", req.Material), http.StatusBadRequest)
			return
		}
		rough = f
	}

	data := FrictionChartData{
		AirflowCFM:         req.Airflow,
		TargetRate:         req.FrictionRate,
		Roughness:          rough,
		SelectedDiameterIn: req.DiameterIn,
	}
	var buf bytes.Buffer
	if err := WritePNG(data, &buf); err != nil {
		if airflow.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Chart generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}
