package fittings

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/standards"
)

// Handler serves the fitting endpoints against one shared calculator.
type Handler struct {
	Calc *Calculator
}

type lossRequest struct {
	Airflow float64 `json:"airflow"`
	Fitting Config  `json:"fitting"`
}

type systemRequest struct {
	Airflow  float64  `json:"airflow"`
	Fittings []Config `json:"fittings"`
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Loss handles POST /api/user/tools/fittings/loss.
func (h *Handler) Loss(w http.ResponseWriter, r *http.Request) {
	var req lossRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Calc.FittingLoss(req.Fitting, req.Airflow)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

// System handles POST /api/user/tools/fittings/system.
func (h *Handler) System(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := h.Calc.SystemLoss(req.Fittings, req.Airflow)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, res)
}

type listResponse struct {
	Meta     Metadata `json:"meta"`
	Fittings []Info   `json:"fittings"`
}

// List handles GET /api/user/tools/fittings. The optional shape query
// filters to round or rectangular types.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shape := standards.DuctType(r.URL.Query().Get("shape"))
	if shape != "" && !standards.ValidDuctType(shape) {
		http.Error(w, "Unknown duct shape", http.StatusBadRequest)
		return
	}
	writeJSON(w, listResponse{
		Meta:     h.Calc.Table().Meta(),
		Fittings: h.Calc.Table().Available(shape),
	})
}
