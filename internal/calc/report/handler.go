package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Plenum/internal/calc/airflow"
	"Plenum/internal/calc/fittings"
)

type Handler struct {
	Calc *fittings.Calculator
}

// Generate handles POST /api/user/tools/report/pdf.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Generate(input, h.Calc, &buf); err != nil {
		if airflow.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"duct_report.pdf\"")
	w.Write(buf.Bytes())
}
