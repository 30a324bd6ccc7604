package schedule

import (
	"encoding/json"
	"net/http"

	"Plenum/internal/calc/airflow"
)

type Handler struct{}

// Export handles POST /api/user/tools/export/schedule.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	f, err := Build(req)
	if err != nil {
		if airflow.IsValidation(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Schedule export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"duct_schedule.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Schedule export error", http.StatusInternalServerError)
		return
	}
}
