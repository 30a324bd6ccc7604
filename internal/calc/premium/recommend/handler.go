package recommend

import (
	"encoding/json"
	"net/http"
)

type Handler struct{}

// Rect handles POST /api/user/tools/recommend/rect.
func (h *Handler) Rect(w http.ResponseWriter, r *http.Request) {
	var input RectInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := RectEquivalents(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
