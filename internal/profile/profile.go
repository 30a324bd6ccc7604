package profile

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Plenum/internal/auth"
	"Plenum/internal/repo"
)

type ProfileHandler struct {
	Repo repo.Repository
}

type UpdateProfileRequest struct {
	Login   string `json:"login"`
	Company string `json:"company"`
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFrom(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	prof, err := h.Repo.GetProfileByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Profile not found", http.StatusNotFound)
		return
	}

	if prof.PremiumUntil != nil && time.Now().After(*prof.PremiumUntil) {
		_ = h.Repo.ClearPremium(r.Context(), userID)
		prof.IsPremium = false
		prof.PremiumUntil = nil
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(prof)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFrom(r.Context())
	if userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.UpdateProfile(r.Context(), userID, req.Login, req.Company); err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RequirePremium gates the premium tool endpoints. A lapsed subscription
// is cleared on the first request after expiry.
func (h *ProfileHandler) RequirePremium(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFrom(r.Context())
		if userID == 0 {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		prof, err := h.Repo.GetProfileByID(r.Context(), userID)
		if err != nil {
			log.Printf("GetProfileByID error: %v", err)
			http.Error(w, "DB error", http.StatusInternalServerError)
			return
		}

		premium := prof.IsPremium
		if prof.PremiumUntil != nil && time.Now().After(*prof.PremiumUntil) {
			_ = h.Repo.ClearPremium(r.Context(), userID)
			premium = false
		}
		if !premium {
			http.Error(w, "Premium subscription required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
