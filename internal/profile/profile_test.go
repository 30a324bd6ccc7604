package profile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Plenum/internal/auth"
	"Plenum/internal/repo"
)

type stubRepo struct {
	profile    *repo.Profile
	profileErr error
	cleared    bool

	updatedLogin   string
	updatedCompany string
}

func (s *stubRepo) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	return 0, nil
}
func (s *stubRepo) GetByLogin(ctx context.Context, login string) (int, string, error) {
	return 0, "", nil
}
func (s *stubRepo) GetProfileByID(ctx context.Context, id int) (*repo.Profile, error) {
	return s.profile, s.profileErr
}
func (s *stubRepo) UpdateProfile(ctx context.Context, id int, login, company string) (int64, error) {
	s.updatedLogin, s.updatedCompany = login, company
	return 1, nil
}
func (s *stubRepo) SetPremiumUntil(ctx context.Context, id int, until time.Time) error { return nil }
func (s *stubRepo) ClearPremium(ctx context.Context, id int) error {
	s.cleared = true
	return nil
}
func (s *stubRepo) SaveProject(ctx context.Context, userID int, name string, payload json.RawMessage) (int, error) {
	return 0, nil
}
func (s *stubRepo) ListProjects(ctx context.Context, userID int) ([]repo.ProjectSummary, error) {
	return nil, nil
}
func (s *stubRepo) GetProject(ctx context.Context, userID, id int) (*repo.Project, error) {
	return nil, nil
}
func (s *stubRepo) DeleteProject(ctx context.Context, userID, id int) error { return nil }

func authedRequest(method, target string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(auth.ContextWithUser(req.Context(), 5, "mario"))
}

func TestGetProfile(t *testing.T) {
	until := time.Now().Add(24 * time.Hour)
	stub := &stubRepo{profile: &repo.Profile{
		ID: 5, Login: "mario", Email: "m@example.com", IsPremium: true, PremiumUntil: &until,
	}}
	h := &ProfileHandler{Repo: stub}

	rr := httptest.NewRecorder()
	h.GetProfile(rr, authedRequest(http.MethodGet, "/api/user/profile", ""))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	var got repo.Profile
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsPremium || got.Login != "mario" {
		t.Errorf("profile = %+v", got)
	}
	if stub.cleared {
		t.Error("premium cleared for an active subscription")
	}
}

func TestGetProfileSweepsExpiredPremium(t *testing.T) {
	until := time.Now().Add(-time.Hour)
	stub := &stubRepo{profile: &repo.Profile{ID: 5, Login: "mario", IsPremium: true, PremiumUntil: &until}}
	h := &ProfileHandler{Repo: stub}

	rr := httptest.NewRecorder()
	h.GetProfile(rr, authedRequest(http.MethodGet, "/api/user/profile", ""))

	var got repo.Profile
	if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.IsPremium {
		t.Error("expired subscription still reported premium")
	}
	if !stub.cleared {
		t.Error("expired subscription not cleared")
	}
}

func TestGetProfileUnauthorized(t *testing.T) {
	h := &ProfileHandler{Repo: &stubRepo{}}
	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	rr := httptest.NewRecorder()
	h.GetProfile(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rr.Code)
	}
}

func TestUpdateProfile(t *testing.T) {
	stub := &stubRepo{}
	h := &ProfileHandler{Repo: stub}

	rr := httptest.NewRecorder()
	h.UpdateProfile(rr, authedRequest(http.MethodPatch, "/api/user/profile",
		`{"login":"mario","company":"Mushroom Mechanical"}`))

	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rr.Code)
	}
	if stub.updatedLogin != "mario" || stub.updatedCompany != "Mushroom Mechanical" {
		t.Errorf("update captured (%q, %q)", stub.updatedLogin, stub.updatedCompany)
	}
}

func callPremium(t *testing.T, stub *stubRepo) (*httptest.ResponseRecorder, *bool) {
	t.Helper()
	h := &ProfileHandler{Repo: stub}
	reached := false
	handler := h.RequirePremium(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, authedRequest(http.MethodPost, "/api/user/tools/batch/size", `{}`))
	return rr, &reached
}

func TestRequirePremiumAllows(t *testing.T) {
	until := time.Now().Add(24 * time.Hour)
	rr, reached := callPremium(t, &stubRepo{profile: &repo.Profile{ID: 5, IsPremium: true, PremiumUntil: &until}})
	if rr.Code != http.StatusOK || !*reached {
		t.Errorf("status = %d, reached = %v", rr.Code, *reached)
	}
}

func TestRequirePremiumBlocksFreeTier(t *testing.T) {
	rr, reached := callPremium(t, &stubRepo{profile: &repo.Profile{ID: 5}})
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	if *reached {
		t.Error("handler reached behind the premium gate")
	}
	if !strings.Contains(rr.Body.String(), "Premium subscription required") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestRequirePremiumBlocksExpired(t *testing.T) {
	until := time.Now().Add(-time.Minute)
	stub := &stubRepo{profile: &repo.Profile{ID: 5, IsPremium: true, PremiumUntil: &until}}
	rr, _ := callPremium(t, stub)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rr.Code)
	}
	if !stub.cleared {
		t.Error("expired subscription not cleared")
	}
}
