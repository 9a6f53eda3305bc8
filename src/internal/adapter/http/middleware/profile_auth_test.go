package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/api-sage/freelance-billing/src/internal/domain"
)

type stubProfileRepo struct {
	profiles map[int64]domain.Profile
}

func (r *stubProfileRepo) Create(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	return profile, nil
}

func (r *stubProfileRepo) GetByID(ctx context.Context, profileID int64) (domain.Profile, error) {
	profile, ok := r.profiles[profileID]
	if !ok {
		return domain.Profile{}, domain.ErrRecordNotFound
	}
	return profile, nil
}

func TestProfileAuthResolvesProfile(t *testing.T) {
	repo := &stubProfileRepo{profiles: map[int64]domain.Profile{
		7: {ID: 7, Role: domain.ProfileRoleClient, FirstName: "Ada"},
	}}

	var resolved domain.Profile
	handler := ProfileAuth(repo)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile, ok := ProfileFromContext(r.Context())
		if !ok {
			t.Fatal("profile missing from context")
		}
		resolved = profile
	}))

	req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
	req.Header.Set("Profile-Id", "7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if resolved.ID != 7 {
		t.Fatalf("expected profile 7, got %d", resolved.ID)
	}
}

func TestProfileAuthRejectsMissingHeader(t *testing.T) {
	handler := ProfileAuth(&stubProfileRepo{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without identity")
	}))

	req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestProfileAuthRejectsUnknownProfile(t *testing.T) {
	handler := ProfileAuth(&stubProfileRepo{profiles: map[int64]domain.Profile{}})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with unknown identity")
	}))

	req := httptest.NewRequest(http.MethodGet, "/contracts", nil)
	req.Header.Set("Profile-Id", "404")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
