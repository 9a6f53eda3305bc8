package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBasicAuthAllowsValidCredentials(t *testing.T) {
	called := false
	handler := BasicAuth("admin", "secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/best-profession", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatal("handler not reached with valid credentials")
	}
}

func TestBasicAuthRejectsBadCredentials(t *testing.T) {
	handler := BasicAuth("admin", "secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached with bad credentials")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/best-profession", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestBasicAuthRejectsMissingConfiguration(t *testing.T) {
	handler := BasicAuth("", "")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler reached without server credentials configured")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/best-profession", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
