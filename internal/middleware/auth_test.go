package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignAndParseToken(t *testing.T) {
	tok, err := SignToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}
	claims, err := ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Username != "admin" {
		t.Fatalf("username = %q, want admin", claims.Username)
	}
	if claims.ID == "" {
		t.Fatal("token has no id claim")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tok, err := SignToken("admin", -time.Minute)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}
	if _, err := ParseToken(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	tok, err := SignToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}
	if _, err := ParseToken(tok + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestWithAuthAttachesClaims(t *testing.T) {
	tok, err := SignToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}

	var got string
	handler := WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UsernameFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "admin" {
		t.Fatalf("context username = %q, want admin", got)
	}
}

func TestWithAuthIgnoresGarbageToken(t *testing.T) {
	called := false
	handler := WithAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := UsernameFromContext(r.Context()); ok {
			t.Fatal("garbage token produced a username")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("handler was not reached")
	}
}

func TestRequireAuth(t *testing.T) {
	protected := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rec.Code)
	}

	tok, err := SignToken("admin", time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	WithAuth(protected).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", rec.Code)
	}
}
