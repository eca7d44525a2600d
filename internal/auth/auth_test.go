package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSignVerify(t *testing.T) {
	tokens := NewTokens([]byte("secret"), time.Hour)

	tok, err := tokens.Sign("peter")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	sub, err := tokens.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if sub != "peter" {
		t.Errorf("expected subject 'peter', got '%s'", sub)
	}
}

func TestVerify_Rejects(t *testing.T) {
	tokens := NewTokens([]byte("secret"), time.Hour)
	other, err := NewTokens([]byte("other"), time.Hour).Sign("peter")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}
	expired, err := NewTokens([]byte("secret"), -time.Minute).Sign("peter")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	for name, tok := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": other,
		"expired":      expired,
		"empty":        "",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := tokens.Verify(tok); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestMiddleware(t *testing.T) {
	tokens := NewTokens([]byte("secret"), time.Hour)
	tok, err := tokens.Sign("julia")
	if err != nil {
		t.Fatalf("Sign() error: %v", err)
	}

	var seen string
	h := tokens.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = Subject(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without token, got %d", w.Code)
	}
	if body := w.Body.String(); !strings.Contains(body, `"error":"invalid token"`) {
		t.Errorf("expected rendered error response, got %s", body)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/blogs", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200 with token, got %d", w.Code)
	}
	if seen != "julia" {
		t.Errorf("expected subject 'julia', got '%s'", seen)
	}
}
