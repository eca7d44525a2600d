package config

import (
	"testing"
	"time"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/test")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Addr != ":3003" {
		t.Errorf("expected ':3003', got '%s'", cfg.Addr)
	}
	if cfg.NotificationTTL != 5*time.Second {
		t.Errorf("expected 5s, got %v", cfg.NotificationTTL)
	}
	if cfg.StatePath != "/home/test/.bloglist/state.db" {
		t.Errorf("unexpected state path '%s'", cfg.StatePath)
	}
}

func TestParse_Env(t *testing.T) {
	t.Setenv("BLOGLIST_API_URL", "http://api.example.com")
	t.Setenv("BLOGLIST_TOKEN_TTL", "30m")
	t.Setenv("BLOGLIST_ROUTES", "true")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.APIURL != "http://api.example.com" {
		t.Errorf("unexpected api url '%s'", cfg.APIURL)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m, got %v", cfg.TokenTTL)
	}
	if !cfg.Routes {
		t.Error("expected routes enabled")
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Setenv("BLOGLIST_HTTP_TIMEOUT", "soon")

	if _, err := Parse(); err == nil {
		t.Error("expected an error for an invalid duration")
	}
}
