package user

import (
	"errors"
	"testing"
)

func TestAuthenticate(t *testing.T) {
	s := NewStore()
	if _, err := s.Add("peter", "Peter", "salainen"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"valid", "peter", "salainen", nil},
		{"wrong password", "peter", "nope", ErrInvalidCredentials},
		{"unknown user", "nobody", "salainen", ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := s.Authenticate(tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr == nil && u.Name != "Peter" {
				t.Errorf("expected name 'Peter', got '%s'", u.Name)
			}
		})
	}
}

func TestAdd_Duplicate(t *testing.T) {
	s := NewStore()
	if err := s.Seed(Fixtures); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	if _, err := s.Add("peter", "Other", "x"); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestAdd_HashesPassword(t *testing.T) {
	s := NewStore()
	u, err := s.Add("julia", "Julia", "sekret")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}

	if u.PasswordHash == "" || u.PasswordHash == "sekret" {
		t.Errorf("expected a bcrypt hash, got %q", u.PasswordHash)
	}
}
