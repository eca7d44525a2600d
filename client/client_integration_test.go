// client_integration_test.go
//go:build integration
// +build integration

package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
)

// Run against `bloglist serve` on the default address.
var c = Client{
	Addr:   "http://localhost:3003",
	Client: http.Client{},
}

func TestPing(t *testing.T) {
	if s, err := c.Ping(context.Background()); err != nil || s != "pong" {
		t.Fail()
	}
}

func TestLoginAndCreate(t *testing.T) {
	ctx := context.Background()

	s, err := c.Login(ctx, model.Credentials{Username: "peter", Password: "salainen"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}

	b, err := c.Authorize(s.Token).Create(ctx, model.Draft{Title: "Integration", Author: "Test", URL: "http://x"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if b.ID == "" {
		t.Error("expected an id")
	}
}
