// Package client talks to the blog API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
)

var ErrUnauthorized = errors.New("unauthorized")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}

	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

type Client struct {
	http.Client
	Addr string
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/ping"), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), err
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	var s model.Session
	if err := c.do(ctx, http.MethodPost, "/api/login", "", creds, &s); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &s, nil
}

// GetAll lists every blog in server order.
func (c *Client) GetAll(ctx context.Context) ([]*model.Blog, error) {
	var blogs []*model.Blog
	if err := c.do(ctx, http.MethodGet, "/api/blogs", "", nil, &blogs); err != nil {
		return nil, fmt.Errorf("list blogs: %w", err)
	}

	return blogs, nil
}

// Authorize returns a handle that sends token with every call.
func (c *Client) Authorize(token string) *Authorized {
	return &Authorized{client: c, token: token}
}

// Authorized is a Client bound to a session token. It is the only way to
// reach endpoints that need one.
type Authorized struct {
	client *Client
	token  string
}

// Create posts a new blog and returns it as stored by the server.
func (a *Authorized) Create(ctx context.Context, draft model.Draft) (*model.Blog, error) {
	var b model.Blog
	if err := a.client.do(ctx, http.MethodPost, "/api/blogs", a.token, draft, &b); err != nil {
		return nil, fmt.Errorf("create blog: %w", err)
	}

	return &b, nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.Addr, "/") + path
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error  string `json:"error"`
		Status string `json:"status"`
	}
	msg := strings.TrimSpace(string(data))
	if json.Unmarshal(data, &payload) == nil {
		switch {
		case payload.Error != "":
			msg = payload.Error
		case payload.Status != "":
			msg = payload.Status
		}
	}

	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}
