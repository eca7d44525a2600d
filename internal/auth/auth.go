package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SergeyParamoshkin/bloglist/internal/errresponse"
	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type ctxKey struct{}

// Tokens issues and verifies the bearer tokens handed out on login.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret []byte, ttl time.Duration) *Tokens {
	return &Tokens{secret: secret, ttl: ttl}
}

// Sign issues a token with username as subject.
func (t *Tokens) Sign(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify returns the subject of a valid token.
func (t *Tokens) Verify(tok string) (string, error) {
	parsed, err := jwt.Parse(tok, func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil || sub == "" {
		return "", ErrInvalidToken
	}

	return sub, nil
}

// Middleware rejects requests without a valid "Authorization: Bearer" header
// and puts the token subject on the request context.
func (t *Tokens) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sub, err := t.Verify(bearer(r))
		if err != nil {
			// nolint
			render.Render(w, r, errresponse.ErrUnauthorized(err))

			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sub)))
	})
}

// Subject returns the username stored by Middleware.
func Subject(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ctxKey{}).(string)

	return sub, ok
}

func bearer(r *http.Request) string {
	if h := r.Header.Get("Authorization"); len(h) > 7 && h[:7] == "Bearer " {
		return h[7:]
	}

	return ""
}
