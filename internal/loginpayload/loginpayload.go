package loginpayload

import (
	"errors"
	"net/http"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/SergeyParamoshkin/bloglist/internal/user"
)

//--
// Request and Response payloads for the login endpoint.
//--

type LoginRequest struct {
	model.Credentials
}

// Bind on LoginRequest will run after the unmarshalling is complete.
func (l *LoginRequest) Bind(r *http.Request) error {
	if l.Username == "" || l.Password == "" {
		return errors.New("username and password are required")
	}

	return nil
}

// LoginResponse is exactly the session the client persists.
type LoginResponse struct {
	*model.Session
}

func NewLoginResponse(u *user.User, token string) *LoginResponse {
	return &LoginResponse{Session: &model.Session{
		Token:    token,
		Username: u.Username,
		Name:     u.Name,
	}}
}

func (l *LoginResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
