package blogrequest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
)

var (
	ErrMissingFields = errors.New("missing required Blog fields")
	ErrMissingTitle  = errors.New("title is required")
	ErrMissingURL    = errors.New("url is required")
)

// BlogRequest is the request payload for the Blog data model.
//
// NOTE: the client never chooses the id of a new blog, so ProtectedID
// overrides the 'id' json key and is dropped in Bind.
type BlogRequest struct {
	*model.Blog

	ProtectedID string `json:"id"`
}

func (b *BlogRequest) Bind(r *http.Request) error {
	// b.Blog is nil if no Blog fields are sent in the request. Return an
	// error to avoid a nil pointer dereference.
	if b.Blog == nil {
		return ErrMissingFields
	}

	b.ProtectedID = ""
	b.Blog.Title = strings.TrimSpace(b.Blog.Title)
	b.Blog.URL = strings.TrimSpace(b.Blog.URL)

	if b.Blog.Title == "" {
		return ErrMissingTitle
	}
	if b.Blog.URL == "" {
		return ErrMissingURL
	}

	return nil
}
