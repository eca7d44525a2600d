package blog

import (
	"errors"
	"sync"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("blog not found")

// Store keeps blogs in insertion order.
type Store struct {
	mu    sync.RWMutex
	blogs []*model.Blog
}

func NewStore(seed ...*model.Blog) *Store {
	s := &Store{}
	for _, b := range seed {
		s.Add(b)
	}

	return s
}

// Add assigns a fresh ID to blog and appends it.
func (s *Store) Add(blog *model.Blog) *model.Blog {
	s.mu.Lock()
	defer s.mu.Unlock()

	blog.ID = uuid.NewString()
	s.blogs = append(s.blogs, blog)

	return blog
}

// All returns a snapshot of every blog.
func (s *Store) All() []*model.Blog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Blog, len(s.blogs))
	copy(out, s.blogs)

	return out
}

func (s *Store) Get(id string) (*model.Blog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.ID == id {
			return b, nil
		}
	}

	return nil, ErrNotFound
}

// Fixtures are the blogs the development server starts with.
// nolint
func Fixtures() []*model.Blog {
	return []*model.Blog{
		{Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/"},
		{Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html"},
		{Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html"},
	}
}
