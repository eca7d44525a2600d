package user

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrExists             = errors.New("user already exists")
)

//--
// Data model objects and persistence:
//--

// User data model. PasswordHash never leaves the backend.
type User struct {
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}

// Store keeps backend users in memory.
type Store struct {
	mu    sync.RWMutex
	users map[string]*User
}

func NewStore() *Store {
	return &Store{users: make(map[string]*User)}
}

// Add hashes password and registers the user.
func (s *Store) Add(username, name, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[username]; ok {
		return nil, ErrExists
	}

	u := &User{Username: username, Name: name, PasswordHash: string(hash)}
	s.users[username] = u

	return u, nil
}

// Get looks a user up by username.
func (s *Store) Get(username string) (*User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]

	return u, ok
}

// Authenticate returns the user if password matches the stored hash.
func (s *Store) Authenticate(username, password string) (*User, error) {
	u, ok := s.Get(username)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// Fixture is a user seeded into a development backend.
type Fixture struct {
	Username string
	Name     string
	Password string
}

// Fixtures are the users the development server starts with.
// nolint
var Fixtures = []Fixture{
	{Username: "peter", Name: "Peter", Password: "salainen"},
	{Username: "julia", Name: "Julia", Password: "sekret"},
}

// Seed adds every fixture to s.
func (s *Store) Seed(fixtures []Fixture) error {
	for _, f := range fixtures {
		if _, err := s.Add(f.Username, f.Name, f.Password); err != nil {
			return fmt.Errorf("seed %s: %w", f.Username, err)
		}
	}

	return nil
}
