// Package controller owns the session, the form drafts, the post list and
// the notification slot, and derives what the user sees from them.
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/SergeyParamoshkin/bloglist/internal/model"
	"github.com/SergeyParamoshkin/bloglist/internal/notification"
	"github.com/SergeyParamoshkin/bloglist/internal/storage"
	"go.uber.org/zap"
)

// StorageKey is where the session is persisted.
const StorageKey = "loggedUser"

const (
	MsgWrongCredentials = "wrong credentials"
	MsgEmptyFields      = "error - empty fields"
	MsgCreateFailed     = "error"
)

var (
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrEmptyFields      = errors.New("empty fields")
	ErrNotLoggedIn      = errors.New("not logged in")
)

type Authenticator interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
}

type Lister interface {
	GetAll(ctx context.Context) ([]*model.Blog, error)
}

// Creator creates posts on behalf of one session.
type Creator interface {
	Create(ctx context.Context, draft model.Draft) (*model.Blog, error)
}

// AuthorizeFunc binds a session token to a Creator.
type AuthorizeFunc func(token string) Creator

type Deps struct {
	Login     Authenticator
	Blogs     Lister
	Authorize AuthorizeFunc
	Storage   storage.Storage
	Notifier  *notification.Notifier
	Logger    *zap.SugaredLogger
}

type Controller struct {
	login     Authenticator
	blogs     Lister
	authorize AuthorizeFunc
	storage   storage.Storage
	notice    *notification.Notifier
	logger    *zap.SugaredLogger

	mu          sync.Mutex
	posts       []*model.Blog
	credentials model.Credentials
	session     *model.Session
	creator     Creator
	draft       model.Draft
}

func New(d Deps) *Controller {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Controller{
		login:     d.Login,
		blogs:     d.Blogs,
		authorize: d.Authorize,
		storage:   d.Storage,
		notice:    d.Notifier,
		logger:    logger,
	}
}

// Start restores a persisted session, then fetches the post list. The
// restore runs first so the token is in place before anything else; a
// failure of one does not skip the other.
func (c *Controller) Start(ctx context.Context) error {
	return errors.Join(c.restore(), c.Refresh(ctx))
}

// Refresh replaces the post list with the server's.
func (c *Controller) Refresh(ctx context.Context) error {
	blogs, err := c.blogs.GetAll(ctx)
	if err != nil {
		c.logger.Warnw("fetch blogs", "error", err)
		return err
	}

	c.mu.Lock()
	c.posts = blogs
	c.mu.Unlock()

	return nil
}

func (c *Controller) restore() error {
	raw, err := c.storage.GetItem(StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	var s model.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil || s.Token == "" {
		c.logger.Warnw("dropping unreadable session", "error", err)
		return c.storage.RemoveItem(StorageKey)
	}

	c.activate(&s)
	c.logger.Debugw("session restored", "username", s.Username)

	return nil
}

// SubmitLogin authenticates with the given credentials. On failure the
// notification reads MsgWrongCredentials whatever the cause.
func (c *Controller) SubmitLogin(ctx context.Context, username, password string) error {
	creds := model.Credentials{Username: username, Password: password}

	c.mu.Lock()
	c.credentials = creds
	c.mu.Unlock()

	s, err := c.login.Login(ctx, creds)
	if err != nil {
		c.logger.Debugw("login failed", "username", username, "error", err)
		c.notice.Show(MsgWrongCredentials)

		return fmt.Errorf("%w: %w", ErrWrongCredentials, err)
	}

	c.activate(s)

	c.mu.Lock()
	c.credentials = model.Credentials{}
	c.mu.Unlock()

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := c.storage.SetItem(StorageKey, string(data)); err != nil {
		c.logger.Errorw("persist session", "error", err)
		return fmt.Errorf("persist session: %w", err)
	}

	return nil
}

// Logout forgets the session in memory and in storage.
func (c *Controller) Logout() error {
	c.mu.Lock()
	c.session = nil
	c.creator = nil
	c.mu.Unlock()

	if err := c.storage.RemoveItem(StorageKey); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}

	return nil
}

// SubmitCreate validates the draft and creates the post. Drafts are cleared
// before the call is made, whatever its outcome.
func (c *Controller) SubmitCreate(ctx context.Context, title, author, url string) error {
	draft := model.Draft{Title: title, Author: author, URL: url}

	c.mu.Lock()
	c.draft = model.Draft{}
	creator := c.creator
	c.mu.Unlock()

	if draft.Empty() {
		c.notice.Show(MsgEmptyFields)
		return ErrEmptyFields
	}

	if creator == nil {
		c.notice.Show(MsgCreateFailed)
		return ErrNotLoggedIn
	}

	b, err := creator.Create(ctx, draft)
	if err != nil {
		c.logger.Debugw("create failed", "title", title, "error", err)
		c.notice.Show(MsgCreateFailed)

		return err
	}

	c.mu.Lock()
	c.posts = append(c.posts, b)
	c.mu.Unlock()

	c.notice.Show(fmt.Sprintf("a new blog %s by %s added", title, author))

	return nil
}

// SetDraft binds the create form fields.
func (c *Controller) SetDraft(d model.Draft) {
	c.mu.Lock()
	c.draft = d
	c.mu.Unlock()
}

func (c *Controller) activate(s *model.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.session = s
	c.creator = c.authorize(s.Token)
}
