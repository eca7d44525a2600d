package controller

import "github.com/SergeyParamoshkin/bloglist/internal/model"

// Mode is which of the two screens is shown.
type Mode int

const (
	Unauthenticated Mode = iota
	Authenticated
)

func (m Mode) String() string {
	if m == Authenticated {
		return "authenticated"
	}

	return "unauthenticated"
}

// View is everything needed to present the current state.
type View struct {
	Mode            Mode
	Notification    string
	HasNotification bool
	Session         model.Session
	Credentials     model.Credentials
	Draft           model.Draft
	Blogs           []model.Blog
}

// View snapshots the state. The mode depends only on whether a session is
// active.
func (c *Controller) View() View {
	msg, shown := c.notice.Message()

	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Notification:    msg,
		HasNotification: shown,
		Credentials:     c.credentials,
		Draft:           c.draft,
		Blogs:           make([]model.Blog, 0, len(c.posts)),
	}
	if c.session != nil {
		v.Mode = Authenticated
		v.Session = *c.session
	}
	for _, b := range c.posts {
		v.Blogs = append(v.Blogs, *b)
	}

	return v
}
