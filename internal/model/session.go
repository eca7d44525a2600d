package model

// Session is the logged in user as returned by the login endpoint and
// persisted client-side.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
