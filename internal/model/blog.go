package model

// Blog data model. The backend assigns ID; the client treats it as opaque.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Draft is the uncommitted content of the create form.
type Draft struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

// Empty reports whether any required field is missing.
func (d Draft) Empty() bool {
	return d.Title == "" || d.Author == "" || d.URL == ""
}
