// Package view renders the controller state as plain text.
package view

import (
	"io"
	"text/template"

	"github.com/SergeyParamoshkin/bloglist/internal/controller"
)

const layout = `{{define "notification"}}{{if .HasNotification}}[ {{.Notification}} ]
{{end}}{{end}}` +
	`{{if eq .Mode 1}}Blogs
{{template "notification" .}}{{.Session.Name}} logged in
{{range .Blogs}}{{.Title}} {{.Author}}
{{end}}{{else}}Log in
{{template "notification" .}}{{end}}`

var page = template.Must(template.New("page").Parse(layout))

// Render writes v to w. The authenticated screen lists every blog in order.
func Render(w io.Writer, v controller.View) error {
	return page.Execute(w, v)
}
