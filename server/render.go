package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Renderer turns a named page template and its data into an HTML response.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data any) error
}

type templateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every embedded page template once, at startup,
// so a broken template fails the boot instead of the first request.
func NewTemplateRenderer() (Renderer, error) {
	templates, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "[NewTemplateRenderer] parse templates")
	}
	return &templateRenderer{templates: templates}, nil
}

func (t *templateRenderer) Render(w http.ResponseWriter, name string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.templates.ExecuteTemplate(w, name, data)
}
