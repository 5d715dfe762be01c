package server

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const indexTemplate = "index.html"

// templateRenderer adapts html/template to echo.Renderer.
type templateRenderer struct {
	tmpl *template.Template
}

func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (r *templateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

// pageData is the view model of the form page.
type pageData struct {
	Input string
	Text  string
	Error string
}
