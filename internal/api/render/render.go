// Package render is the narrow boundary between handlers and whatever
// produces HTML. Handlers hold a Renderer and nothing else; no template
// engine leaks into the rest of the tree.
package render

import (
	"fmt"
	"html/template"
	"net/http"
)

type Renderer interface {
	Render(w http.ResponseWriter, view string, data any) error
}

type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every template matching glob once, at startup.
func NewTemplateRenderer(glob string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(glob)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: templates}, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, view string, data any) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.templates.ExecuteTemplate(w, view, data)
}
