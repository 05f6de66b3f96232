package web

import (
	"embed"
	"fmt"
	"html/template"

	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/log"
	"recipe-browser/pkg/markup"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type handler struct {
	l          log.Logger
	uc         recipe.UseCase
	renderer   *markup.Renderer
	photoProxy bool
	pages      *template.Template
}

// New creates the HTML handler. When photoProxy is set, card and modal images
// point at the thumbnail route instead of the photo host.
func New(l log.Logger, uc recipe.UseCase, renderer *markup.Renderer, photoProxy bool) (*handler, error) {
	pages, err := template.New("pages").ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &handler{
		l:          l,
		uc:         uc,
		renderer:   renderer,
		photoProxy: photoProxy,
		pages:      pages,
	}, nil
}
