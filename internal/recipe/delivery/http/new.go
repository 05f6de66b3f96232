package http

import (
	"context"

	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/log"
	"recipe-browser/pkg/markup"
	"recipe-browser/pkg/photo"
)

// PhotoService resizes recipe photos.
type PhotoService interface {
	Thumbnail(ctx context.Context, photoURL string, height int) (photo.Thumbnail, error)
	DefaultHeight() int
}

type handler struct {
	l        log.Logger
	uc       recipe.UseCase
	renderer *markup.Renderer
	photos   PhotoService
}

// New creates a new JSON API handler for the recipe domain. photos may be nil,
// in which case the photo route answers 404.
func New(l log.Logger, uc recipe.UseCase, renderer *markup.Renderer, photos PhotoService) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
		photos:   photos,
	}
}
