package http

import (
	"errors"
	"net/http"

	"recipe-browser/internal/recipe"
	pkgErrors "recipe-browser/pkg/errors"
	"recipe-browser/pkg/photo"
)

var (
	errNotLoaded     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "recipes are still loading")
	errLoadFailure   = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "recipes.json could not be loaded")
	errNotFound      = pkgErrors.NewHTTPError(http.StatusNotFound, "recipe not found")
	errPhotoMissing  = pkgErrors.NewHTTPError(http.StatusNotFound, "recipe has no photo")
	errPhotoUpstream = pkgErrors.NewHTTPError(http.StatusBadGateway, "photo could not be fetched")
	errPhotoFormat   = pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported photo format")
	errPhotoBusy     = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "photo host temporarily unavailable")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, recipe.ErrNotLoaded):
		return errNotLoaded
	case errors.Is(err, recipe.ErrLoadFailure):
		return errLoadFailure
	case errors.Is(err, recipe.ErrRecipeNotFound):
		return errNotFound
	case errors.Is(err, recipe.ErrPhotoMissing):
		return errPhotoMissing
	case errors.Is(err, photo.ErrUnavailable):
		return errPhotoBusy
	case errors.Is(err, photo.ErrUnsupportedFormat):
		return errPhotoFormat
	case errors.Is(err, photo.ErrUpstream):
		return errPhotoUpstream
	default:
		return pkgErrors.ErrInternalServerError
	}
}
