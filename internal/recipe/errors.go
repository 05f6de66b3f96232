package recipe

import "errors"

var (
	ErrLoadFailure    = errors.New("recipes could not be loaded")
	ErrNotLoaded      = errors.New("recipes are still loading")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrPhotoMissing   = errors.New("recipe has no photo")
)
