package usecase

import (
	"context"

	"recipe-browser/internal/recipe"
)

// Detail retrieves a single recipe by its synthetic ID. Returns
// ErrRecipeNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (recipe.DetailOutput, error) {
	snap, err := uc.current()
	if err != nil {
		return recipe.DetailOutput{}, err
	}

	idx, ok := snap.byID[id]
	if !ok {
		return recipe.DetailOutput{}, recipe.ErrRecipeNotFound
	}
	return recipe.DetailOutput{Recipe: snap.recipes[idx]}, nil
}
