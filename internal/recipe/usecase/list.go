package usecase

import (
	"context"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/metrics"
)

// List returns the visible set for the given criteria together with the
// available courses and tags of the whole collection.
func (uc *implUseCase) List(ctx context.Context, input recipe.ListInput) (recipe.ListOutput, error) {
	snap, err := uc.current()
	if err != nil {
		return recipe.ListOutput{}, err
	}

	return recipe.ListOutput{
		Recipes:  uc.visibleFor(snap, input.Criteria),
		Courses:  snap.courses,
		Tags:     snap.tags,
		Total:    len(snap.recipes),
		Criteria: input.Criteria,
	}, nil
}

// visibleFor memoizes visible per criteria. The snapshot never changes after
// load so memo entries only leave through eviction or TTL.
// Returned slices are shared and must not be modified.
func (uc *implUseCase) visibleFor(snap *snapshot, c recipe.Criteria) []model.Recipe {
	if c.IsZero() {
		return snap.recipes
	}
	if cached, ok := uc.memo.Get(c); ok {
		metrics.RecordFilterLookup(true)
		return cached
	}
	metrics.RecordFilterLookup(false)

	out := visible(snap.recipes, c)
	uc.memo.Add(c, out)
	return out
}

// Facets returns the available courses and tags.
func (uc *implUseCase) Facets(ctx context.Context) (recipe.FacetsOutput, error) {
	snap, err := uc.current()
	if err != nil {
		return recipe.FacetsOutput{}, err
	}
	return recipe.FacetsOutput{
		Courses:  snap.courses,
		Tags:     snap.tags,
		Total:    len(snap.recipes),
		LoadedAt: snap.loadedAt,
	}, nil
}
