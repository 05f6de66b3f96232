package usecase

import (
	"context"
	"fmt"
	"time"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/metrics"
)

// Load runs the single startup load. Only the first call touches the
// repository; later calls return the recorded outcome.
func (uc *implUseCase) Load(ctx context.Context) error {
	uc.once.Do(func() {
		recipes, err := uc.repo.Load(ctx)

		uc.mu.Lock()
		defer uc.mu.Unlock()

		if err != nil {
			uc.l.Errorf(ctx, "internal.recipe.usecase.Load: %v", err)
			uc.state = recipe.StateFailed
			uc.loadErr = fmt.Errorf("%w: %v", recipe.ErrLoadFailure, err)
			metrics.RecipesLoadFailuresTotal.Inc()
			return
		}

		uc.snap = newSnapshot(recipes)
		uc.state = recipe.StateLoaded
		metrics.RecipesLoaded.Set(float64(len(recipes)))
		uc.l.Infof(ctx, "internal.recipe.usecase.Load: %d recipes, %d courses, %d tags",
			len(recipes), len(uc.snap.courses), len(uc.snap.tags))
	})

	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.loadErr
}

// State reports where the collection is in its lifecycle.
func (uc *implUseCase) State() recipe.State {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// current returns the loaded snapshot or the error matching the state.
func (uc *implUseCase) current() (*snapshot, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	switch uc.state {
	case recipe.StateLoaded:
		return uc.snap, nil
	case recipe.StateFailed:
		return nil, uc.loadErr
	default:
		return nil, recipe.ErrNotLoaded
	}
}

func newSnapshot(recipes []model.Recipe) *snapshot {
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	byID := make(map[string]int, len(recipes))
	for i, r := range recipes {
		byID[r.ID] = i
	}
	return &snapshot{
		recipes:  recipes,
		byID:     byID,
		courses:  availableCourses(recipes),
		tags:     availableTags(recipes),
		loadedAt: time.Now(),
	}
}
