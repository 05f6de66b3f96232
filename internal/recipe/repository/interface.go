package repository

import (
	"context"

	"recipe-browser/internal/model"
)

// Source retrieves the raw recipe data file.
type Source interface {
	// Name identifies the source in logs ("file:./data/recipes.json").
	Name() string
	Fetch(ctx context.Context) ([]byte, error)
}

// Repository loads the canonical recipe collection.
type Repository interface {
	Load(ctx context.Context) ([]model.Recipe, error)
}
