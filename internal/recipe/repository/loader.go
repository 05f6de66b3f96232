package repository

import (
	"context"
	"fmt"

	"recipe-browser/internal/model"
	"recipe-browser/pkg/log"
)

type implRepository struct {
	src Source
	l   log.Logger
}

// New creates a Repository reading from src.
func New(src Source, l log.Logger) Repository {
	if src == nil {
		panic("recipe/repository: source is required")
	}
	return &implRepository{src: src, l: l}
}

// Load fetches, decodes and normalizes the whole collection. There is no
// partial result: any failure returns a nil slice.
func (r *implRepository) Load(ctx context.Context) ([]model.Recipe, error) {
	data, err := r.src.Fetch(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s fetch %s: %v", r.dsn("Load"), r.src.Name(), err)
		return nil, fmt.Errorf("fetch %s: %w", r.src.Name(), err)
	}

	raw, err := Decode(data)
	if err != nil {
		r.l.Errorf(ctx, "%s decode %s: %v", r.dsn("Load"), r.src.Name(), err)
		return nil, fmt.Errorf("decode %s: %w", r.src.Name(), err)
	}

	recipes := Normalize(raw)
	r.l.Infof(ctx, "%s: %d recipes from %s", r.dsn("Load"), len(recipes), r.src.Name())
	return recipes, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("internal.recipe.repository.%s", method)
}
