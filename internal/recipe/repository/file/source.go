package file

import (
	"context"
	"fmt"
	"os"

	"recipe-browser/internal/recipe/repository"
)

func (s *implSource) Name() string { return "file:" + s.path }

func (s *implSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToFetch, err)
	}
	return data, nil
}
