package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"recipe-browser/internal/recipe/repository"
)

func (s *implSource) Name() string { return "http:" + s.url }

// Fetch performs a single GET of the data file. Non-2xx answers are errors.
func (s *implSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", repository.ErrUnexpectedCode, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", repository.ErrFailedToFetch, err)
	}
	return body, nil
}
