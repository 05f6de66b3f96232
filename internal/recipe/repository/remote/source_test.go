package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"recipe-browser/internal/recipe/repository"
	"recipe-browser/internal/recipe/repository/remote"
)

func TestFetch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				t.Errorf("expected GET, got %s", r.Method)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"title":"Pasta"}]`))
		}))
		defer srv.Close()

		src := remote.New(srv.URL+"/recipes.json", time.Second)
		body, err := src.Fetch(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(body) != `[{"title":"Pasta"}]` {
			t.Errorf("unexpected body %s", body)
		}
		if src.Name() != "http:"+srv.URL+"/recipes.json" {
			t.Errorf("unexpected name %s", src.Name())
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		_, err := remote.NewWithClient(srv.URL, srv.Client()).Fetch(context.Background())
		if !errors.Is(err, repository.ErrUnexpectedCode) {
			t.Errorf("expected ErrUnexpectedCode, got %v", err)
		}
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := remote.New(url, time.Second).Fetch(context.Background())
		if !errors.Is(err, repository.ErrFailedToFetch) {
			t.Errorf("expected ErrFailedToFetch, got %v", err)
		}
	})
}
