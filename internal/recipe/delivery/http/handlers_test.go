package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"recipe-browser/internal/model"
	"recipe-browser/internal/recipe"
	"recipe-browser/pkg/log"
	"recipe-browser/pkg/markup"
	"recipe-browser/pkg/photo"
)

type fakeUseCase struct {
	err       error
	recipes   []model.Recipe
	lastInput recipe.ListInput
}

func (f *fakeUseCase) Load(ctx context.Context) error { return f.err }
func (f *fakeUseCase) State() recipe.State {
	if f.err != nil {
		return recipe.StateFailed
	}
	return recipe.StateLoaded
}

func (f *fakeUseCase) List(ctx context.Context, input recipe.ListInput) (recipe.ListOutput, error) {
	f.lastInput = input
	if f.err != nil {
		return recipe.ListOutput{}, f.err
	}
	return recipe.ListOutput{Recipes: f.recipes, Total: len(f.recipes), Courses: []string{"Main"}, Criteria: input.Criteria}, nil
}

func (f *fakeUseCase) Facets(ctx context.Context) (recipe.FacetsOutput, error) {
	if f.err != nil {
		return recipe.FacetsOutput{}, f.err
	}
	return recipe.FacetsOutput{Courses: []string{"Main"}, Total: len(f.recipes)}, nil
}

func (f *fakeUseCase) Detail(ctx context.Context, id string) (recipe.DetailOutput, error) {
	if f.err != nil {
		return recipe.DetailOutput{}, f.err
	}
	for _, r := range f.recipes {
		if r.ID == id {
			return recipe.DetailOutput{Recipe: r}, nil
		}
	}
	return recipe.DetailOutput{}, recipe.ErrRecipeNotFound
}

type fakePhotos struct {
	err        error
	lastURL    string
	lastHeight int
}

func (f *fakePhotos) Thumbnail(ctx context.Context, url string, height int) (photo.Thumbnail, error) {
	f.lastURL, f.lastHeight = url, height
	if f.err != nil {
		return photo.Thumbnail{}, f.err
	}
	return photo.Thumbnail{Data: []byte("png"), ContentType: "image/png", Width: 20, Height: 10}, nil
}

func (f *fakePhotos) DefaultHeight() int { return 300 }

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func setup(uc recipe.UseCase, photos PhotoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(log.NewNop(), uc, markup.NewRenderer(markup.PolicySanitize), photos)
	RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

func do(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("unmarshal: %v (%s)", err, w.Body.String())
		}
	}
	return w, env
}

func sample() []model.Recipe {
	return []model.Recipe{
		{ID: "r1", Title: "Pasta", Course: "Main", Tags: "Quick, Italian", Description: "<b>ok</b><script>x</script>", PhotoURL: "https://img/p.png"},
		{ID: "r2", Title: "Salad"},
	}
}

func TestList(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{recipes: sample()}
		w, env := do(t, setup(uc, &fakePhotos{}), "/api/v1/recipes?q=pa&course=Main&tag=quick")

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastInput.Criteria != (recipe.Criteria{Query: "pa", Course: "Main", Tag: "quick"}) {
			t.Errorf("criteria not bound: %+v", uc.lastInput.Criteria)
		}

		var data listResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.Count != 2 || data.Total != 2 {
			t.Errorf("unexpected counts %d/%d", data.Count, data.Total)
		}
		first := data.Recipes[0]
		if first.DescriptionHTML != "<b>ok</b>" {
			t.Errorf("description not sanitized: %q", first.DescriptionHTML)
		}
		if first.ThumbnailURL != "/api/v1/recipes/r1/photo" {
			t.Errorf("unexpected thumbnail url %q", first.ThumbnailURL)
		}
		if len(first.TagList) != 2 || first.TagList[1] != "Italian" {
			t.Errorf("unexpected tag list %v", first.TagList)
		}
		if data.Recipes[1].Ingredients == nil || data.Recipes[1].ThumbnailURL != "" {
			t.Errorf("unexpected second recipe %+v", data.Recipes[1])
		}
		if data.Tags == nil {
			t.Error("tags must serialize as an empty list")
		}
	})

	t.Run("Long Filter Values Accepted", func(t *testing.T) {
		long := strings.Repeat("c", 201)
		uc := &fakeUseCase{recipes: []model.Recipe{{ID: "r1", Title: "Long", Course: long}}}
		w, _ := do(t, setup(uc, nil), "/api/v1/recipes?course="+long+"&tag="+long+"&q="+long)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if uc.lastInput.Criteria.Course != long || uc.lastInput.Criteria.Tag != long || uc.lastInput.Criteria.Query != long {
			t.Errorf("criteria not bound: %+v", uc.lastInput.Criteria)
		}
	})

	t.Run("Load Failure", func(t *testing.T) {
		w, env := do(t, setup(&fakeUseCase{err: recipe.ErrLoadFailure}, nil), "/api/v1/recipes")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
		if env.Message != "recipes.json could not be loaded" {
			t.Errorf("unexpected message %q", env.Message)
		}
	})

	t.Run("Still Loading", func(t *testing.T) {
		w, _ := do(t, setup(&fakeUseCase{err: recipe.ErrNotLoaded}, nil), "/api/v1/recipes")
		if w.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", w.Code)
		}
	})
}

func TestFacets(t *testing.T) {
	w, env := do(t, setup(&fakeUseCase{recipes: sample()}, nil), "/api/v1/recipes/facets")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data struct {
		Courses []string `json:"courses"`
		Tags    []string `json:"tags"`
		Total   int      `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatal(err)
	}
	if len(data.Courses) != 1 || data.Total != 2 || data.Tags == nil {
		t.Errorf("unexpected facets %+v", data)
	}
}

func TestDetail(t *testing.T) {
	r := setup(&fakeUseCase{recipes: sample()}, nil)

	t.Run("Found", func(t *testing.T) {
		w, env := do(t, r, "/api/v1/recipes/r2")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var data detailResp
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.Recipe.Title != "Salad" {
			t.Errorf("unexpected recipe %+v", data.Recipe)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		w, _ := do(t, r, "/api/v1/recipes/nope")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}

func TestPhoto(t *testing.T) {
	t.Run("Thumbnail", func(t *testing.T) {
		photos := &fakePhotos{}
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, photos), "/api/v1/recipes/r1/photo?height=120")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if w.Header().Get("Content-Type") != "image/png" {
			t.Errorf("unexpected content type %s", w.Header().Get("Content-Type"))
		}
		if photos.lastURL != "https://img/p.png" || photos.lastHeight != 120 {
			t.Errorf("unexpected thumbnail call %s %d", photos.lastURL, photos.lastHeight)
		}
	})

	t.Run("No Photo", func(t *testing.T) {
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, &fakePhotos{}), "/api/v1/recipes/r2/photo")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, &fakePhotos{err: photo.ErrUpstream}), "/api/v1/recipes/r1/photo")
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})

	t.Run("Bad Height", func(t *testing.T) {
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, &fakePhotos{}), "/api/v1/recipes/r1/photo?height=abc")
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Default Height", func(t *testing.T) {
		photos := &fakePhotos{}
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, photos), "/api/v1/recipes/r1/photo")
		if w.Code != http.StatusOK || photos.lastHeight != 300 {
			t.Errorf("expected default height 300, got %d (status %d)", photos.lastHeight, w.Code)
		}
	})

	t.Run("Proxy Disabled", func(t *testing.T) {
		w, _ := do(t, setup(&fakeUseCase{recipes: sample()}, nil), "/api/v1/recipes/r1/photo")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})
}
