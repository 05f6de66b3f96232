package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"

	"recipe-browser/config"
	"recipe-browser/internal/recipe"
	"recipe-browser/internal/recipe/repository"
	"recipe-browser/internal/recipe/repository/file"
	"recipe-browser/internal/recipe/repository/remote"
	"recipe-browser/internal/recipe/usecase"
	"recipe-browser/pkg/log"
)

type report struct {
	Source   string      `json:"source"`
	Total    int         `json:"total"`
	Courses  []string    `json:"courses"`
	Tags     []string    `json:"tags"`
	Criteria criteria    `json:"criteria"`
	Visible  []visibleID `json:"visible"`
}

type criteria struct {
	Query  string `json:"q,omitempty"`
	Course string `json:"course,omitempty"`
	Tag    string `json:"tag,omitempty"`
}

type visibleID struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Course string `json:"course,omitempty"`
}

// main loads the configured collection once, applies the filters given on the
// command line and prints the facets and visible recipes as JSON. It exits
// non-zero when the data file cannot be loaded, which makes it usable as a
// pre-deploy check of recipes.json.
func main() {
	var (
		source = flag.String("source", "", "recipes.json path or URL (defaults to recipes.source)")
		query  = flag.String("q", "", "free-text filter")
		course = flag.String("course", "", "course filter")
		tag    = flag.String("tag", "", "tag filter")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}
	if *source != "" {
		cfg.Recipes.Source = *source
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var src repository.Source
	if cfg.Recipes.IsRemote() {
		src = remote.New(cfg.Recipes.Source, cfg.Recipes.FetchTimeout)
	} else {
		src = file.New(cfg.Recipes.Source)
	}

	uc := usecase.New(repository.New(src, logger), logger, usecase.Options{})
	if err := uc.Load(ctx); err != nil {
		logger.Error(ctx, "Failed to load recipes: ", err)
		os.Exit(1)
	}

	out, err := uc.List(ctx, recipe.ListInput{
		Criteria: recipe.Criteria{Query: *query, Course: *course, Tag: *tag},
	})
	if err != nil {
		logger.Error(ctx, "Failed to filter recipes: ", err)
		os.Exit(1)
	}

	r := report{
		Source:   src.Name(),
		Total:    out.Total,
		Courses:  out.Courses,
		Tags:     out.Tags,
		Criteria: criteria{Query: *query, Course: *course, Tag: *tag},
		Visible:  make([]visibleID, len(out.Recipes)),
	}
	for i, rec := range out.Recipes {
		r.Visible[i] = visibleID{ID: rec.ID, Title: rec.Title, Course: rec.Course}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		logger.Error(ctx, "Failed to write report: ", err)
		os.Exit(1)
	}
}
