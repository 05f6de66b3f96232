package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recipe-browser/config"
	_ "recipe-browser/docs" // Swagger docs
	"recipe-browser/internal/httpserver"
	recipeHTTP "recipe-browser/internal/recipe/delivery/http"
	"recipe-browser/internal/recipe/repository"
	"recipe-browser/internal/recipe/repository/file"
	"recipe-browser/internal/recipe/repository/remote"
	"recipe-browser/internal/recipe/usecase"
	"recipe-browser/pkg/log"
	"recipe-browser/pkg/markup"
	"recipe-browser/pkg/photo"
)

// @title       Recipe Browser API
// @description Read-only browser for a personal recipe collection: search, course and tag filters, recipe detail and photo thumbnails.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Recipe Browser...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Recipes source: %s", cfg.Recipes.Source)

	// 3. Recipe domain
	var src repository.Source
	if cfg.Recipes.IsRemote() {
		src = remote.New(cfg.Recipes.Source, cfg.Recipes.FetchTimeout)
	} else {
		src = file.New(cfg.Recipes.Source)
	}

	recipeRepo := repository.New(src, logger)
	recipeUC := usecase.New(recipeRepo, logger, usecase.Options{
		MemoSize: cfg.Cache.Size,
		MemoTTL:  cfg.Cache.TTL,
	})

	// The single startup load; the pages show the loading state until it settles.
	go func() {
		if err := recipeUC.Load(ctx); err != nil {
			logger.Errorf(ctx, "Recipe collection unavailable: %v", err)
		}
	}()

	renderer := markup.NewRenderer(cfg.Render.DescriptionPolicy)

	var photos recipeHTTP.PhotoService
	if cfg.Render.PhotoProxy {
		photos = photo.NewClient(photo.Config{
			DefaultHeight: cfg.Photo.DefaultHeight,
			FetchTimeout:  cfg.Photo.FetchTimeout,
			CacheSize:     cfg.Photo.CacheSize,
			CacheTTL:      cfg.Photo.CacheTTL,
		}, logger)
	} else {
		logger.Info(ctx, "Photo proxy disabled, cards link photos directly")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		CORSOrigins:     cfg.CORS.AllowedOrigins,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		RecipeUC:        recipeUC,
		Renderer:        renderer,
		Photos:          photos,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
