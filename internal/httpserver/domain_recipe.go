package httpserver

import (
	"context"

	"recipe-browser/internal/middleware"
	recipeHTTP "recipe-browser/internal/recipe/delivery/http"
	recipeWeb "recipe-browser/internal/recipe/delivery/web"
)

// setupRecipeDomain registers the JSON API under /api/v1/recipes and the
// browser page at /. The use case is built by the caller so that the load can
// start before the server listens.
func (srv *HTTPServer) setupRecipeDomain(ctx context.Context, mw middleware.Middleware) error {
	// 1. JSON API
	apiHandler := recipeHTTP.New(srv.l, srv.recipeUC, srv.renderer, srv.photos)
	api := srv.gin.Group("/api/v1", mw.RateLimit())
	recipeHTTP.RegisterRoutes(api.Group("/recipes"), apiHandler)

	// 2. Browser page
	webHandler, err := recipeWeb.New(srv.l, srv.recipeUC, srv.renderer, srv.photoProxy)
	if err != nil {
		return err
	}
	recipeWeb.RegisterRoutes(srv.gin.Group("", mw.RateLimit()), webHandler)

	srv.l.Infof(ctx, "Recipe domain registered (description policy %s, photo proxy %t)", srv.renderer.Policy(), srv.photoProxy)
	return nil
}
