package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"recipe-browser/internal/recipe"
	recipeHTTP "recipe-browser/internal/recipe/delivery/http"
	"recipe-browser/pkg/log"
	"recipe-browser/pkg/markup"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Cross-cutting
	corsOrigins     []string
	rateLimitPerMin int

	// Recipe domain
	recipeUC   recipe.UseCase
	renderer   *markup.Renderer
	photos     recipeHTTP.PhotoService
	photoProxy bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	CORSOrigins     []string
	RateLimitPerMin int

	// Recipe domain
	RecipeUC recipe.UseCase
	Renderer *markup.Renderer
	Photos   recipeHTTP.PhotoService // nil disables the thumbnail route
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		corsOrigins:     cfg.CORSOrigins,
		rateLimitPerMin: cfg.RateLimitPerMin,
		recipeUC:        cfg.RecipeUC,
		renderer:        cfg.Renderer,
		photos:          cfg.Photos,
		photoProxy:      cfg.Photos != nil,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = 10 * time.Second
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.recipeUC == nil {
		return errors.New("recipe usecase is required")
	}
	if srv.renderer == nil {
		return errors.New("renderer is required")
	}
	return nil
}
