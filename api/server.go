// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"
	"time"

	"stackpages-api/api/middleware"
	"stackpages-api/core/interfaces"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const (
	// Title is the OpenAPI title of the content API
	Title = "StackPages API"

	// Version is the OpenAPI version of the content API
	Version = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests never hit the limiter
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Window"},
		MaxAge:         300,
	}))
	router.Use(chimiddleware.Recoverer)

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig(Title, Version)
	config.Info.Description = "Normalized blog, video, podcast and event feeds with a shared feed cache"

	api := humachi.New(router, config)

	return api, router
}
