// Package api exposes the shelf membership and content services over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/listenupapp/shelves-server/internal/auth"
	"github.com/listenupapp/shelves-server/internal/ratelimit"
)

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	health       HealthChecker
	services     *Services
	tokens       *auth.TokenService
	writeLimiter *ratelimit.KeyedRateLimiter
	router       *chi.Mux
	api          huma.API
	logger       *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
// Writes are limited per user by writeLimiter.
func NewServer(
	health HealthChecker,
	services *Services,
	tokens *auth.TokenService,
	writeLimiter *ratelimit.KeyedRateLimiter,
	allowedOrigins []string,
	logger *slog.Logger,
) *Server {
	s := &Server{
		health:       health,
		services:     services,
		tokens:       tokens,
		writeLimiter: writeLimiter,
		router:       chi.NewRouter(),
		logger:       logger,
	}

	s.setupMiddleware(allowedOrigins)

	humaConfig := huma.DefaultConfig("Shelves API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	// No $schema links; every body is wrapped in the envelope instead.
	humaConfig.CreateHooks = nil
	humaConfig.Transformers = []huma.Transformer{s.logServerErrors, EnvelopeTransformer}

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerProfileRoutes()
	s.registerBookRoutes()
	s.registerShelfRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// API returns the underlying huma API, used to export the OpenAPI document.
func (s *Server) API() huma.API {
	return s.api
}

// setupMiddleware configures the middleware stack. It must run before any
// route is registered.
func (s *Server) setupMiddleware(allowedOrigins []string) {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	s.router.Use(authMiddleware(s.tokens))
	s.router.Use(s.writeRateLimit)
}

// logServerErrors records 5xx errors with their cause before the envelope
// strips it.
func (s *Server) logServerErrors(ctx huma.Context, status string, v any) (any, error) {
	if err, ok := v.(error); ok && len(status) == 3 && status[0] == '5' {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.cause != nil {
			err = apiErr.cause
		}
		s.logger.Error("request failed",
			"method", ctx.Operation().Method,
			"path", ctx.Operation().Path,
			"status", status,
			"error", err,
		)
	}
	return v, nil
}
