// Package api exposes the loss engine over HTTP. Handlers translate JSON
// requests into case files, run the engine, and serialize the analysis back.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RouterConfig carries the wiring options for NewRouter.
type RouterConfig struct {
	// AllowedOrigins for CORS. Empty means same-origin only.
	AllowedOrigins []string

	// Authorizer gates every /api route. Nil means open access.
	Authorizer Authorizer
}

// NewRouter creates a router with the middleware stack and all routes
// configured.
func NewRouter(h *Handler, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	auth := cfg.Authorizer
	if auth == nil {
		auth = AllowAll{}
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(RequireAuthorization(auth))

		r.Get("/health", h.Health)
		r.Post("/analyses", h.RunAnalysis)
		r.Post("/aef", h.ComposeAEF)
	})

	return r
}
