/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the frontend

ROUTE GROUPS:
  /api/households        Archetype catalog
  /api/impact            Static impact calculator
  /api/timeline          Ten-year AI-shock projector
  /api/agents            Population micro-simulation
  /api/agents/stream     Websocket progress feed for long runs
  /api/scenarios/*       Demo presets
  /api/runs/*            Saved-run archive
  /api/reset             Archive reset (dev only)

SECURITY NOTE:
  No authentication middleware. All endpoints are public; deploy behind
  a gateway if that changes.

SEE ALSO:
  - handlers.go: Handler implementations
  - stream.go: The websocket handler
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/households", h.ListHouseholds)

		r.Post("/impact", h.RunImpact)
		r.Post("/timeline", h.RunTimeline)

		r.Route("/agents", func(r chi.Router) {
			r.Post("/", h.RunAgents)
			r.Get("/stream", h.StreamAgents)
		})

		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
		})

		r.Route("/runs", func(r chi.Router) {
			r.Get("/", h.ListRuns)
			r.Post("/", h.SaveRun)
			r.Get("/{id}", h.GetRun)
			r.Delete("/{id}", h.DeleteRun)
		})

		r.Post("/reset", h.ResetArchive)
	})

	return r
}
