package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/agentstation/wardrobe/internal/server/handlers"
	"github.com/agentstation/wardrobe/internal/server/middleware"
	"github.com/agentstation/wardrobe/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	h := handlers.New(
		s.wardrobe,
		s.cache,
		s.wsHub,
		s.sseBroadcaster,
		s.upgrader,
		s.logger,
	)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Recovery(s.logger))
	r.Use(middleware.Logger(s.logger))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware)
	}
	if s.config.CORSEnabled {
		r.Use(middleware.CORS(middleware.NewCORSConfig(s.config.CORSOrigins)))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		response.MethodNotAllowed(w, r.Method)
	})

	r.Get("/health", h.HandleHealth)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	r.Route(s.config.PathPrefix, func(r chi.Router) {
		r.Get("/health", h.HandleHealth)
		r.Get("/ready", h.HandleReady)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", h.HandleListItems)
			r.Post("/", h.HandleAddItem)
			r.Get("/filter", h.HandleFilterItems)
			r.Delete("/{id}", h.HandleRemoveItem)
		})

		r.Get("/outfits", h.HandleOutfit)
		r.Get("/counts", h.HandleCounts)

		r.Post("/save", h.HandleSave)
		r.Post("/load", h.HandleLoad)

		r.Route("/events", func(r chi.Router) {
			r.Get("/ws", h.HandleWebSocket)
			r.Get("/stream", h.HandleSSE)
		})
	})

	return r
}
