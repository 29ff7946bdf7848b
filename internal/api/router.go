package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api/v1/stats", func(r chi.Router) {
		r.Get("/summary", s.handleSummary)
		r.Get("/daily", s.handleDaily)
		r.Get("/sequence", s.handleSequence)
		r.Get("/states", s.handleStates)
		r.Get("/volume", s.handleVolume)
	})
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
