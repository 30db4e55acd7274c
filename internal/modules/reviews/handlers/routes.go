package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all review routes
func (h *ReviewHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/reviews", func(r chi.Router) {
		r.Get("/", h.HandleList)
		r.Post("/refresh", h.HandleRefresh)
		r.Delete("/{id}", h.HandleDelete)
	})
}
