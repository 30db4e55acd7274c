package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers the dashboard route
func (h *DashboardHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.HandleDashboard)
}
