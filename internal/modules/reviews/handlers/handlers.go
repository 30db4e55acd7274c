// Package handlers provides HTTP handlers for the reviews screen.
package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/httpx"
	"github.com/anujay00/alpha-admin/internal/modules/reviews"
)

// ReviewHandlers contains HTTP handlers for the reviews API
type ReviewHandlers struct {
	service *reviews.Service
	log     zerolog.Logger
}

// NewReviewHandlers creates a new review handlers instance
func NewReviewHandlers(service *reviews.Service, log zerolog.Logger) *ReviewHandlers {
	return &ReviewHandlers{
		service: service,
		log:     log.With().Str("handler", "reviews").Logger(),
	}
}

// HandleList returns the searched, sorted reviews view.
// GET /api/reviews?search=&sortKey=&sortDir=
func (h *ReviewHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	h.service.SetCriteria(domain.FilterCriteria{Search: q.Get("search")})
	h.service.SetSort(domain.SortSpec{
		Key:       domain.SortKey(q.Get("sortKey")),
		Direction: domain.SortDirection(q.Get("sortDir")),
	})

	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}

// HandleDelete deletes a review via the shop API and removes it from the
// local snapshot.
// DELETE /api/reviews/{id}
func (h *ReviewHandlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), reviewID); err != nil {
		h.log.Error().Err(err).Str("review_id", reviewID).Msg("Failed to delete review")
		httpx.WriteError(w, http.StatusBadGateway, "failed to delete review")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}

// HandleRefresh triggers an explicit refetch.
// POST /api/reviews/refresh
func (h *ReviewHandlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.log.Error().Err(err).Msg("Failed to refresh reviews")
		httpx.WriteError(w, http.StatusBadGateway, "failed to refresh reviews")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}
