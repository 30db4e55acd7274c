// Package handlers provides HTTP handlers for the orders screen.
package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/httpx"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
)

// OrderHandlers contains HTTP handlers for the orders API
type OrderHandlers struct {
	service  *orders.Service
	validate *validatorv10.Validate
	log      zerolog.Logger
}

// NewOrderHandlers creates a new order handlers instance
func NewOrderHandlers(service *orders.Service, validate *validatorv10.Validate, log zerolog.Logger) *OrderHandlers {
	return &OrderHandlers{
		service:  service,
		validate: validate,
		log:      log.With().Str("handler", "orders").Logger(),
	}
}

// HandleList returns the filtered, sorted orders view.
// GET /api/orders?status=&quick=&from=&to=&sortKey=&sortDir=
func (h *OrderHandlers) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := domain.FilterCriteria{Status: q.Get("status")}

	// Quick presets take precedence over explicit bounds; both resolve to the
	// same normalized inclusive range.
	if quick := q.Get("quick"); quick != "" {
		if dr, ok := domain.ResolvePreset(domain.QuickPreset(quick), time.Now()); ok {
			criteria.DateRange = &dr
		} else {
			httpx.WriteError(w, http.StatusBadRequest, "unknown quick preset: "+quick)
			return
		}
	} else if dr, ok := parseDateBounds(q.Get("from"), q.Get("to")); ok {
		criteria.DateRange = &dr
	}

	h.service.SetCriteria(criteria)
	h.service.SetSort(domain.SortSpec{
		Key:       domain.SortKey(q.Get("sortKey")),
		Direction: domain.SortDirection(q.Get("sortDir")),
	})

	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}

// updateStatusRequest is the body for status mutations.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof='Order Placed' Packing Shipped 'Out For Delivery' Delivered"`
}

// HandleUpdateStatus mutates an order's status via the shop API, then
// refetches the full order set.
// POST /api/orders/{id}/status
func (h *OrderHandlers) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	var req updateStatusRequest
	if err := httpx.BindAndValidate(w, r, &req, h.validate); err != nil {
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, domain.OrderStatus(req.Status)); err != nil {
		h.log.Error().Err(err).Str("order_id", orderID).Msg("Failed to update order status")
		httpx.WriteError(w, http.StatusBadGateway, "failed to update order status")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}

// HandleRefresh triggers an explicit refetch.
// POST /api/orders/refresh
func (h *OrderHandlers) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Refresh(r.Context()); err != nil {
		h.log.Error().Err(err).Msg("Failed to refresh orders")
		httpx.WriteError(w, http.StatusBadGateway, "failed to refresh orders")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, h.service.View())
}

// parseDateBounds parses from/to as YYYY-MM-DD. A half-specified pair is not
// an error; it simply leaves the date axis inactive.
func parseDateBounds(from, to string) (domain.DateRange, bool) {
	if from == "" || to == "" {
		return domain.DateRange{}, false
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return domain.DateRange{}, false
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return domain.DateRange{}, false
	}

	return domain.DateRange{Start: start, End: end}, true
}
