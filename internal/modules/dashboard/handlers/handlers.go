// Package handlers provides the HTTP handler for the dashboard screen.
package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/httpx"
	"github.com/anujay00/alpha-admin/internal/modules/dashboard"
)

// DashboardHandlers contains HTTP handlers for the dashboard API
type DashboardHandlers struct {
	service *dashboard.Service
	log     zerolog.Logger
}

// NewDashboardHandlers creates a new dashboard handlers instance
func NewDashboardHandlers(service *dashboard.Service, log zerolog.Logger) *DashboardHandlers {
	return &DashboardHandlers{
		service: service,
		log:     log.With().Str("handler", "dashboard").Logger(),
	}
}

// HandleDashboard returns the aggregated dashboard view.
// GET /api/dashboard?range=week|month|year|custom&startDate=&endDate=
func (h *DashboardHandlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind := domain.RangeKind(q.Get("range"))
	switch kind {
	case domain.RangeWeek, domain.RangeMonth, domain.RangeYear, domain.RangeCustom:
	case "":
		kind = domain.RangeWeek
	default:
		httpx.WriteError(w, http.StatusBadRequest, "unknown range")
		return
	}

	custom, err := parseCustomBounds(q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, h.service.View(kind, custom))
}

// parseCustomBounds parses explicit bounds; a blank bound stays zero, which
// leaves the custom range inactive downstream.
func parseCustomBounds(start, end string) (domain.DateRange, error) {
	var r domain.DateRange
	var err error

	if start != "" {
		if r.Start, err = time.Parse("2006-01-02", start); err != nil {
			return domain.DateRange{}, err
		}
	}
	if end != "" {
		if r.End, err = time.Parse("2006-01-02", end); err != nil {
			return domain.DateRange{}, err
		}
	}
	return r, nil
}
