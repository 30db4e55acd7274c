package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/modules/dashboard"
	"github.com/anujay00/alpha-admin/internal/modules/orders"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	log := zerolog.New(nil).Level(zerolog.Disabled)

	store := orders.NewStore(log)
	store.Replace([]domain.Order{
		{ID: "o-1", Date: time.Now(), Amount: 100, Status: domain.StatusDelivered},
	}, "test", time.Now())

	r := chi.NewRouter()
	NewDashboardHandlers(dashboard.NewService(store, log), log).RegisterRoutes(r)
	return r
}

func TestHandleDashboardDefaultsToWeek(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var view dashboard.View
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, domain.RangeWeek, view.Range)
	assert.Equal(t, 1, view.Stats.TotalOrders)
	assert.Len(t, view.Summary, 5)
}

func TestHandleDashboardRejectsUnknownRange(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard?range=decade", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDashboardRejectsMalformedDate(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard?range=custom&startDate=01-02-2024", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
