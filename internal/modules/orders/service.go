package orders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/cache"
	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/events"
	"github.com/anujay00/alpha-admin/internal/metrics"
)

// ShopAPI is the collaborator boundary for orders. The client owns network
// error policy; the service only decides what happens to the snapshot.
type ShopAPI interface {
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error
}

// View is what the presentation layer consumes for the orders screen.
type View struct {
	State    domain.ScreenState    `json:"state"`
	Error    string                `json:"error,omitempty"`
	Orders   []domain.Order        `json:"orders"`
	Total    int                   `json:"total"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Sort     domain.SortSpec       `json:"sort"`
}

// Service is the view projector for the orders screen. On any change to the
// record store, the filter criteria or the sort spec it recomputes
// Sort(Filter(store, criteria)) from the full snapshot, never from a
// previously filtered subset, so filter axes stay independent and
// order-insensitive.
type Service struct {
	mu        sync.Mutex
	store     *Store
	client    ShopAPI
	snapshots *cache.SnapshotCache // optional warm-start cache, may be nil
	bus       *events.Bus
	log       zerolog.Logger
	nowFunc   func() time.Time

	criteria  domain.FilterCriteria
	sortSpec  domain.SortSpec
	state     domain.ScreenState
	lastError string
	view      []domain.Order
}

// NewService creates the orders view projector.
func NewService(store *Store, client ShopAPI, snapshots *cache.SnapshotCache, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		snapshots: snapshots,
		bus:       bus,
		log:       log.With().Str("service", "orders").Logger(),
		nowFunc:   time.Now,
		sortSpec:  domain.SortSpec{}.Normalize(),
		state:     domain.ScreenUninitialized,
	}
}

// WarmStart loads the cached snapshot from the previous run, if any, so the
// screen is Ready with stale data before the first fetch completes.
func (s *Service) WarmStart() bool {
	if s.snapshots == nil {
		return false
	}

	var records []domain.Order
	fetchedAt, ok, err := s.snapshots.Load(cache.SnapshotOrders, &records)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load cached order snapshot")
		return false
	}
	if !ok {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Replace(records, "warm-start", fetchedAt)
	s.state = domain.ScreenReady
	s.recomputeLocked()

	s.log.Info().Int("count", len(records)).Time("fetched_at", fetchedAt).Msg("Warm-started orders from cache")
	return true
}

// Refresh fetches the full order set and replaces the snapshot wholesale.
// While the fetch is in flight the orders list is blanked to an explicit
// loading placeholder; a failed fetch leaves the screen in Error with the
// list still blank.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = domain.ScreenLoading
	s.view = nil
	s.mu.Unlock()

	fetchID := uuid.NewString()
	records, err := s.client.FetchOrders(ctx)
	if err != nil {
		metrics.RecordFetch("orders", false)
		s.mu.Lock()
		s.state = domain.ScreenError
		s.lastError = err.Error()
		s.mu.Unlock()

		s.bus.Publish(events.FetchFailed, "orders", map[string]interface{}{
			"fetch_id": fetchID,
			"error":    err.Error(),
		})
		return fmt.Errorf("failed to refresh orders: %w", err)
	}
	metrics.RecordFetch("orders", true)

	now := s.nowFunc()

	s.mu.Lock()
	seq := s.store.Replace(records, fetchID, now)
	s.state = domain.ScreenReady
	s.lastError = ""
	s.recomputeLocked()
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.Save(cache.SnapshotOrders, fetchID, now, records); err != nil {
			s.log.Warn().Err(err).Msg("Failed to cache order snapshot")
		}
	}

	s.bus.Publish(events.OrdersReplaced, "orders", map[string]interface{}{
		"fetch_id": fetchID,
		"seq":      seq,
		"count":    len(records),
	})
	return nil
}

// SetCriteria replaces the filter criteria and recomputes the view.
func (s *Service) SetCriteria(criteria domain.FilterCriteria) {
	s.mu.Lock()
	s.criteria = criteria
	s.recomputeLocked()
	s.mu.Unlock()

	s.bus.Publish(events.CriteriaChanged, "orders", nil)
}

// SetSort replaces the sort spec and recomputes the view.
func (s *Service) SetSort(spec domain.SortSpec) {
	s.mu.Lock()
	s.sortSpec = spec.Normalize()
	s.recomputeLocked()
	s.mu.Unlock()

	s.bus.Publish(events.CriteriaChanged, "orders", nil)
}

// UpdateStatus performs the status mutation remotely, then triggers a full
// refetch instead of patching the record locally. The shop side derives state
// from status changes, so only a refetch guarantees consistency.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("unknown order status %q", status)
	}

	if err := s.client.UpdateOrderStatus(ctx, orderID, status); err != nil {
		return fmt.Errorf("failed to update status for order %s: %w", orderID, err)
	}

	s.bus.Publish(events.OrderStatusMutated, "orders", map[string]interface{}{
		"order_id": orderID,
		"status":   string(status),
	})

	return s.Refresh(ctx)
}

// View returns the current published view.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Order, len(s.view))
	copy(out, s.view)

	return View{
		State:    s.state,
		Error:    s.lastError,
		Orders:   out,
		Total:    len(out),
		Criteria: s.criteria,
		Sort:     s.sortSpec,
	}
}

// Store exposes the underlying record store for the dashboard aggregations,
// which always run against the full unfiltered snapshot.
func (s *Service) Store() *Store {
	return s.store
}

// recomputeLocked rebuilds the view from the full store snapshot. Caller must
// hold s.mu. Recomputation is idempotent; no incremental state survives
// between runs.
func (s *Service) recomputeLocked() {
	s.view = Sort(Filter(s.store.Snapshot(), s.criteria), s.sortSpec)
	metrics.RecordRecompute("orders")
	s.bus.Publish(events.ViewRecomputed, "orders", map[string]interface{}{"count": len(s.view)})
}
