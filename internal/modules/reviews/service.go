package reviews

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"

	"github.com/anujay00/alpha-admin/internal/cache"
	"github.com/anujay00/alpha-admin/internal/domain"
	"github.com/anujay00/alpha-admin/internal/events"
	"github.com/anujay00/alpha-admin/internal/metrics"
)

// ShopAPI is the collaborator boundary for reviews.
type ShopAPI interface {
	FetchReviews(ctx context.Context) ([]domain.Review, error)
	DeleteReview(ctx context.Context, reviewID string) error
}

// Stats summarizes the full review snapshot.
type Stats struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"average_rating"` // 0 when there are no reviews
}

// View is what the presentation layer consumes for the reviews screen.
type View struct {
	State    domain.ScreenState    `json:"state"`
	Error    string                `json:"error,omitempty"`
	Reviews  []domain.Review       `json:"reviews"`
	Total    int                   `json:"total"`
	Stats    Stats                 `json:"stats"`
	Criteria domain.FilterCriteria `json:"criteria"`
	Sort     domain.SortSpec       `json:"sort"`
}

// Service is the view projector for the reviews screen. Unlike the orders
// screen it keeps the previous Ready view on display while a fetch is in
// flight or after one fails (stale-but-available).
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
	view      []domain.Review
}

// NewService creates the reviews view projector.
func NewService(store *Store, client ShopAPI, snapshots *cache.SnapshotCache, bus *events.Bus, log zerolog.Logger) *Service {
	return &Service{
		store:     store,
		client:    client,
		snapshots: snapshots,
		bus:       bus,
		log:       log.With().Str("service", "reviews").Logger(),
		nowFunc:   time.Now,
		sortSpec:  domain.SortSpec{}.Normalize(),
		state:     domain.ScreenUninitialized,
	}
}

// WarmStart loads the cached snapshot from the previous run, if any.
func (s *Service) WarmStart() bool {
	if s.snapshots == nil {
		return false
	}

	var records []domain.Review
	fetchedAt, ok, err := s.snapshots.Load(cache.SnapshotReviews, &records)
	if err != nil {
		s.log.Warn().Err(err).Msg("Failed to load cached review snapshot")
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

	s.log.Info().Int("count", len(records)).Time("fetched_at", fetchedAt).Msg("Warm-started reviews from cache")
	return true
}

// Refresh fetches the full review set and replaces the snapshot wholesale.
// The previous view stays published while the fetch is in flight; a failure
// leaves it on screen with the error surfaced alongside.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.state = domain.ScreenLoading
	s.mu.Unlock()

	fetchID := uuid.NewString()
	records, err := s.client.FetchReviews(ctx)
	if err != nil {
		metrics.RecordFetch("reviews", false)
		s.mu.Lock()
		s.state = domain.ScreenError
		s.lastError = err.Error()
		s.mu.Unlock()

		s.bus.Publish(events.FetchFailed, "reviews", map[string]interface{}{
			"fetch_id": fetchID,
			"error":    err.Error(),
		})
		return fmt.Errorf("failed to refresh reviews: %w", err)
	}
	metrics.RecordFetch("reviews", true)

	now := s.nowFunc()

	s.mu.Lock()
	seq := s.store.Replace(records, fetchID, now)
	s.state = domain.ScreenReady
	s.lastError = ""
	s.recomputeLocked()
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.Save(cache.SnapshotReviews, fetchID, now, records); err != nil {
			s.log.Warn().Err(err).Msg("Failed to cache review snapshot")
		}
	}

	s.bus.Publish(events.ReviewsReplaced, "reviews", map[string]interface{}{
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

	s.bus.Publish(events.CriteriaChanged, "reviews", nil)
}

// SetSort replaces the sort spec and recomputes the view.
func (s *Service) SetSort(spec domain.SortSpec) {
	s.mu.Lock()
	s.sortSpec = spec.Normalize()
	s.recomputeLocked()
	s.mu.Unlock()

	s.bus.Publish(events.CriteriaChanged, "reviews", nil)
}

// Delete removes a review remotely, then drops it from the local snapshot.
// No refetch: deletion has no server-side derived state, so the in-place
// removal keeps the snapshot consistent.
func (s *Service) Delete(ctx context.Context, reviewID string) error {
	if err := s.client.DeleteReview(ctx, reviewID); err != nil {
		return fmt.Errorf("failed to delete review %s: %w", reviewID, err)
	}

	s.mu.Lock()
	removed := s.store.Remove(reviewID)
	s.recomputeLocked()
	s.mu.Unlock()

	if !removed {
		s.log.Warn().Str("review_id", reviewID).Msg("Deleted review was not in the local snapshot")
	}

	s.bus.Publish(events.ReviewDeleted, "reviews", map[string]interface{}{"review_id": reviewID})
	return nil
}

// View returns the current published view.
func (s *Service) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Review, len(s.view))
	copy(out, s.view)

	return View{
		State:    s.state,
		Error:    s.lastError,
		Reviews:  out,
		Total:    len(out),
		Stats:    computeStats(s.store.Snapshot()),
		Criteria: s.criteria,
		Sort:     s.sortSpec,
	}
}

// computeStats summarizes the full snapshot. Empty input yields zeroes, never
// NaN.
func computeStats(records []domain.Review) Stats {
	if len(records) == 0 {
		return Stats{}
	}

	ratings := make([]float64, len(records))
	for i, r := range records {
		ratings[i] = float64(r.Rating)
	}

	avg := stat.Mean(ratings, nil)
	return Stats{
		Total:         len(records),
		AverageRating: math.Round(avg*100) / 100,
	}
}

// recomputeLocked rebuilds the view from the full store snapshot. Caller must
// hold s.mu.
func (s *Service) recomputeLocked() {
	s.view = Sort(Filter(s.store.Snapshot(), s.criteria), s.sortSpec)
	metrics.RecordRecompute("reviews")
	s.bus.Publish(events.ViewRecomputed, "reviews", map[string]interface{}{"count": len(s.view)})
}
