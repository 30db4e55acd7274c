// Package reviews holds the review record store, the pure filter/sort
// engines and the view projector for the reviews screen.
package reviews

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Store holds the authoritative unfiltered review snapshot. Like the order
// store it is replaced wholesale on fetch (last-write-wins between
// overlapping fetches), but it additionally supports in-place removal:
// deleting a review has no server-side derived state, so a successful delete
// drops the record from the snapshot directly instead of refetching.
type Store struct {
	mu       sync.RWMutex
	records  []domain.Review
	seq      uint64
	fetchID  string
	loadedAt time.Time
	log      zerolog.Logger
}

// NewStore creates an empty review store.
func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log.With().Str("store", "reviews").Logger()}
}

// Replace swaps in a fresh snapshot wholesale and returns its sequence number.
func (s *Store) Replace(records []domain.Review, fetchID string, loadedAt time.Time) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.records = records
	s.fetchID = fetchID
	s.loadedAt = loadedAt

	s.log.Debug().
		Uint64("seq", s.seq).
		Str("fetch_id", fetchID).
		Int("count", len(records)).
		Msg("Review snapshot replaced")

	return s.seq
}

// Remove drops a single review from the current snapshot. Returns false when
// the id is not present.
func (s *Store) Remove(reviewID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.records {
		if r.ID == reviewID {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the current records.
func (s *Store) Snapshot() []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Review, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records in the current snapshot.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// LoadedAt returns when the current snapshot was loaded; zero before the
// first load.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
