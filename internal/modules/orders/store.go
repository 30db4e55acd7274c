// Package orders holds the order record store, the pure filter/sort engines
// and the view projector for the orders screen.
package orders

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/anujay00/alpha-admin/internal/domain"
)

// Store holds the authoritative unfiltered order snapshot as last fetched
// from the shop API. Filter, sort and aggregation never mutate it; every
// derived view is recomputed from a copy of its contents.
//
// Overlapping fetches resolve last-write-wins: whichever response arrives
// last replaces the snapshot, even if it was requested earlier. With a single
// operator this is accepted behavior, not a bug; the sequence number exists
// so the race is at least visible in logs.
type Store struct {
	mu       sync.RWMutex
	records  []domain.Order
	seq      uint64
	fetchID  string
	loadedAt time.Time
	log      zerolog.Logger
}

// NewStore creates an empty order store.
func NewStore(log zerolog.Logger) *Store {
	return &Store{log: log.With().Str("store", "orders").Logger()}
}

// Replace swaps in a fresh snapshot wholesale and returns its sequence number.
func (s *Store) Replace(records []domain.Order, fetchID string, loadedAt time.Time) uint64 {
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
		Msg("Order snapshot replaced")

	return s.seq
}

// Snapshot returns a copy of the current records. Callers may filter and sort
// the copy freely.
func (s *Store) Snapshot() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, len(s.records))
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
