package orders

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/anujay00/alpha-admin/internal/domain"
)

func testLog() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func TestReplaceSwapsSnapshotWholesale(t *testing.T) {
	store := NewStore(testLog())

	seq1 := store.Replace([]domain.Order{{ID: "o-1"}}, "fetch-1", time.Now())
	seq2 := store.Replace([]domain.Order{{ID: "o-2"}, {ID: "o-3"}}, "fetch-2", time.Now())

	assert.Equal(t, uint64(1), seq1)
	assert.Equal(t, uint64(2), seq2)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "o-2", store.Snapshot()[0].ID)
}

// Known semantics, not a regression: when an older fetch resolves after a
// newer one, the older payload wins because it arrived last.
func TestReplaceIsLastWriteWins(t *testing.T) {
	store := NewStore(testLog())

	store.Replace([]domain.Order{{ID: "newer-data"}}, "fetch-2", time.Now())
	store.Replace([]domain.Order{{ID: "older-data"}}, "fetch-1", time.Now())

	assert.Equal(t, "older-data", store.Snapshot()[0].ID)
}

func TestSnapshotReturnsCopy(t *testing.T) {
	store := NewStore(testLog())
	store.Replace([]domain.Order{{ID: "o-1", Status: domain.StatusPacking}}, "fetch-1", time.Now())

	snap := store.Snapshot()
	snap[0].Status = domain.StatusDelivered

	assert.Equal(t, domain.StatusPacking, store.Snapshot()[0].Status)
}

func TestEmptyStore(t *testing.T) {
	store := NewStore(testLog())
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.Snapshot())
	assert.True(t, store.LoadedAt().IsZero())
}
