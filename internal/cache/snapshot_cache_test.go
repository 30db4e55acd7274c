package cache

import (
	"database/sql"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/anujay00/alpha-admin/internal/domain"
)

func setupCache(t *testing.T) *SnapshotCache {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := zerolog.New(nil).Level(zerolog.Disabled)
	c, err := NewSnapshotCache(db, log)
	require.NoError(t, err)
	return c
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	c := setupCache(t)

	orders := []domain.Order{
		{
			ID:     "o-1",
			Date:   time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC),
			Amount: 100,
			Status: domain.StatusDelivered,
			Items:  []domain.OrderItem{{Name: "Shirt", Quantity: 2, Size: "M"}},
		},
		{ID: "o-2", Amount: 50, Status: domain.StatusPacking},
	}

	fetchedAt := time.Date(2024, time.March, 10, 10, 0, 0, 0, time.UTC)
	require.NoError(t, c.Save(SnapshotOrders, "fetch-1", fetchedAt, orders))

	var loaded []domain.Order
	at, ok, err := c.Load(SnapshotOrders, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fetchedAt.Unix(), at.Unix())
	require.Len(t, loaded, 2)
	assert.Equal(t, "o-1", loaded[0].ID)
	assert.Equal(t, domain.StatusDelivered, loaded[0].Status)
	assert.Equal(t, "Shirt", loaded[0].Items[0].Name)
}

func TestLoadMissingSnapshot(t *testing.T) {
	c := setupCache(t)

	var loaded []domain.Review
	_, ok, err := c.Load(SnapshotReviews, &loaded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	c := setupCache(t)

	first := []domain.Review{{ID: "r-1", Rating: 5}}
	second := []domain.Review{{ID: "r-2", Rating: 2}, {ID: "r-3", Rating: 4}}

	require.NoError(t, c.Save(SnapshotReviews, "fetch-1", time.Now(), first))
	require.NoError(t, c.Save(SnapshotReviews, "fetch-2", time.Now(), second))

	var loaded []domain.Review
	_, ok, err := c.Load(SnapshotReviews, &loaded)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded, 2)
	assert.Equal(t, "r-2", loaded[0].ID)
}

func TestAge(t *testing.T) {
	c := setupCache(t)

	now := time.Now()
	require.NoError(t, c.Save(SnapshotOrders, "fetch-1", now.Add(-2*time.Hour), []domain.Order{}))

	age, ok := c.Age(SnapshotOrders, now)
	require.True(t, ok)
	assert.InDelta(t, (2 * time.Hour).Seconds(), age.Seconds(), 1.0)

	_, ok = c.Age(SnapshotReviews, now)
	assert.False(t, ok)
}
