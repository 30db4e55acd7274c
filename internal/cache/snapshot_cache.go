// Package cache persists the most recent record snapshots so the dashboard
// can serve a stale-but-available view immediately after a restart, before
// the first shop API fetch completes. It is not order persistence; the shop
// API stays authoritative and every snapshot is replaced wholesale on fetch.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot names. One row per record kind.
const (
	SnapshotOrders  = "orders"
	SnapshotReviews = "reviews"
)

// SnapshotCache stores msgpack-encoded record collections in SQLite.
type SnapshotCache struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewSnapshotCache creates the snapshots table if needed.
func NewSnapshotCache(db *sql.DB, log zerolog.Logger) (*SnapshotCache, error) {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			fetch_id   TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			payload    BLOB NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}

	return &SnapshotCache{
		db:  db,
		log: log.With().Str("component", "snapshot_cache").Logger(),
	}, nil
}

// Save encodes records with msgpack and upserts them under name.
func (c *SnapshotCache) Save(name, fetchID string, fetchedAt time.Time, records interface{}) error {
	payload, err := msgpack.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s snapshot: %w", name, err)
	}

	_, err = c.db.Exec(`
		INSERT INTO snapshots (name, fetch_id, fetched_at, payload)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			fetch_id = excluded.fetch_id,
			fetched_at = excluded.fetched_at,
			payload = excluded.payload
	`, name, fetchID, fetchedAt.Unix(), payload)
	if err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", name, err)
	}

	c.log.Debug().Str("snapshot", name).Str("fetch_id", fetchID).Msg("Snapshot saved")
	return nil
}

// Load decodes the snapshot stored under name into out. Returns ok false when
// no snapshot exists yet.
func (c *SnapshotCache) Load(name string, out interface{}) (fetchedAt time.Time, ok bool, err error) {
	var payload []byte
	var fetchedAtUnix int64

	row := c.db.QueryRow(`SELECT payload, fetched_at FROM snapshots WHERE name = ?`, name)
	if err := row.Scan(&payload, &fetchedAtUnix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("failed to load %s snapshot: %w", name, err)
	}

	if err := msgpack.Unmarshal(payload, out); err != nil {
		return time.Time{}, false, fmt.Errorf("failed to decode %s snapshot: %w", name, err)
	}

	return time.Unix(fetchedAtUnix, 0), true, nil
}

// Age returns how old the named snapshot is, or ok false when absent.
func (c *SnapshotCache) Age(name string, now time.Time) (time.Duration, bool) {
	var fetchedAtUnix int64
	row := c.db.QueryRow(`SELECT fetched_at FROM snapshots WHERE name = ?`, name)
	if err := row.Scan(&fetchedAtUnix); err != nil {
		return 0, false
	}
	return now.Sub(time.Unix(fetchedAtUnix, 0)), true
}
