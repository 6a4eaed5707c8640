package spacetraveling

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	slogctx "github.com/veqryn/slog-context"
	_ "modernc.org/sqlite"
)

// ErrNoSnapshot is returned when no snapshot exists for a route.
var ErrNoSnapshot = sql.ErrNoRows

// Snapshot is one generated page kept until it goes stale.
type Snapshot struct {
	Route       string
	HTML        []byte
	GeneratedAt time.Time
}

// SnapshotStore persists generated pages in SQLite. Pages are served
// from here until older than the configured TTL, then regenerated on the
// next request; there is no push-based invalidation.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore opens (or creates) the SQLite database at path,
// ensures the data directory exists, and runs schema migrations.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL for concurrent readers while a regeneration writes, busy
	// timeout so writers wait instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SnapshotStore{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

func (s *SnapshotStore) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS snapshots (
    route TEXT PRIMARY KEY,
    html BLOB NOT NULL,
    generated_at TEXT NOT NULL
);
`)
	return err
}

// Get returns the snapshot stored for route, or ErrNoSnapshot.
func (s *SnapshotStore) Get(route string) (Snapshot, error) {
	var html []byte
	var generatedAt string
	err := s.db.QueryRow(`SELECT html, generated_at FROM snapshots WHERE route = ?`, route).
		Scan(&html, &generatedAt)
	if err != nil {
		return Snapshot{}, err
	}
	t, err := time.Parse(time.RFC3339, generatedAt)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Route: route, HTML: html, GeneratedAt: t}, nil
}

// Put upserts the generated page for route, stamped now.
func (s *SnapshotStore) Put(route string, html []byte) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO snapshots (route, html, generated_at) VALUES (?, ?, ?)`,
		route, html, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Delete removes the snapshot for route.
func (s *SnapshotStore) Delete(route string) error {
	_, err := s.db.Exec(`DELETE FROM snapshots WHERE route = ?`, route)
	return err
}

// Fresh returns the stored page for route when it is younger than ttl.
// A missing or stale snapshot returns ok=false and the caller regenerates.
func (s *SnapshotStore) Fresh(ctx context.Context, route string, ttl time.Duration) ([]byte, bool) {
	snap, err := s.Get(route)
	if err != nil {
		if err != ErrNoSnapshot {
			slogctx.FromCtx(ctx).WarnContext(ctx, "snapshot read failed",
				slog.String("Route", route),
				slog.Any("Error", err),
			)
		}
		return nil, false
	}
	if time.Since(snap.GeneratedAt) >= ttl {
		return nil, false
	}
	return snap.HTML, true
}
