package spacetraveling

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"
)

func setupSnapshotStore(t *testing.T) *SnapshotStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshots.db")
	s, err := NewSnapshotStore(path)
	if err != nil {
		t.Fatalf("failed to create snapshot store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSnapshotPutAndGet(t *testing.T) {
	s := setupSnapshotStore(t)

	if err := s.Put("/post/meu-post/", []byte("<html>post</html>")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("/post/meu-post/")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !bytes.Equal(got.HTML, []byte("<html>post</html>")) {
		t.Errorf("HTML = %q", got.HTML)
	}
	if time.Since(got.GeneratedAt) > time.Minute {
		t.Errorf("GeneratedAt = %v, should be recent", got.GeneratedAt)
	}
}

func TestSnapshotGetMissing(t *testing.T) {
	s := setupSnapshotStore(t)

	_, err := s.Get("/missing/")
	if err != ErrNoSnapshot {
		t.Errorf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestSnapshotPutReplaces(t *testing.T) {
	s := setupSnapshotStore(t)

	if err := s.Put("/", []byte("old")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("/", []byte("new")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get("/")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got.HTML) != "new" {
		t.Errorf("HTML = %q, want %q", got.HTML, "new")
	}
}

func TestSnapshotFresh(t *testing.T) {
	s := setupSnapshotStore(t)
	ctx := context.Background()

	if _, ok := s.Fresh(ctx, "/", time.Hour); ok {
		t.Error("missing snapshot should not be fresh")
	}

	if err := s.Put("/", []byte("page")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	html, ok := s.Fresh(ctx, "/", time.Hour)
	if !ok {
		t.Fatal("just-written snapshot should be fresh")
	}
	if string(html) != "page" {
		t.Errorf("HTML = %q, want %q", html, "page")
	}

	// A zero TTL makes everything stale, triggering regeneration.
	if _, ok := s.Fresh(ctx, "/", 0); ok {
		t.Error("snapshot should be stale with zero ttl")
	}
}

func TestSnapshotDelete(t *testing.T) {
	s := setupSnapshotStore(t)

	if err := s.Put("/gone/", []byte("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Delete("/gone/"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := s.Get("/gone/"); err != ErrNoSnapshot {
		t.Errorf("expected ErrNoSnapshot after delete, got %v", err)
	}

	// Deleting a missing route is not an error.
	if err := s.Delete("/never-there/"); err != nil {
		t.Errorf("Delete on missing route should not error, got %v", err)
	}
}
