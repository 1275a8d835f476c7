package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open(""); err == nil {
		t.Fatal("expected empty path error")
	}
}

func TestPublishGetReleaseRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := testRelease("v1.0.0", time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err := store.PublishRelease(context.Background(), input); err != nil {
		t.Fatalf("publish release: %v", err)
	}

	got, err := store.GetRelease(context.Background(), "v1.0.0")
	if err != nil {
		t.Fatalf("get release: %v", err)
	}
	if diff := cmp.Diff(input, got); diff != "" {
		t.Fatalf("release mismatch (-want +got):\n%s", diff)
	}
}

func TestPublishReleaseReturnsAlreadyExistsOnDuplicate(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := testRelease("v1.0.0", time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err := store.PublishRelease(context.Background(), input); err != nil {
		t.Fatalf("publish initial release: %v", err)
	}
	err := store.PublishRelease(context.Background(), input)
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate publish error = %v, want %v", err, storage.ErrAlreadyExists)
	}
}

func TestPublishReleaseRejectsRepeatedCodepoint(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	input := storage.Release{
		Version: "v1.0.0",
		Entries: []storage.ReleaseEntry{
			{Key: "add", Name: "Add", Codepoint: "61724"},
			{Key: "plus", Name: "Plus", Codepoint: "61724"},
		},
	}
	if err := store.PublishRelease(context.Background(), input); err == nil {
		t.Fatal("expected repeated codepoint to fail")
	}
	if _, err := store.GetRelease(context.Background(), "v1.0.0"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("failed publish left a release behind: %v", err)
	}
}

func TestPublishReleaseValidatesInput(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if err := store.PublishRelease(context.Background(), storage.Release{Version: " "}); err == nil {
		t.Fatal("expected missing version error")
	}
	if err := store.PublishRelease(context.Background(), storage.Release{Version: "v1"}); err == nil {
		t.Fatal("expected empty entries error")
	}
}

func TestGetReleaseNotFound(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.GetRelease(context.Background(), "v9"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("get missing release error = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestLatestAndListReleases(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	if _, err := store.LatestRelease(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("latest on empty ledger error = %v, want %v", err, storage.ErrNotFound)
	}

	base := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	for i, version := range []string{"v1.0.0", "v1.1.0", "v1.2.0"} {
		release := testRelease(version, base.Add(time.Duration(i)*time.Hour))
		if err := store.PublishRelease(context.Background(), release); err != nil {
			t.Fatalf("publish %s: %v", version, err)
		}
	}

	latest, err := store.LatestRelease(context.Background())
	if err != nil {
		t.Fatalf("latest release: %v", err)
	}
	if latest.Version != "v1.2.0" {
		t.Fatalf("latest version = %q, want %q", latest.Version, "v1.2.0")
	}

	summaries, err := store.ListReleases(context.Background())
	if err != nil {
		t.Fatalf("list releases: %v", err)
	}
	var versions []string
	for _, summary := range summaries {
		versions = append(versions, summary.Version)
		if summary.IconCount != 2 {
			t.Fatalf("%s icon count = %d, want 2", summary.Version, summary.IconCount)
		}
	}
	if diff := cmp.Diff([]string{"v1.2.0", "v1.1.0", "v1.0.0"}, versions); diff != "" {
		t.Fatalf("release order mismatch (-want +got):\n%s", diff)
	}
}

func TestReopenKeepsReleases(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "icons.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.PublishRelease(context.Background(), testRelease("v1.0.0", time.Now())); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })
	if _, err := reopened.GetRelease(context.Background(), "v1.0.0"); err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.ListReleases(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("list with canceled context error = %v", err)
	}
}

func testRelease(version string, at time.Time) storage.Release {
	return storage.Release{
		Version:     version,
		PublishedAt: at.UTC().Truncate(time.Millisecond),
		Entries: []storage.ReleaseEntry{
			{Key: "add", Name: "Add", Codepoint: "61724"},
			{Key: "check", Name: "Check", Codepoint: "61726"},
		},
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "icons.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
