package compat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
)

func published() storage.Release {
	return storage.Release{
		Version: "v1.0.0",
		Entries: []storage.ReleaseEntry{
			{Key: "add", Name: "Add", Codepoint: "61724"},
			{Key: "check", Name: "Check", Codepoint: "61726"},
		},
	}
}

func defs(entries ...icons.Definition) []icons.Definition { return entries }

func TestCheckCurrentTableAgainstItsOwnSnapshot(t *testing.T) {
	t.Parallel()

	snapshot := Snapshot("v1.0.0", icons.Catalog(), time.Now())
	report := Check(snapshot, icons.Catalog())
	if report.Breaking() || len(report.Violations) != 0 || len(report.Added) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(snapshot.Entries) != icons.Len() {
		t.Fatalf("snapshot entries = %d, want %d", len(snapshot.Entries), icons.Len())
	}
}

func TestCheckDetectsViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		current      []icons.Definition
		want         []Violation
		wantBreaking bool
		wantAdded    []string
	}{
		{
			name: "compatible with additions",
			current: defs(
				icons.Definition{Key: "add", Name: "Add", Codepoint: "61724"},
				icons.Definition{Key: "check", Name: "Check", Codepoint: "61726"},
				icons.Definition{Key: "copy", Name: "Copy", Codepoint: "61727"},
			),
			wantAdded: []string{"copy"},
		},
		{
			name:         "removed",
			current:      defs(icons.Definition{Key: "add", Name: "Add", Codepoint: "61724"}),
			want:         []Violation{{Kind: KindRemoved, Key: "check", Previous: "61726"}},
			wantBreaking: true,
		},
		{
			name: "codepoint changed",
			current: defs(
				icons.Definition{Key: "add", Name: "Add", Codepoint: "61724"},
				icons.Definition{Key: "check", Name: "Check", Codepoint: "61800"},
			),
			want:         []Violation{{Kind: KindCodepointChanged, Key: "check", Previous: "61726", Current: "61800"}},
			wantBreaking: true,
		},
		{
			name: "codepoint reused",
			current: defs(
				icons.Definition{Key: "plus", Name: "Plus", Codepoint: "61724"},
				icons.Definition{Key: "check", Name: "Check", Codepoint: "61726"},
			),
			want: []Violation{
				{Kind: KindRemoved, Key: "add", Previous: "61724"},
				{Kind: KindCodepointReused, Key: "61724", Previous: "add", Current: "plus"},
			},
			wantBreaking: true,
			wantAdded:    []string{"plus"},
		},
		{
			name: "renamed is a warning",
			current: defs(
				icons.Definition{Key: "add", Name: "Plus", Codepoint: "61724"},
				icons.Definition{Key: "check", Name: "Check", Codepoint: "61726"},
			),
			want: []Violation{{Kind: KindRenamed, Key: "add", Previous: "Add", Current: "Plus"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			report := Check(published(), tc.current)
			if diff := cmp.Diff(tc.want, report.Violations); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
			if report.Breaking() != tc.wantBreaking {
				t.Fatalf("Breaking() = %v, want %v", report.Breaking(), tc.wantBreaking)
			}
			if diff := cmp.Diff(tc.wantAdded, report.Added); diff != "" {
				t.Fatalf("added mismatch (-want +got):\n%s", diff)
			}
			if report.Against != "v1.0.0" {
				t.Fatalf("Against = %q, want v1.0.0", report.Against)
			}
		})
	}
}

func TestReportSummary(t *testing.T) {
	t.Parallel()

	ok := Report{Against: "v1.0.0", Added: []string{"copy"}}
	if got := ok.Summary(); got != "compatible with v1.0.0 (1 added)" {
		t.Fatalf("Summary() = %q", got)
	}

	broken := Check(published(), defs(icons.Definition{Key: "add", Name: "Add", Codepoint: "61724"}))
	summary := broken.Summary()
	if !strings.Contains(summary, "1 violations against v1.0.0") || !strings.Contains(summary, `removed: "check" (codepoint 61726)`) {
		t.Fatalf("Summary() = %q", summary)
	}
}

func TestCheckHistoryCatchesCodepointFreedByAForcedRelease(t *testing.T) {
	t.Parallel()

	// v1 published b, v2 dropped it, and c now sits on b's old codepoint.
	history := []storage.Release{
		{Version: "v2.0.0", Entries: []storage.ReleaseEntry{{Key: "a", Name: "A", Codepoint: "61697"}}},
		{Version: "v1.0.0", Entries: []storage.ReleaseEntry{
			{Key: "a", Name: "A", Codepoint: "61697"},
			{Key: "b", Name: "B", Codepoint: "61698"},
		}},
	}
	current := defs(
		icons.Definition{Key: "a", Name: "A", Codepoint: "61697"},
		icons.Definition{Key: "c", Name: "C", Codepoint: "61698"},
	)

	if report := Check(history[0], current); report.Breaking() {
		t.Fatalf("latest release alone should not see the reuse: %+v", report)
	}
	report := CheckHistory(history, current)
	want := []Violation{{Kind: KindCodepointReused, Key: "61698", Previous: "b", Current: "c"}}
	if diff := cmp.Diff(want, report.Violations); diff != "" {
		t.Fatalf("violations mismatch (-want +got):\n%s", diff)
	}
	if report.Against != "v2.0.0" || !report.Breaking() {
		t.Fatalf("report = %+v", report)
	}
}

func TestCheckHistoryReportsEachPairOnce(t *testing.T) {
	t.Parallel()

	release := published()
	older := published()
	older.Version = "v0.9.0"
	current := defs(
		icons.Definition{Key: "add", Name: "Add", Codepoint: "61726"},
		icons.Definition{Key: "check", Name: "Check", Codepoint: "61800"},
	)
	report := CheckHistory([]storage.Release{release, older}, current)
	if diff := cmp.Diff(Check(release, current).Violations, report.Violations); diff != "" {
		t.Fatalf("older identical release added violations (-want +got):\n%s", diff)
	}
}

type memoryStore struct {
	releases []storage.Release
}

func (m *memoryStore) PublishRelease(_ context.Context, release storage.Release) error {
	m.releases = append(m.releases, release)
	return nil
}

func (m *memoryStore) GetRelease(_ context.Context, version string) (storage.Release, error) {
	for _, r := range m.releases {
		if r.Version == version {
			return r, nil
		}
	}
	return storage.Release{}, storage.ErrNotFound
}

func (m *memoryStore) LatestRelease(ctx context.Context) (storage.Release, error) {
	if len(m.releases) == 0 {
		return storage.Release{}, storage.ErrNotFound
	}
	return m.releases[len(m.releases)-1], nil
}

func (m *memoryStore) ListReleases(context.Context) ([]storage.ReleaseSummary, error) {
	summaries := make([]storage.ReleaseSummary, 0, len(m.releases))
	for i := len(m.releases) - 1; i >= 0; i-- {
		r := m.releases[i]
		summaries = append(summaries, storage.ReleaseSummary{Version: r.Version, PublishedAt: r.PublishedAt, IconCount: len(r.Entries)})
	}
	return summaries, nil
}

func TestHistory(t *testing.T) {
	t.Parallel()

	store := &memoryStore{}
	if _, err := History(context.Background(), store); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("empty history error = %v, want %v", err, storage.ErrNotFound)
	}
	first := published()
	second := published()
	second.Version = "v1.1.0"
	_ = store.PublishRelease(context.Background(), first)
	_ = store.PublishRelease(context.Background(), second)

	history, err := History(context.Background(), store)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 || history[0].Version != "v1.1.0" || history[1].Version != "v1.0.0" {
		t.Fatalf("history = %+v, want newest first", history)
	}
}
