// Package compat checks that the current icon table keeps every pair
// published by an earlier release.
package compat

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/apollo/internal/platform/icons"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
)

// Kind names a compatibility violation.
type Kind string

const (
	// KindRemoved means a published key is gone from the table.
	KindRemoved Kind = "removed"
	// KindCodepointChanged means a published key now maps to another codepoint.
	KindCodepointChanged Kind = "codepoint_changed"
	// KindCodepointReused means a published codepoint now belongs to another key.
	KindCodepointReused Kind = "codepoint_reused"
	// KindRenamed means a published key kept its codepoint under a new name.
	KindRenamed Kind = "renamed"
)

// Breaking reports whether the kind invalidates stored references.
func (k Kind) Breaking() bool {
	return k != KindRenamed
}

// Violation is one difference between a published release and the table.
type Violation struct {
	Kind     Kind
	Key      string
	Previous string
	Current  string
}

func (v Violation) String() string {
	switch v.Kind {
	case KindRemoved:
		return fmt.Sprintf("%s: %q (codepoint %s) is no longer published", v.Kind, v.Key, v.Previous)
	case KindCodepointReused:
		return fmt.Sprintf("%s: codepoint %s moved from %q to %q", v.Kind, v.Key, v.Previous, v.Current)
	default:
		return fmt.Sprintf("%s: %q changed from %s to %s", v.Kind, v.Key, v.Previous, v.Current)
	}
}

// Report lists every violation found against one release.
type Report struct {
	Against    string
	Violations []Violation
	// Added are keys in the table that the release did not publish.
	Added []string
}

// Breaking reports whether any violation is breaking.
func (r Report) Breaking() bool {
	for _, v := range r.Violations {
		if v.Kind.Breaking() {
			return true
		}
	}
	return false
}

// Summary renders the report as one line per violation.
func (r Report) Summary() string {
	if len(r.Violations) == 0 {
		return fmt.Sprintf("compatible with %s (%d added)", r.Against, len(r.Added))
	}
	lines := make([]string, 0, len(r.Violations)+1)
	lines = append(lines, fmt.Sprintf("%d violations against %s:", len(r.Violations), r.Against))
	for _, v := range r.Violations {
		lines = append(lines, "  "+v.String())
	}
	return strings.Join(lines, "\n")
}

// Check compares current against a published release.
func Check(published storage.Release, current []icons.Definition) Report {
	report := Report{Against: published.Version}

	byKey := make(map[string]icons.Definition, len(current))
	byCodepoint := make(map[string]icons.Definition, len(current))
	for _, def := range current {
		byKey[def.Key] = def
		byCodepoint[def.Codepoint] = def
	}

	publishedKeys := make(map[string]bool, len(published.Entries))
	for _, entry := range published.Entries {
		publishedKeys[entry.Key] = true
		def, ok := byKey[entry.Key]
		if !ok {
			report.Violations = append(report.Violations, Violation{Kind: KindRemoved, Key: entry.Key, Previous: entry.Codepoint})
		} else {
			if def.Codepoint != entry.Codepoint {
				report.Violations = append(report.Violations, Violation{Kind: KindCodepointChanged, Key: entry.Key, Previous: entry.Codepoint, Current: def.Codepoint})
			}
			if def.Name != entry.Name {
				report.Violations = append(report.Violations, Violation{Kind: KindRenamed, Key: entry.Key, Previous: entry.Name, Current: def.Name})
			}
		}
		if owner, ok := byCodepoint[entry.Codepoint]; ok && owner.Key != entry.Key {
			report.Violations = append(report.Violations, Violation{Kind: KindCodepointReused, Key: entry.Codepoint, Previous: entry.Key, Current: owner.Key})
		}
	}
	for _, def := range current {
		if !publishedKeys[def.Key] {
			report.Added = append(report.Added, def.Key)
		}
	}
	return report
}

// CheckHistory compares current against the newest release in history and
// then against every older one. Older releases only add pairs the newer ones
// no longer carry: a codepoint now owned by another key, or a key now on
// another codepoint. history is ordered newest first and must not be empty.
func CheckHistory(history []storage.Release, current []icons.Definition) Report {
	report := Check(history[0], current)

	byKey := make(map[string]icons.Definition, len(current))
	byCodepoint := make(map[string]icons.Definition, len(current))
	for _, def := range current {
		byKey[def.Key] = def
		byCodepoint[def.Codepoint] = def
	}
	seen := make(map[Violation]bool, len(report.Violations))
	for _, v := range report.Violations {
		seen[v] = true
	}
	add := func(v Violation) {
		if !seen[v] {
			seen[v] = true
			report.Violations = append(report.Violations, v)
		}
	}
	for _, older := range history[1:] {
		for _, entry := range older.Entries {
			if def, ok := byKey[entry.Key]; ok && def.Codepoint != entry.Codepoint {
				add(Violation{Kind: KindCodepointChanged, Key: entry.Key, Previous: entry.Codepoint, Current: def.Codepoint})
			}
			if owner, ok := byCodepoint[entry.Codepoint]; ok && owner.Key != entry.Key {
				add(Violation{Kind: KindCodepointReused, Key: entry.Codepoint, Previous: entry.Key, Current: owner.Key})
			}
		}
	}
	return report
}

// History loads every published release, newest first. It returns
// storage.ErrNotFound when nothing was published.
func History(ctx context.Context, store storage.ReleaseStore) ([]storage.Release, error) {
	summaries, err := store.ListReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	if len(summaries) == 0 {
		return nil, storage.ErrNotFound
	}
	history := make([]storage.Release, 0, len(summaries))
	for _, summary := range summaries {
		release, err := store.GetRelease(ctx, summary.Version)
		if err != nil {
			return nil, fmt.Errorf("load release %s: %w", summary.Version, err)
		}
		history = append(history, release)
	}
	return history, nil
}

// Snapshot builds a release from the given definitions.
func Snapshot(version string, defs []icons.Definition, at time.Time) storage.Release {
	entries := make([]storage.ReleaseEntry, 0, len(defs))
	for _, def := range defs {
		entries = append(entries, storage.ReleaseEntry{Key: def.Key, Name: def.Name, Codepoint: def.Codepoint})
	}
	return storage.Release{Version: version, PublishedAt: at, Entries: entries}
}
