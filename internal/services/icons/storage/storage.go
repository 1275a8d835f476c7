// Package storage defines persistence contracts for published icon releases.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested release is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a release with the same version was already published.
	ErrAlreadyExists = errors.New("record already exists")
)

// ReleaseEntry is one key/codepoint pair as it was published.
type ReleaseEntry struct {
	Key       string
	Name      string
	Codepoint string
}

// Release is a published snapshot of the icon table. Once published its
// pairs are binding for every later release.
type Release struct {
	Version     string
	PublishedAt time.Time
	Entries     []ReleaseEntry
}

// ReleaseSummary describes a release without its entries.
type ReleaseSummary struct {
	Version     string
	PublishedAt time.Time
	IconCount   int
}

// ReleaseStore persists published releases.
type ReleaseStore interface {
	PublishRelease(ctx context.Context, release Release) error
	GetRelease(ctx context.Context, version string) (Release, error)
	LatestRelease(ctx context.Context) (Release, error)
	ListReleases(ctx context.Context) ([]ReleaseSummary, error)
}
