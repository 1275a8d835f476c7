// Package sqlite provides the SQLite-backed release ledger.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/apollo/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/apollo/internal/services/icons/storage"
	"github.com/louisbranch/apollo/internal/services/icons/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Store persists published releases in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite release store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	applied, err := sqlitemigrate.Apply(context.Background(), sqlDB, migrations.FS, "")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if len(applied) > 0 {
		log.Printf("release ledger %s: applied migrations %s", cleanPath, strings.Join(applied, ", "))
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PublishRelease records a release and its entries atomically.
func (s *Store) PublishRelease(ctx context.Context, release storage.Release) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	version := strings.TrimSpace(release.Version)
	if version == "" {
		return fmt.Errorf("release version is required")
	}
	if len(release.Entries) == 0 {
		return fmt.Errorf("release %s has no entries", version)
	}
	publishedAt := release.PublishedAt
	if publishedAt.IsZero() {
		publishedAt = time.Now()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin publish release: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO releases (version, published_at) VALUES (?, ?)`,
		version, toMillis(publishedAt),
	); err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("insert release: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO release_entries (version, position, icon_key, icon_name, codepoint)
		 VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare release entries: %w", err)
	}
	defer stmt.Close()
	for i, entry := range release.Entries {
		if _, err := stmt.ExecContext(ctx, version, i, entry.Key, entry.Name, entry.Codepoint); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("release %s repeats key %q or codepoint %s: %w", version, entry.Key, entry.Codepoint, err)
			}
			return fmt.Errorf("insert release entry %s: %w", entry.Key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit release: %w", err)
	}
	return nil
}

// GetRelease returns one release with its entries in publication order.
func (s *Store) GetRelease(ctx context.Context, version string) (storage.Release, error) {
	if err := ctx.Err(); err != nil {
		return storage.Release{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Release{}, fmt.Errorf("storage is not configured")
	}
	version = strings.TrimSpace(version)
	if version == "" {
		return storage.Release{}, fmt.Errorf("release version is required")
	}

	var publishedAt int64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT published_at FROM releases WHERE version = ?`, version,
	).Scan(&publishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Release{}, storage.ErrNotFound
		}
		return storage.Release{}, fmt.Errorf("get release: %w", err)
	}
	entries, err := s.releaseEntries(ctx, version)
	if err != nil {
		return storage.Release{}, err
	}
	return storage.Release{Version: version, PublishedAt: fromMillis(publishedAt), Entries: entries}, nil
}

// LatestRelease returns the most recently published release.
func (s *Store) LatestRelease(ctx context.Context) (storage.Release, error) {
	if err := ctx.Err(); err != nil {
		return storage.Release{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Release{}, fmt.Errorf("storage is not configured")
	}
	var version string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT version FROM releases ORDER BY published_at DESC, rowid DESC LIMIT 1`,
	).Scan(&version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Release{}, storage.ErrNotFound
		}
		return storage.Release{}, fmt.Errorf("latest release: %w", err)
	}
	return s.GetRelease(ctx, version)
}

// ListReleases returns every release, newest first.
func (s *Store) ListReleases(ctx context.Context) ([]storage.ReleaseSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT r.version, r.published_at,
		        (SELECT COUNT(*) FROM release_entries e WHERE e.version = r.version)
		   FROM releases r
		  ORDER BY r.published_at DESC, r.rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	defer rows.Close()

	var summaries []storage.ReleaseSummary
	for rows.Next() {
		var summary storage.ReleaseSummary
		var publishedAt int64
		if err := rows.Scan(&summary.Version, &publishedAt, &summary.IconCount); err != nil {
			return nil, fmt.Errorf("list releases: %w", err)
		}
		summary.PublishedAt = fromMillis(publishedAt)
		summaries = append(summaries, summary)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list releases: %w", err)
	}
	return summaries, nil
}

func (s *Store) releaseEntries(ctx context.Context, version string) ([]storage.ReleaseEntry, error) {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT icon_key, icon_name, codepoint
		   FROM release_entries
		  WHERE version = ?
		  ORDER BY position ASC`, version)
	if err != nil {
		return nil, fmt.Errorf("list release entries: %w", err)
	}
	defer rows.Close()

	var entries []storage.ReleaseEntry
	for rows.Next() {
		var entry storage.ReleaseEntry
		if err := rows.Scan(&entry.Key, &entry.Name, &entry.Codepoint); err != nil {
			return nil, fmt.Errorf("list release entries: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list release entries: %w", err)
	}
	return entries, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.ReleaseStore = (*Store)(nil)
