// Package pagination normalizes page sizes and cursors for list endpoints.
package pagination

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PageSizeConfig configures page size normalization.
type PageSizeConfig struct {
	Default int
	Max     int
}

// ClampPageSize applies defaults and limits for page sizes.
func ClampPageSize(value int32, cfg PageSizeConfig) int {
	pageSize := int(value)
	if pageSize <= 0 {
		pageSize = cfg.Default
	}
	if cfg.Max > 0 && pageSize > cfg.Max {
		pageSize = cfg.Max
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	return pageSize
}

// ParsePageSize reads a page size from a query string value. Empty means the
// configured default.
func ParsePageSize(raw string, cfg PageSizeConfig) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ClampPageSize(0, cfg), nil
	}
	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("invalid page_size: %s", raw)
	}
	return ClampPageSize(int32(value), cfg), nil
}

// ErrPageTokenInvalid reports a page token that names no item of the list.
var ErrPageTokenInvalid = errors.New("page token does not match any item")

// Page is one slice of a keyed list.
type Page[T any] struct {
	Items         []T
	NextPageToken string
}

// ByKey pages items in the order given. The page token is the key of the last
// item of the previous page, matched exactly; the page starts right after it.
// A token that matches no item fails with ErrPageTokenInvalid.
func ByKey[T any](items []T, key func(T) string, pageSize int, pageToken string) (Page[T], error) {
	start := 0
	if pageToken != "" {
		start = -1
		for i, item := range items {
			if key(item) == pageToken {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return Page[T]{}, fmt.Errorf("%w: %q", ErrPageTokenInvalid, pageToken)
		}
	}
	if pageSize <= 0 {
		pageSize = 1
	}
	end := min(start+pageSize, len(items))
	page := Page[T]{Items: items[start:end]}
	if end < len(items) && end > start {
		page.NextPageToken = key(items[end-1])
	}
	return page, nil
}
