package ports

import (
	"context"

	"github.com/claudeye/claudeye/internal/core/domain"
)

// CacheStore is a minimal key to (value, metadata) store. Keys are
// opaque path-like strings; lookups are always by exact key, so no
// indexing beyond prefix matching is required.
//
//go:generate mockgen -source=cache_store.go -destination=mocks/mock_cache_store.go -package=mocks
type CacheStore interface {
	// Get retrieves the entry stored under key.
	// Returns nil, nil if not found.
	Get(ctx context.Context, key string) (*domain.CacheEntry, error)

	// Set stores the entry under key, overwriting any previous entry.
	Set(ctx context.Context, key string, entry domain.CacheEntry) error

	// Invalidate removes the entry under key. No-op if absent.
	Invalidate(ctx context.Context, key string) error

	// InvalidateByPrefix removes every entry whose key has the given
	// string prefix.
	InvalidateByPrefix(ctx context.Context, prefix string) error

	// ClearAll removes every entry in the store.
	ClearAll(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
