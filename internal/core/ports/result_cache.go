package ports

import (
	"context"

	"github.com/claudeye/claudeye/internal/core/domain"
)

// ResultCache exposes whole-result and per-item cache operations with
// hash-based invalidation. Every getter degrades to a miss on failure;
// every setter is best effort.
//
//go:generate mockgen -source=result_cache.go -destination=mocks/mock_result_cache.go -package=mocks
type ResultCache interface {
	// Enabled reports the process-wide cache switch, frozen at startup.
	Enabled() bool

	// GetWholeResult returns the cached whole-result entry for the
	// session, or nil unless the content hash, module hash, and
	// registered-name set all still match. overrideHash replaces the
	// session file hash when the caller already knows the content hash
	// (subagent processing).
	GetWholeResult(ctx context.Context, kind domain.ItemKind, project, sessionKey string, registeredNames []string, overrideHash string) *domain.CacheEntry

	// SetWholeResult stores a whole-result value. Failures are swallowed.
	SetWholeResult(ctx context.Context, kind domain.ItemKind, project, sessionKey string, value any, registeredNames []string, overrideHash string)

	// GetPerItem returns the cached entry for one item, or nil unless
	// both the caller-supplied content hash and the item code hash match.
	GetPerItem(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName, itemCodeHash, contentHash string) *domain.CacheEntry

	// SetPerItem stores one item's result. Failures are swallowed.
	SetPerItem(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName, itemCodeHash, contentHash string, value any)

	// InvalidateProject drops every entry of one project under one kind.
	InvalidateProject(ctx context.Context, kind domain.ItemKind, project string) error

	// ClearAll drops the entire cache.
	ClearAll(ctx context.Context) error
}
