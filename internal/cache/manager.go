// Package cache implements the result cache on top of a CacheStore,
// enforcing the hash-based validity rules.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/metrics"
)

var _ ports.ResultCache = (*Manager)(nil)

const (
	layerWhole = "whole"
	layerItem  = "item"
)

// Manager validates and stores cached results. The enabled switch is
// frozen at construction; a disabled manager misses on every get and
// drops every set, so callers never branch on it.
type Manager struct {
	store       ports.CacheStore
	hasher      ports.Hasher
	transcripts ports.TranscriptLoader
	logger      ports.Logger
	enabled     bool
	now         func() time.Time
}

// NewManager creates a cache manager.
func NewManager(store ports.CacheStore, hasher ports.Hasher, transcripts ports.TranscriptLoader, logger ports.Logger, enabled bool) *Manager {
	return &Manager{
		store:       store,
		hasher:      hasher,
		transcripts: transcripts,
		logger:      logger,
		enabled:     enabled,
		now:         time.Now,
	}
}

// Enabled reports the frozen process-wide cache switch.
func (m *Manager) Enabled() bool {
	return m.enabled
}

// GetWholeResult returns a valid whole-result entry or nil. Validity
// requires the transcript content hash, the evals module hash, and the
// registered-name set (order-independent) to all match.
func (m *Manager) GetWholeResult(ctx context.Context, kind domain.ItemKind, project, sessionKey string, registeredNames []string, overrideHash string) *domain.CacheEntry {
	if !m.enabled {
		return nil
	}
	contentHash := m.contentHash(project, sessionKey, overrideHash)
	if contentHash == "" {
		metrics.CacheMisses.WithLabelValues(string(kind), layerWhole).Inc()
		return nil
	}

	entry, err := m.store.Get(ctx, domain.WholeResultKey(kind, project, sessionKey))
	if err != nil {
		m.logger.Warn("cache read failed, treating as miss: " + err.Error())
		entry = nil
	}
	if entry == nil ||
		entry.Meta.ContentHash != contentHash ||
		entry.Meta.ModuleHash != m.hasher.HashModule() ||
		!sameNameSet(entry.Meta.RegisteredNames, registeredNames) {
		metrics.CacheMisses.WithLabelValues(string(kind), layerWhole).Inc()
		return nil
	}
	metrics.CacheHits.WithLabelValues(string(kind), layerWhole).Inc()
	return entry
}

// SetWholeResult stores a whole-result value. Uncacheable transcripts
// (empty content hash) and marshal or store failures are skipped
// silently apart from a warning.
func (m *Manager) SetWholeResult(ctx context.Context, kind domain.ItemKind, project, sessionKey string, value any, registeredNames []string, overrideHash string) {
	if !m.enabled {
		return
	}
	contentHash := m.contentHash(project, sessionKey, overrideHash)
	if contentHash == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		m.logger.Warn("cache write skipped, value not serializable: " + err.Error())
		return
	}

	entry := domain.CacheEntry{
		Value: raw,
		Meta: domain.CacheMeta{
			CachedAt:        m.now(),
			ContentHash:     contentHash,
			ModuleHash:      m.hasher.HashModule(),
			RegisteredNames: registeredNames,
		},
	}
	if err := m.store.Set(ctx, domain.WholeResultKey(kind, project, sessionKey), entry); err != nil {
		m.logger.Warn("cache write failed: " + err.Error())
	}
}

// GetPerItem returns a valid per-item entry or nil. Per-item validity
// is narrower than whole-result validity: only the content hash and the
// item's own code hash matter, so results survive edits to unrelated
// functions in the module.
func (m *Manager) GetPerItem(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName, itemCodeHash, contentHash string) *domain.CacheEntry {
	if !m.enabled || contentHash == "" || itemCodeHash == "" {
		return nil
	}

	entry, err := m.store.Get(ctx, domain.PerItemKey(kind, project, sessionKey, itemName, itemCodeHash))
	if err != nil {
		m.logger.Warn("cache read failed, treating as miss: " + err.Error())
		entry = nil
	}
	if entry == nil ||
		entry.Meta.ContentHash != contentHash ||
		entry.Meta.ItemCodeHash != itemCodeHash {
		metrics.CacheMisses.WithLabelValues(string(kind), layerItem).Inc()
		return nil
	}
	metrics.CacheHits.WithLabelValues(string(kind), layerItem).Inc()
	return entry
}

// SetPerItem stores one item's result.
func (m *Manager) SetPerItem(ctx context.Context, kind domain.ItemKind, project, sessionKey, itemName, itemCodeHash, contentHash string, value any) {
	if !m.enabled || contentHash == "" || itemCodeHash == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		m.logger.Warn("cache write skipped, value not serializable: " + err.Error())
		return
	}

	entry := domain.CacheEntry{
		Value: raw,
		Meta: domain.CacheMeta{
			CachedAt:     m.now(),
			ContentHash:  contentHash,
			ItemCodeHash: itemCodeHash,
		},
	}
	if err := m.store.Set(ctx, domain.PerItemKey(kind, project, sessionKey, itemName, itemCodeHash), entry); err != nil {
		m.logger.Warn("cache write failed: " + err.Error())
	}
}

// InvalidateProject drops every entry of one project under one kind.
func (m *Manager) InvalidateProject(ctx context.Context, kind domain.ItemKind, project string) error {
	return m.store.InvalidateByPrefix(ctx, domain.ProjectPrefix(kind, project))
}

// ClearAll drops the entire cache.
func (m *Manager) ClearAll(ctx context.Context) error {
	return m.store.ClearAll(ctx)
}

// contentHash resolves the transcript content hash for a session key,
// preferring the caller-supplied override.
func (m *Manager) contentHash(project, sessionKey, overrideHash string) string {
	if overrideHash != "" {
		return overrideHash
	}
	sessionID, agentID := domain.ParseSessionKey(sessionKey)
	if agentID != "" {
		return m.transcripts.HashSubagentFile(project, sessionID, agentID)
	}
	return m.transcripts.HashSessionFile(project, sessionID)
}

// sameNameSet compares two name sets ignoring order and duplicates.
func sameNameSet(a, b []string) bool {
	seen := make(map[string]struct{}, len(a))
	for _, name := range a {
		seen[name] = struct{}{}
	}
	distinct := make(map[string]struct{}, len(b))
	for _, name := range b {
		if _, ok := seen[name]; !ok {
			return false
		}
		distinct[name] = struct{}{}
	}
	return len(seen) == len(distinct)
}
