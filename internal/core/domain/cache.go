package domain

import (
	"encoding/json"
	"time"
)

// File permissions for the disk cache, matching the build info store
// conventions.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// CacheMeta is the validation metadata stored alongside every cached
// value. An entry is valid iff every populated field still matches the
// current state of the world.
type CacheMeta struct {
	// CachedAt is when the entry was written.
	CachedAt time.Time `json:"cachedAt"`
	// ContentHash identifies the transcript bytes the value was computed
	// from. The cache's primary invalidation signal.
	ContentHash string `json:"contentHash"`
	// ModuleHash is the hash of the operator's evals module file. Only
	// validated for whole-result entries.
	ModuleHash string `json:"evalsModuleHash,omitempty"`
	// ItemCodeHash is the hash of one function's source. Only set on
	// per-item entries.
	ItemCodeHash string `json:"itemCodeHash,omitempty"`
	// RegisteredNames is the registered-name set at write time. Only set
	// on whole-result entries; compared order-independently.
	RegisteredNames []string `json:"registeredNames,omitempty"`
}

// CacheEntry is one stored (value, metadata) pair. Values are kept as
// raw JSON because the four kinds cache differently shaped results
// through the same store.
type CacheEntry struct {
	Value json.RawMessage `json:"value"`
	Meta  CacheMeta       `json:"meta"`
}

// WholeResultKey builds the cache key for a whole-result entry.
func WholeResultKey(kind ItemKind, project, sessionKey string) string {
	return string(kind) + "/" + project + "/" + sessionKey
}

// PerItemKey builds the cache key for a per-item entry. The item's code
// hash is part of the key, so editing a function retires its old
// entries instead of overwriting them.
func PerItemKey(kind ItemKind, project, sessionKey, itemName, codeHash string) string {
	return WholeResultKey(kind, project, sessionKey) + "/items/" + itemName + "-" + codeHash
}

// ProjectPrefix is the key prefix covering every entry of one project
// under one kind, for prefix invalidation.
func ProjectPrefix(kind ItemKind, project string) string {
	return string(kind) + "/" + project + "/"
}
