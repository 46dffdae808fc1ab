// Package cachestore implements the result cache store with a disk
// backend and an optional redis backend.
package cachestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

var _ ports.CacheStore = (*DiskStore)(nil)

const entryExt = ".json"

// DiskStore stores one JSON file per cache key under a root directory.
// The directory layout mirrors the key's path segments, so prefix
// invalidation is a directory walk and nothing else — lookups are
// always by exact key.
type DiskStore struct {
	root string
}

// NewDiskStore creates a disk store rooted at root, creating the
// directory if needed.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "path", root)
	}
	return &DiskStore{root: root}, nil
}

// Get retrieves the entry stored under key. Returns nil, nil if not found.
func (s *DiskStore) Get(_ context.Context, key string) (*domain.CacheEntry, error) {
	//nolint:gosec // Path segments are escaped before joining
	data, err := os.ReadFile(s.filename(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "key", key)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "key", key)
	}
	return &entry, nil
}

// Set stores the entry under key, overwriting any previous entry.
func (s *DiskStore) Set(_ context.Context, key string, entry domain.CacheEntry) error {
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error()), "key", key)
	}

	filename := s.filename(key)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreCreateFailed, err.Error()), "key", key)
	}
	//nolint:gosec // Path segments are escaped before joining
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "key", key)
	}
	return nil
}

// Invalidate removes the entry under key. No-op if absent.
func (s *DiskStore) Invalidate(_ context.Context, key string) error {
	err := os.Remove(s.filename(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "key", key)
	}
	return nil
}

// InvalidateByPrefix removes every entry whose key has the given string
// prefix.
func (s *DiskStore) InvalidateByPrefix(_ context.Context, prefix string) error {
	var stale []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		key, ok := s.keyForFile(path)
		if ok && strings.HasPrefix(key, prefix) {
			stale = append(stale, path)
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "prefix", prefix)
	}

	for _, path := range stale {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "prefix", prefix)
		}
	}
	return nil
}

// ClearAll removes the whole cache directory and recreates it empty.
func (s *DiskStore) ClearAll(_ context.Context) error {
	if err := os.RemoveAll(s.root); err != nil {
		return zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error())
	}
	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(domain.ErrStoreCreateFailed, err.Error())
	}
	return nil
}

// Close implements ports.CacheStore. The disk store holds no resources.
func (s *DiskStore) Close() error {
	return nil
}

// filename maps a key to its file path. Each key segment is escaped so
// arbitrary project and item names stay within their own path segment.
func (s *DiskStore) filename(key string) string {
	segments := strings.Split(key, "/")
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, s.root)
	for _, seg := range segments {
		parts = append(parts, url.PathEscape(seg))
	}
	return filepath.Join(parts...) + entryExt
}

// keyForFile reverses filename, reconstructing the key for an entry
// file found during a walk.
func (s *DiskStore) keyForFile(path string) (string, bool) {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || !strings.HasSuffix(rel, entryExt) {
		return "", false
	}
	rel = strings.TrimSuffix(rel, entryExt)

	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, seg := range segments {
		unescaped, err := url.PathUnescape(seg)
		if err != nil {
			return "", false
		}
		segments[i] = unescaped
	}
	return strings.Join(segments, "/"), true
}
