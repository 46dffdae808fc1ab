// Package fs implements the content hasher over the local filesystem.
package fs

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto/v2"

	"github.com/claudeye/claudeye/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// memoEntries bounds the in-process memo cache. Each memoized hash has
// a cost of 1.
const memoEntries = 16384

// Hasher computes the identity hashes driving cache invalidation.
// File hashes are derived from size and mtime rather than content so
// repeated checks over large transcripts stay cheap; the memo makes
// repeated calls within a short window free.
type Hasher struct {
	projectsDir string
	modulePath  string

	memo *ristretto.Cache[string, string]

	dirOnce sync.Once
	dirHash string
}

// NewHasher creates a Hasher rooted at projectsDir. modulePath may be
// empty when no evals module is configured.
func NewHasher(projectsDir, modulePath string) (*Hasher, error) {
	memo, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: memoEntries * 10,
		MaxCost:     memoEntries,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &Hasher{
		projectsDir: projectsDir,
		modulePath:  modulePath,
		memo:        memo,
	}, nil
}

// HashFile returns a hash derived from the file's size and modification
// time. Returns "" on any stat failure; callers treat "" as
// uncacheable.
func (h *Hasher) HashFile(path string) string {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return ""
	}

	key := fmt.Sprintf("file:%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	if v, ok := h.memo.Get(key); ok {
		return v
	}

	d := xxhash.New()
	_, _ = d.WriteString(path)
	_, _ = d.Write([]byte{0})
	_ = binary.Write(d, binary.LittleEndian, info.Size())
	_ = binary.Write(d, binary.LittleEndian, info.ModTime().UnixNano())

	sum := fmt.Sprintf("%016x", d.Sum64())
	h.memo.Set(key, sum, 1)
	return sum
}

// HashModule hashes the full content of the evals module file, so an
// edit to any registered function changes the hash even when the
// transcripts are unchanged. Returns "" when no module is configured or
// the read fails.
func (h *Hasher) HashModule() string {
	if h.modulePath == "" {
		return ""
	}
	data, err := os.ReadFile(h.modulePath) //nolint:gosec // Path comes from operator config
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// HashItemCode hashes the source text of one registered function,
// memoized per source text.
func (h *Hasher) HashItemCode(src string) string {
	key := "code:" + src
	if v, ok := h.memo.Get(key); ok {
		return v
	}
	sum := fmt.Sprintf("%016x", xxhash.Sum64String(src))
	h.memo.Set(key, sum, 1)
	return sum
}

// HashProjectsDir returns an 8-hex-character hash of the resolved
// projects root, computed once per process. Two different roots never
// share an on-disk cache namespace.
func (h *Hasher) HashProjectsDir() string {
	h.dirOnce.Do(func() {
		resolved, err := filepath.Abs(h.projectsDir)
		if err != nil {
			resolved = h.projectsDir
		}
		sum := sha256.Sum256([]byte(resolved))
		h.dirHash = hex.EncodeToString(sum[:])[:8]
	})
	return h.dirHash
}
