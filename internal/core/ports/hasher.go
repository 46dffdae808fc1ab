// Package ports defines the interfaces between the engine and its
// adapters.
package ports

// Hasher computes the stable identity hashes that drive cache
// invalidation. Every method degrades to the empty string on failure;
// callers must treat an empty hash as "uncacheable, always miss".
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns a hash derived from a file's size and modification
	// time. Memoized by (path, size, mtime). Returns "" on stat failure.
	HashFile(path string) string

	// HashModule hashes the full content of the configured evals module
	// file. Returns "" when no module is configured or the read fails.
	HashModule() string

	// HashItemCode hashes the source text of one registered function.
	// Memoized per source text.
	HashItemCode(src string) string

	// HashProjectsDir returns an 8-hex-character hash of the resolved
	// projects root, computed once per process. Used only to namespace
	// the on-disk cache.
	HashProjectsDir() string
}
