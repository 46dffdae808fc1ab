package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeye/claudeye/internal/adapters/fs"
)

func newHasher(t *testing.T, projectsDir, modulePath string) *fs.Hasher {
	t.Helper()
	h, err := fs.NewHasher(projectsDir, modulePath)
	require.NoError(t, err)
	return h
}

func TestHashFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("line1\n"), 0o644))

	h := newHasher(t, dir, "")

	first := h.HashFile(path)
	require.NotEmpty(t, first)
	assert.Len(t, first, 16)
	assert.Equal(t, first, h.HashFile(path), "stable across calls")

	// Grow the file; size change must change the hash.
	require.NoError(t, os.WriteFile(path, []byte("line1\nline2\n"), 0o644))
	second := h.HashFile(path)
	require.NotEmpty(t, second)
	assert.NotEqual(t, first, second)
}

func TestHashFile_MissingReturnsEmpty(t *testing.T) {
	h := newHasher(t, t.TempDir(), "")
	assert.Empty(t, h.HashFile(filepath.Join(t.TempDir(), "nope.jsonl")))
}

func TestHashFile_DirectoryReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	h := newHasher(t, dir, "")
	assert.Empty(t, h.HashFile(dir))
}

func TestHashModule(t *testing.T) {
	dir := t.TempDir()
	module := filepath.Join(dir, "evals.go")
	require.NoError(t, os.WriteFile(module, []byte("package evals\n"), 0o644))

	h := newHasher(t, dir, module)
	first := h.HashModule()
	require.NotEmpty(t, first)

	// Content change with identical length still changes the hash.
	require.NoError(t, os.WriteFile(module, []byte("package evalz\n"), 0o644))
	assert.NotEqual(t, first, h.HashModule())
}

func TestHashModule_Unconfigured(t *testing.T) {
	h := newHasher(t, t.TempDir(), "")
	assert.Empty(t, h.HashModule())
}

func TestHashModule_Unreadable(t *testing.T) {
	h := newHasher(t, t.TempDir(), filepath.Join(t.TempDir(), "gone.go"))
	assert.Empty(t, h.HashModule())
}

func TestHashItemCode(t *testing.T) {
	h := newHasher(t, t.TempDir(), "")

	a := h.HashItemCode("func EvalA() {}")
	b := h.HashItemCode("func EvalB() {}")
	require.NotEmpty(t, a)
	require.NotEmpty(t, b)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, h.HashItemCode("func EvalA() {}"))
}

func TestHashProjectsDir(t *testing.T) {
	dir := t.TempDir()
	h := newHasher(t, dir, "")

	hash := h.HashProjectsDir()
	assert.Len(t, hash, 8)
	assert.Equal(t, hash, h.HashProjectsDir(), "computed once")

	other := newHasher(t, t.TempDir(), "")
	assert.NotEqual(t, hash, other.HashProjectsDir())
}

func TestHashFile_ModTimeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	h := newHasher(t, dir, "")
	first := h.HashFile(path)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(path, past, past))
	assert.NotEqual(t, first, h.HashFile(path))
}
