package cachestore_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeye/claudeye/internal/adapters/cachestore"
	"github.com/claudeye/claudeye/internal/core/domain"
)

func entry(value string, contentHash string) domain.CacheEntry {
	return domain.CacheEntry{
		Value: json.RawMessage(value),
		Meta: domain.CacheMeta{
			CachedAt:    time.Now().UTC().Truncate(time.Second),
			ContentHash: contentHash,
		},
	}
}

func TestDiskStore_SetAndGet(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := domain.WholeResultKey(domain.KindEvals, "proj", "sid")
	require.NoError(t, store.Set(ctx, key, entry(`{"passed":2}`, "hash1")))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"passed":2}`, string(got.Value))
	assert.Equal(t, "hash1", got.Meta.ContentHash)
}

func TestDiskStore_GetMissing(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	got, err := store.Get(context.Background(), "evals/proj/absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDiskStore_Overwrite(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := "evals/proj/sid"
	require.NoError(t, store.Set(ctx, key, entry(`1`, "a")))
	require.NoError(t, store.Set(ctx, key, entry(`2`, "b")))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Meta.ContentHash)
}

func TestDiskStore_Invalidate(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	key := "evals/proj/sid"
	require.NoError(t, store.Set(ctx, key, entry(`1`, "a")))
	require.NoError(t, store.Invalidate(ctx, key))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Absent keys are a no-op.
	assert.NoError(t, store.Invalidate(ctx, key))
}

func TestDiskStore_InvalidateByPrefix(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	keep := []string{
		domain.WholeResultKey(domain.KindEvals, "other", "sid"),
		domain.WholeResultKey(domain.KindFilters, "proj", "sid"),
	}
	drop := []string{
		domain.WholeResultKey(domain.KindEvals, "proj", "sid"),
		domain.PerItemKey(domain.KindEvals, "proj", "sid", "EvalX", "abc"),
	}
	for _, key := range append(append([]string{}, keep...), drop...) {
		require.NoError(t, store.Set(ctx, key, entry(`1`, "h")))
	}

	require.NoError(t, store.InvalidateByPrefix(ctx, domain.ProjectPrefix(domain.KindEvals, "proj")))

	for _, key := range drop {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, got, key)
	}
	for _, key := range keep {
		got, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.NotNil(t, got, key)
	}
}

func TestDiskStore_ClearAll(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "evals/proj/sid", entry(`1`, "a")))
	require.NoError(t, store.ClearAll(ctx))

	got, err := store.Get(ctx, "evals/proj/sid")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Store stays usable after a clear.
	require.NoError(t, store.Set(ctx, "evals/proj/sid", entry(`2`, "b")))
}

func TestDiskStore_AwkwardKeySegments(t *testing.T) {
	store, err := cachestore.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	// Project names can contain characters that must not escape their
	// path segment.
	key := domain.WholeResultKey(domain.KindEvals, "-home-user-my..project", "sid/agent-a1")
	require.NoError(t, store.Set(ctx, key, entry(`1`, "a")))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)

	require.NoError(t, store.InvalidateByPrefix(ctx, domain.ProjectPrefix(domain.KindEvals, "-home-user-my..project")))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}
