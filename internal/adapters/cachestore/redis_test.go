package cachestore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claudeye/claudeye/internal/adapters/cachestore"
	"github.com/claudeye/claudeye/internal/core/domain"
)

func newRedisStore(t *testing.T, namespace string) *cachestore.RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := cachestore.NewRedisStore(client, namespace)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRedisStore_SetAndGet(t *testing.T) {
	store := newRedisStore(t, "ns1")
	ctx := context.Background()

	key := domain.WholeResultKey(domain.KindEnrichments, "proj", "sid")
	require.NoError(t, store.Set(ctx, key, entry(`{"v":1}`, "h1")))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.JSONEq(t, `{"v":1}`, string(got.Value))
	assert.Equal(t, "h1", got.Meta.ContentHash)
}

func TestRedisStore_GetMissing(t *testing.T) {
	store := newRedisStore(t, "ns1")

	got, err := store.Get(context.Background(), "evals/proj/absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_InvalidateByPrefix(t *testing.T) {
	store := newRedisStore(t, "ns1")
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.WholeResultKey(domain.KindEvals, "proj", "sid"), entry(`1`, "a")))
	require.NoError(t, store.Set(ctx, domain.PerItemKey(domain.KindEvals, "proj", "sid", "EvalX", "abc"), entry(`2`, "a")))
	require.NoError(t, store.Set(ctx, domain.WholeResultKey(domain.KindEvals, "other", "sid"), entry(`3`, "a")))

	require.NoError(t, store.InvalidateByPrefix(ctx, domain.ProjectPrefix(domain.KindEvals, "proj")))

	got, err := store.Get(ctx, domain.WholeResultKey(domain.KindEvals, "proj", "sid"))
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = store.Get(ctx, domain.WholeResultKey(domain.KindEvals, "other", "sid"))
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestRedisStore_ClearAllScopedToNamespace(t *testing.T) {
	mr := miniredis.RunT(t)
	clientA := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	clientB := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	storeA := cachestore.NewRedisStore(clientA, "nsA")
	storeB := cachestore.NewRedisStore(clientB, "nsB")
	t.Cleanup(func() { _ = storeA.Close(); _ = storeB.Close() })
	ctx := context.Background()

	require.NoError(t, storeA.Set(ctx, "evals/proj/sid", entry(`1`, "a")))
	require.NoError(t, storeB.Set(ctx, "evals/proj/sid", entry(`2`, "b")))

	require.NoError(t, storeA.ClearAll(ctx))

	got, err := storeA.Get(ctx, "evals/proj/sid")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = storeB.Get(ctx, "evals/proj/sid")
	require.NoError(t, err)
	require.NotNil(t, got, "other namespace untouched")
	assert.Equal(t, "b", got.Meta.ContentHash)
}
