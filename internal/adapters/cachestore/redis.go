package cachestore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.trai.ch/zerr"

	"github.com/claudeye/claudeye/internal/core/domain"
	"github.com/claudeye/claudeye/internal/core/ports"
)

var _ ports.CacheStore = (*RedisStore)(nil)

// RedisStore stores cache entries in redis, for deployments where the
// cache should survive the local disk. Keys carry the projects-dir
// namespace so two roots sharing one redis never collide.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a redis-backed store. namespace is the
// projects-dir hash used to prefix every key.
func NewRedisStore(client *redis.Client, namespace string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "claudeye:" + namespace + ":",
	}
}

// Get retrieves the entry stored under key. Returns nil, nil if not found.
func (s *RedisStore) Get(ctx context.Context, key string) (*domain.CacheEntry, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreReadFailed, err.Error()), "key", key)
	}

	var entry domain.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrStoreUnmarshalFailed, err.Error()), "key", key)
	}
	return &entry, nil
}

// Set stores the entry under key, overwriting any previous entry.
func (s *RedisStore) Set(ctx context.Context, key string, entry domain.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreMarshalFailed, err.Error()), "key", key)
	}
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreWriteFailed, err.Error()), "key", key)
	}
	return nil
}

// Invalidate removes the entry under key. No-op if absent.
func (s *RedisStore) Invalidate(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "key", key)
	}
	return nil
}

// InvalidateByPrefix removes every entry whose key has the given string
// prefix.
func (s *RedisStore) InvalidateByPrefix(ctx context.Context, prefix string) error {
	return s.deleteByPattern(ctx, s.prefix+prefix+"*")
}

// ClearAll removes every entry in this store's namespace.
func (s *RedisStore) ClearAll(ctx context.Context) error {
	return s.deleteByPattern(ctx, s.prefix+"*")
}

// Close closes the underlying redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) deleteByPattern(ctx context.Context, pattern string) error {
	iter := s.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "pattern", pattern)
		}
	}
	if err := iter.Err(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrStoreInvalidateFailed, err.Error()), "pattern", pattern)
	}
	return nil
}
