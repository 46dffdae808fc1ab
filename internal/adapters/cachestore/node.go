package cachestore

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"github.com/redis/go-redis/v9"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/fs"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			namespace := hasher.HashProjectsDir()
			if cfg.CacheRedisAddr != "" {
				client := redis.NewClient(&redis.Options{Addr: cfg.CacheRedisAddr})
				return NewRedisStore(client, namespace), nil
			}
			return NewDiskStore(filepath.Join(cfg.CachePath, namespace))
		},
	})
}
