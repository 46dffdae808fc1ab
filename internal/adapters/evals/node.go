package evals

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/fs"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Registry, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRegistry(cfg.EvalsModule, hasher, log)
		},
	})
}
