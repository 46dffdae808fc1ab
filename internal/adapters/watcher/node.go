package watcher

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/evals"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the module watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[*ModuleWatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, evals.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*ModuleWatcher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewModuleWatcher(cfg.EvalsModule, registry, log)
		},
	})
}
