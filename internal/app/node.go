package app

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/cachestore"
	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/evals"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/adapters/watcher"
	"github.com/claudeye/claudeye/internal/cache"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/engine/queue"
	"github.com/claudeye/claudeye/internal/engine/runner"
	"github.com/claudeye/claudeye/internal/server"
)

// NodeID is the unique identifier for the components Graft node.
const NodeID graft.ID = "app.components"

// Components bundles the fully wired application with the dependencies
// the CLI needs directly.
type Components struct {
	App    *App
	Config *config.Config
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			evals.NodeID,
			runner.NodeID,
			queue.SchedulerNodeID,
			queue.ProcessorNodeID,
			watcher.NodeID,
			cache.NodeID,
			cachestore.NodeID,
			server.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			r, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}
			scheduler, err := graft.Dep[*queue.Scheduler](ctx)
			if err != nil {
				return nil, err
			}
			processor, err := graft.Dep[*queue.Processor](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[*watcher.ModuleWatcher](ctx)
			if err != nil {
				return nil, err
			}
			resultCache, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}
			srv, err := graft.Dep[*server.Server](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(cfg, log, registry, r, scheduler, processor, w, resultCache, store, srv),
				Config: cfg,
				Logger: log,
			}, nil
		},
	})
}
