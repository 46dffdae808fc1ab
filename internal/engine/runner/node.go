package runner

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/evals"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/adapters/telemetry"
	"github.com/claudeye/claudeye/internal/adapters/transcripts"
	"github.com/claudeye/claudeye/internal/cache"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{evals.NodeID, transcripts.NodeID, cache.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Runner, error) {
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.TranscriptLoader](ctx)
			if err != nil {
				return nil, err
			}
			resultCache, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(registry, loader, resultCache, log, tracer), nil
		},
	})
}
