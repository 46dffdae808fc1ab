package queue

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/evals"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/adapters/telemetry"
	"github.com/claudeye/claudeye/internal/adapters/transcripts"
	"github.com/claudeye/claudeye/internal/cache"
	"github.com/claudeye/claudeye/internal/core/ports"
	"github.com/claudeye/claudeye/internal/engine/runner"
)

// Node IDs for the scheduler and the background processor.
const (
	SchedulerNodeID graft.ID = "engine.queue"
	ProcessorNodeID graft.ID = "engine.queue.processor"
)

func init() {
	graft.Register(graft.Node[*Scheduler]{
		ID:        SchedulerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Scheduler, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
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
			return NewScheduler(cfg.Concurrency, cfg.HistoryTTL, log, tracer), nil
		},
	})

	graft.Register(graft.Node[*Processor]{
		ID:        ProcessorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SchedulerNodeID, config.NodeID, evals.NodeID, transcripts.NodeID, cache.NodeID, runner.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Processor, error) {
			scheduler, err := graft.Dep[*Scheduler](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			registry, err := graft.Dep[ports.Registry](ctx)
			if err != nil {
				return nil, err
			}
			loader, err := graft.Dep[ports.TranscriptLoader](ctx)
			if err != nil {
				return nil, err
			}
			results, err := graft.Dep[ports.ResultCache](ctx)
			if err != nil {
				return nil, err
			}
			r, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProcessor(scheduler, registry, loader, results, r, log, cfg.ScanInterval, cfg.MaxSessions), nil
		},
	})
}
