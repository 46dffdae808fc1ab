package transcripts

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/adapters/fs"
	"github.com/claudeye/claudeye/internal/adapters/logger"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the transcript loader Graft node.
const NodeID graft.ID = "adapter.transcripts"

func init() {
	graft.Register(graft.Node[ports.TranscriptLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, fs.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TranscriptLoader, error) {
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
			return NewLoader(cfg.ProjectsDir, hasher, log), nil
		},
	})
}
