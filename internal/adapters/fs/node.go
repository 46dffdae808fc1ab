package fs

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/claudeye/claudeye/internal/adapters/config"
	"github.com/claudeye/claudeye/internal/core/ports"
)

// NodeID is the unique identifier for the hasher Graft node.
const NodeID graft.ID = "adapter.hasher"

func init() {
	graft.Register(graft.Node[ports.Hasher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Hasher, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(cfg.ProjectsDir, cfg.EvalsModule)
		},
	})
}
