package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkghash/internal/adapters/logger"
	"go.trai.ch/pkghash/internal/core/ports"
)

// NodeID is the unique identifier for the version control Graft node.
const NodeID graft.ID = "adapter.git"

func init() {
	graft.Register(graft.Node[ports.VersionControl]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionControl, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewClient(log), nil
		},
	})
}
