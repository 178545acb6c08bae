package hasher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkghash/internal/adapters/logger"
	"go.trai.ch/pkghash/internal/adapters/telemetry"
	"go.trai.ch/pkghash/internal/adapters/workspace"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/pkghash/internal/engine/repoinfo"
)

// NodeID is the unique identifier for the hasher service Graft node.
const NodeID graft.ID = "engine.hasher"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{repoinfo.NodeID, workspace.NodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (*Service, error) {
			repos, err := graft.Dep[ports.RepoInfoProvider](ctx)
			if err != nil {
				return nil, err
			}
			ws, err := graft.Dep[ports.Workspace](ctx)
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
			return NewService(repos, ws, log, tracer), nil
		},
	})
}
