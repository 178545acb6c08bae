package repoinfo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkghash/internal/adapters/git"
	"go.trai.ch/pkghash/internal/adapters/logger"
	"go.trai.ch/pkghash/internal/adapters/telemetry"
	"go.trai.ch/pkghash/internal/adapters/workspace"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/pkghash/internal/engine/filehash"
)

const (
	// NodeID is the unique identifier for the repository snapshot provider Graft node.
	NodeID graft.ID = "engine.repoinfo"

	// IndexNodeID is the unique identifier for the file index Graft node.
	IndexNodeID graft.ID = "engine.filehash"
)

func init() {
	graft.Register(graft.Node[*filehash.Index]{
		ID:        IndexNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*filehash.Index, error) {
			vcs, err := graft.Dep[ports.VersionControl](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return filehash.NewIndex(vcs, log), nil
		},
	})

	graft.Register(graft.Node[ports.RepoInfoProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{workspace.NodeID, IndexNodeID, logger.NodeID, telemetry.TracerNodeID},
		Run: func(ctx context.Context) (ports.RepoInfoProvider, error) {
			ws, err := graft.Dep[ports.Workspace](ctx)
			if err != nil {
				return nil, err
			}
			index, err := graft.Dep[*filehash.Index](ctx)
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
			return NewProvider(ws, index, log, tracer), nil
		},
	})
}
