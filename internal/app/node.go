package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkghash/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkghash/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkghash/internal/adapters/report"    //nolint:depguard // Wired in app layer
	"go.trai.ch/pkghash/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/pkghash/internal/engine/hasher"
	"go.trai.ch/pkghash/internal/engine/repoinfo"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs after wiring.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			workspace.NodeID,
			repoinfo.NodeID,
			hasher.NodeID,
			report.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	ws, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}
	repos, err := graft.Dep[ports.RepoInfoProvider](ctx)
	if err != nil {
		return nil, err
	}
	service, err := graft.Dep[*hasher.Service](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ReportStore](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	return New(ws, repos, service, store, log, cfg), nil
}
