package report

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pkghash/internal/adapters/config"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
)

// NodeID is the unique identifier for the report store Graft node.
const NodeID graft.ID = "adapter.report_store"

func init() {
	graft.Register(graft.Node[ports.ReportStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ReportStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.Report.Dir), nil
		},
	})
}
