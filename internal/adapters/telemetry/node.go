package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.opentelemetry.io/otel"
	"go.trai.ch/pkghash/internal/adapters/config"
	"go.trai.ch/pkghash/internal/adapters/logger"
	"go.trai.ch/pkghash/internal/adapters/telemetry/progrock"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
)

// TracerNodeID is the unique identifier for the tracer Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

// InstrumentationName names the tracer of this tool.
const InstrumentationName = "pkghash"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewTracer(cfg.Tracer, log)
		},
	})
}

// NewTracer returns the tracer selected by kind.
func NewTracer(kind string, log ports.Logger) (ports.Tracer, error) {
	switch kind {
	case domain.TracerOTel, "":
		t := NewOTelTracer(InstrumentationName, NewBridge(log))
		otel.SetTracerProvider(t.Provider())
		return t, nil
	case domain.TracerProgrock:
		return progrock.New(), nil
	case domain.TracerNone:
		return NewNoOpTracer(), nil
	default:
		return nil, zerr.With(domain.ErrInvalidTracer, "tracer", kind)
	}
}
