package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/pkghash/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor by logging finished spans with their duration.
type Bridge struct {
	logger ports.Logger
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{
		logger: logger,
	}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs "<name> took <duration>" for every valid span.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	msg := s.Name() + " took " + s.EndTime().Sub(s.StartTime()).String()
	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "unknown error"
		}
		msg += " (failed: " + desc + ")"
	}
	b.logger.Debug(msg)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
