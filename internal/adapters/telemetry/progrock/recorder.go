// Package progrock implements the tracer port by recording spans as progrock vertexes.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pkghash/internal/core/ports"
)

// Recorder implements ports.Tracer using progrock.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder writing to an in-memory tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex digested from the span name.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	return ctx, &Span{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// End marks the vertex as finished with the first recorded error, if any.
func (s *Span) End() {
	s.mu.Lock()
	err := s.err
	s.mu.Unlock()
	s.vertex.Done(err)
}

// RecordError keeps err to report when the span ends.
func (s *Span) RecordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// SetAttribute writes the attribute to the vertex output.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}
