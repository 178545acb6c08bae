package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkghash/internal/app"
	"go.trai.ch/pkghash/internal/core/domain"
	_ "go.trai.ch/pkghash/internal/wiring"
)

// TestGraftGraph resolves the full node graph the entry point asks for.
func TestGraftGraph(t *testing.T) {
	t.Setenv(domain.SkipDotEnvVar, "1")
	t.Setenv("PKGHASH_TRACER", domain.TracerNone)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
