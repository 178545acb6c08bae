// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pkghash/internal/adapters/config"
	_ "go.trai.ch/pkghash/internal/adapters/git"
	_ "go.trai.ch/pkghash/internal/adapters/logger"
	_ "go.trai.ch/pkghash/internal/adapters/report"
	_ "go.trai.ch/pkghash/internal/adapters/telemetry"
	_ "go.trai.ch/pkghash/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/pkghash/internal/app"
	_ "go.trai.ch/pkghash/internal/engine/hasher"
	_ "go.trai.ch/pkghash/internal/engine/repoinfo"
)
