package ports

import (
	"context"

	"go.trai.ch/pkghash/internal/core/domain"
)

// RepoInfoProvider hands out repository snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=repo_info.go -destination=mocks/mock_repo_info.go -package=mocks
type RepoInfoProvider interface {
	// Get returns a cached snapshot covering cwd, building one if needed.
	Get(ctx context.Context, cwd string) (*domain.RepoInfo, error)

	// GetNoCache always builds a fresh snapshot.
	GetNoCache(ctx context.Context, cwd string) (*domain.RepoInfo, error)
}
