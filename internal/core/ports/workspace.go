package ports

import (
	"context"

	"go.trai.ch/pkghash/internal/core/domain"
)

// Workspace introspects a JavaScript monorepo and its package manager.
//
//go:generate go run go.uber.org/mock/mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// FindRoot returns the workspace root at or above cwd, or "" if there is none.
	FindRoot(cwd string) (string, error)

	// FindPackageRoot returns the nearest directory at or above path holding a manifest, or "" if there is none.
	FindPackageRoot(path string) (string, error)

	// WorkspacePackages returns the packages declared by the workspace, excluding the root package.
	WorkspacePackages(root string) (domain.PackageInfos, error)

	// PackageInfos returns the workspace packages plus the root package when it is named.
	PackageInfos(root string) (domain.PackageInfos, error)

	// ReadManifest reads the manifest in the given package directory.
	ReadManifest(dir string) (*domain.PackageInfo, error)

	// ParseLockFile parses the lock file of the workspace.
	// A missing or unsupported lock file yields an unavailable lock, not an error.
	ParseLockFile(ctx context.Context, root string) (*domain.ParsedLock, error)
}
