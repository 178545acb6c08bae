// Package ports defines the core interfaces for the application.
package ports

import "context"

// VersionControl runs version control queries against a repository.
// Every method returns the raw command output and fails on a non-zero exit.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_control.go -destination=mocks/mock_version_control.go -package=mocks
type VersionControl interface {
	// LsTree lists every file of the last committed tree with its object hash.
	LsTree(ctx context.Context, root string) (string, error)

	// Status lists working tree changes in short format, including untracked files.
	Status(ctx context.Context, root string) (string, error)

	// HashObjects returns one object hash per line for the given absolute paths, in order.
	HashObjects(ctx context.Context, cwd string, paths []string) (string, error)
}
