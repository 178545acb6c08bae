package ports

import "go.trai.ch/pkghash/internal/core/domain"

// ReportStore persists hash reports keyed by their final hash.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ReportStore interface {
	// Get retrieves the report for a hash.
	// Returns nil, nil if not found.
	Get(root, hash string) (*domain.HashReport, error)

	// Put stores the report below the given repository root.
	Put(root string, report domain.HashReport) error
}
