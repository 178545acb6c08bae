package domain

import "time"

// PackageHashInfo is the per-package outcome of the internal dependency traversal.
type PackageHashInfo struct {
	Name                 string   `json:"name"`
	FilesHash            string   `json:"filesHash"`
	DependenciesHash     string   `json:"dependenciesHash"`
	InternalDependencies []string `json:"internalDependencies"`
}

// HashResult is the breakdown of a final package hash.
type HashResult struct {
	Hash                 string            `json:"hash"`
	InternalPackagesHash string            `json:"internalPackagesHash"`
	BuildCommandHash     string            `json:"buildCommandHash"`
	PackageRoot          string            `json:"packageRoot"`
	Packages             []PackageHashInfo `json:"packages"`
}

// HashReport is the persisted form of a HashResult.
type HashReport struct {
	Hash        string            `json:"hash,omitzero"`
	PackageRoot string            `json:"packageRoot,omitzero"`
	Signature   string            `json:"signature,omitzero"`
	Fingerprint string            `json:"fingerprint,omitzero"`
	Packages    []PackageHashInfo `json:"packages,omitzero"`
	Duration    time.Duration     `json:"duration,omitzero"`
	Timestamp   time.Time         `json:"timestamp,omitzero"`
}
