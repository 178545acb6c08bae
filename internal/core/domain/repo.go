package domain

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// RepoHashes maps repository relative, forward slash file paths to their git object hashes.
type RepoHashes map[string]string

// SortedPaths returns the file paths in byte-wise order.
func (h RepoHashes) SortedPaths() []string {
	paths := make([]string, 0, len(h))
	for p := range h {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// FileHash pairs a repository relative file path with its object hash.
type FileHash struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// PackageHashes maps a repository relative package directory to the files it owns, in path order.
// The empty key holds files that belong to no package.
type PackageHashes map[string][]FileHash

// RepoInfo is an immutable snapshot of a repository used to compute package hashes.
type RepoInfo struct {
	// Root is the absolute path of the workspace root.
	Root string

	// PackageInfos holds every workspace package by name.
	PackageInfos PackageInfos

	// Lock is the normalized lock file of the workspace.
	Lock *ParsedLock

	// RepoHashes holds the current object hash of every tracked or untracked file.
	RepoHashes RepoHashes

	// PackageHashes holds RepoHashes bucketed by owning package.
	PackageHashes PackageHashes

	// Fingerprint identifies the file contents the snapshot was built from.
	Fingerprint uint64
}

// Fingerprint computes a 64-bit identity of a root and its file hashes.
func Fingerprint(root string, hashes RepoHashes) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(root)
	_, _ = d.Write([]byte{0})
	for _, p := range hashes.SortedPaths() {
		_, _ = d.WriteString(p)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(hashes[p])
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// FingerprintString returns the fingerprint as fixed width hex.
func (r *RepoInfo) FingerprintString() string {
	return fmt.Sprintf("%016x", r.Fingerprint)
}
