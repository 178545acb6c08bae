// Package hasher computes package hashes from repository snapshots.
package hasher

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// HashFiles returns one hash over every file below packageRoot.
// Paths take part in the hash, so renaming a file changes the result.
func HashFiles(packageRoot string, info *domain.RepoInfo) (string, error) {
	rel, err := filepath.Rel(info.Root, packageRoot)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to relativize package root"), "package_root", packageRoot)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}

	if files, ok := info.PackageHashes[rel]; ok {
		values := make([]string, 0, len(files)*2)
		for _, f := range files {
			values = append(values, f.Path, f.Hash)
		}
		return domain.HashStrings(values), nil
	}

	return hashFilesByPrefix(packageRoot, info), nil
}

// hashFilesByPrefix handles package roots that have no bucket of their own.
func hashFilesByPrefix(packageRoot string, info *domain.RepoInfo) string {
	prefix := filepath.Clean(packageRoot) + string(filepath.Separator)

	var paths []string
	for p := range info.RepoHashes {
		if strings.Contains(filepath.Join(info.Root, filepath.FromSlash(p)), prefix) {
			paths = append(paths, p)
		}
	}
	slices.Sort(paths)

	values := make([]string, 0, len(paths)*2)
	for _, p := range paths {
		values = append(values, p, info.RepoHashes[p])
	}
	return domain.HashStrings(values)
}
