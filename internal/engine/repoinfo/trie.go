// Package repoinfo assembles and caches repository snapshots.
package repoinfo

import (
	"path/filepath"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
)

// pathTrie indexes package directories by path segment.
type pathTrie struct {
	children map[string]*pathTrie
}

func newPathTrie() *pathTrie {
	return &pathTrie{children: make(map[string]*pathTrie)}
}

// insert adds a relative package directory.
func (t *pathTrie) insert(segments []string) {
	node := t
	for _, seg := range segments {
		child, ok := node.children[seg]
		if !ok {
			child = newPathTrie()
			node.children[seg] = child
		}
		node = child
	}
}

// owner walks the trie along the file path as far as it matches and returns the
// directory reached. That may be an intermediate directory such as "packages".
func (t *pathTrie) owner(path string) string {
	segments := strings.Split(path, "/")
	node := t
	depth := 0
	for _, seg := range segments {
		child, ok := node.children[seg]
		if !ok {
			break
		}
		node = child
		depth++
	}
	return strings.Join(segments[:depth], "/")
}

// splitSegments splits a relative path on either separator and drops empty and "." parts.
func splitSegments(rel string) []string {
	parts := strings.FieldsFunc(rel, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	out := parts[:0]
	for _, p := range parts {
		if p != "." {
			out = append(out, p)
		}
	}
	return out
}

// BuildPackageHashes buckets every file of repoHashes into the package directory that owns it.
// Buckets are keyed by forward slash paths relative to root. A file goes to the
// deepest trie directory its path reaches, so files directly inside a directory
// that only leads to packages get that directory's bucket, and files sharing no
// leading segment with any package land in the "" bucket. Matching is done on
// whole path segments.
func BuildPackageHashes(root string, infos domain.PackageInfos, repoHashes domain.RepoHashes) domain.PackageHashes {
	trie := newPathTrie()
	for _, name := range infos.Names() {
		rel, err := filepath.Rel(root, infos[name].Dir())
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			continue
		}
		trie.insert(splitSegments(rel))
	}

	buckets := make(domain.PackageHashes)
	for _, path := range repoHashes.SortedPaths() {
		owner := trie.owner(path)
		buckets[owner] = append(buckets[owner], domain.FileHash{Path: path, Hash: repoHashes[path]})
	}
	return buckets
}
