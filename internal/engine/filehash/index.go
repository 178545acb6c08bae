package filehash

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Index lists the current object hash of every file in a repository.
type Index struct {
	vcs    ports.VersionControl
	logger ports.Logger
}

// NewIndex creates an Index backed by the given version control client.
func NewIndex(vcs ports.VersionControl, logger ports.Logger) *Index {
	return &Index{vcs: vcs, logger: logger}
}

// FileHashes merges the committed tree of root with its working tree status.
// Deleted files are dropped; modified, added and untracked files are rehashed.
func (i *Index) FileHashes(ctx context.Context, root string) (domain.RepoHashes, error) {
	treeOutput, err := i.vcs.LsTree(ctx, root)
	if err != nil {
		return nil, err
	}
	hashes, err := ParseTree(treeOutput)
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}

	statusOutput, err := i.vcs.Status(ctx, root)
	if err != nil {
		return nil, err
	}
	entries, err := ParseStatus(statusOutput)
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}

	var toHash []string
	seen := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Deleted() {
			delete(hashes, entry.Path)
			continue
		}
		if _, ok := seen[entry.Path]; ok {
			continue
		}
		seen[entry.Path] = struct{}{}
		toHash = append(toHash, entry.Path)
	}

	if len(toHash) == 0 {
		return hashes, nil
	}

	absPaths := make([]string, len(toHash))
	for n, p := range toHash {
		absPaths[n] = filepath.Join(root, filepath.FromSlash(p))
	}

	output, err := i.vcs.HashObjects(ctx, root, absPaths)
	if err != nil {
		return nil, err
	}
	current, err := ParseHashObjects(output, toHash)
	if err != nil {
		return nil, zerr.With(err, "root", root)
	}

	for p, h := range current {
		hashes[p] = h
	}

	i.logger.Debug(fmt.Sprintf("hashed %d changed files in %s", len(toHash), root))
	return hashes, nil
}
