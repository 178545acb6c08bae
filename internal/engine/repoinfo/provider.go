package repoinfo

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// FileIndex lists the current file hashes of a repository.
type FileIndex interface {
	FileHashes(ctx context.Context, root string) (domain.RepoHashes, error)
}

// Provider builds repository snapshots and caches them for the process lifetime.
// Concurrent requests for the same root share one build.
type Provider struct {
	workspace ports.Workspace
	index     FileIndex
	logger    ports.Logger
	tracer    ports.Tracer

	mu           sync.RWMutex
	snapshots    []*domain.RepoInfo
	requestGroup singleflight.Group
}

// NewProvider creates a Provider.
func NewProvider(
	workspace ports.Workspace,
	index FileIndex,
	logger ports.Logger,
	tracer ports.Tracer,
) *Provider {
	return &Provider{
		workspace: workspace,
		index:     index,
		logger:    logger,
		tracer:    tracer,
	}
}

// Get returns a cached snapshot whose root contains cwd, or builds one.
func (p *Provider) Get(ctx context.Context, cwd string) (*domain.RepoInfo, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	if info := p.lookup(cwd); info != nil {
		return info, nil
	}

	root, err := p.resolveRoot(cwd)
	if err != nil {
		return nil, err
	}

	// The shared build outlives any single caller; each caller stops waiting on its own ctx.
	buildCtx := context.WithoutCancel(ctx)
	ch := p.requestGroup.DoChan(root, func() (any, error) {
		if info := p.lookup(root); info != nil {
			return info, nil
		}
		return p.build(buildCtx, root)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.RepoInfo), nil
	}
}

// GetNoCache always builds a fresh snapshot for the workspace containing cwd.
func (p *Provider) GetNoCache(ctx context.Context, cwd string) (*domain.RepoInfo, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve working directory")
	}

	root, err := p.resolveRoot(cwd)
	if err != nil {
		return nil, err
	}
	return p.build(ctx, root)
}

// Snapshots returns the number of snapshots built so far.
func (p *Provider) Snapshots() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.snapshots)
}

func (p *Provider) resolveRoot(cwd string) (string, error) {
	root, err := p.workspace.FindRoot(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkspaceRootNotFound.Error()), "cwd", cwd)
	}
	if root == "" {
		return "", zerr.With(domain.ErrWorkspaceRootNotFound, "cwd", cwd)
	}
	root, err = filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrWorkspaceRootNotFound.Error())
	}
	return root, nil
}

// lookup returns the most recent snapshot whose root is path or one of its ancestors.
func (p *Provider) lookup(path string) *domain.RepoInfo {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for i := len(p.snapshots) - 1; i >= 0; i-- {
		if within(p.snapshots[i].Root, path) {
			return p.snapshots[i]
		}
	}
	return nil
}

func (p *Provider) build(ctx context.Context, root string) (*domain.RepoInfo, error) {
	ctx, span := p.tracer.Start(ctx, "repoInfo")
	defer span.End()
	span.SetAttribute("root", root)

	var (
		repoHashes domain.RepoHashes
		infos      domain.PackageInfos
		lock       *domain.ParsedLock
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repoHashes, err = p.index.FileHashes(groupCtx, root)
		return err
	})
	g.Go(func() error {
		var err error
		infos, err = p.workspace.WorkspacePackages(root)
		return err
	})
	g.Go(func() error {
		var err error
		lock, err = p.workspace.ParseLockFile(groupCtx, root)
		return err
	})

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRepoInfoFailed.Error()), "root", root)
	}

	if infos == nil {
		infos = domain.PackageInfos{}
	}
	if lock == nil {
		lock = domain.UnavailableLock("no lock file")
	}

	info := &domain.RepoInfo{
		Root:          root,
		PackageInfos:  infos,
		Lock:          lock,
		RepoHashes:    repoHashes,
		PackageHashes: BuildPackageHashes(root, infos, repoHashes),
		Fingerprint:   domain.Fingerprint(root, repoHashes),
	}

	p.mu.Lock()
	p.snapshots = append(p.snapshots, info)
	p.mu.Unlock()

	p.logger.Debug(fmt.Sprintf(
		"collected %d files in %d packages under %s (lock: %s)",
		len(repoHashes), len(infos), root, lock.Kind,
	))
	return info, nil
}

// within reports whether path equals root or lies below it.
func within(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
