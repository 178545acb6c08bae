// Package app implements the application layer for pkghash.
package app

import (
	"context"
	"time"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/pkghash/internal/engine/hasher"
	"go.trai.ch/zerr"
)

// leveler is implemented by loggers whose verbosity can change at runtime.
type leveler interface {
	SetLevel(level domain.LogLevel)
}

// App represents the main application logic.
type App struct {
	workspace ports.Workspace
	repos     ports.RepoInfoProvider
	hasher    *hasher.Service
	store     ports.ReportStore
	logger    ports.Logger
	config    *domain.Config
	now       func() time.Time
}

// New creates a new App instance.
func New(
	ws ports.Workspace,
	repos ports.RepoInfoProvider,
	service *hasher.Service,
	store ports.ReportStore,
	log ports.Logger,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}
	return &App{
		workspace: ws,
		repos:     repos,
		hasher:    service,
		store:     store,
		logger:    log,
		config:    cfg,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for report timestamps and durations.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// HashOptions configures the Hash method.
type HashOptions struct {
	// Signature is the build signature; the configured signature is used when empty.
	Signature string
	// Report persists a HashReport even when reports are disabled in the configuration.
	Report bool
	// Verbose logs the per-package breakdown.
	Verbose bool
}

// Hash computes the hash of the package containing path.
func (a *App) Hash(ctx context.Context, path string, opts HashOptions) (*domain.HashResult, error) {
	if opts.Verbose {
		a.SetVerbose()
	}

	signature := opts.Signature
	if signature == "" {
		signature = a.config.Signature
	}

	start := a.now()
	result, err := a.hasher.ForPackage(path).Compute(ctx, signature)
	if err != nil {
		return nil, err
	}

	if opts.Report || a.config.Report.Enabled {
		if err := a.writeReport(ctx, result, signature, a.now().Sub(start)); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (a *App) writeReport(ctx context.Context, result *domain.HashResult, signature string, elapsed time.Duration) error {
	info, err := a.repos.Get(ctx, result.PackageRoot)
	if err != nil {
		return err
	}

	report := domain.HashReport{
		Hash:        result.Hash,
		PackageRoot: result.PackageRoot,
		Signature:   signature,
		Fingerprint: info.FingerprintString(),
		Packages:    result.Packages,
		Duration:    elapsed,
		Timestamp:   a.now().UTC(),
	}
	if err := a.store.Put(info.Root, report); err != nil {
		return err
	}
	a.logger.Debug("wrote hash report for " + result.Hash)
	return nil
}

// Files returns the content hash of every file of the repository containing path.
func (a *App) Files(ctx context.Context, path string) ([]domain.FileHash, error) {
	info, err := a.repos.Get(ctx, path)
	if err != nil {
		return nil, err
	}

	files := make([]domain.FileHash, 0, len(info.RepoHashes))
	for _, p := range info.RepoHashes.SortedPaths() {
		files = append(files, domain.FileHash{Path: p, Hash: info.RepoHashes[p]})
	}
	return files, nil
}

// Deps returns the resolved external dependencies of the package containing path.
func (a *App) Deps(ctx context.Context, path string) ([]domain.DependencySpec, error) {
	return a.hasher.ForPackage(path).ExternalDependencies(ctx)
}

// OutputHash hashes the current files of the package at path against a fresh snapshot.
func (a *App) OutputHash(ctx context.Context, path string) (string, error) {
	return a.hasher.ForPackage(path).HashOfOutput(ctx)
}

// Packages returns the packages of the workspace containing path, including a named root package.
func (a *App) Packages(path string) (domain.PackageInfos, error) {
	root, err := a.workspaceRoot(path)
	if err != nil {
		return nil, err
	}
	return a.workspace.PackageInfos(root)
}

// Report reads a previously written hash report from the workspace containing path.
func (a *App) Report(path, hash string) (*domain.HashReport, error) {
	root, err := a.workspaceRoot(path)
	if err != nil {
		return nil, err
	}

	report, err := a.store.Get(root, hash)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, zerr.With(domain.ErrReportNotFound, "hash", hash)
	}
	return report, nil
}

// SetVerbose lowers the log level to debug when the logger supports it.
func (a *App) SetVerbose() {
	if l, ok := a.logger.(leveler); ok {
		l.SetLevel(domain.LogLevelDebug)
	}
}

func (a *App) workspaceRoot(path string) (string, error) {
	root, err := a.workspace.FindRoot(path)
	if err != nil {
		return "", err
	}
	if root == "" {
		return "", zerr.With(domain.ErrWorkspaceRootNotFound, "path", path)
	}
	return root, nil
}
