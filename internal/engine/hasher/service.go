package hasher

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Service owns the collaborators and the package memo shared by every Hasher it creates.
type Service struct {
	repos     ports.RepoInfoProvider
	workspace ports.Workspace
	logger    ports.Logger
	tracer    ports.Tracer
	memo      *Memo
}

// NewService creates a Service with an empty memo.
func NewService(
	repos ports.RepoInfoProvider,
	workspace ports.Workspace,
	logger ports.Logger,
	tracer ports.Tracer,
) *Service {
	return &Service{
		repos:     repos,
		workspace: workspace,
		logger:    logger,
		tracer:    tracer,
		memo:      NewMemo(),
	}
}

// ForPackage returns a Hasher for the package containing packageRoot.
func (s *Service) ForPackage(packageRoot string) *Hasher {
	return &Hasher{service: s, packageRoot: packageRoot}
}

// Memo exposes the package memo.
func (s *Service) Memo() *Memo {
	return s.memo
}

// PackageHash computes the files and dependencies hash of one package.
// Results are memoized per absolute path and snapshot fingerprint.
func (s *Service) PackageHash(ctx context.Context, packageRoot string, info *domain.RepoInfo) (domain.PackageHashInfo, error) {
	abs, err := filepath.Abs(packageRoot)
	if err != nil {
		return domain.PackageHashInfo{}, zerr.Wrap(err, domain.ErrPackageHashFailed.Error())
	}

	if cached, ok := s.memo.Get(abs, info.Fingerprint); ok {
		return cached, nil
	}

	_, span := s.tracer.Start(ctx, "packageHash")
	defer span.End()
	span.SetAttribute("package_root", abs)

	manifest, err := s.workspace.ReadManifest(abs)
	if err != nil {
		span.RecordError(err)
		return domain.PackageHashInfo{}, zerr.With(zerr.Wrap(err, domain.ErrPackageHashFailed.Error()), "package_root", abs)
	}

	deps := manifest.AllDependencies()

	internal := make([]string, 0)
	for _, name := range deps.Names() {
		if info.PackageInfos.Has(name) {
			internal = append(internal, name)
		}
	}

	external := ResolveExternalDependencies(deps, info.PackageInfos, info.Lock)
	resolved := slices.Concat(internal, domain.SpecStrings(external))

	filesHash, err := HashFiles(abs, info)
	if err != nil {
		span.RecordError(err)
		return domain.PackageHashInfo{}, zerr.Wrap(err, domain.ErrPackageHashFailed.Error())
	}

	result := domain.PackageHashInfo{
		Name:                 manifest.Name,
		FilesHash:            filesHash,
		DependenciesHash:     domain.HashStrings(resolved),
		InternalDependencies: internal,
	}
	s.memo.Put(abs, info.Fingerprint, result)

	s.logger.Debug(fmt.Sprintf("%s: files %s, dependencies %s", result.Name, result.FilesHash, result.DependenciesHash))
	return result, nil
}
