package hasher

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes the hash of one package and its internal dependency closure.
type Hasher struct {
	service     *Service
	packageRoot string
}

// PackageRoot returns the path the Hasher was created for.
func (h *Hasher) PackageRoot() string {
	return h.packageRoot
}

// CreatePackageHash returns the hash of the package combined with a build signature.
func (h *Hasher) CreatePackageHash(ctx context.Context, signature string) (string, error) {
	result, err := h.Compute(ctx, signature)
	if err != nil {
		return "", err
	}
	return result.Hash, nil
}

// Compute returns the hash of the package together with the per-package breakdown.
// Internal dependencies are visited breadth first, once per package name.
func (h *Hasher) Compute(ctx context.Context, signature string) (*domain.HashResult, error) {
	s := h.service

	ctx, span := s.tracer.Start(ctx, "hashTime")
	defer span.End()

	root, err := h.findPackageRoot()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	info, err := s.repos.Get(ctx, root)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	queue := []string{root}
	queued := map[string]struct{}{root: {}}
	doneNames := make(map[string]struct{})
	var done []domain.PackageHashInfo

	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]
		delete(queued, dir)

		s.logger.Debug("Hashing " + dir)
		pkg, err := s.PackageHash(ctx, dir, info)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		done = append(done, pkg)
		doneNames[pkg.Name] = struct{}{}

		for _, name := range pkg.InternalDependencies {
			if _, ok := doneNames[name]; ok {
				continue
			}
			depDir := info.PackageInfos[name].Dir()
			if _, ok := queued[depDir]; ok {
				continue
			}
			queued[depDir] = struct{}{}
			queue = append(queue, depDir)
		}
	}

	internalHash := domain.HashPackageInfos(done)
	buildHash := domain.HashString(signature)
	final := domain.HashStrings([]string{internalHash, buildHash})

	span.SetAttribute("hash", final)
	s.logger.Debug(fmt.Sprintf("internal packages hash %s, build command hash %s", internalHash, buildHash))
	s.logger.Debug(fmt.Sprintf("hash of %s: %s", root, final))

	return &domain.HashResult{
		Hash:                 final,
		InternalPackagesHash: internalHash,
		BuildCommandHash:     buildHash,
		PackageRoot:          root,
		Packages:             done,
	}, nil
}

// HashOfOutput hashes the files of the package against a fresh snapshot.
func (h *Hasher) HashOfOutput(ctx context.Context) (string, error) {
	s := h.service

	ctx, span := s.tracer.Start(ctx, "hashOfOutput")
	defer span.End()

	root, err := filepath.Abs(h.packageRoot)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageRootNotFound.Error()), "path", h.packageRoot)
	}

	info, err := s.repos.GetNoCache(ctx, root)
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	hash, err := HashFiles(root, info)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttribute("hash", hash)
	return hash, nil
}

// ExternalDependencies returns the resolved external dependency closure of the package.
func (h *Hasher) ExternalDependencies(ctx context.Context) ([]domain.DependencySpec, error) {
	root, err := h.findPackageRoot()
	if err != nil {
		return nil, err
	}

	info, err := h.service.repos.Get(ctx, root)
	if err != nil {
		return nil, err
	}

	manifest, err := h.service.workspace.ReadManifest(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageHashFailed.Error()), "package_root", root)
	}
	return ResolveExternalDependencies(manifest.AllDependencies(), info.PackageInfos, info.Lock), nil
}

func (h *Hasher) findPackageRoot() (string, error) {
	root, err := h.service.workspace.FindPackageRoot(h.packageRoot)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageRootNotFound.Error()), "path", h.packageRoot)
	}
	if root == "" {
		return "", zerr.With(domain.ErrPackageRootNotFound, "path", h.packageRoot)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPackageRootNotFound.Error())
	}
	return abs, nil
}
