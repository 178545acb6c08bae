// Package workspace discovers the packages and lock file of a JavaScript monorepo.
package workspace

import (
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const pnpmWorkspaceFile = "pnpm-workspace.yaml"

// rootMarkers are files whose presence makes a directory a workspace root.
var rootMarkers = []string{
	pnpmWorkspaceFile,
	pnpmLockFile,
	yarnLockFile,
	npmLockFile,
	"rush.json",
}

// Workspace implements ports.Workspace on the local file system.
type Workspace struct {
	logger ports.Logger
}

// New creates a Workspace.
func New(logger ports.Logger) *Workspace {
	return &Workspace{logger: logger}
}

// FindRoot returns the nearest directory at or above cwd that is a workspace root.
func (w *Workspace) FindRoot(cwd string) (string, error) {
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrWorkspaceRootNotFound.Error()), "path", cwd)
	}

	for {
		ok, err := isRoot(dir)
		if err != nil {
			return "", err
		}
		if ok {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func isRoot(dir string) (bool, error) {
	for _, marker := range rootMarkers {
		if fileExists(filepath.Join(dir, marker)) {
			return true, nil
		}
	}

	manifestPath := filepath.Join(dir, domain.ManifestFileName)
	if !fileExists(manifestPath) {
		return false, nil
	}
	m, err := readManifest(manifestPath)
	if err != nil {
		return false, err
	}
	return m.Workspaces.Set, nil
}

// FindPackageRoot returns the nearest directory at or above path that holds a manifest.
func (w *Workspace) FindPackageRoot(path string) (string, error) {
	dir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrPackageRootNotFound.Error()), "path", path)
	}

	for {
		if hasManifest(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// ReadManifest reads the package.json in dir.
func (w *Workspace) ReadManifest(dir string) (*domain.PackageInfo, error) {
	path := filepath.Join(dir, domain.ManifestFileName)
	m, err := readManifest(path)
	if err != nil {
		return nil, err
	}
	return m.info(path), nil
}

// WorkspacePackages returns the packages matched by the workspace patterns of root.
// The root package itself is never included.
func (w *Workspace) WorkspacePackages(root string) (domain.PackageInfos, error) {
	patterns, err := w.patterns(root)
	if err != nil {
		return nil, err
	}

	dirs, err := expandPatterns(root, patterns)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceDiscovery.Error()), "root", root)
	}
	slices.Sort(dirs)

	infos := make(domain.PackageInfos, len(dirs))
	for _, dir := range dirs {
		if dir == root {
			continue
		}
		info, err := w.ReadManifest(dir)
		if err != nil {
			return nil, err
		}
		if info.Name == "" {
			w.logger.Warn("skipping unnamed package in " + dir)
			continue
		}
		if existing, ok := infos[info.Name]; ok {
			w.logger.Warn("duplicate package " + info.Name + " in " + dir + ", keeping " + existing.Dir())
			continue
		}
		infos[info.Name] = info
	}
	return infos, nil
}

// PackageInfos returns the workspace packages plus the root package when it is named.
func (w *Workspace) PackageInfos(root string) (domain.PackageInfos, error) {
	infos, err := w.WorkspacePackages(root)
	if err != nil {
		return nil, err
	}
	if !hasManifest(root) {
		return infos, nil
	}

	rootInfo, err := w.ReadManifest(root)
	if err != nil {
		return nil, err
	}
	if rootInfo.Name != "" && !infos.Has(rootInfo.Name) {
		infos[rootInfo.Name] = rootInfo
	}
	return infos, nil
}

// patterns returns the workspace globs of root, preferring pnpm-workspace.yaml.
func (w *Workspace) patterns(root string) ([]string, error) {
	pnpmPath := filepath.Join(root, pnpmWorkspaceFile)
	if fileExists(pnpmPath) {
		// #nosec G304 -- fixed file name inside the workspace root
		data, err := os.ReadFile(pnpmPath)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceDiscovery.Error()), "path", pnpmPath)
		}
		var cfg struct {
			Packages []string `yaml:"packages"`
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspaceDiscovery.Error()), "path", pnpmPath)
		}
		return cfg.Packages, nil
	}

	manifestPath := filepath.Join(root, domain.ManifestFileName)
	if !fileExists(manifestPath) {
		return nil, nil
	}
	m, err := readManifest(manifestPath)
	if err != nil {
		return nil, err
	}
	return m.Workspaces.Patterns, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
