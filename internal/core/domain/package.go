package domain

import (
	"maps"
	"path/filepath"
	"slices"
)

// PackageInfo describes a package manifest found in the workspace.
type PackageInfo struct {
	// Name is the package name from the manifest.
	Name string `json:"name"`

	// Version is the package version from the manifest.
	Version string `json:"version,omitempty"`

	// Private reports whether the manifest is marked private.
	Private bool `json:"private,omitempty"`

	// PackageJSONPath is the absolute path of the manifest file.
	PackageJSONPath string `json:"packageJsonPath"`

	// Dependencies are the runtime dependencies of the package.
	Dependencies Dependencies `json:"dependencies,omitempty"`

	// DevDependencies are the development dependencies of the package.
	DevDependencies Dependencies `json:"devDependencies,omitempty"`
}

// Dir returns the absolute directory containing the manifest.
func (p *PackageInfo) Dir() string {
	return filepath.Dir(p.PackageJSONPath)
}

// AllDependencies merges runtime and development dependencies.
// A development entry wins when both declare the same name.
func (p *PackageInfo) AllDependencies() Dependencies {
	all := make(Dependencies, len(p.Dependencies)+len(p.DevDependencies))
	maps.Copy(all, p.Dependencies)
	maps.Copy(all, p.DevDependencies)
	return all
}

// PackageInfos maps package names to their manifest information.
type PackageInfos map[string]*PackageInfo

// Has reports whether a package with the given name is part of the workspace.
func (p PackageInfos) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Names returns the package names in sorted order.
func (p PackageInfos) Names() []string {
	return slices.Sorted(maps.Keys(p))
}
