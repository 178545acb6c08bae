package domain

import (
	"maps"
	"slices"
	"strings"
)

// Dependencies maps dependency names to version ranges, as declared in a manifest or lock entry.
type Dependencies map[string]string

// Names returns the dependency names in sorted order.
func (d Dependencies) Names() []string {
	return slices.Sorted(maps.Keys(d))
}

// DependencySpec is a "name@version" token, where version is a range or a resolved version.
type DependencySpec string

// NewDependencySpec joins a name and a version into a spec.
func NewDependencySpec(name, version string) DependencySpec {
	return DependencySpec(name + "@" + version)
}

// Name returns the package name of the spec, keeping the scope of scoped packages.
func (s DependencySpec) Name() string {
	name, _ := SplitSpec(string(s))
	return name
}

// Version returns the range or version part of the spec.
func (s DependencySpec) Version() string {
	_, version := SplitSpec(string(s))
	return version
}

// SplitSpec splits "name@range" at the last '@' that is not the leading scope marker.
func SplitSpec(spec string) (name, version string) {
	i := strings.LastIndex(spec, "@")
	if i <= 0 {
		return spec, ""
	}
	return spec[:i], spec[i+1:]
}

// SpecStrings converts specs to plain strings.
func SpecStrings(specs []DependencySpec) []string {
	out := make([]string, len(specs))
	for i, s := range specs {
		out[i] = string(s)
	}
	return out
}
