package workspace

import (
	"strconv"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type pnpmLock struct {
	LockfileVersion yaml.Node               `yaml:"lockfileVersion"`
	Importers       map[string]pnpmImporter `yaml:"importers"`
	Packages        map[string]pnpmSnapshot `yaml:"packages"`
	Snapshots       map[string]pnpmSnapshot `yaml:"snapshots"`

	// Single project lock files of v5 keep the importer at the top level.
	Root pnpmImporter `yaml:",inline"`
}

type pnpmImporter struct {
	Specifiers           map[string]string        `yaml:"specifiers"`
	Dependencies         map[string]pnpmDirectDep `yaml:"dependencies"`
	DevDependencies      map[string]pnpmDirectDep `yaml:"devDependencies"`
	OptionalDependencies map[string]pnpmDirectDep `yaml:"optionalDependencies"`
}

// pnpmDirectDep is either a bare version (v5) or {specifier, version} (v6 and later).
type pnpmDirectDep struct {
	Specifier string
	Version   string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *pnpmDirectDep) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		d.Version = value.Value
		return nil
	}
	var full struct {
		Specifier string `yaml:"specifier"`
		Version   string `yaml:"version"`
	}
	if err := value.Decode(&full); err != nil {
		return err
	}
	d.Specifier, d.Version = full.Specifier, full.Version
	return nil
}

type pnpmSnapshot struct {
	Version              string            `yaml:"version"`
	Dependencies         map[string]string `yaml:"dependencies"`
	OptionalDependencies map[string]string `yaml:"optionalDependencies"`
}

// parsePnpmLock parses pnpm-lock.yaml in the v5, v6 and v9 layouts.
// Entries are keyed by "name@version"; importer specifiers become aliases onto them.
func parsePnpmLock(data []byte) (*domain.ParsedLock, error) {
	var raw pnpmLock
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockFileParse.Error())
	}

	version, err := strconv.ParseFloat(strings.Trim(raw.LockfileVersion.Value, `'"`), 64)
	if err != nil {
		return nil, zerr.With(domain.ErrLockFileParse, "lockfileVersion", raw.LockfileVersion.Value)
	}
	pathKeys := version < 6

	lock := domain.NewParsedLock(domain.LockKindPnpm)
	add := func(key string, snap pnpmSnapshot) {
		name, resolved := pnpmPackageKey(key, pathKeys)
		if name == "" {
			return
		}
		if snap.Version != "" {
			resolved = snap.Version
		}
		spec := string(domain.NewDependencySpec(name, resolved))

		entry := lock.Entries[spec]
		entry.Version = resolved
		for depName, depVersion := range snap.Dependencies {
			if entry.Dependencies == nil {
				entry.Dependencies = make(domain.Dependencies)
			}
			entry.Dependencies[depName] = pnpmVersion(depVersion, pathKeys)
		}
		for depName, depVersion := range snap.OptionalDependencies {
			if entry.Dependencies == nil {
				entry.Dependencies = make(domain.Dependencies)
			}
			entry.Dependencies[depName] = pnpmVersion(depVersion, pathKeys)
		}
		lock.Entries[spec] = entry
	}
	for key, snap := range raw.Packages {
		add(key, snap)
	}
	for key, snap := range raw.Snapshots {
		add(key, snap)
	}

	importers := raw.Importers
	if importers == nil {
		importers = map[string]pnpmImporter{".": raw.Root}
	}
	for _, importer := range importers {
		for _, deps := range []map[string]pnpmDirectDep{
			importer.Dependencies, importer.DevDependencies, importer.OptionalDependencies,
		} {
			for name, dep := range deps {
				specifier := dep.Specifier
				if specifier == "" {
					specifier = importer.Specifiers[name]
				}
				resolved := pnpmVersion(dep.Version, pathKeys)
				if specifier == "" || strings.HasPrefix(resolved, "link:") {
					continue
				}
				lock.Aliases[string(domain.NewDependencySpec(name, specifier))] =
					string(domain.NewDependencySpec(name, resolved))
			}
		}
	}
	return lock, nil
}

// pnpmPackageKey splits a packages key into name and version.
// v5 keys look like "/@scope/foo/1.0.0_peer@1.0.0", later ones like "/foo@1.0.0(peer@1.0.0)" or "foo@1.0.0".
func pnpmPackageKey(key string, pathKeys bool) (name, version string) {
	key = strings.TrimPrefix(key, "/")
	if pathKeys {
		i := strings.LastIndex(key, "/")
		if i <= 0 {
			return "", ""
		}
		return key[:i], pnpmVersion(key[i+1:], true)
	}
	if i := strings.Index(key, "("); i >= 0 {
		key = key[:i]
	}
	return domain.SplitSpec(key)
}

// pnpmVersion strips peer dependency suffixes from a resolved version.
// v5 appends them after "_", later layouts in parentheses.
func pnpmVersion(v string, pathKeys bool) string {
	if i := strings.Index(v, "("); i >= 0 {
		v = v[:i]
	}
	if pathKeys {
		if i := strings.Index(v, "_"); i >= 0 {
			v = v[:i]
		}
	}
	return v
}
