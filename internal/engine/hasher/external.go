package hasher

import (
	"go.trai.ch/pkghash/internal/core/domain"
)

type pendingDependency struct {
	name         string
	versionRange string
}

func (p pendingDependency) signature() string {
	return p.name + "@" + p.versionRange
}

// ResolveExternalDependencies walks the lock file breadth first from the external
// entries of deps and returns every reached dependency once, in discovery order.
// Resolved entries are reported as name@version; entries missing from the lock
// are reported as name@range and not expanded.
func ResolveExternalDependencies(
	deps domain.Dependencies,
	infos domain.PackageInfos,
	lock *domain.ParsedLock,
) []domain.DependencySpec {
	var queue []pendingDependency
	queued := make(map[string]struct{})
	visited := make(map[string]struct{})

	enqueue := func(deps domain.Dependencies) {
		for _, name := range deps.Names() {
			next := pendingDependency{name: name, versionRange: deps[name]}
			sig := next.signature()
			if _, ok := visited[sig]; ok {
				continue
			}
			if _, ok := queued[sig]; ok {
				continue
			}
			queued[sig] = struct{}{}
			queue = append(queue, next)
		}
	}

	external := make(domain.Dependencies, len(deps))
	for name, versionRange := range deps {
		if !infos.Has(name) {
			external[name] = versionRange
		}
	}
	enqueue(external)

	var resolved []domain.DependencySpec
	seen := make(map[domain.DependencySpec]struct{})
	record := func(spec domain.DependencySpec) {
		if _, ok := seen[spec]; ok {
			return
		}
		seen[spec] = struct{}{}
		resolved = append(resolved, spec)
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		sig := current.signature()
		delete(queued, sig)
		visited[sig] = struct{}{}

		entry, ok := lock.Query(current.name, current.versionRange)
		if !ok {
			record(domain.DependencySpec(sig))
			continue
		}

		enqueue(entry.Dependencies)
		record(domain.NewDependencySpec(current.name, entry.Version))
	}

	return resolved
}
