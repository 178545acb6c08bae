package workspace

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
)

// skippedDirs are never searched for workspace packages.
var skippedDirs = map[string]struct{}{
	".git":         {},
	".jj":          {},
	"node_modules": {},
}

// walkPackageDirs yields every directory below base that holds a manifest.
func walkPackageDirs(base string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(base, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if p == base {
					return err
				}
				return nil
			}
			if !d.IsDir() {
				return nil
			}
			if _, skip := skippedDirs[d.Name()]; skip && p != base {
				return filepath.SkipDir
			}
			if !hasManifest(p) {
				return nil
			}
			if !yield(p) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func hasManifest(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, domain.ManifestFileName))
	return err == nil && !info.IsDir()
}

// expandPatterns resolves workspace patterns to package directories below root.
// Patterns prefixed with "!" remove matches; "**" matches any number of directories.
func expandPatterns(root string, patterns []string) ([]string, error) {
	include := make(map[string]struct{})
	var exclude []string

	for _, raw := range patterns {
		pattern := strings.TrimSpace(raw)
		if negated, ok := strings.CutPrefix(pattern, "!"); ok {
			exclude = append(exclude, cleanPattern(negated))
			continue
		}
		pattern = cleanPattern(pattern)
		if pattern == "" {
			continue
		}

		if !strings.Contains(pattern, "**") {
			matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				if hasManifest(m) {
					include[m] = struct{}{}
				}
			}
			continue
		}

		base := filepath.Join(root, filepath.FromSlash(staticPrefix(pattern)))
		for dir := range walkPackageDirs(base) {
			rel, err := filepath.Rel(root, dir)
			if err != nil {
				continue
			}
			if matchSegments(strings.Split(pattern, "/"), strings.Split(filepath.ToSlash(rel), "/")) {
				include[dir] = struct{}{}
			}
		}
	}

	dirs := make([]string, 0, len(include))
	for dir := range include {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			continue
		}
		if excluded(filepath.ToSlash(rel), exclude) {
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func cleanPattern(pattern string) string {
	pattern = filepath.ToSlash(strings.TrimSpace(pattern))
	pattern = strings.TrimPrefix(pattern, "./")
	pattern = strings.TrimSuffix(pattern, "/")
	return pattern
}

// staticPrefix returns the leading segments of pattern that contain no glob syntax.
func staticPrefix(pattern string) string {
	segments := strings.Split(pattern, "/")
	var static []string
	for _, s := range segments {
		if strings.ContainsAny(s, "*?[") {
			break
		}
		static = append(static, s)
	}
	return strings.Join(static, "/")
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if matchSegments(strings.Split(p, "/"), strings.Split(rel, "/")) {
			return true
		}
	}
	return false
}

// matchSegments matches path segments against pattern segments where "**" spans zero or more segments.
func matchSegments(pattern, segments []string) bool {
	if len(pattern) == 0 {
		return len(segments) == 0
	}
	if pattern[0] == "**" {
		for i := 0; i <= len(segments); i++ {
			if matchSegments(pattern[1:], segments[i:]) {
				return true
			}
		}
		return false
	}
	if len(segments) == 0 {
		return false
	}
	ok, err := path.Match(pattern[0], segments[0])
	if err != nil || !ok {
		return false
	}
	return matchSegments(pattern[1:], segments[1:])
}
