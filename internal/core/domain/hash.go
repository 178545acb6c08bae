package domain

import (
	//nolint:gosec // SHA-1 keeps hashes compatible with existing caches; not used for security.
	"crypto/sha1"
	"encoding/hex"
	"slices"
	"strings"
)

// HashString returns the hex encoded SHA-1 digest of a single string.
func HashString(value string) string {
	sum := sha1.Sum([]byte(value)) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

// HashStrings returns an order independent digest of values.
// The values are sorted byte-wise and fed into a single SHA-1 accumulator.
// The input slice is not modified.
func HashStrings(values []string) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	h := sha1.New() //nolint:gosec // see import
	for _, v := range sorted {
		_, _ = h.Write([]byte(v))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HashPackageInfos digests per-package results in name order.
// Each package contributes its name, files hash and dependencies hash.
func HashPackageInfos(infos []PackageHashInfo) string {
	sorted := slices.Clone(infos)
	slices.SortStableFunc(sorted, func(a, b PackageHashInfo) int {
		return strings.Compare(a.Name, b.Name)
	})

	h := sha1.New() //nolint:gosec // see import
	for _, p := range sorted {
		_, _ = h.Write([]byte(p.Name))
		_, _ = h.Write([]byte(p.FilesHash))
		_, _ = h.Write([]byte(p.DependenciesHash))
	}
	return hex.EncodeToString(h.Sum(nil))
}
