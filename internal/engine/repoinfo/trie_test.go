package repoinfo_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/engine/repoinfo"
)

func manifest(root string, rel ...string) string {
	parts := append([]string{root}, rel...)
	parts = append(parts, "package.json")
	return filepath.Join(parts...)
}

func TestBuildPackageHashes(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "repo")
	infos := domain.PackageInfos{
		"package-a":   {Name: "package-a", PackageJSONPath: manifest(root, "packages", "package-a")},
		"package-abc": {Name: "package-abc", PackageJSONPath: manifest(root, "packages", "package-abc")},
		"nested":      {Name: "nested", PackageJSONPath: manifest(root, "packages", "package-a", "nested")},
	}
	hashes := domain.RepoHashes{
		"package.json":                          "r1",
		"packages/README.md":                    "r2",
		"packages/package-a/index.js":           "a1",
		"packages/package-a/src/util.js":        "a2",
		"packages/package-a/nested/index.js":    "n1",
		"packages/package-abc/index.js":         "b1",
		"packages/package-a-not-a-package/x.js": "x1",
	}

	buckets := repoinfo.BuildPackageHashes(root, infos, hashes)

	assert.Equal(t, []domain.FileHash{
		{Path: "packages/package-a/index.js", Hash: "a1"},
		{Path: "packages/package-a/src/util.js", Hash: "a2"},
	}, buckets["packages/package-a"])
	assert.Equal(t, []domain.FileHash{
		{Path: "packages/package-a/nested/index.js", Hash: "n1"},
	}, buckets["packages/package-a/nested"])
	assert.Equal(t, []domain.FileHash{
		{Path: "packages/package-abc/index.js", Hash: "b1"},
	}, buckets["packages/package-abc"])
	assert.Equal(t, []domain.FileHash{
		{Path: "packages/README.md", Hash: "r2"},
		{Path: "packages/package-a-not-a-package/x.js", Hash: "x1"},
	}, buckets["packages"])
	assert.Equal(t, []domain.FileHash{
		{Path: "package.json", Hash: "r1"},
	}, buckets[""])
	assert.Len(t, buckets, 5)
}

func TestBuildPackageHashes_IntermediateDirectories(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "repo")
	infos := domain.PackageInfos{
		"a": {Name: "a", PackageJSONPath: manifest(root, "packages", "a")},
		"y": {Name: "y", PackageJSONPath: manifest(root, "packages", "a", "x", "y")},
	}
	hashes := domain.RepoHashes{
		"packages/README.md":    "r",
		"packages/a/index.js":   "a",
		"packages/a/x/z.js":     "z",
		"packages/a/x/y/y.js":   "y",
		"packages/a/src/lib.js": "l",
	}

	buckets := repoinfo.BuildPackageHashes(root, infos, hashes)

	assert.Equal(t, domain.PackageHashes{
		"packages": {{Path: "packages/README.md", Hash: "r"}},
		"packages/a": {
			{Path: "packages/a/index.js", Hash: "a"},
			{Path: "packages/a/src/lib.js", Hash: "l"},
		},
		"packages/a/x":   {{Path: "packages/a/x/z.js", Hash: "z"}},
		"packages/a/x/y": {{Path: "packages/a/x/y/y.js", Hash: "y"}},
	}, buckets)
}

func TestBuildPackageHashes_SubstringSafety(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "repo")
	infos := domain.PackageInfos{
		"pkg-a":   {Name: "pkg-a", PackageJSONPath: manifest(root, "pkg-a")},
		"pkg-abc": {Name: "pkg-abc", PackageJSONPath: manifest(root, "pkg-abc")},
	}

	before := repoinfo.BuildPackageHashes(root, infos, domain.RepoHashes{
		"pkg-a/index.js":   "1",
		"pkg-abc/index.js": "2",
	})
	after := repoinfo.BuildPackageHashes(root, infos, domain.RepoHashes{
		"pkg-a/index.js":   "1",
		"pkg-abc/index.js": "2",
		"pkg-abc/extra.js": "3",
	})

	assert.Equal(t, before["pkg-a"], after["pkg-a"])
	assert.Len(t, after["pkg-abc"], 2)
}

func TestBuildPackageHashes_IgnoresPackagesOutsideRoot(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "repo")
	infos := domain.PackageInfos{
		"outside": {Name: "outside", PackageJSONPath: filepath.Join(string(filepath.Separator), "elsewhere", "package.json")},
		"root":    {Name: "root", PackageJSONPath: manifest(root)},
	}

	buckets := repoinfo.BuildPackageHashes(root, infos, domain.RepoHashes{"a.js": "1"})
	assert.Equal(t, domain.PackageHashes{"": {{Path: "a.js", Hash: "1"}}}, buckets)
}

func TestBuildPackageHashes_Empty(t *testing.T) {
	buckets := repoinfo.BuildPackageHashes("/repo", domain.PackageInfos{}, domain.RepoHashes{})
	assert.Empty(t, buckets)
}
