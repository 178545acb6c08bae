package hasher_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/engine/hasher"
	"go.trai.ch/pkghash/internal/engine/repoinfo"
)

var testRoot = filepath.Join(string(filepath.Separator), "repo")

func snapshot(infos domain.PackageInfos, hashes domain.RepoHashes) *domain.RepoInfo {
	if infos == nil {
		infos = domain.PackageInfos{}
	}
	return &domain.RepoInfo{
		Root:          testRoot,
		PackageInfos:  infos,
		Lock:          domain.UnavailableLock("none"),
		RepoHashes:    hashes,
		PackageHashes: repoinfo.BuildPackageHashes(testRoot, infos, hashes),
		Fingerprint:   domain.Fingerprint(testRoot, hashes),
	}
}

func pkg(name string, rel ...string) *domain.PackageInfo {
	parts := append([]string{testRoot}, rel...)
	parts = append(parts, "package.json")
	return &domain.PackageInfo{Name: name, PackageJSONPath: filepath.Join(parts...)}
}

func TestHashFiles_FastPath(t *testing.T) {
	const expectedHash = "ba9e09d4861072c9d219cdb73dcea48a0d4c3bdc"

	info := snapshot(
		domain.PackageInfos{"a": pkg("a", "packages", "a")},
		domain.RepoHashes{
			"packages/a/index.js": "1111",
			"packages/a/util.js":  "2222",
			"README.md":           "3333",
		},
	)

	hash, err := hasher.HashFiles(filepath.Join(testRoot, "packages", "a"), info)
	require.NoError(t, err)
	assert.Equal(t, expectedHash, hash)
}

func TestHashFiles_SlowPathMatchesFastPath(t *testing.T) {
	hashes := domain.RepoHashes{
		"packages/a/index.js": "1111",
		"packages/a/util.js":  "2222",
	}
	withPackage := snapshot(domain.PackageInfos{"a": pkg("a", "packages", "a")}, hashes)
	withoutPackage := snapshot(nil, hashes)

	fast, err := hasher.HashFiles(filepath.Join(testRoot, "packages", "a"), withPackage)
	require.NoError(t, err)
	slow, err := hasher.HashFiles(filepath.Join(testRoot, "packages", "a"), withoutPackage)
	require.NoError(t, err)

	assert.Equal(t, fast, slow)
}

func TestHashFiles_SlowPathIsSegmentAware(t *testing.T) {
	info := snapshot(nil, domain.RepoHashes{
		"pkg-a/index.js":   "1",
		"pkg-abc/index.js": "2",
	})
	grown := snapshot(nil, domain.RepoHashes{
		"pkg-a/index.js":   "1",
		"pkg-abc/index.js": "2",
		"pkg-abc/other.js": "3",
	})

	before, err := hasher.HashFiles(filepath.Join(testRoot, "pkg-a"), info)
	require.NoError(t, err)
	after, err := hasher.HashFiles(filepath.Join(testRoot, "pkg-a"), grown)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestHashFiles_Sensitivity(t *testing.T) {
	infos := domain.PackageInfos{"a": pkg("a", "packages", "a")}
	dir := filepath.Join(testRoot, "packages", "a")
	base := domain.RepoHashes{"packages/a/index.js": "1111"}

	hash := func(h domain.RepoHashes) string {
		t.Helper()
		out, err := hasher.HashFiles(dir, snapshot(infos, h))
		require.NoError(t, err)
		return out
	}
	original := hash(base)

	t.Run("rename with same content", func(t *testing.T) {
		assert.NotEqual(t, original, hash(domain.RepoHashes{"packages/a/main.js": "1111"}))
	})

	t.Run("content change and restore", func(t *testing.T) {
		assert.NotEqual(t, original, hash(domain.RepoHashes{"packages/a/index.js": "9999"}))
		assert.Equal(t, original, hash(domain.RepoHashes{"packages/a/index.js": "1111"}))
	})

	t.Run("add and remove", func(t *testing.T) {
		assert.NotEqual(t, original, hash(domain.RepoHashes{
			"packages/a/index.js": "1111",
			"packages/a/extra.js": "2222",
		}))
		assert.Equal(t, original, hash(base))
	})
}

func TestHashFiles_RootPackageUsesUnownedFiles(t *testing.T) {
	info := snapshot(
		domain.PackageInfos{"a": pkg("a", "packages", "a")},
		domain.RepoHashes{
			"package.json":        "1",
			"packages/a/index.js": "2",
		},
	)

	hash, err := hasher.HashFiles(testRoot, info)
	require.NoError(t, err)
	assert.Equal(t, domain.HashStrings([]string{"package.json", "1"}), hash)
}
