package hasher_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkghash/internal/adapters/telemetry"
	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/pkghash/internal/core/ports/mocks"
	"go.trai.ch/pkghash/internal/engine/hasher"
	"go.uber.org/mock/gomock"
)

type monorepo struct {
	infos     domain.PackageInfos
	manifests map[string]*domain.PackageInfo
	files     domain.RepoHashes
	lock      *domain.ParsedLock
}

// newMonorepo returns a workspace where app depends on lib and on the external left-pad.
func newMonorepo() *monorepo {
	app := pkg("app", "packages", "app")
	app.Dependencies = domain.Dependencies{"lib": "workspace:*", "left-pad": "^1.0.0"}
	lib := pkg("lib", "packages", "lib")
	lib.DevDependencies = domain.Dependencies{"typescript": "^5.0.0"}
	other := pkg("other", "packages", "other")

	lock := domain.NewParsedLock(domain.LockKindYarn)
	lock.Entries["left-pad@^1.0.0"] = domain.LockEntry{Version: "1.3.0"}
	lock.Entries["typescript@^5.0.0"] = domain.LockEntry{Version: "5.4.2"}

	infos := domain.PackageInfos{"app": app, "lib": lib, "other": other}
	manifests := make(map[string]*domain.PackageInfo)
	for _, info := range infos {
		manifests[info.Dir()] = info
	}

	return &monorepo{
		infos:     infos,
		manifests: manifests,
		lock:      lock,
		files: domain.RepoHashes{
			"packages/app/index.js":   "a1",
			"packages/lib/index.js":   "l1",
			"packages/other/index.js": "o1",
		},
	}
}

func (m *monorepo) snapshot() *domain.RepoInfo {
	info := snapshot(m.infos, m.files)
	info.Lock = m.lock
	return info
}

type fixture struct {
	service *hasher.Service
	repos   *mocks.MockRepoInfoProvider
	ws      *mocks.MockWorkspace
}

func newFixture(t *testing.T, repo *monorepo) *fixture {
	t.Helper()
	return newTracedFixture(t, gomock.NewController(t), repo, telemetry.NewNoOpTracer())
}

func newTracedFixture(t *testing.T, ctrl *gomock.Controller, repo *monorepo, tracer ports.Tracer) *fixture {
	t.Helper()
	repos := mocks.NewMockRepoInfoProvider(ctrl)
	ws := mocks.NewMockWorkspace(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()

	ws.EXPECT().FindPackageRoot(gomock.Any()).DoAndReturn(func(path string) (string, error) {
		for dir := path; ; dir = filepath.Dir(dir) {
			if _, ok := repo.manifests[dir]; ok {
				return dir, nil
			}
			if dir == filepath.Dir(dir) {
				return "", nil
			}
		}
	}).AnyTimes()
	ws.EXPECT().ReadManifest(gomock.Any()).DoAndReturn(func(dir string) (*domain.PackageInfo, error) {
		m, ok := repo.manifests[dir]
		if !ok {
			return nil, errors.New("no manifest in " + dir)
		}
		return m, nil
	}).AnyTimes()

	return &fixture{
		service: hasher.NewService(repos, ws, logger, tracer),
		repos:   repos,
		ws:      ws,
	}
}

func appDir() string {
	return filepath.Join(testRoot, "packages", "app")
}

func TestHasher_CreatePackageHash(t *testing.T) {
	repo := newMonorepo()
	f := newFixture(t, repo)
	f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(repo.snapshot(), nil)

	result, err := f.service.ForPackage(filepath.Join(appDir(), "src")).Compute(context.Background(), "yarn build")
	require.NoError(t, err)

	require.Len(t, result.Packages, 2)
	assert.Equal(t, "app", result.Packages[0].Name)
	assert.Equal(t, "lib", result.Packages[1].Name)
	assert.Equal(t, []string{"lib"}, result.Packages[0].InternalDependencies)
	assert.Equal(t, appDir(), result.PackageRoot)

	assert.Equal(t,
		domain.HashStrings([]string{"lib", "left-pad@1.3.0"}),
		result.Packages[0].DependenciesHash,
	)
	assert.Equal(t,
		domain.HashStrings([]string{"typescript@5.4.2"}),
		result.Packages[1].DependenciesHash,
	)
	assert.Equal(t,
		domain.HashStrings([]string{"packages/lib/index.js", "l1"}),
		result.Packages[1].FilesHash,
	)

	assert.Equal(t, domain.HashString("yarn build"), result.BuildCommandHash)
	assert.Equal(t, domain.HashPackageInfos(result.Packages), result.InternalPackagesHash)
	assert.Equal(t, domain.HashStrings([]string{result.InternalPackagesHash, result.BuildCommandHash}), result.Hash)
}

func TestHasher_RecordsHashOnSpan(t *testing.T) {
	repo := newMonorepo()
	ctrl := gomock.NewController(t)
	tracer := mocks.NewMockTracer(ctrl)
	hashSpan := mocks.NewMockSpan(ctrl)
	packageSpan := mocks.NewMockSpan(ctrl)

	var recorded any
	tracer.EXPECT().Start(gomock.Any(), "hashTime").Return(context.Background(), hashSpan)
	tracer.EXPECT().Start(gomock.Any(), "packageHash").Return(context.Background(), packageSpan).Times(2)
	hashSpan.EXPECT().SetAttribute("hash", gomock.Any()).Do(func(_ string, value any) {
		recorded = value
	})
	hashSpan.EXPECT().End()
	packageSpan.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	packageSpan.EXPECT().End().Times(2)

	f := newTracedFixture(t, ctrl, repo, tracer)
	f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(repo.snapshot(), nil)

	result, err := f.service.ForPackage(appDir()).Compute(context.Background(), "yarn build")
	require.NoError(t, err)
	assert.Equal(t, result.Hash, recorded)
}

func TestHasher_Properties(t *testing.T) {
	hash := func(t *testing.T, repo *monorepo, signature string) string {
		t.Helper()
		f := newFixture(t, repo)
		f.repos.EXPECT().Get(gomock.Any(), gomock.Any()).Return(repo.snapshot(), nil)
		h, err := f.service.ForPackage(appDir()).CreatePackageHash(context.Background(), signature)
		require.NoError(t, err)
		return h
	}

	original := hash(t, newMonorepo(), "build")

	t.Run("stable across fresh services", func(t *testing.T) {
		assert.Equal(t, original, hash(t, newMonorepo(), "build"))
	})

	t.Run("signature", func(t *testing.T) {
		assert.NotEqual(t, original, hash(t, newMonorepo(), "test"))
	})

	t.Run("dependency file change", func(t *testing.T) {
		repo := newMonorepo()
		repo.files["packages/lib/index.js"] = "l2"
		assert.NotEqual(t, original, hash(t, repo, "build"))
	})

	t.Run("unrelated package change", func(t *testing.T) {
		repo := newMonorepo()
		repo.files["packages/other/index.js"] = "o2"
		assert.Equal(t, original, hash(t, repo, "build"))
	})

	t.Run("external version change", func(t *testing.T) {
		repo := newMonorepo()
		repo.lock.Entries["left-pad@^1.0.0"] = domain.LockEntry{Version: "1.3.1"}
		assert.NotEqual(t, original, hash(t, repo, "build"))
	})

	t.Run("dependency manifest change", func(t *testing.T) {
		repo := newMonorepo()
		repo.infos["lib"].DevDependencies = domain.Dependencies{}
		assert.NotEqual(t, original, hash(t, repo, "build"))
	})
}

func TestHasher_Memoization(t *testing.T) {
	repo := newMonorepo()
	f := newFixture(t, repo)
	info := repo.snapshot()
	f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(info, nil).Times(2)

	h := f.service.ForPackage(appDir())
	first, err := h.CreatePackageHash(context.Background(), "build")
	require.NoError(t, err)
	assert.Equal(t, 2, f.service.Memo().Len())

	second, err := h.CreatePackageHash(context.Background(), "build")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	t.Run("entries from another snapshot are not reused", func(t *testing.T) {
		changed := newMonorepo()
		changed.files["packages/app/index.js"] = "a2"
		f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(changed.snapshot(), nil)

		third, err := h.CreatePackageHash(context.Background(), "build")
		require.NoError(t, err)
		assert.NotEqual(t, first, third)
	})
}

func TestHasher_Cycle(t *testing.T) {
	repo := newMonorepo()
	repo.infos["lib"].Dependencies = domain.Dependencies{"app": "workspace:*"}

	f := newFixture(t, repo)
	f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(repo.snapshot(), nil)

	result, err := f.service.ForPackage(appDir()).Compute(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, result.Packages, 2)
}

func TestHasher_Errors(t *testing.T) {
	t.Run("no package root", func(t *testing.T) {
		f := newFixture(t, newMonorepo())
		_, err := f.service.ForPackage(filepath.Join(string(filepath.Separator), "elsewhere")).CreatePackageHash(context.Background(), "")
		require.ErrorContains(t, err, domain.ErrPackageRootNotFound.Error())
	})

	t.Run("snapshot failure", func(t *testing.T) {
		f := newFixture(t, newMonorepo())
		f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(nil, errors.New("no workspace"))
		_, err := f.service.ForPackage(appDir()).CreatePackageHash(context.Background(), "")
		require.ErrorContains(t, err, "no workspace")
	})

	t.Run("dependency manifest unreadable", func(t *testing.T) {
		repo := newMonorepo()
		f := newFixture(t, repo)
		f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(repo.snapshot(), nil)
		delete(repo.manifests, repo.infos["lib"].Dir())

		_, err := f.service.ForPackage(appDir()).CreatePackageHash(context.Background(), "")
		require.ErrorContains(t, err, domain.ErrPackageHashFailed.Error())
	})
}

func TestHasher_HashOfOutput(t *testing.T) {
	repo := newMonorepo()
	f := newFixture(t, repo)
	f.repos.EXPECT().GetNoCache(gomock.Any(), appDir()).Return(repo.snapshot(), nil)

	hash, err := f.service.ForPackage(appDir()).HashOfOutput(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.HashStrings([]string{"packages/app/index.js", "a1"}), hash)
}

func TestHasher_ExternalDependencies(t *testing.T) {
	repo := newMonorepo()
	f := newFixture(t, repo)
	f.repos.EXPECT().Get(gomock.Any(), appDir()).Return(repo.snapshot(), nil)

	deps, err := f.service.ForPackage(appDir()).ExternalDependencies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.DependencySpec{"left-pad@1.3.0"}, deps)
}
