package report_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pkghash/internal/adapters/report"
	"go.trai.ch/pkghash/internal/core/domain"
)

func sampleReport() domain.HashReport {
	return domain.HashReport{
		Hash:        "0123456789abcdef0123456789abcdef01234567",
		PackageRoot: "/repo/packages/app",
		Signature:   "yarn build",
		Fingerprint: "00000000deadbeef",
		Packages: []domain.PackageHashInfo{
			{Name: "app", FilesHash: "f1", DependenciesHash: "d1", InternalDependencies: []string{"lib"}},
			{Name: "lib", FilesHash: "f2", DependenciesHash: "d2"},
		},
		Duration:  1500 * time.Millisecond,
		Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := report.NewStore("")
	want := sampleReport()

	require.NoError(t, store.Put(root, want))

	path := filepath.Join(root, ".pkghash", "reports", want.Hash+".json")
	assert.Equal(t, path, store.Path(root, want.Hash))
	assert.FileExists(t, path)

	got, err := store.Get(root, want.Hash)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Packages, got.Packages)
	assert.Equal(t, want.Duration, got.Duration)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files are cleaned up")
}

func TestStore_Overwrite(t *testing.T) {
	root := t.TempDir()
	store := report.NewStore("reports")

	first := sampleReport()
	require.NoError(t, store.Put(root, first))

	second := sampleReport()
	second.Signature = "yarn test"
	require.NoError(t, store.Put(root, second))

	got, err := store.Get(root, first.Hash)
	require.NoError(t, err)
	assert.Equal(t, "yarn test", got.Signature)
}

func TestStore_AbsoluteDir(t *testing.T) {
	dir := t.TempDir()
	store := report.NewStore(dir)

	assert.Equal(t, filepath.Join(dir, "abc.json"), store.Path("/elsewhere", "abc"))
}

func TestStore_GetMissing(t *testing.T) {
	got, err := report.NewStore("").Get(t.TempDir(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	store := report.NewStore("")
	path := store.Path(root, "bad")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte("{"), domain.FilePerm))

	_, err := store.Get(root, "bad")
	require.ErrorContains(t, err, domain.ErrReportReadFailed.Error())
}

func TestStore_PutUnwritable(t *testing.T) {
	root := t.TempDir()
	blocker := filepath.Join(root, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, domain.FilePerm))

	err := report.NewStore(filepath.Join(blocker, "reports")).Put(root, sampleReport())
	require.ErrorContains(t, err, domain.ErrReportWriteFailed.Error())
}
