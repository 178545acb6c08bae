package workspace

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	yarnLockFile = "yarn.lock"
	pnpmLockFile = "pnpm-lock.yaml"
	npmLockFile  = "package-lock.json"
)

// berryMarker only appears in lock files written by yarn 2 and later.
var berryMarker = []byte("__metadata:")

// ParseLockFile parses the lock file at the workspace root.
func (w *Workspace) ParseLockFile(ctx context.Context, root string) (*domain.ParsedLock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if path := filepath.Join(root, pnpmLockFile); fileExists(path) {
		data, err := readLockFile(path)
		if err != nil {
			return nil, err
		}
		return parsePnpmLock(data)
	}

	if path := filepath.Join(root, yarnLockFile); fileExists(path) {
		data, err := readLockFile(path)
		if err != nil {
			return nil, err
		}
		if bytes.Contains(data, berryMarker) {
			return parseBerryLock(data)
		}
		return parseYarnLock(data)
	}

	if fileExists(filepath.Join(root, npmLockFile)) {
		w.logger.Debug(npmLockFile + " is not supported, external dependencies keep their declared ranges")
		return domain.UnavailableLock(npmLockFile + " is not supported"), nil
	}

	w.logger.Debug("no lock file found in " + root)
	return domain.UnavailableLock("no lock file found"), nil
}

func readLockFile(path string) ([]byte, error) {
	// #nosec G304 -- lock file inside the workspace root
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileParse.Error()), "path", path)
	}
	return data, nil
}
