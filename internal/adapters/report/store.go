// Package report persists hash reports as JSON files inside the repository.
package report

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ReportStore with one JSON file per hash.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a Store writing below dir, which is relative to the repository root
// unless it is absolute.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = domain.DefaultReportsPath()
	}
	return &Store{dir: filepath.Clean(dir)}
}

// Path returns the file holding the report for hash.
func (s *Store) Path(root, hash string) string {
	dir := s.dir
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}
	return filepath.Join(dir, hash+".json")
}

// Get retrieves the report for hash, or nil if there is none.
func (s *Store) Get(root, hash string) (*domain.HashReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.Path(root, hash)
	//nolint:gosec // path is derived from the repository root and a hex digest
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}

	var report domain.HashReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrReportReadFailed.Error()), "path", path)
	}
	return &report, nil
}

// Put stores the report, replacing the file atomically.
func (s *Store) Put(root string, report domain.HashReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.Path(root, report.Hash)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrReportWriteFailed.Error())
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", dir)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", tmpName)
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrReportWriteFailed.Error()), "path", path)
	}
	return nil
}
