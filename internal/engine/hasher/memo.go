package hasher

import (
	"sync"

	"go.trai.ch/pkghash/internal/core/domain"
)

type memoEntry struct {
	fingerprint uint64
	info        domain.PackageHashInfo
}

// Memo caches package hash results by absolute package path.
// An entry is only returned for the snapshot fingerprint it was computed against.
type Memo struct {
	mu      sync.RWMutex
	entries map[string]memoEntry
}

// NewMemo creates an empty Memo.
func NewMemo() *Memo {
	return &Memo{entries: make(map[string]memoEntry)}
}

// Get returns the cached result for path computed against fingerprint.
func (m *Memo) Get(path string, fingerprint uint64) (domain.PackageHashInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[path]
	if !ok || entry.fingerprint != fingerprint {
		return domain.PackageHashInfo{}, false
	}
	return entry.info, true
}

// Put stores a result, replacing any entry computed against another snapshot.
func (m *Memo) Put(path string, fingerprint uint64, info domain.PackageHashInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[path] = memoEntry{fingerprint: fingerprint, info: info}
}

// Len returns the number of cached packages.
func (m *Memo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
