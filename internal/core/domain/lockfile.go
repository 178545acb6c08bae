package domain

// LockKind identifies the package manager format a lock file was parsed from.
type LockKind string

const (
	// LockKindNone means no supported lock file was found.
	LockKindNone LockKind = "none"
	// LockKindYarn is the yarn v1 text format.
	LockKindYarn LockKind = "yarn"
	// LockKindBerry is the YAML format of yarn v2 and later.
	LockKindBerry LockKind = "berry"
	// LockKindPnpm is the pnpm-lock.yaml format.
	LockKindPnpm LockKind = "pnpm"
)

// LockStatus tells whether a ParsedLock can answer queries.
type LockStatus int

const (
	// LockUnavailable is the failure variant: every query misses.
	LockUnavailable LockStatus = iota
	// LockParsed means the lock file was parsed successfully.
	LockParsed
)

// LockEntry is the resolution of one "name@range" entry of a lock file.
type LockEntry struct {
	// Version is the exact resolved version.
	Version string

	// Dependencies are the entry's own dependencies as name to range.
	Dependencies Dependencies
}

// ParsedLock is a normalized, read-only view of a workspace lock file.
type ParsedLock struct {
	Kind   LockKind
	Status LockStatus

	// Reason explains why the lock is unavailable.
	Reason string

	// Entries maps "name@range" keys to their resolution.
	Entries map[string]LockEntry

	// Aliases maps "name@range" keys to another key of Entries.
	Aliases map[string]string
}

// NewParsedLock returns an empty, successfully parsed lock of the given kind.
func NewParsedLock(kind LockKind) *ParsedLock {
	return &ParsedLock{
		Kind:    kind,
		Status:  LockParsed,
		Entries: make(map[string]LockEntry),
		Aliases: make(map[string]string),
	}
}

// UnavailableLock returns the failure variant with the given reason.
func UnavailableLock(reason string) *ParsedLock {
	return &ParsedLock{
		Kind:   LockKindNone,
		Status: LockUnavailable,
		Reason: reason,
	}
}

// OK reports whether the lock can answer queries.
func (l *ParsedLock) OK() bool {
	return l != nil && l.Status == LockParsed
}

// Query returns how name@versionRange resolves.
func (l *ParsedLock) Query(name, versionRange string) (LockEntry, bool) {
	if !l.OK() {
		return LockEntry{}, false
	}
	key := name + "@" + versionRange
	if entry, ok := l.Entries[key]; ok {
		return entry, true
	}
	if target, ok := l.Aliases[key]; ok {
		entry, ok := l.Entries[target]
		return entry, ok
	}
	return LockEntry{}, false
}
