package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceRootNotFound is returned when no monorepo root can be found above a directory.
	ErrWorkspaceRootNotFound = zerr.New("could not find workspace manager root")

	// ErrPackageRootNotFound is returned when no package.json exists in or above a directory.
	ErrPackageRootNotFound = zerr.New("could not find package.json")

	// ErrManifestRead is returned when a package manifest cannot be read or decoded.
	ErrManifestRead = zerr.New("failed to read package manifest")

	// ErrWorkspaceDiscovery is returned when the workspace packages cannot be enumerated.
	ErrWorkspaceDiscovery = zerr.New("failed to discover workspace packages")

	// ErrLockFileParse is returned when a lock file exists but cannot be parsed.
	ErrLockFileParse = zerr.New("failed to parse lock file")

	// ErrTreeLineMode is returned when a tree listing line does not start with a six digit mode.
	ErrTreeLineMode = zerr.New("tree listing line has no valid mode")

	// ErrTreeLineKind is returned when a tree listing line has an object kind other than blob or commit.
	ErrTreeLineKind = zerr.New("tree listing line has no valid object kind")

	// ErrTreeLineObjectID is returned when a tree listing line has a malformed object id.
	ErrTreeLineObjectID = zerr.New("tree listing line has no valid object id")

	// ErrTreeLinePath is returned when a tree listing line has no file path.
	ErrTreeLinePath = zerr.New("tree listing line has no file path")

	// ErrStatusLineMalformed is returned when a status line has no file name after its change type.
	ErrStatusLineMalformed = zerr.New("malformed status line")

	// ErrInvalidQuotedFilename is returned when a quoted file name contains an invalid escape.
	ErrInvalidQuotedFilename = zerr.New("invalid quoted file name")

	// ErrHashCountMismatch is returned when the number of object hashes differs from the number of paths.
	ErrHashCountMismatch = zerr.New("object hash count does not match path count")

	// ErrGitCommandFailed is returned when a git subprocess exits with an error.
	ErrGitCommandFailed = zerr.New("git command failed")

	// ErrRepoInfoFailed is returned when a repository snapshot cannot be built.
	ErrRepoInfoFailed = zerr.New("failed to collect repository info")

	// ErrPackageHashFailed is returned when a package hash cannot be computed.
	ErrPackageHashFailed = zerr.New("failed to compute package hash")

	// ErrConfigLoadFailed is returned when the configuration cannot be loaded.
	ErrConfigLoadFailed = zerr.New("failed to load configuration")

	// ErrInvalidLogLevel is returned when the configured log level is unknown.
	ErrInvalidLogLevel = zerr.New("invalid log level, expected 'debug', 'info', 'warn' or 'error'")

	// ErrInvalidLogFormat is returned when the configured log format is unknown.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrInvalidTracer is returned when the configured tracer is unknown.
	ErrInvalidTracer = zerr.New("invalid tracer, expected 'otel', 'progrock' or 'none'")

	// ErrReportWriteFailed is returned when a hash report cannot be persisted.
	ErrReportWriteFailed = zerr.New("failed to write hash report")

	// ErrReportReadFailed is returned when a hash report cannot be read.
	ErrReportReadFailed = zerr.New("failed to read hash report")

	// ErrReportNotFound is returned when no report exists for a hash.
	ErrReportNotFound = zerr.New("hash report not found")
)
