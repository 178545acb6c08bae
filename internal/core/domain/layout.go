package domain

import "path/filepath"

const (
	// StateDirName is the name of the per-repository state directory.
	StateDirName = ".pkghash"

	// ReportsDirName is the name of the hash report directory inside StateDirName.
	ReportsDirName = "reports"

	// ConfigFileName is the base name of the optional configuration file.
	ConfigFileName = "pkghash"

	// DotEnvFileName is the name of the environment file loaded on startup.
	DotEnvFileName = ".env"

	// EnvPrefix is the prefix of environment variables read as configuration.
	EnvPrefix = "PKGHASH"

	// SkipDotEnvVar disables .env loading when set to a non-empty value.
	SkipDotEnvVar = "PKGHASH_SKIP_DOTENV"

	// ManifestFileName is the name of a package manifest.
	ManifestFileName = "package.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultReportsPath returns the default report directory relative to a repository root.
func DefaultReportsPath() string {
	return filepath.Join(StateDirName, ReportsDirName)
}
