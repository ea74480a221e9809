// Package config resolves the database path and loads the optional
// global configuration file.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// DataDir is the directory under the user's home that holds the
	// default database file.
	DataDir = ".jobtrack"
	// DBFile is the database file name.
	DBFile = "jobtrack.db"
	// EnvDBPath is the environment variable that overrides the
	// database path.
	EnvDBPath = "JOBTRACK_DB_PATH"
)

// DefaultDBPath returns the default database location,
// ~/.jobtrack/jobtrack.db. Falls back to the working directory when
// the home directory cannot be determined.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(DataDir, DBFile)
	}
	return filepath.Join(home, DataDir, DBFile)
}

// ResolveDBPath returns the database path, in priority order: the
// explicit override (--db flag), the JOBTRACK_DB_PATH environment
// variable (a .env file in the working directory is loaded first),
// the db_path from the global config file, and finally the default
// location. Resolved once at process start and threaded into
// storage.Open.
func ResolveDBPath(override string) string {
	if override != "" {
		return ExpandTilde(override)
	}

	_ = godotenv.Load()
	if path := os.Getenv(EnvDBPath); path != "" {
		return ExpandTilde(path)
	}

	if cfg, err := LoadGlobalConfig(); err == nil && cfg.DBPath != "" {
		return cfg.DBPath
	}

	return DefaultDBPath()
}

// DefaultStatus returns the status for new applications when the add
// command gives none: the global config's default_status if set,
// otherwise the empty string (the store falls back to "applied").
func DefaultStatus() string {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return ""
	}
	return cfg.DefaultStatus
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
