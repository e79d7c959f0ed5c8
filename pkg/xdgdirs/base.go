package xdgdirs

import (
	"os"
	"path/filepath"
)

// XDG base directory environment variables.
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html
const (
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvDataHome   = "XDG_DATA_HOME"
	EnvCacheHome  = "XDG_CACHE_HOME"

	// EnvRuntimeDir has no default; fail rather than construct.
	EnvRuntimeDir = "XDG_RUNTIME_DIR"
)

// Defaults relative to the user's home directory.
const (
	defaultConfigHome = ".config"
	defaultDataHome   = ".local/share"
	defaultCacheHome  = ".cache"
)

// BaseDirs holds the four XDG base directories shared across all
// applications on a system. The three home directories are always absolute;
// RuntimeDir is empty when XDG_RUNTIME_DIR is unset.
type BaseDirs struct {
	ConfigHome string
	DataHome   string
	CacheHome  string
	RuntimeDir string
}

// ResolveBaseDirs reads the XDG environment variables and substitutes the
// documented home-rooted defaults for any home variable that is unset or
// empty. No error is raised if the home directory itself cannot be
// determined; resolution degrades to whatever os.UserHomeDir reports.
func ResolveBaseDirs() BaseDirs {
	home, _ := os.UserHomeDir()
	return BaseDirs{
		ConfigHome: envOrDefault(EnvConfigHome, home, defaultConfigHome),
		DataHome:   envOrDefault(EnvDataHome, home, defaultDataHome),
		CacheHome:  envOrDefault(EnvCacheHome, home, defaultCacheHome),
		RuntimeDir: os.Getenv(EnvRuntimeDir),
	}
}

// envOrDefault returns the value of key when non-empty, else the default
// path joined onto home.
func envOrDefault(key, home, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return filepath.Join(home, filepath.FromSlash(def))
}

// DefaultDirPerm is the default permission for newly created directories
// (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with the given
// permissions. If perm is 0, DefaultDirPerm (0700) is used. It is
// idempotent; an existing directory is not an error.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}
