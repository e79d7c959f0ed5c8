// Package xdgdirs resolves canonical filesystem locations for an
// application's configuration, data, cache, and runtime files following the
// XDG Base Directory Specification, plus the platform-reported user
// directories (Desktop, Documents, and so on).
//
// # Base and application directories
//
// [ResolveBaseDirs] reads the XDG environment variables and falls back to
// the documented defaults rooted at the user's home directory:
//
//	| Variable         | Default        |
//	|------------------|----------------|
//	| XDG_CONFIG_HOME  | ~/.config      |
//	| XDG_DATA_HOME    | ~/.local/share |
//	| XDG_CACHE_HOME   | ~/.cache       |
//	| XDG_RUNTIME_DIR  | (none)         |
//
// XDG_RUNTIME_DIR has no safe default because it is session-scoped and
// platform-assigned; operations on the runtime domain fail with
// [ErrRuntimeDirUnset] when it is absent.
//
// A [Resolver] namespaces each base directory to one application and locates
// files inside those application directories:
//
//	r := xdgdirs.New("emacs")
//	path, err := r.LocateConfigFile("init.el", false)
//	// path == "~/.config/emacs/init.el" (expanded)
//
// Every directory is overridable before first use via [Option] values;
// the resolver is immutable after [New] returns.
//
// # User directories
//
// User directories (Documents, Music, ...) are resolved through a
// [Provider]. The production default chains [CommandProvider], which invokes
// the xdg-user-dir utility with a bounded timeout, with [FallbackProvider],
// which serves well-known locations. [StaticProvider] backs deterministic
// tests. Lookup failures surface as [ErrLookupUnavailable] rather than the
// empty strings the utility itself produces on failure.
//
// # Error handling
//
// All failure conditions are recoverable and typed. Use [errors.Is] for the
// sentinels and [errors.As] for [*DirCreationError], which carries the path
// the filesystem rejected.
package xdgdirs
