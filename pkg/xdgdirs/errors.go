package xdgdirs

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for directory resolution.
var (
	// ErrLookupUnavailable indicates the external user-directory utility is
	// missing, exited non-zero, timed out, or produced no output.
	ErrLookupUnavailable = errors.New("user directory lookup unavailable")

	// ErrRuntimeDirUnset indicates an operation required the runtime
	// directory while XDG_RUNTIME_DIR is not set.
	ErrRuntimeDirUnset = errors.New("XDG_RUNTIME_DIR is not set")

	// ErrUnknownDomain indicates a directory domain outside config, data,
	// cache, and runtime.
	ErrUnknownDomain = errors.New("unknown directory domain")

	// ErrUnknownUserDir indicates an unrecognized user directory kind.
	ErrUnknownUserDir = errors.New("unknown user directory kind")
)

// DirCreationError reports that the filesystem rejected creation of a
// directory (permissions, read-only mount, name collision with a file).
// It supports unwrapping, so errors.Is can examine the underlying cause.
type DirCreationError struct {
	// Path is the directory that could not be created.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error returns a message naming the offending path.
func (e *DirCreationError) Error() string {
	return fmt.Sprintf("creating directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *DirCreationError) Unwrap() error {
	return e.Err
}
