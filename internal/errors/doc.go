// Package errors provides error handling conventions for the xdg-dirs CLI.
//
// It defines exit code constants following standard Unix conventions and an
// [ExitError] type that carries an exit code and an optional suggestion:
//
//	err := xdgerrors.NewSystemError(cause, "Install xdg-user-dirs or configure a static mapping")
//	var exitErr *xdgerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
//
// The library's own error taxonomy (lookup unavailable, runtime directory
// unset, directory creation failed) lives in pkg/xdgdirs; this package only
// maps those conditions onto process exit behavior.
package errors
