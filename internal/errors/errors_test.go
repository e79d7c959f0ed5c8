package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestExitError_Error(t *testing.T) {
	err := NewUserError(errors.New("bad domain"), "")
	if err.Error() != "bad domain" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad domain")
	}

	bare := &ExitError{Code: ExitSystem}
	if bare.Error() != "exit code 2" {
		t.Errorf("Error() = %q, want %q", bare.Error(), "exit code 2")
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("cause")
	err := NewSystemError(fmt.Errorf("wrapping: %w", cause), "suggestion")

	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through ExitError to the cause")
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"user error", NewUserError(errors.New("x"), ""), ExitUser},
		{"system error", NewSystemError(errors.New("x"), ""), ExitSystem},
		{"wrapped system error", fmt.Errorf("outer: %w", NewSystemError(errors.New("x"), "")), ExitSystem},
		{"plain error defaults to user", errors.New("x"), ExitUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFor(tt.err); got != tt.want {
				t.Errorf("CodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
