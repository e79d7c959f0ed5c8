// Package main is the entry point for the xdg-dirs CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/francisco-colaco/xdg-directories/cmd/xdg-dirs/commands"
	xdgerrors "github.com/francisco-colaco/xdg-directories/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	var exitErr *xdgerrors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, exitErr.Suggestion)
	}
	os.Exit(xdgerrors.CodeFor(err))
}
