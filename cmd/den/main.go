// Package main is the entry point for the den CLI.
package main

import (
	"fmt"
	"os"

	denerrors "github.com/thoreinstein/den/internal/errors"

	"github.com/thoreinstein/den/cmd/den/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *denerrors.ExitError
		if denerrors.As(err, &exitErr) {
			if exitErr.Suggestion != "" {
				fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
			}
			os.Exit(exitErr.Code)
		}
		os.Exit(denerrors.ExitUser)
	}
}
