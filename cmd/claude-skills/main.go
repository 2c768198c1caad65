// Package main is the entry point for the claude-skills CLI.
package main

import (
	"fmt"
	"os"

	"github.com/ai-labs/claude-skills/cmd/claude-skills/commands"
	"github.com/ai-labs/claude-skills/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var exitErr *errors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		if hint := errors.FlattenHints(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(errors.ExitCode(err))
	}
}
