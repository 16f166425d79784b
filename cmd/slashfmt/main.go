// Package main is the entry point for the slashfmt CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/slashfmt/internal/cli"
	"github.com/yaklabco/slashfmt/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Build and execute the root command.
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, cli.ErrChangesNeeded):
			// Signal for the exit code only; the reporter already printed.
			return cli.ExitChangesNeeded
		case errors.Is(err, cli.ErrRunFailed):
			return cli.ExitRunErrors
		default:
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
			return cli.ExitInternalError
		}
	}

	return cli.ExitSuccess
}
