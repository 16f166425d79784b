package cli

import "github.com/yaklabco/slashfmt/pkg/runner"

// Exit codes for slashfmt.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitChangesNeeded indicates files need formatting (check mode).
	ExitChangesNeeded = 1

	// ExitRunErrors indicates one or more files could not be processed.
	ExitRunErrors = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromResult determines the exit code from a run result. In fix mode
// pending changes have been written, so only errors matter; in check mode
// pending changes exit nonzero so CI can gate on formatting.
func ExitCodeFromResult(result *runner.Result, fix bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasErrors() {
		return ExitRunErrors
	}

	if !fix && result.HasChanges() {
		return ExitChangesNeeded
	}

	return ExitSuccess
}
