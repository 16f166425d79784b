// Package reporter formats run results as text, JSON, or unified diffs.
package reporter

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/slashfmt/pkg/runner"
)

// Reporter formats and writes formatting results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of files needing changes and any write errors.
	Report(ctx context.Context, result *runner.Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	// Default writer to stdout if not specified
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	// Validate and handle format
	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// displayPath makes a path relative to the working dir for display.
// Paths outside the working dir are left unchanged.
func displayPath(workingDir, path string) string {
	if workingDir == "" {
		return path
	}
	rel, err := filepath.Rel(workingDir, path)
	if err != nil || len(rel) >= 2 && rel[:2] == ".." {
		return path
	}
	return rel
}
