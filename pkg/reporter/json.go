package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/slashfmt/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string `json:"path"`
	Language   string `json:"language,omitempty"`
	Changed    bool   `json:"changed"`
	Written    bool   `json:"written,omitempty"`
	Edits      int    `json:"edits,omitempty"`
	Passes     int    `json:"passes,omitempty"`
	Skipped    bool   `json:"skipped,omitempty"`
	SkipReason string `json:"skipReason,omitempty"`
	Diff       string `json:"diff,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked int `json:"filesChecked"`
	FilesChanged int `json:"filesChanged"`
	FilesWritten int `json:"filesWritten"`
	FilesSkipped int `json:"filesSkipped"`
	FilesErrored int `json:"filesErrored"`
	EditsApplied int `json:"editsApplied"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.FilesChanged, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path: displayPath(r.opts.WorkingDir, file.Path),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if pr := file.Result; pr != nil {
			if pr.FileResult != nil {
				fileResult.Language = pr.FileResult.Lang
			}
			fileResult.Changed = pr.Modified
			fileResult.Written = pr.Written
			fileResult.Edits = pr.EditsApplied
			fileResult.Passes = pr.Passes
			fileResult.Skipped = pr.Skipped
			fileResult.SkipReason = pr.SkipReason
			if pr.Diff != nil && pr.Diff.HasChanges() {
				fileResult.Diff = pr.Diff.String()
			}

			if pr.Modified {
				output.Summary.FilesChanged++
			}
			if pr.Written {
				output.Summary.FilesWritten++
			}
			if pr.Skipped {
				output.Summary.FilesSkipped++
			}
			output.Summary.EditsApplied += pr.EditsApplied
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
