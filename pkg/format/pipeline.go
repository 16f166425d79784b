package format

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/slashfmt/pkg/config"
	"github.com/yaklabco/slashfmt/pkg/fix"
	"github.com/yaklabco/slashfmt/pkg/fsutil"
	"github.com/yaklabco/slashfmt/pkg/langdetect"
)

// DefaultMaxPasses caps the format pass loop. Convert edits change the
// blocks wrap sees, so a file may need a few passes before it is stable;
// more than this indicates operations fighting each other.
const DefaultMaxPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult is the format result from the final pass.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the content was changed by formatting.
	Modified bool

	// ModifiedContent is the new content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil if not in dry-run).
	Diff *fix.Diff

	// Skipped is true if the file was skipped.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// Passes is the number of format passes that produced edits.
	Passes int

	// EditsApplied is the total number of edits applied across all passes.
	EditsApplied int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "formatted (backup created)"
		}
		return "formatted"
	}
	if pr.Modified {
		return "changes pending"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix writes formatted content back to disk.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification detection.
	// When false, only mod time and size are checked.
	StrictRaceDetection bool

	// MaxPasses limits the number of format iterations.
	// Set to 0 to use DefaultMaxPasses.
	MaxPasses int
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
	}
}

// Pipeline orchestrates the safe processing of a single file.
type Pipeline struct {
	// Formatter computes per-pass edits.
	Formatter *Formatter
}

// NewPipeline creates a pipeline around a formatter.
func NewPipeline(formatter *Formatter) *Pipeline {
	return &Pipeline{Formatter: formatter}
}

// ProcessFile runs the full pipeline for a single file.
//
// The pipeline performs the following steps:
//  1. Read and hash the original file.
//  2. Format pass loop: compute edits, apply in memory, repeat until stable.
//  3. Generate diff (if dry-run mode).
//  4. Check for concurrent modifications.
//  5. Create backup (if enabled).
//  6. Write the modified content atomically (if fix mode).
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	opts PipelineOptions,
) (*PipelineResult, error) {
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, originalContent, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || result.Skipped || opts.DryRun || !opts.Fix {
		return result, nil
	}

	// Check for concurrent modifications before writing.
	raceDetected, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if raceDetected {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent processes in-memory content without writing to disk.
// It runs the same pass loop as ProcessFile and generates the dry-run diff.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{
		Path: path,
	}

	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}

	content := originalContent
	var fileResult *FileResult

	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		var formatErr error
		fileResult, formatErr = p.Formatter.FormatContent(ctx, path, content)
		if formatErr != nil {
			return nil, formatErr
		}

		if !fileResult.Supported {
			result.FileResult = fileResult
			result.Skipped = true
			result.SkipReason = skipReasonForLang(fileResult.Lang)
			return result, nil
		}

		if len(fileResult.Edits) == 0 {
			break
		}

		content = fix.ApplyEdits(content, fileResult.Edits)
		result.Passes++
		result.EditsApplied += len(fileResult.Edits)
		result.Modified = true
	}

	result.FileResult = fileResult

	if !result.Modified {
		return result, nil
	}
	result.ModifiedContent = content

	if opts.DryRun {
		result.Diff = fix.GenerateDiff(path, originalContent, content)
	}

	return result, nil
}

// checkModified checks if a file has been modified since it was read.
func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error

	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}

	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

func skipReasonForLang(lang string) string {
	if lang == langdetect.LangUnknown {
		return "unrecognized language"
	}
	return "no slash comments: " + lang
}

// categorizeError wraps an error with the appropriate pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}

	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}

	return err
}

// IsPipelineError checks if an error is a known pipeline error type.
func IsPipelineError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure)
}

// BackupConfigFromConfig creates an fsutil.BackupConfig from config.Config.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled && !cfg.NoBackups,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig creates PipelineOptions from config.Config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return DefaultPipelineOptions()
	}
	return PipelineOptions{
		Fix:                 cfg.Fix,
		DryRun:              cfg.DryRun,
		Backup:              BackupConfigFromConfig(cfg),
		StrictRaceDetection: true,
	}
}
