// Package format computes comment-formatting edits for source files and
// applies them through a safety pipeline. It bridges the pure comment
// engine to file content: detect the language, snapshot the file, run the
// requested operations over its lines, and convert the resulting
// line-addressed edits to byte offsets.
package format

import (
	"context"
	"fmt"

	"github.com/yaklabco/slashfmt/pkg/comment"
	"github.com/yaklabco/slashfmt/pkg/config"
	"github.com/yaklabco/slashfmt/pkg/fix"
	"github.com/yaklabco/slashfmt/pkg/langdetect"
	"github.com/yaklabco/slashfmt/pkg/source"
)

// Op identifies a formatting operation.
type Op string

const (
	// OpConvert upgrades plain `//` comments to `///` doc comments.
	OpConvert Op = "convert"

	// OpMarks title-cases MARK header text.
	OpMarks Op = "marks"

	// OpWrap reflows comment blocks to the configured width.
	OpWrap Op = "wrap"
)

// FileResult holds the edits computed for one file in a single pass.
type FileResult struct {
	// Path is the file the edits apply to.
	Path string

	// Lang is the detected language.
	Lang string

	// Supported is false when the language does not use slash comments;
	// no edits are produced in that case.
	Supported bool

	// Op is the operation that produced the edits (empty if none did).
	Op Op

	// Edits are prepared byte-offset edits, sorted and conflict-checked.
	Edits []fix.TextEdit
}

// Formatter computes edits for file content according to a fixed operation
// order. Each call reports edits from the first operation that still has
// work to do, so callers apply passes until the file is stable.
type Formatter struct {
	cfg *config.Config
	ops []Op
}

// New creates a Formatter running the given operations in order.
func New(cfg *config.Config, ops ...Op) *Formatter {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Formatter{cfg: cfg, ops: ops}
}

// Ops returns the configured operation order.
func (f *Formatter) Ops() []Op {
	return f.ops
}

// FormatContent computes edits for one pass over content.
// A result with no edits means the content is stable under every
// configured operation.
func (f *Formatter) FormatContent(ctx context.Context, path string, content []byte) (*FileResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("format cancelled: %w", ctx.Err())
	default:
	}

	result := &FileResult{
		Path: path,
		Lang: langdetect.Detect(path, content),
	}
	if !langdetect.SupportsSlashComments(result.Lang) {
		return result, nil
	}
	result.Supported = true

	snap := source.NewSnapshot(path, content)
	lines := snap.LineStrings()
	eol := f.cfg.EOL.Marker()
	if eol == "" {
		eol = snap.EOL()
	}

	for _, op := range f.ops {
		inserts, replaces := f.runOp(op, lines, eol)
		if len(inserts) == 0 && len(replaces) == 0 {
			continue
		}

		edits, err := fix.FromLineEdits(snap, inserts, replaces)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, path, err)
		}
		prepared, err := fix.PrepareEdits(edits, len(content))
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, path, err)
		}

		result.Op = op
		result.Edits = prepared
		return result, nil
	}

	return result, nil
}

// runOp produces line-addressed edits for a single operation.
func (f *Formatter) runOp(op Op, lines []string, eol string) ([]comment.Insert, []comment.Replace) {
	switch op {
	case OpConvert:
		return comment.ConvertToDocComments(lines), nil
	case OpMarks:
		return nil, comment.TitleCaseMarks(lines)
	case OpWrap:
		return nil, comment.WrapBlocks(lines, comment.WrapOptions{
			Width:                  f.cfg.Width,
			EOL:                    eol,
			CountFromCommentStart:  f.cfg.CountFromCommentStart,
			AvoidPunctuationBreaks: f.cfg.AvoidPunctuationBreaks,
		})
	default:
		return nil, nil
	}
}

// ClassifyOptions maps the span toggles from config to classifier options.
func ClassifyOptions(cfg *config.Config) comment.ClassifyOptions {
	if cfg == nil {
		return comment.DefaultClassifyOptions()
	}
	return comment.ClassifyOptions{
		MarkBold:         cfg.Spans.MarkBold,
		MarkSeparator:    cfg.Spans.MarkSeparator,
		PlainCommentCode: cfg.Spans.PlainCommentCode,
	}
}
