package reporter

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/slashfmt/internal/ui/pretty"
	"github.com/yaklabco/slashfmt/pkg/runner"
)

// summaryDividerMax caps the divider drawn above the run summary.
const summaryDividerMax = 60

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to format."))
		}
		return 0, nil
	}

	var changed int

	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		pr := file.Result
		if pr == nil {
			continue
		}

		switch {
		case pr.Skipped:
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Dim.Render(pr.Summary()),
			)
		case pr.Written:
			changed++
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Success.Render(pr.Summary()),
			)
		case pr.Modified:
			changed++
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, pr.EditsApplied))
		}
	}

	if r.opts.ShowSummary {
		width := min(pretty.TerminalWidth(r.opts.Writer), summaryDividerMax)
		fmt.Fprintln(r.bw, r.styles.Dim.Render(strings.Repeat("─", width)))
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return changed, nil
}
