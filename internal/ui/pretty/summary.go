package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/slashfmt/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files need formatting (12 edits), 2 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 && stats.FilesErrored == 0 {
		msg := s.Success.Render("All files formatted") +
			s.Dim.Render(fmt.Sprintf(" (%d files checked)", stats.FilesProcessed))
		if stats.FilesSkipped > 0 {
			msg += s.Dim.Render(fmt.Sprintf(", %d skipped", stats.FilesSkipped))
		}
		return msg + "\n"
	}

	var parts []string

	if stats.FilesWritten > 0 {
		fileWord := wordFiles
		if stats.FilesWritten == 1 {
			fileWord = wordFile
		}
		parts = append(parts, s.Success.Render(
			fmt.Sprintf("%d %s formatted (%d edits)", stats.FilesWritten, fileWord, stats.EditsApplied)))
	} else if stats.FilesChanged > 0 {
		fileWord := wordFiles
		if stats.FilesChanged == 1 {
			fileWord = wordFile
		}
		verb := "need"
		if stats.FilesChanged == 1 {
			verb = "needs"
		}
		parts = append(parts, s.Warning.Render(
			fmt.Sprintf("%d %s %s formatting", stats.FilesChanged, fileWord, verb)))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Dim.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}

	if stats.FilesErrored > 0 {
		errWord := "errors"
		if stats.FilesErrored == 1 {
			errWord = "error"
		}
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d %s", stats.FilesErrored, errWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Need formatting:  " +
			s.Warning.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}

	if stats.FilesWritten > 0 {
		builder.WriteString("  Files written:    " +
			s.Success.Render(strconv.Itoa(stats.FilesWritten)) + "\n")
		builder.WriteString("  Edits applied:    " +
			s.SummaryValue.Render(strconv.Itoa(stats.EditsApplied)) + "\n")
	}

	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:    " +
			s.Dim.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}

	if stats.FilesErrored > 0 {
		builder.WriteString("  Errors:           " +
			s.Error.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Formatting failed with errors"))
	case stats.FilesChanged > 0 && stats.FilesWritten == 0:
		builder.WriteString(s.Warning.Render("Files need formatting"))
	default:
		builder.WriteString(s.Success.Render("Formatting clean"))
	}
	builder.WriteString("\n")

	return builder.String()
}
