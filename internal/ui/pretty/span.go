package pretty

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/slashfmt/pkg/comment"
)

// SpanStyle returns the style for a span kind.
func (s *Styles) SpanStyle(kind comment.SpanKind) lipgloss.Style {
	switch kind {
	case comment.SpanSlashMarker:
		return s.SpanMarker
	case comment.SpanStructuralIndent:
		return s.SpanIndent
	case comment.SpanMarkBold:
		return s.SpanMark
	case comment.SpanMarkSeparator:
		return s.SpanSeparator
	case comment.SpanDocKeyword:
		return s.SpanKeyword
	case comment.SpanCapsLabel:
		return s.SpanCapsLabel
	case comment.SpanInlineCode:
		return s.SpanCode
	case comment.SpanMarkdownDelimiter:
		return s.SpanDelimiter
	case comment.SpanBold:
		return s.SpanBold
	case comment.SpanItalic:
		return s.SpanItalic
	case comment.SpanBoldItalic:
		return s.SpanBold.Italic(true)
	default:
		return s.SpanText
	}
}

// spanLayer ranks span kinds so that inline spans paint over semantic
// keywords, which in turn paint over structural spans.
func spanLayer(kind comment.SpanKind) int {
	switch kind {
	case comment.SpanSlashMarker, comment.SpanStructuralIndent,
		comment.SpanMarkBold, comment.SpanMarkSeparator:
		return 1
	case comment.SpanDocKeyword, comment.SpanCapsLabel:
		return 2
	default:
		return 3
	}
}

// RenderSpannedLine renders one source line with span highlighting applied.
// The spans must belong to this line; columns are rune offsets.
func (s *Styles) RenderSpannedLine(line string, spans []comment.Span) string {
	runes := []rune(line)
	if len(runes) == 0 {
		return ""
	}

	// Paint each column with the highest-layer span covering it.
	const noSpan = -1
	kinds := make([]int, len(runes))
	layers := make([]int, len(runes))
	for i := range kinds {
		kinds[i] = noSpan
	}

	for _, span := range spans {
		layer := spanLayer(span.Kind)
		for col := span.StartCol; col < span.EndCol && col < len(runes); col++ {
			if col < 0 || layer < layers[col] {
				continue
			}
			kinds[col] = int(span.Kind)
			layers[col] = layer
		}
	}

	// Group contiguous runs of the same kind and render each run once.
	var builder strings.Builder
	runStart := 0
	for col := 1; col <= len(runes); col++ {
		if col < len(runes) && kinds[col] == kinds[runStart] {
			continue
		}
		text := string(runes[runStart:col])
		if kinds[runStart] == noSpan {
			builder.WriteString(text)
		} else {
			builder.WriteString(s.SpanStyle(comment.SpanKind(kinds[runStart])).Render(text))
		}
		runStart = col
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, editCount int) string {
	header := s.FilePath.Render(path)
	if editCount > 0 {
		word := "edits"
		if editCount == 1 {
			word = "edit"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", editCount, word))
	}
	return header
}
