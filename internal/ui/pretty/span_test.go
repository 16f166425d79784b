package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/slashfmt/pkg/comment"
)

func TestRenderSpannedLine_NoColor(t *testing.T) {
	t.Parallel()

	// Without color the rendered line must equal the input, spans or not.
	styles := NewStyles(false)

	line := "/// Returns: the `count` value"
	spans := []comment.Span{
		{Line: 0, StartCol: 0, EndCol: 3, Kind: comment.SpanSlashMarker},
		{Line: 0, StartCol: 4, EndCol: 12, Kind: comment.SpanDocKeyword},
		{Line: 0, StartCol: 17, EndCol: 24, Kind: comment.SpanInlineCode},
	}

	assert.Equal(t, line, styles.RenderSpannedLine(line, spans))
}

func TestRenderSpannedLine_Empty(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "", styles.RenderSpannedLine("", nil))
}

func TestRenderSpannedLine_LayerPrecedence(t *testing.T) {
	t.Parallel()

	styles := NewStyles(true)

	// A full-line mark span overlaid by an inline code span: the inline span
	// wins for its columns, so its styled text must appear in the output.
	line := "// MARK: `code`"
	spans := []comment.Span{
		{Line: 0, StartCol: 0, EndCol: 15, Kind: comment.SpanMarkBold},
		{Line: 0, StartCol: 10, EndCol: 14, Kind: comment.SpanInlineCode},
	}

	out := styles.RenderSpannedLine(line, spans)
	assert.Contains(t, out, styles.SpanCode.Render("code"))
}

func TestRenderSpannedLine_OutOfRangeSpan(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	line := "// short"
	spans := []comment.Span{
		{Line: 0, StartCol: 3, EndCol: 100, Kind: comment.SpanInlineCode},
	}

	// Columns past the end of the line are ignored.
	assert.Equal(t, line, styles.RenderSpannedLine(line, spans))
}

func TestSpanStyle_AllKinds(t *testing.T) {
	t.Parallel()

	styles := NewStyles(true)

	kinds := []comment.SpanKind{
		comment.SpanSlashMarker,
		comment.SpanStructuralIndent,
		comment.SpanMarkBold,
		comment.SpanMarkSeparator,
		comment.SpanDocKeyword,
		comment.SpanCapsLabel,
		comment.SpanPlainText,
		comment.SpanInlineCode,
		comment.SpanMarkdownDelimiter,
		comment.SpanBold,
		comment.SpanItalic,
		comment.SpanBoldItalic,
	}

	for _, kind := range kinds {
		// Every kind maps to a usable style.
		style := styles.SpanStyle(kind)
		assert.NotEmpty(t, style.Render("x"), "kind %s", kind)
	}
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	assert.Equal(t, "a.swift", styles.FormatFileHeader("a.swift", 0))
	assert.Equal(t, "a.swift (1 edit)", styles.FormatFileHeader("a.swift", 1))
	assert.Equal(t, "a.swift (3 edits)", styles.FormatFileHeader("a.swift", 3))
}
