package comment_test

import (
	"testing"

	"github.com/yaklabco/slashfmt/pkg/comment"
)

func seg(line, start int, text string) comment.Segment {
	return comment.Segment{Line: line, StartCol: start, Text: text}
}

func span(line, start, end int, kind comment.SpanKind) comment.Span {
	return comment.Span{Line: line, StartCol: start, EndCol: end, Kind: kind}
}

func assertSpans(t *testing.T, got, want []comment.Span) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d spans, want %d:\n got: %+v\nwant: %+v", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("span %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTokenizeInline_CodeSpan(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "use `foo` here")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 4, comment.SpanPlainText),
		span(0, 4, 5, comment.SpanMarkdownDelimiter),
		span(0, 5, 8, comment.SpanInlineCode),
		span(0, 8, 9, comment.SpanMarkdownDelimiter),
		span(0, 9, 14, comment.SpanPlainText),
	})
}

func TestTokenizeInline_UnterminatedCodeDiscarded(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "a `b never closes")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 2, comment.SpanPlainText),
	})
}

func TestTokenizeInline_EmphasisNesting(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{
		seg(0, 0, "**bold *and italic* still bold**"),
	})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 2, comment.SpanMarkdownDelimiter),
		span(0, 2, 7, comment.SpanBold),
		span(0, 7, 8, comment.SpanMarkdownDelimiter),
		span(0, 8, 18, comment.SpanBoldItalic),
		span(0, 18, 19, comment.SpanMarkdownDelimiter),
		span(0, 19, 30, comment.SpanBold),
		span(0, 30, 32, comment.SpanMarkdownDelimiter),
	})
}

func TestTokenizeInline_DifferentMarkersNest(t *testing.T) {
	t.Parallel()

	// "*_text_*": the underscore nests inside the asterisk instead of
	// closing it.
	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "*_text_*")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 1, comment.SpanMarkdownDelimiter),
		span(0, 1, 2, comment.SpanMarkdownDelimiter),
		span(0, 2, 6, comment.SpanItalic),
		span(0, 6, 7, comment.SpanMarkdownDelimiter),
		span(0, 7, 8, comment.SpanMarkdownDelimiter),
	})
}

func TestTokenizeInline_CrossLineContinuation(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{
		seg(0, 4, "start `code"),
		seg(1, 4, "end` done"),
	})
	assertSpans(t, got, []comment.Span{
		span(0, 4, 10, comment.SpanPlainText),
		span(0, 10, 11, comment.SpanMarkdownDelimiter),
		span(0, 11, 15, comment.SpanInlineCode),
		span(1, 4, 7, comment.SpanInlineCode),
		span(1, 7, 8, comment.SpanMarkdownDelimiter),
		span(1, 8, 13, comment.SpanPlainText),
	})
}

func TestTokenizeInline_UnterminatedEmphasisDiscarded(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "*never closed")})
	if len(got) != 0 {
		t.Fatalf("expected no spans for unterminated emphasis, got %+v", got)
	}
}

func TestTokenizeInline_UnderscoreIdentifier(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "see snake_case_name here")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 24, comment.SpanPlainText),
	})
}

func TestTokenizeInline_UnderscoreEmphasis(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "_hello_")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 1, comment.SpanMarkdownDelimiter),
		span(0, 1, 6, comment.SpanItalic),
		span(0, 6, 7, comment.SpanMarkdownDelimiter),
	})
}

func TestTokenizeInline_EscapedDelimiters(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, `\*not\* stays`)})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 13, comment.SpanPlainText),
	})

	// One backslash escapes the backtick; it never opens a code span.
	got = comment.TokenizeInline([]comment.Segment{seg(0, 0, "tick \\`x")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 8, comment.SpanPlainText),
	})

	// Two backslashes do not: the first escapes the second, the backtick
	// opens a code span that never closes and is discarded.
	got = comment.TokenizeInline([]comment.Segment{seg(0, 0, "tick \\\\`x")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 7, comment.SpanPlainText),
	})
}

func TestTokenizeInline_OddBacktickCount(t *testing.T) {
	t.Parallel()

	// Three backticks: the pair closes, the final opener is discarded.
	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "`a` and `b")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 1, comment.SpanMarkdownDelimiter),
		span(0, 1, 2, comment.SpanInlineCode),
		span(0, 2, 3, comment.SpanMarkdownDelimiter),
		span(0, 3, 8, comment.SpanPlainText),
	})
}

func TestTokenizeInline_EmphasisIgnoredInCode(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "`a * b`")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 1, comment.SpanMarkdownDelimiter),
		span(0, 1, 6, comment.SpanInlineCode),
		span(0, 6, 7, comment.SpanMarkdownDelimiter),
	})
}

func TestTokenizeInlineCode_EmphasisDisabled(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInlineCode([]comment.Segment{seg(0, 0, "*x* `y`")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 4, comment.SpanPlainText),
		span(0, 4, 5, comment.SpanMarkdownDelimiter),
		span(0, 5, 6, comment.SpanInlineCode),
		span(0, 6, 7, comment.SpanMarkdownDelimiter),
	})
}

func TestTokenizeInline_OverlongMarkerRunIsText(t *testing.T) {
	t.Parallel()

	got := comment.TokenizeInline([]comment.Segment{seg(0, 0, "**** four stars")})
	assertSpans(t, got, []comment.Span{
		span(0, 0, 15, comment.SpanPlainText),
	})
}
