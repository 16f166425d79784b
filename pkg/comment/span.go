// Package comment implements semantic segmentation and reflow of //-style
// source comments. It classifies comment lines (line comments, /// doc
// comments, // MARK: headers), aggregates them into blocks, tokenizes
// Markdown-like inline syntax inside documentation text, and computes
// reflow / conversion / title-casing edits.
//
// Everything in this package is pure: functions consume an ordered slice of
// line strings and return spans or edits. Applying edits is the caller's
// responsibility (see pkg/fix).
package comment

// SpanKind classifies the semantic role of a character range.
type SpanKind uint8

// Span kinds, grouped by styling layer. Within one layer, spans on the same
// line never overlap; layers may overlay each other.
const (
	// Structural layer.
	SpanSlashMarker      SpanKind = iota // the "//" or "///" marker itself
	SpanStructuralIndent                 // list-bullet prefix of a doc tag
	SpanMarkBold                         // "MARK:" header title
	SpanMarkSeparator                    // "MARK: -" separator line

	// Semantic-keyword layer.
	SpanDocKeyword // "Returns:", "Parameter x:", ...
	SpanCapsLabel  // "NOTE:", "TODO:", ...

	// Inline (emphasis/code) layer.
	SpanPlainText
	SpanInlineCode
	SpanMarkdownDelimiter // backticks and emphasis marker runs
	SpanBold
	SpanItalic
	SpanBoldItalic
)

// String returns the lowercase hyphenated name of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanSlashMarker:
		return "slash-marker"
	case SpanStructuralIndent:
		return "structural-indent"
	case SpanMarkBold:
		return "mark-bold"
	case SpanMarkSeparator:
		return "mark-separator"
	case SpanDocKeyword:
		return "doc-keyword"
	case SpanCapsLabel:
		return "caps-label"
	case SpanPlainText:
		return "plain-text"
	case SpanInlineCode:
		return "inline-code"
	case SpanMarkdownDelimiter:
		return "markdown-delimiter"
	case SpanBold:
		return "bold"
	case SpanItalic:
		return "italic"
	case SpanBoldItalic:
		return "bold-italic"
	default:
		return "unknown"
	}
}

// Span is a typed character range on a single line.
// Columns are 0-based character (rune) offsets; EndCol is exclusive.
type Span struct {
	// Line is the 0-based line index.
	Line int

	// StartCol is the starting column (inclusive).
	StartCol int

	// EndCol is the ending column (exclusive).
	EndCol int

	// Kind classifies what this span represents.
	Kind SpanKind
}

// Len returns the span width in characters.
func (s Span) Len() int {
	return s.EndCol - s.StartCol
}

// IsEmpty reports whether the span has zero width.
func (s Span) IsEmpty() bool {
	return s.StartCol >= s.EndCol
}

// Text returns the span's text from the given line runes.
// Returns nil if the span is out of range.
func (s Span) Text(line []rune) []rune {
	if s.StartCol < 0 || s.EndCol > len(line) || s.StartCol > s.EndCol {
		return nil
	}
	return line[s.StartCol:s.EndCol]
}
