package comment

// Segment is one line-local slice of a block's description text, with the
// structural prefix (comment marker, doc-tag keyword) already stripped.
// Column offsets in produced spans are absolute: StartCol is added to every
// in-segment position.
type Segment struct {
	Line     int
	StartCol int
	Text     string
}

// emphasisMarker is one entry of the tokenizer's emphasis stack.
// The rendered style at any point is the OR of the flags of all entries.
type emphasisMarker struct {
	marker     string
	addsBold   bool
	addsItalic bool
}

// inlineTokenizer threads the cross-line tokenization state through one
// block's segment list: a single in-code flag and one emphasis stack survive
// line boundaries, so spans continue uninterrupted within a block.
//
// Spans produced while any code or emphasis span is open are buffered in
// pending; they move to committed only when the outermost open span closes.
// Whatever is still pending when the block ends is discarded, which gives
// the "paired markers only" guarantee block-wide.
type inlineTokenizer struct {
	emphasisEnabled bool

	inCode bool
	stack  []emphasisMarker

	committed []Span
	pending   []Span
}

// TokenizeInline produces inline spans (code, emphasis, delimiters, plain
// text) for one block's segments. Pairing is block-wide: a code span or
// emphasis span may open on one segment and close on a later one.
func TokenizeInline(segments []Segment) []Span {
	return tokenizeInline(segments, true)
}

// TokenizeInlineCode is TokenizeInline with emphasis recognition disabled:
// only backtick code spans and their delimiters are produced, everything
// else is plain text. Used for plain (non-doc) comments.
func TokenizeInlineCode(segments []Segment) []Span {
	return tokenizeInline(segments, false)
}

func tokenizeInline(segments []Segment, emphasis bool) []Span {
	t := &inlineTokenizer{emphasisEnabled: emphasis}
	for _, seg := range segments {
		t.scanSegment(seg)
	}
	return t.committed
}

// buffering reports whether emitted spans must be held back until the
// enclosing code/emphasis span closes.
func (t *inlineTokenizer) buffering() bool {
	return t.inCode || len(t.stack) > 0
}

func (t *inlineTokenizer) emit(s Span) {
	if s.IsEmpty() {
		return
	}
	if t.buffering() {
		t.pending = append(t.pending, s)
	} else {
		t.committed = append(t.committed, s)
	}
}

// commitPending moves all buffered spans to the committed list. Called when
// the outermost open span closes.
func (t *inlineTokenizer) commitPending() {
	t.committed = append(t.committed, t.pending...)
	t.pending = t.pending[:0]
}

// styleKind returns the span kind for accumulated text under the current
// emphasis stack.
func (t *inlineTokenizer) styleKind() SpanKind {
	if t.inCode {
		return SpanInlineCode
	}
	var bold, italic bool
	for _, m := range t.stack {
		bold = bold || m.addsBold
		italic = italic || m.addsItalic
	}
	switch {
	case bold && italic:
		return SpanBoldItalic
	case bold:
		return SpanBold
	case italic:
		return SpanItalic
	default:
		return SpanPlainText
	}
}

func (t *inlineTokenizer) scanSegment(seg Segment) {
	runes := []rune(seg.Text)
	runStart := 0 // start of the current uninterrupted text run

	flushRun := func(end int) {
		if end <= runStart {
			return
		}
		t.emit(Span{
			Line:     seg.Line,
			StartCol: seg.StartCol + runStart,
			EndCol:   seg.StartCol + end,
			Kind:     t.styleKind(),
		})
	}

	i := 0
	for i < len(runes) {
		c := runes[i]

		if c == '`' && !escaped(runes, i) {
			flushRun(i)
			t.toggleCode(Span{
				Line:     seg.Line,
				StartCol: seg.StartCol + i,
				EndCol:   seg.StartCol + i + 1,
				Kind:     SpanMarkdownDelimiter,
			})
			i++
			runStart = i
			continue
		}

		if !t.inCode && t.emphasisEnabled && (c == '*' || c == '_') && !escaped(runes, i) {
			length := runLength(runes, i, c)
			if length <= 3 && !rejectUnderscoreMarker(runes, i, length, c) {
				flushRun(i)
				t.toggleEmphasis(string(runes[i:i+length]), Span{
					Line:     seg.Line,
					StartCol: seg.StartCol + i,
					EndCol:   seg.StartCol + i + length,
					Kind:     SpanMarkdownDelimiter,
				})
				i += length
				runStart = i
				continue
			}
			// Over-long or identifier-flanked run: literal text.
			i += length
			continue
		}

		i++
	}

	flushRun(len(runes))
}

// toggleCode opens or closes the inline-code state. The delimiter span is
// always buffered: an opening backtick that never closes is discarded along
// with everything after it.
func (t *inlineTokenizer) toggleCode(delim Span) {
	if t.inCode {
		t.pending = append(t.pending, delim)
		t.inCode = false
		if !t.buffering() {
			t.commitPending()
		}
		return
	}
	t.pending = append(t.pending, delim)
	t.inCode = true
}

// toggleEmphasis closes the topmost stack entry when the marker matches it
// exactly, otherwise opens a new nested entry. A differently-shaped marker
// nests instead of closing, so "*_text_*" stays well-formed.
func (t *inlineTokenizer) toggleEmphasis(marker string, delim Span) {
	if n := len(t.stack); n > 0 && t.stack[n-1].marker == marker {
		t.pending = append(t.pending, delim)
		t.stack = t.stack[:n-1]
		if !t.buffering() {
			t.commitPending()
		}
		return
	}

	m := emphasisMarker{marker: marker}
	switch len(marker) {
	case 3:
		m.addsBold, m.addsItalic = true, true
	case 2:
		m.addsBold = true
	default:
		m.addsItalic = true
	}
	t.pending = append(t.pending, delim)
	t.stack = append(t.stack, m)
}

// runLength returns the length of the run of rune c starting at i.
func runLength(runes []rune, i int, c rune) int {
	n := 0
	for i+n < len(runes) && runes[i+n] == c {
		n++
	}
	return n
}

// rejectUnderscoreMarker reports whether an underscore run is flanked by
// alphanumerics on both sides and must be treated as literal text, so
// identifiers like snake_case survive.
func rejectUnderscoreMarker(runes []rune, i, length int, c rune) bool {
	if c != '_' {
		return false
	}
	return i > 0 && isWordRune(runes[i-1]) &&
		i+length < len(runes) && isWordRune(runes[i+length])
}

func isWordRune(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// escaped reports whether the rune at i is preceded by an odd number of
// backslashes within the same segment.
func escaped(runes []rune, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && runes[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
