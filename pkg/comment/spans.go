package comment

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// ClassifyOptions controls which span layers Classify produces.
// The zero value disables the optional layers; use DefaultClassifyOptions
// for the usual set.
type ClassifyOptions struct {
	// MarkBold emits mark-bold spans for "// MARK:" headers.
	MarkBold bool

	// MarkSeparator emits mark-separator spans for "// MARK: -" dividers.
	MarkSeparator bool

	// PlainCommentCode emits inline-code spans inside plain "//" comments.
	PlainCommentCode bool
}

// DefaultClassifyOptions enables every span layer.
func DefaultClassifyOptions() ClassifyOptions {
	return ClassifyOptions{
		MarkBold:         true,
		MarkSeparator:    true,
		PlainCommentCode: true,
	}
}

// Classify produces all typed spans for one document snapshot: structural
// and semantic spans plus inline formatting for doc-comment blocks, MARK
// header spans, and (optionally) inline code inside plain comments.
// Spans are returned in source order (by line, then start column).
func Classify(lines []string, opts ClassifyOptions) []Span {
	var spans []Span

	for _, block := range DocBlocks(lines) {
		spans = append(spans, classifyDocBlock(block)...)
	}

	spans = append(spans, markSpans(lines, opts)...)

	if opts.PlainCommentCode {
		spans = append(spans, plainCommentCodeSpans(lines)...)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Line != spans[j].Line {
			return spans[i].Line < spans[j].Line
		}
		return spans[i].StartCol < spans[j].StartCol
	})

	return spans
}

// classifyDocBlock emits structural and semantic spans for one doc block and
// gathers the prefix-stripped description segments for inline tokenization.
func classifyDocBlock(block Block) []Span {
	var spans []Span
	var segments []Segment

	for i, line := range block.Lines {
		lineIdx := block.StartLine + i

		indent, marker, rest, ok := SplitCommentLine(line)
		if !ok || marker != "///" {
			continue
		}
		markerStart := utf8.RuneCountInString(indent)
		markerEnd := markerStart + len(marker)

		spans = append(spans, Span{
			Line:     lineIdx,
			StartCol: markerStart,
			EndCol:   markerEnd,
			Kind:     SpanSlashMarker,
		})

		if tag, isTag := ParseDocTag(rest); isTag {
			listLen := utf8.RuneCountInString(tag.ListPrefix)
			prefixLen := utf8.RuneCountInString(tag.KeywordPrefix)

			spans = append(spans, Span{
				Line:     lineIdx,
				StartCol: markerEnd,
				EndCol:   markerEnd + listLen,
				Kind:     SpanStructuralIndent,
			})
			keywordEnd := markerEnd + utf8.RuneCountInString(strings.TrimRight(tag.KeywordPrefix, " \t"))
			spans = append(spans, Span{
				Line:     lineIdx,
				StartCol: markerEnd + listLen,
				EndCol:   keywordEnd,
				Kind:     SpanDocKeyword,
			})

			segments = append(segments, Segment{
				Line:     lineIdx,
				StartCol: markerEnd + prefixLen,
				Text:     tag.Description,
			})
			continue
		}

		if label, isLabel := FindLeadingCapsLabel(rest); isLabel {
			spans = append(spans, Span{
				Line:     lineIdx,
				StartCol: markerEnd + label.Start,
				EndCol:   markerEnd + label.Colon + 1,
				Kind:     SpanCapsLabel,
			})

			segments = append(segments, Segment{
				Line:     lineIdx,
				StartCol: markerEnd + label.Colon + 1,
				Text:     string([]rune(rest)[label.Colon+1:]),
			})
			continue
		}

		segments = append(segments, Segment{
			Line:     lineIdx,
			StartCol: markerEnd,
			Text:     rest,
		})
	}

	return append(spans, TokenizeInline(segments)...)
}

// markSpans emits mark-bold / mark-separator spans for MARK lines anywhere
// in the document, independent of block membership.
func markSpans(lines []string, opts ClassifyOptions) []Span {
	var spans []Span

	for i, line := range lines {
		cls := ClassifyLine(line)
		lineLen := utf8.RuneCountInString(line)

		switch cls.Kind {
		case LineMarkSeparator:
			if opts.MarkSeparator {
				spans = append(spans, Span{
					Line: i, StartCol: cls.CommentCol, EndCol: lineLen, Kind: SpanMarkSeparator,
				})
			}
		case LineMark:
			if opts.MarkBold {
				spans = append(spans, Span{
					Line: i, StartCol: cls.CommentCol, EndCol: lineLen, Kind: SpanMarkBold,
				})
			}
		}
	}

	return spans
}

// plainCommentCodeSpans emits backtick code spans for plain "//" comments,
// including trailing comments after code. Plain comments do not aggregate,
// so pairing is per line.
func plainCommentCodeSpans(lines []string) []Span {
	var spans []Span

	for i, line := range lines {
		cls := ClassifyLine(line)
		if cls.Kind != LineComment {
			continue
		}

		runes := []rune(line)
		rest := string(runes[cls.CommentCol+2:])

		segment := Segment{Line: i, StartCol: cls.CommentCol + 2, Text: rest}
		for _, s := range TokenizeInlineCode([]Segment{segment}) {
			if s.Kind == SpanInlineCode || s.Kind == SpanMarkdownDelimiter {
				spans = append(spans, s)
			}
		}
	}

	return spans
}
