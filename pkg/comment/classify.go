package comment

import (
	"regexp"
	"strings"
)

// LineKind classifies a single source line.
type LineKind uint8

const (
	// LineCode is a line with no comment, or an un-classifiable line.
	LineCode LineKind = iota

	// LineComment is a "//" line comment (not "///").
	LineComment

	// LineDocComment is a "///" documentation comment.
	LineDocComment

	// LineMark is a "// MARK:" section header.
	LineMark

	// LineMarkSeparator is a "// MARK: -" section divider.
	LineMarkSeparator
)

// Classification is the per-line result of ClassifyLine.
type Classification struct {
	// Kind is the line's comment kind. LineCode means no comment was found.
	Kind LineKind

	// CommentCol is the 0-based character column where the comment marker
	// starts. Only meaningful when Kind != LineCode.
	CommentCol int
}

// docCommentPattern matches a full-line doc comment: optional leading
// whitespace, then "///", then an arbitrary remainder.
var docCommentPattern = regexp.MustCompile(`^[ \t]*///`)

// markPattern matches a MARK comment: "// MARK:" followed by whitespace,
// end of line, or a dash.
var markPattern = regexp.MustCompile(`^//[ \t]*MARK:([ \t]|$|-)`)

// markSeparatorPattern matches a MARK separator: "// MARK:" followed by a dash.
var markSeparatorPattern = regexp.MustCompile(`^//[ \t]*MARK:[ \t]*-`)

// ClassifyLine decides what kind of comment, if any, a line carries.
// For lines with leading code it uses CommentStart to skip string literals,
// so a "//" inside "http://example.com" never counts as a comment.
func ClassifyLine(line string) Classification {
	col, ok := CommentStart(line)
	if !ok {
		return Classification{Kind: LineCode}
	}

	rest := string([]rune(line)[col:])

	switch {
	case markSeparatorPattern.MatchString(rest):
		return Classification{Kind: LineMarkSeparator, CommentCol: col}
	case markPattern.MatchString(rest):
		return Classification{Kind: LineMark, CommentCol: col}
	case strings.HasPrefix(rest, "///"):
		return Classification{Kind: LineDocComment, CommentCol: col}
	default:
		return Classification{Kind: LineComment, CommentCol: col}
	}
}

// IsDocCommentLine reports whether line is a whole-line doc comment
// (optional indentation, then "///").
func IsDocCommentLine(line string) bool {
	return docCommentPattern.MatchString(line)
}

// Block is a maximal run of contiguous comment lines sharing the same
// comment prefix and indentation.
type Block struct {
	// StartLine is the 0-based index of the block's first line.
	StartLine int

	// Indent is the leading whitespace shared by every line.
	Indent string

	// Marker is the comment marker, "//" or "///".
	Marker string

	// Lines holds the raw text of each line in the block.
	Lines []string
}

// Doc reports whether the block is a doc-comment block.
func (b Block) Doc() bool {
	return b.Marker == "///"
}

// EndLine returns the 0-based index of the block's last line (inclusive).
func (b Block) EndLine() int {
	return b.StartLine + len(b.Lines) - 1
}

// DocBlocks groups maximal runs of whole-line doc comments for span
// generation. Indentation changes do not split a run; only doc-comment lines
// aggregate, so inline formatting can continue across line boundaries.
func DocBlocks(lines []string) []Block {
	var blocks []Block

	i := 0
	for i < len(lines) {
		if !IsDocCommentLine(lines[i]) {
			i++
			continue
		}

		block := Block{StartLine: i, Marker: "///"}
		for i < len(lines) && IsDocCommentLine(lines[i]) {
			block.Lines = append(block.Lines, lines[i])
			i++
		}
		blocks = append(blocks, block)
	}

	return blocks
}

// commentLinePattern splits a whole-line comment into indent, marker, and
// remainder. "///" is matched before "//".
var commentLinePattern = regexp.MustCompile(`^([ \t]*)(///|//)(.*)$`)

// ReflowBlocks groups whole-line comments into {marker, indent} blocks for
// reflow. A block ends at the first line with a different marker, different
// indentation, or no comment at all. MARK lines never join a block.
func ReflowBlocks(lines []string) []Block {
	var blocks []Block
	var current *Block

	flush := func() {
		if current != nil {
			blocks = append(blocks, *current)
			current = nil
		}
	}

	for i, line := range lines {
		m := commentLinePattern.FindStringSubmatch(line)
		if m == nil || (m[2] == "//" && isMarkRemainder(m[3])) {
			flush()
			continue
		}

		indent, marker := m[1], m[2]
		if current != nil && (current.Indent != indent || current.Marker != marker) {
			flush()
		}
		if current == nil {
			current = &Block{StartLine: i, Indent: indent, Marker: marker}
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	return blocks
}

// isMarkRemainder reports whether the text after a "//" marker makes the
// line a MARK comment.
func isMarkRemainder(rest string) bool {
	return markPattern.MatchString("//" + rest)
}

// SplitCommentLine returns the indent, marker, and remainder of a whole-line
// comment, or false if the line is not one.
func SplitCommentLine(line string) (indent, marker, rest string, ok bool) {
	m := commentLinePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", "", false
	}
	return m[1], m[2], m[3], true
}
