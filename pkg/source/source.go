// Package source provides an immutable line-indexed view of a source file.
// It is the bridge between raw file bytes and the line/column addressing the
// comment engine uses: callers take a Snapshot, hand its lines to pkg/comment,
// and convert the resulting line-addressed edits back to byte offsets.
package source

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Snapshot is an immutable view of one source file at a specific time.
type Snapshot struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line.
	Lines []LineInfo
}

// LineInfo holds byte-offset metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewSnapshot builds a Snapshot from content, indexing every line.
func NewSnapshot(path string, content []byte) *Snapshot {
	return &Snapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// BuildLines constructs line metadata from file content.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx, char := range content {
		if char == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return lines
}

// LineCount returns the number of lines in the file.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineContent returns the text of the 0-based line index, excluding the
// newline. Returns "" if the index is out of range.
func (s *Snapshot) LineContent(line int) string {
	if line < 0 || line >= len(s.Lines) {
		return ""
	}
	info := s.Lines[line]
	return string(s.Content[info.StartOffset:info.NewlineStart])
}

// LineStrings returns every line's text, newlines excluded, in order.
// This is the input shape pkg/comment consumes.
func (s *Snapshot) LineStrings() []string {
	out := make([]string, len(s.Lines))
	for i := range s.Lines {
		out[i] = s.LineContent(i)
	}
	return out
}

// LineAt converts a byte offset to a 0-based line index.
// Returns -1 if the offset is out of range.
func (s *Snapshot) LineAt(offset int) int {
	if offset < 0 || len(s.Lines) == 0 {
		return -1
	}
	if offset >= len(s.Content) {
		return len(s.Lines) - 1
	}

	idx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})
	if idx >= len(s.Lines) {
		idx = len(s.Lines) - 1
	}
	return idx
}

// Offset converts a 0-based line index and character column to a byte
// offset. Columns count runes to match the comment engine's addressing.
// Returns (0, false) if the position is out of range.
func (s *Snapshot) Offset(line, col int) (int, bool) {
	if line < 0 || line >= len(s.Lines) || col < 0 {
		return 0, false
	}

	info := s.Lines[line]
	text := s.Content[info.StartOffset:info.NewlineStart]

	offset := info.StartOffset
	for i := 0; i < col; i++ {
		if offset >= info.NewlineStart {
			return 0, false
		}
		_, size := utf8.DecodeRune(text[offset-info.StartOffset:])
		offset += size
	}
	return offset, true
}

// EOL returns the dominant end-of-line marker of the file: "\r\n" when at
// least half the newlines are CRLF, otherwise "\n". Files without newlines
// report "\n".
func (s *Snapshot) EOL() string {
	total, crlf := 0, 0
	for _, info := range s.Lines {
		if info.NewlineStart == info.EndOffset {
			continue
		}
		total++
		if info.EndOffset-info.NewlineStart == 2 {
			crlf++
		}
	}
	if total > 0 && crlf*2 >= total {
		return "\r\n"
	}
	return "\n"
}

// HasTrailingNewline reports whether the content ends with a newline.
func (s *Snapshot) HasTrailingNewline() bool {
	if len(s.Lines) == 0 {
		return false
	}
	last := s.Lines[len(s.Lines)-1]
	return last.StartOffset == last.NewlineStart && last.NewlineStart == len(s.Content)
}

// SplitLines splits text into lines on LF or CRLF without the newline
// markers. The empty string yields a single empty line.
func SplitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
