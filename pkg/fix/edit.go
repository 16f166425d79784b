// Package fix provides byte-offset text edits and their application to
// file content.
package fix

import (
	"fmt"

	"github.com/yaklabco/slashfmt/pkg/comment"
	"github.com/yaklabco/slashfmt/pkg/source"
)

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// FromLineEdits converts line-addressed inserts and replacements into
// byte-offset edits against the snapshot's content.
//
// An Insert becomes a zero-width edit at the byte offset of its character
// column. A Replace covers the byte range from the start of its first line
// to the end of its last line's content, leaving the trailing newline (if
// any) untouched.
func FromLineEdits(snap *source.Snapshot, inserts []comment.Insert, replaces []comment.Replace) ([]TextEdit, error) {
	edits := make([]TextEdit, 0, len(inserts)+len(replaces))

	for _, ins := range inserts {
		offset, ok := snap.Offset(ins.Line, ins.Col)
		if !ok {
			return nil, fmt.Errorf("insert position %d:%d out of range", ins.Line, ins.Col)
		}
		edits = append(edits, TextEdit{
			StartOffset: offset,
			EndOffset:   offset,
			NewText:     ins.Text,
		})
	}

	for _, rep := range replaces {
		if rep.StartLine < 0 || rep.EndLine < rep.StartLine || rep.EndLine >= snap.LineCount() {
			return nil, fmt.Errorf("replace range %d-%d out of range", rep.StartLine, rep.EndLine)
		}
		edits = append(edits, TextEdit{
			StartOffset: snap.Lines[rep.StartLine].StartOffset,
			EndOffset:   snap.Lines[rep.EndLine].NewlineStart,
			NewText:     rep.Text,
		})
	}

	return edits, nil
}
