package fix_test

import (
	"testing"

	"github.com/yaklabco/slashfmt/pkg/comment"
	"github.com/yaklabco/slashfmt/pkg/fix"
	"github.com/yaklabco/slashfmt/pkg/source"
)

func TestFromLineEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		inserts  []comment.Insert
		replaces []comment.Replace
		want     string
	}{
		{
			name:    "insert within line",
			content: "    // a line comment\n",
			inserts: []comment.Insert{{Line: 0, Col: 6, Text: "/"}},
			want:    "    /// a line comment\n",
		},
		{
			name:    "insert on later line",
			content: "let x = 1\n// first\n// second\n",
			inserts: []comment.Insert{
				{Line: 1, Col: 2, Text: "/"},
				{Line: 2, Col: 2, Text: "/"},
			},
			want: "let x = 1\n/// first\n/// second\n",
		},
		{
			name:    "replace single line preserves newline",
			content: "/// old text\nlet x = 1\n",
			replaces: []comment.Replace{
				{StartLine: 0, EndLine: 0, Text: "/// new text"},
			},
			want: "/// new text\nlet x = 1\n",
		},
		{
			name:    "replace multi line block with fewer lines",
			content: "/// one\n/// two\n/// three\nfunc f() {}\n",
			replaces: []comment.Replace{
				{StartLine: 0, EndLine: 2, Text: "/// one two three"},
			},
			want: "/// one two three\nfunc f() {}\n",
		},
		{
			name:    "replace grows block",
			content: "// aaaa bbbb\ncode\n",
			replaces: []comment.Replace{
				{StartLine: 0, EndLine: 0, Text: "// aaaa\n// bbbb"},
			},
			want: "// aaaa\n// bbbb\ncode\n",
		},
		{
			name:    "replace last line without trailing newline",
			content: "code\n// tail comment",
			replaces: []comment.Replace{
				{StartLine: 1, EndLine: 1, Text: "// rewrapped"},
			},
			want: "code\n// rewrapped",
		},
		{
			name:    "crlf replacement text preserved",
			content: "// aaaa bbbb\r\ncode\r\n",
			replaces: []comment.Replace{
				{StartLine: 0, EndLine: 0, Text: "// aaaa\r\n// bbbb"},
			},
			want: "// aaaa\r\n// bbbb\r\ncode\r\n",
		},
		{
			name:    "insert column counts runes not bytes",
			content: "let s = \"héllo\" // note\n",
			inserts: []comment.Insert{{Line: 0, Col: 18, Text: "/"}},
			want:    "let s = \"héllo\" /// note\n",
		},
		{
			name:    "inserts and replaces combined",
			content: "// top\n/// wrap me please now\n",
			inserts: []comment.Insert{{Line: 0, Col: 2, Text: "/"}},
			replaces: []comment.Replace{
				{StartLine: 1, EndLine: 1, Text: "/// wrap me\n/// please now"},
			},
			want: "/// top\n/// wrap me\n/// please now\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			snap := source.NewSnapshot("test.swift", []byte(tt.content))
			edits, err := fix.FromLineEdits(snap, tt.inserts, tt.replaces)
			if err != nil {
				t.Fatalf("FromLineEdits() error = %v", err)
			}

			prepared, err := fix.PrepareEdits(edits, len(snap.Content))
			if err != nil {
				t.Fatalf("PrepareEdits() error = %v", err)
			}

			got := string(fix.ApplyEdits(snap.Content, prepared))
			if got != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromLineEditsErrors(t *testing.T) {
	t.Parallel()

	snap := source.NewSnapshot("test.swift", []byte("// short\n"))

	_, err := fix.FromLineEdits(snap, []comment.Insert{{Line: 5, Col: 0, Text: "/"}}, nil)
	if err == nil {
		t.Error("expected error for insert past last line")
	}

	_, err = fix.FromLineEdits(snap, []comment.Insert{{Line: 0, Col: 100, Text: "/"}}, nil)
	if err == nil {
		t.Error("expected error for insert column past line end")
	}

	_, err = fix.FromLineEdits(snap, nil, []comment.Replace{{StartLine: 0, EndLine: 9, Text: "x"}})
	if err == nil {
		t.Error("expected error for replace range past last line")
	}
}
