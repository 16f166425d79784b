package format_test

import (
	"context"
	"testing"

	"github.com/yaklabco/slashfmt/pkg/comment"
	"github.com/yaklabco/slashfmt/pkg/config"
	"github.com/yaklabco/slashfmt/pkg/fix"
	"github.com/yaklabco/slashfmt/pkg/format"
)

func TestFormatContentConvert(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	f := format.New(cfg, format.OpConvert)

	content := []byte("// a summary line\nfunc f() {}\n")
	result, err := f.FormatContent(context.Background(), "test.swift", content)
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}

	if !result.Supported {
		t.Fatal("swift should be supported")
	}
	if result.Op != format.OpConvert {
		t.Errorf("Op = %q, want %q", result.Op, format.OpConvert)
	}
	if len(result.Edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(result.Edits))
	}

	got := string(fix.ApplyEdits(content, result.Edits))
	want := "/// a summary line\nfunc f() {}\n"
	if got != want {
		t.Errorf("applied = %q, want %q", got, want)
	}
}

func TestFormatContentMarks(t *testing.T) {
	t.Parallel()

	f := format.New(config.NewConfig(), format.OpMarks)

	content := []byte("// MARK: - view life cycle\n")
	result, err := f.FormatContent(context.Background(), "View.swift", content)
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}

	got := string(fix.ApplyEdits(content, result.Edits))
	want := "// MARK: - View Life Cycle\n"
	if got != want {
		t.Errorf("applied = %q, want %q", got, want)
	}
}

func TestFormatContentWrap(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Width = 40
	f := format.New(cfg, format.OpWrap)

	content := []byte("/// this paragraph is definitely too long to stay on one line at width forty\n")
	result, err := f.FormatContent(context.Background(), "test.swift", content)
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}
	if len(result.Edits) == 0 {
		t.Fatal("expected wrap edits")
	}

	got := string(fix.ApplyEdits(content, result.Edits))
	for _, line := range splitNonEmpty(got) {
		if len(line) > 40 {
			t.Errorf("line %q exceeds width 40", line)
		}
	}
}

func TestFormatContentStable(t *testing.T) {
	t.Parallel()

	f := format.New(config.NewConfig(), format.OpConvert, format.OpMarks, format.OpWrap)

	content := []byte("/// Short and already formatted.\nfunc f() {}\n")
	result, err := f.FormatContent(context.Background(), "test.swift", content)
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}
	if len(result.Edits) != 0 {
		t.Errorf("expected no edits for stable content, got %d", len(result.Edits))
	}
	if result.Op != "" {
		t.Errorf("Op = %q, want empty", result.Op)
	}
}

func TestFormatContentOpOrder(t *testing.T) {
	t.Parallel()

	f := format.New(config.NewConfig(), format.OpConvert, format.OpMarks)

	// Both ops have work; the first configured op wins the pass.
	content := []byte("// plain comment\n// MARK: - section name\n")
	result, err := f.FormatContent(context.Background(), "test.swift", content)
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}
	if result.Op != format.OpConvert {
		t.Errorf("Op = %q, want %q", result.Op, format.OpConvert)
	}
}

func TestFormatContentUnsupportedLanguage(t *testing.T) {
	t.Parallel()

	f := format.New(config.NewConfig(), format.OpWrap)

	result, err := f.FormatContent(context.Background(), "script.py", []byte("# python comment\n"))
	if err != nil {
		t.Fatalf("FormatContent() error = %v", err)
	}
	if result.Supported {
		t.Error("python should not be supported")
	}
	if len(result.Edits) != 0 {
		t.Errorf("got %d edits for unsupported language", len(result.Edits))
	}
}

func TestClassifyOptions(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Spans.MarkBold = false
	cfg.Spans.PlainCommentCode = false

	opts := format.ClassifyOptions(cfg)
	if opts.MarkBold {
		t.Error("MarkBold should be disabled")
	}
	if !opts.MarkSeparator {
		t.Error("MarkSeparator should stay enabled")
	}
	if opts.PlainCommentCode {
		t.Error("PlainCommentCode should be disabled")
	}

	defaults := format.ClassifyOptions(nil)
	if defaults != comment.DefaultClassifyOptions() {
		t.Error("nil config should yield default classify options")
	}
}

func splitNonEmpty(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '\n' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}
