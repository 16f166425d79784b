package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/yaklabco/slashfmt/pkg/config"
	"github.com/yaklabco/slashfmt/pkg/format"
	"github.com/yaklabco/slashfmt/pkg/runner"
)

func newRunner(cfg *config.Config, ops ...format.Op) *runner.Runner {
	return runner.New(format.NewPipeline(format.New(cfg, ops...)))
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("setup mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("setup write: %v", err)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	pipeline := format.NewPipeline(format.New(config.NewConfig(), format.OpWrap))
	r := runner.New(pipeline)

	if r.Pipeline != pipeline {
		t.Error("Pipeline not set correctly")
	}
}

func TestRunner_Run_NoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := newRunner(config.NewConfig(), format.OpWrap)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 0 {
		t.Errorf("FilesDiscovered = %d, want 0", result.Stats.FilesDiscovered)
	}
	if len(result.Files) != 0 {
		t.Errorf("len(Files) = %d, want 0", len(result.Files))
	}
}

func TestRunner_Run_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"Model.swift": "// a summary\nstruct Model {}\n",
	})

	r := newRunner(config.NewConfig(), format.OpConvert)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 1 {
		t.Errorf("FilesDiscovered = %d, want 1", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesProcessed != 1 {
		t.Errorf("FilesProcessed = %d, want 1", result.Stats.FilesProcessed)
	}
	if result.Stats.FilesChanged != 1 {
		t.Errorf("FilesChanged = %d, want 1", result.Stats.FilesChanged)
	}
	if !result.HasChanges() {
		t.Error("HasChanges() should be true")
	}
	if result.Stats.FilesWritten != 0 {
		t.Errorf("FilesWritten = %d, want 0 without fix mode", result.Stats.FilesWritten)
	}
}

func TestRunner_Run_MultipleFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"A.swift":         "// convert me\n",
		"B.swift":         "/// Already fine.\n",
		"Sources/C.swift": "// MARK: - section one\n",
	})

	r := newRunner(config.NewConfig(), format.OpConvert, format.OpMarks)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesDiscovered != 3 {
		t.Fatalf("FilesDiscovered = %d, want 3", result.Stats.FilesDiscovered)
	}
	if result.Stats.FilesChanged != 2 {
		t.Errorf("FilesChanged = %d, want 2", result.Stats.FilesChanged)
	}

	// Outcomes are ordered by path regardless of worker scheduling.
	for i := 1; i < len(result.Files); i++ {
		if result.Files[i-1].Path > result.Files[i].Path {
			t.Errorf("outcomes not sorted: %s before %s", result.Files[i-1].Path, result.Files[i].Path)
		}
	}
}

func TestRunner_Run_Fix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"A.swift": "// convert me\n",
	})

	cfg := config.NewConfig()
	cfg.Fix = true
	cfg.NoBackups = true

	r := newRunner(cfg, format.OpConvert)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesWritten != 1 {
		t.Fatalf("FilesWritten = %d, want 1", result.Stats.FilesWritten)
	}
	if result.Stats.EditsApplied == 0 {
		t.Error("EditsApplied should be nonzero")
	}

	data, err := os.ReadFile(filepath.Join(dir, "A.swift"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "/// convert me\n" {
		t.Errorf("fixed content = %q", data)
	}
}

func TestRunner_Run_DryRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "// convert me\n"
	writeFiles(t, dir, map[string]string{"A.swift": original})

	cfg := config.NewConfig()
	cfg.DryRun = true

	r := newRunner(cfg, format.OpConvert)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     cfg,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Files) != 1 {
		t.Fatalf("len(Files) = %d, want 1", len(result.Files))
	}
	outcome := result.Files[0]
	if outcome.Result == nil || outcome.Result.Diff == nil {
		t.Fatal("expected a diff in dry-run mode")
	}

	data, err := os.ReadFile(filepath.Join(dir, "A.swift"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != original {
		t.Error("dry run must not modify files")
	}
}

func TestRunner_Run_SkipsUnsupported(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"A.swift":  "// fine\n",
		"notes.py": "# python\n",
	})

	r := newRunner(config.NewConfig(), format.OpConvert)

	result, err := r.Run(context.Background(), runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Extensions: []string{".swift", ".py"},
		Config:     config.NewConfig(),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.Stats.FilesSkipped != 1 {
		t.Errorf("FilesSkipped = %d, want 1", result.Stats.FilesSkipped)
	}
}

func TestRunner_Run_SerialVsParallelConsistency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		files[name+".swift"] = "// comment for " + name + "\n"
	}
	writeFiles(t, dir, files)

	run := func(jobs int) *runner.Result {
		r := newRunner(config.NewConfig(), format.OpConvert)
		result, err := r.Run(context.Background(), runner.Options{
			Paths:      []string{"."},
			WorkingDir: dir,
			Jobs:       jobs,
			Config:     config.NewConfig(),
		})
		if err != nil {
			t.Fatalf("Run(jobs=%d) error = %v", jobs, err)
		}
		return result
	}

	serial := run(1)
	parallel := run(4)

	if serial.Stats != parallel.Stats {
		t.Errorf("stats differ: serial %+v, parallel %+v", serial.Stats, parallel.Stats)
	}
	if len(serial.Files) != len(parallel.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(serial.Files), len(parallel.Files))
	}
	for i := range serial.Files {
		if serial.Files[i].Path != parallel.Files[i].Path {
			t.Errorf("order differs at %d: %s vs %s", i, serial.Files[i].Path, parallel.Files[i].Path)
		}
	}
}

func TestRunner_Run_ContextCancellation(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"A.swift": "// comment\n"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRunner(config.NewConfig(), format.OpConvert)
	_, err := r.Run(ctx, runner.Options{
		Paths:      []string{"."},
		WorkingDir: dir,
		Config:     config.NewConfig(),
	})
	if err == nil {
		t.Error("expected error from cancelled context")
	}
}

func TestResult_HasChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name:   "empty result",
			result: &runner.Result{},
			want:   false,
		},
		{
			name:   "changed files",
			result: &runner.Result{Stats: runner.Stats{FilesChanged: 2}},
			want:   true,
		},
		{
			name:   "processed but unchanged",
			result: &runner.Result{Stats: runner.Stats{FilesProcessed: 5}},
			want:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.HasChanges(); got != tt.want {
				t.Errorf("HasChanges() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResult_HasErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		want   bool
	}{
		{
			name:   "nil result",
			result: nil,
			want:   false,
		},
		{
			name:   "empty result",
			result: &runner.Result{},
			want:   false,
		},
		{
			name:   "errored files",
			result: &runner.Result{Stats: runner.Stats{FilesErrored: 1}},
			want:   true,
		},
		{
			name:   "run-level errors",
			result: &runner.Result{Errors: []error{errors.New("walk failed")}},
			want:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.result.HasErrors(); got != tt.want {
				t.Errorf("HasErrors() = %v, want %v", got, tt.want)
			}
		})
	}
}
