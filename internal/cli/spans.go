package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slashfmt/internal/configloader"
	"github.com/yaklabco/slashfmt/internal/ui/pretty"
	"github.com/yaklabco/slashfmt/pkg/comment"
	"github.com/yaklabco/slashfmt/pkg/langdetect"
	"github.com/yaklabco/slashfmt/pkg/source"
)

type spansFlags struct {
	format string
}

// spanJSON is the JSON shape of one classified span.
type spanJSON struct {
	Line     int    `json:"line"`
	StartCol int    `json:"startCol"`
	EndCol   int    `json:"endCol"`
	Kind     string `json:"kind"`
}

func newSpansCommand() *cobra.Command {
	flags := &spansFlags{}

	cmd := &cobra.Command{
		Use:   "spans <file>",
		Short: "Show classified comment spans for a file",
		Long: `Classify every comment in a file into typed spans (markers, MARK
headers, doc keywords, caps labels, inline code, emphasis) and print them.

Text output renders the file with each span styled; JSON output emits the
raw span list for editor tooling.

Examples:
  slashfmt spans Model.swift
  slashfmt spans --format json Model.swift`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpans(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")

	return cmd
}

func runSpans(cmd *cobra.Command, path string, flags *spansFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	cfg := loadResult.Config

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lang := langdetect.Detect(path, content)
	if !langdetect.SupportsSlashComments(lang) {
		return fmt.Errorf("%s: language %q does not use // comments", path, lang)
	}

	lines := source.SplitLines(string(content))
	spans := comment.Classify(lines, comment.ClassifyOptions{
		MarkBold:         cfg.Spans.MarkBold,
		MarkSeparator:    cfg.Spans.MarkSeparator,
		PlainCommentCode: cfg.Spans.PlainCommentCode,
	})

	out := cmd.OutOrStdout()

	if flags.format == "json" {
		payload := make([]spanJSON, 0, len(spans))
		for _, s := range spans {
			payload = append(payload, spanJSON{
				Line:     s.Line,
				StartCol: s.StartCol,
				EndCol:   s.EndCol,
				Kind:     s.Kind.String(),
			})
		}

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(payload)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	// Group spans by line so each line is rendered once.
	byLine := make(map[int][]comment.Span, len(spans))
	for _, s := range spans {
		byLine[s.Line] = append(byLine[s.Line], s)
	}

	for i, line := range lines {
		fmt.Fprintln(out, styles.RenderSpannedLine(line, byLine[i]))
	}

	return nil
}
