package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slashfmt/internal/configloader"
	"github.com/yaklabco/slashfmt/internal/logging"
	"github.com/yaklabco/slashfmt/pkg/config"
	"github.com/yaklabco/slashfmt/pkg/format"
	"github.com/yaklabco/slashfmt/pkg/reporter"
	"github.com/yaklabco/slashfmt/pkg/runner"
)

// ErrChangesNeeded is returned when files need formatting in check mode.
var ErrChangesNeeded = errors.New("files need formatting")

// ErrRunFailed is returned when one or more files could not be processed.
var ErrRunFailed = errors.New("formatting run failed")

type formatFlags struct {
	format  string
	ignore  []string
	compact bool
}

// addFormatFlags registers the flags shared by the wrap, convert, and marks
// commands. Config-backed flags bind directly to cfg so zero values read as
// unset during merging.
func addFormatFlags(cmd *cobra.Command, cfg *config.Config, flags *formatFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "write changes to disk")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show changes without applying them")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}

func newWrapCommand() *cobra.Command {
	var cfg config.Config
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "wrap [paths...]",
		Short: "Rewrap long comment blocks",
		Long: `Rewrap /// doc-comment blocks and standalone // comment blocks so no
line exceeds the configured width. Indentation, comment markers, doc tags,
caps labels, and inline code spans are preserved; lines that cannot be
shortened (long URLs, unbreakable tokens) are left in place.

Examples:
  slashfmt wrap                     # Check current directory
  slashfmt wrap Sources/            # Check a directory
  slashfmt wrap --width 80 --fix    # Rewrap in place at width 80
  slashfmt wrap --dry-run           # Show a diff of pending changes`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, &cfg, flags, format.OpWrap)
		},
	}

	addFormatFlags(cmd, &cfg, flags)
	cmd.Flags().IntVar(&cfg.Width, "width", 0, "maximum line width (0 = from config)")

	return cmd
}

func newConvertCommand() *cobra.Command {
	var cfg config.Config
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Promote comments to /// doc comments",
		Long: `Convert plain // comments that document declarations into /// doc
comments. Comments inside function bodies, trailing comments, and MARK
headers are left alone.

Examples:
  slashfmt convert                  # Check current directory
  slashfmt convert --fix            # Convert in place
  slashfmt convert --format diff --dry-run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, &cfg, flags, format.OpConvert)
		},
	}

	addFormatFlags(cmd, &cfg, flags)

	return cmd
}

func newMarksCommand() *cobra.Command {
	var cfg config.Config
	flags := &formatFlags{}

	cmd := &cobra.Command{
		Use:   "marks [paths...]",
		Short: "Title-case MARK section headers",
		Long: `Normalize // MARK: headers by title-casing their titles. Words that
already contain capitals (identifiers, acronyms) are preserved.

Examples:
  slashfmt marks                    # Check current directory
  slashfmt marks --fix              # Rewrite headers in place`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, args, &cfg, flags, format.OpMarks)
		},
	}

	addFormatFlags(cmd, &cfg, flags)

	return cmd
}

// runFormat is the shared driver for the wrap, convert, and marks commands.
func runFormat(cmd *cobra.Command, args []string, cfg *config.Config, flags *formatFlags, ops ...format.Op) error {
	logger := logging.Default()

	// Map string flags to typed config values. The format flag only overrides
	// the config file when explicitly set.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	cfg.Ignore = flags.ignore

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	// Get working directory for config discovery.
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	// Log warnings from config loading.
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	logger.Debug("configuration loaded",
		logging.FieldWidth, finalCfg.Width,
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Diff output needs the pipeline to produce diffs, which it only does in
	// dry-run mode.
	if finalCfg.Format == config.FormatDiff && !finalCfg.Fix {
		finalCfg.DryRun = true
	}

	// Create the formatter and safety pipeline.
	formatter := format.New(finalCfg, ops...)
	pipeline := format.NewPipeline(formatter)
	formatRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		ExcludeGlobs: finalCfg.Ignore,
		Jobs:         finalCfg.Jobs,
		Config:       finalCfg,
	}

	logger.Debug("starting format run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := formatRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("format run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	outputFormat, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      outputFormat,
		Color:       colorMode,
		ShowSummary: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, finalCfg.Fix) {
	case ExitRunErrors:
		return ErrRunFailed
	case ExitChangesNeeded:
		return ErrChangesNeeded
	default:
		return nil
	}
}
