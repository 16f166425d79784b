// Package cli provides the Cobra command structure for slashfmt.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/slashfmt/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root slashfmt command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "slashfmt",
		Short: "A semantic formatter for //-style source comments",
		Long: `slashfmt reflows and normalizes //-style source comments.

It understands the comment conventions of Swift and other slash-comment
languages: /// documentation comments, // MARK: section headers, doc tags
like "- Parameter x:" and "- Returns:", and Markdown-like inline syntax.
slashfmt can rewrap long comment blocks, promote comments to doc comments,
and title-case MARK headers, with safety through conflict detection,
dry-run mode, and optional backups.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newWrapCommand())
	rootCmd.AddCommand(newConvertCommand())
	rootCmd.AddCommand(newMarksCommand())
	rootCmd.AddCommand(newSpansCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
