// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Status styles
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// File components
	FilePath lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style

	// Span highlighting styles, one per semantic layer
	SpanMarker    lipgloss.Style
	SpanIndent    lipgloss.Style
	SpanMark      lipgloss.Style
	SpanSeparator lipgloss.Style
	SpanKeyword   lipgloss.Style
	SpanCapsLabel lipgloss.Style
	SpanCode      lipgloss.Style
	SpanDelimiter lipgloss.Style
	SpanBold      lipgloss.Style
	SpanItalic    lipgloss.Style
	SpanText      lipgloss.Style

	// Diff styles
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		// Status colors
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),

		// File components
		FilePath: lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  lipgloss.NewStyle(),

		// Span highlighting
		SpanMarker:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SpanIndent:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SpanMark:      lipgloss.NewStyle().Bold(true),
		SpanSeparator: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		SpanKeyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		SpanCapsLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		SpanCode:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		SpanDelimiter: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SpanBold:      lipgloss.NewStyle().Bold(true),
		SpanItalic:    lipgloss.NewStyle().Italic(true),
		SpanText:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		// Diff styles
		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		DiffAdd:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		DiffRemove:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		DiffContext: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:         plain,
		Warning:       plain,
		Info:          plain,
		FilePath:      plain,
		Location:      plain,
		Message:       plain,
		SpanMarker:    plain,
		SpanIndent:    plain,
		SpanMark:      plain,
		SpanSeparator: plain,
		SpanKeyword:   plain,
		SpanCapsLabel: plain,
		SpanCode:      plain,
		SpanDelimiter: plain,
		SpanBold:      plain,
		SpanItalic:    plain,
		SpanText:      plain,
		DiffHeader:    plain,
		DiffHunk:      plain,
		DiffAdd:       plain,
		DiffRemove:    plain,
		DiffContext:   plain,
		SummaryTitle:  plain,
		SummaryValue:  plain,
		Success:       plain,
		Failure:       plain,
		Dim:           plain,
		Bold:          plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
