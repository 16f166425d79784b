// Package config defines core configuration types for slashfmt.
// These types are pure data structures with no dependency on config loaders.
package config

// OutputFormat specifies the output format for run results.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatDiff OutputFormat = "diff"
)

// EOLMode controls the line ending used in rewritten comment blocks.
type EOLMode string

const (
	// EOLAuto uses each file's dominant line ending.
	EOLAuto EOLMode = "auto"
	EOLLF   EOLMode = "lf"
	EOLCRLF EOLMode = "crlf"
)

// Marker returns the concrete line ending for the mode, or "" for auto.
func (m EOLMode) Marker() string {
	switch m {
	case EOLLF:
		return "\n"
	case EOLCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// SpansConfig toggles the span layers the classifier produces.
type SpansConfig struct {
	// MarkBold emits a bold span covering MARK header lines.
	MarkBold bool `yaml:"mark_bold"`

	// MarkSeparator emits a separator span for `MARK: -` lines.
	MarkSeparator bool `yaml:"mark_separator"`

	// PlainCommentCode emits inline-code spans inside plain `//` comments.
	PlainCommentCode bool `yaml:"plain_comment_code"`
}

// BackupsConfig controls backup behavior when rewriting files in place.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Config is the root configuration structure for slashfmt.
type Config struct {
	// Width is the maximum total line width for reflowed comments.
	// Values below 40 are clamped to 40 by the wrap engine.
	Width int `yaml:"width"`

	// CountFromCommentStart measures available width from the comment
	// marker instead of the line start.
	CountFromCommentStart bool `yaml:"count_from_comment_start"`

	// AvoidPunctuationBreaks keeps reflow from joining prose across
	// sentence-ending punctuation.
	AvoidPunctuationBreaks bool `yaml:"avoid_punctuation_breaks"`

	// EOL overrides the line ending used in rewritten blocks.
	EOL EOLMode `yaml:"eol"`

	// Spans toggles span production layers.
	Spans SpansConfig `yaml:"spans"`

	// Extensions lists the file extensions discovery walks.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// Fix writes changes to disk instead of reporting them.
	Fix bool `yaml:"-"`

	// DryRun shows what would change without writing.
	DryRun bool `yaml:"-"`

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation when fixing.
	NoBackups bool `yaml:"-"`
}

// DefaultWidth is the wrap width used when none is configured.
const DefaultWidth = 100

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width: DefaultWidth,
		EOL:   EOLAuto,
		Spans: SpansConfig{
			MarkBold:         true,
			MarkSeparator:    true,
			PlainCommentCode: true,
		},
		Extensions: []string{".swift"},
		Backups: BackupsConfig{
			Enabled: true,
			Mode:    "sidecar",
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}
