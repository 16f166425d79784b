package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every setting with its documentation.
	// If false, generates a minimal template.
	Full bool

	// Format is the output format: "yaml" or "json".
	Format string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch strings.ToLower(opts.Format) {
	case "", "yaml", "yml":
		if opts.Full {
			return []byte(fullTemplate), nil
		}
		return []byte(minimalTemplate), nil
	case "json":
		data, err := json.MarshalIndent(NewConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal template: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported template format: %q", opts.Format)
	}
}

const minimalTemplate = `# slashfmt configuration
# Run 'slashfmt init --full' for an annotated template with all settings.

width: 100
`

const fullTemplate = `# slashfmt configuration

# Maximum total line width for reflowed comments.
# Values below 40 are clamped to 40.
width: 100

# Measure available width from the comment marker instead of the
# line start, ignoring indentation.
count_from_comment_start: false

# Never join prose across sentence-ending punctuation when reflowing.
avoid_punctuation_breaks: false

# Line ending used in rewritten comment blocks: auto, lf, or crlf.
# auto keeps each file's dominant line ending.
eol: auto

# Span production layers.
spans:
  # Bold span covering MARK header lines.
  mark_bold: true
  # Separator span for 'MARK: -' lines.
  mark_separator: true
  # Inline-code spans inside plain '//' comments.
  plain_comment_code: true

# File extensions discovery walks.
extensions:
  - .swift

# Glob patterns for files to skip.
ignore: []
  # - "Pods/**"
  # - "**/*.generated.swift"

# Backups when rewriting files in place.
backups:
  enabled: true
  # sidecar writes a .slashfmt.bak file next to the original;
  # none disables backups entirely.
  mode: sidecar
`
