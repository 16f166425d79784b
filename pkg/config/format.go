package config

// IsValid reports whether the output format is one the CLI accepts.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatDiff:
		return true
	default:
		return false
	}
}

// IsValid reports whether the EOL mode is recognized.
// The empty string is treated as auto.
func (m EOLMode) IsValid() bool {
	switch m {
	case EOLAuto, EOLLF, EOLCRLF, "":
		return true
	default:
		return false
	}
}
