package comment

import (
	"regexp"
	"strings"
	"unicode"
)

// LabelMatch locates a colon-terminated label inside a line's text.
// Offsets are 0-based character indices into the scanned text.
type LabelMatch struct {
	// Start is the index of the label's first character.
	Start int

	// End is the index just past the label's last character (colon excluded).
	End int

	// Colon is the index of the terminating colon.
	Colon int
}

// capsLabelPattern matches space/tab separated all-caps words (A-Z, digits,
// underscores). At least one uppercase letter is required separately.
var capsLabelPattern = regexp.MustCompile(`^[A-Z0-9_]+([ \t][A-Z0-9_]+)*$`)

// headingPattern matches space-separated alphanumeric words for a
// colon-terminated section heading.
var headingPattern = regexp.MustCompile(`^[A-Za-z0-9_]+( [A-Za-z0-9_]+)*$`)

// FindLeadingCapsLabel finds an all-caps callout label such as "NOTE:" at the
// start of text (after leading whitespace). The candidate is everything up to
// the first colon, trimmed of trailing whitespace; it must consist solely of
// all-caps words and contain at least one A-Z letter.
func FindLeadingCapsLabel(text string) (LabelMatch, bool) {
	runes := []rune(text)

	start := 0
	for start < len(runes) && unicode.IsSpace(runes[start]) {
		start++
	}

	colon := -1
	for i := start; i < len(runes); i++ {
		if runes[i] == ':' {
			colon = i
			break
		}
	}
	if colon < 0 {
		return LabelMatch{}, false
	}

	end := colon
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if end <= start {
		return LabelMatch{}, false
	}

	candidate := string(runes[start:end])
	if !strings.ContainsFunc(candidate, unicode.IsUpper) {
		return LabelMatch{}, false
	}
	if !capsLabelPattern.MatchString(candidate) {
		return LabelMatch{}, false
	}

	return LabelMatch{Start: start, End: end, Colon: colon}, true
}

// FindDocColonHeading finds a colon-terminated section heading occupying the
// whole of text, e.g. "Usage:" or "Known limitations:". The last
// non-whitespace character must be the colon and the heading itself must be
// plain alphanumeric words.
func FindDocColonHeading(text string) (LabelMatch, bool) {
	runes := []rune(text)

	start := 0
	for start < len(runes) && unicode.IsSpace(runes[start]) {
		start++
	}

	last := len(runes)
	for last > start && unicode.IsSpace(runes[last-1]) {
		last--
	}
	if last <= start || runes[last-1] != ':' {
		return LabelMatch{}, false
	}

	colon := last - 1
	end := colon
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if end <= start {
		return LabelMatch{}, false
	}

	if !headingPattern.MatchString(string(runes[start:end])) {
		return LabelMatch{}, false
	}

	return LabelMatch{Start: start, End: end, Colon: colon}, true
}
