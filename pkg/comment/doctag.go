package comment

import (
	"regexp"
	"strings"
)

// knownTagWords is the fixed vocabulary of documentation callout keywords.
// A "- Word:" line whose lowercased word is not in this set is treated as an
// implicit parameter name instead.
var knownTagWords = map[string]struct{}{
	"attention":     {},
	"author":        {},
	"authors":       {},
	"bug":           {},
	"complexity":    {},
	"copyright":     {},
	"date":          {},
	"experiment":    {},
	"important":     {},
	"invariant":     {},
	"note":          {},
	"parameter":     {},
	"parameters":    {},
	"postcondition": {},
	"precondition":  {},
	"remark":        {},
	"remarks":       {},
	"requires":      {},
	"returns":       {},
	"seealso":       {},
	"since":         {},
	"tag":           {},
	"throws":        {},
	"todo":          {},
	"version":       {},
	"warning":       {},
}

// IsKnownTagWord reports whether word (any casing) is a documented callout
// keyword.
func IsKnownTagWord(word string) bool {
	_, ok := knownTagWords[strings.ToLower(word)]
	return ok
}

// TagMatch is the parsed form of a documentation callout line such as
// "- Returns: the count" or "- Parameter limit: upper bound". It is shared
// by span generation and reflow alignment.
type TagMatch struct {
	// KeywordPrefix is the structural prefix including the keyword, from the
	// start of the scanned text through the colon and any following spaces,
	// e.g. " - Parameter limit: ".
	KeywordPrefix string

	// ListPrefix is the bullet portion of the prefix, e.g. " - ".
	// Continuation lines align under this, not under the keyword.
	ListPrefix string

	// Description is the text after the colon.
	Description string

	// Keyword is the lowercased tag word ("returns", "parameter", ...).
	Keyword string

	// KnownKeyword reports whether Keyword is in the fixed vocabulary.
	// When false the word is an implicit parameter name.
	KnownKeyword bool
}

// parameterTagPattern matches "- Parameter <name>: <description>".
// Group layout: 1 bullet, 2 keyword, 3 space+name, 4 colon+spaces, 5 rest.
var parameterTagPattern = regexp.MustCompile(`^([ \t]*-[ \t]+)([Pp][Aa][Rr][Aa][Mm][Ee][Tt][Ee][Rr])([ \t]+[^\s:]+)(:[ \t]*)(.*)$`)

// wordTagPattern matches "- <word>: <description>".
// Group layout: 1 bullet, 2 word, 3 colon+spaces, 4 rest.
var wordTagPattern = regexp.MustCompile(`^([ \t]*-[ \t]+)([A-Za-z0-9_]+)(:[ \t]*)(.*)$`)

// ParseDocTag recognizes the two lexical forms of documentation callouts in
// the text immediately following a doc-comment prefix. Returns false if the
// text is not a doc-tag line.
func ParseDocTag(text string) (TagMatch, bool) {
	if m := parameterTagPattern.FindStringSubmatch(text); m != nil {
		return TagMatch{
			KeywordPrefix: m[1] + m[2] + m[3] + m[4],
			ListPrefix:    m[1],
			Description:   m[5],
			Keyword:       strings.ToLower(m[2]),
			KnownKeyword:  true,
		}, true
	}

	if m := wordTagPattern.FindStringSubmatch(text); m != nil {
		return TagMatch{
			KeywordPrefix: m[1] + m[2] + m[3],
			ListPrefix:    m[1],
			Description:   m[4],
			Keyword:       strings.ToLower(m[2]),
			KnownKeyword:  IsKnownTagWord(m[2]),
		}, true
	}

	return TagMatch{}, false
}

// NormalizedKeywordPrefix returns KeywordPrefix with its leading whitespace
// collapsed to a single space. Reflow uses this to normalize recognized
// keywords to exactly one space after the comment prefix.
func (t TagMatch) NormalizedKeywordPrefix() string {
	return " " + strings.TrimLeft(t.KeywordPrefix, " \t")
}

// NormalizedListPrefix returns ListPrefix with its leading whitespace
// collapsed to a single space.
func (t TagMatch) NormalizedListPrefix() string {
	return " " + strings.TrimLeft(t.ListPrefix, " \t")
}
