package comment

import (
	"regexp"
	"strings"
	"unicode"
)

// minorWords are the interior words left lowercase when title-casing a MARK
// header. First and last words capitalize regardless.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "so": {}, "yet": {},
	"as": {}, "at": {}, "by": {}, "from": {}, "in": {}, "into": {}, "of": {},
	"on": {}, "onto": {}, "over": {}, "per": {}, "to": {}, "up": {}, "via": {},
	"vs": {}, "vs.": {}, "with": {},
}

// markHeaderPattern splits a MARK line into everything through "MARK:",
// an optional separator portion, and the title.
var markHeaderPattern = regexp.MustCompile(`^(.*?//[ \t]*MARK:)([ \t]*-[ \t]*)?(.*)$`)

// wordPattern matches one whitespace-delimited token inside a title.
var wordPattern = regexp.MustCompile(`\S+`)

// TitleCaseMarks title-cases the header text of every "// MARK:" line and
// returns one whole-line replacement per changed line. Backtick-quoted
// segments, identifiers (tokens with digits or underscores), and tokens that
// already contain uppercase letters are preserved.
func TitleCaseMarks(lines []string) []Replace {
	var edits []Replace

	for i, line := range lines {
		cls := ClassifyLine(line)
		if cls.Kind != LineMark && cls.Kind != LineMarkSeparator {
			continue
		}

		m := markHeaderPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		recased := m[1] + m[2] + titleCase(m[3])
		if recased == line {
			continue
		}
		edits = append(edits, Replace{StartLine: i, EndLine: i, Text: recased})
	}

	return edits
}

// titleCase re-cases a MARK title word by word. Text inside backticks is
// preserved verbatim.
func titleCase(title string) string {
	segments := strings.Split(title, "`")

	// Count words across the non-backtick segments so first/last are known.
	total := 0
	for idx, seg := range segments {
		if idx%2 == 1 {
			continue
		}
		total += len(wordPattern.FindAllString(seg, -1))
	}
	if total == 0 {
		return title
	}

	word := 0
	for idx, seg := range segments {
		if idx%2 == 1 {
			continue // inside backticks
		}
		segments[idx] = wordPattern.ReplaceAllStringFunc(seg, func(token string) string {
			word++
			return caseWord(token, word == 1, word == total)
		})
	}

	return strings.Join(segments, "`")
}

// caseWord applies the per-word casing policy.
func caseWord(token string, first, last bool) string {
	// Identifiers pass through untouched.
	if strings.ContainsAny(token, "0123456789_") {
		return token
	}

	// "@unchecked" (any casing) normalizes to lowercase.
	if strings.EqualFold(token, "@unchecked") {
		return "@unchecked"
	}

	// Tokens that already carry uppercase are deliberate; leave them.
	if strings.ContainsFunc(token, unicode.IsUpper) {
		return token
	}

	// Interior minor words stay lowercase.
	if !first && !last {
		if _, minor := minorWords[token]; minor {
			return token
		}
	}

	// Hyphenated lowercase tokens capitalize only the first segment.
	if idx := strings.IndexByte(token, '-'); idx > 0 {
		return capitalize(token[:idx]) + token[idx:]
	}

	return capitalize(token)
}

// capitalize upper-cases the first letter of token.
func capitalize(token string) string {
	runes := []rune(token)
	for i, c := range runes {
		if unicode.IsLetter(c) {
			runes[i] = unicode.ToUpper(c)
			return string(runes[:i+1]) + string(runes[i+1:])
		}
		// Leading punctuation (e.g. "(foo") skips to the first letter.
	}
	return token
}
