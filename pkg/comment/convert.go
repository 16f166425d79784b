package comment

import "regexp"

// lineCommentOnlyPattern matches a whole-line "//" comment that is not
// already a doc comment.
var lineCommentOnlyPattern = regexp.MustCompile(`^([ \t]*)//($|[^/])`)

// ConvertToDocComments returns one insertion per whole-line "//" comment
// that is not already "///": a "/" inserted immediately after the two
// slashes. Applying the inserts turns line comments into doc comments.
func ConvertToDocComments(lines []string) []Insert {
	var inserts []Insert

	for i, line := range lines {
		m := lineCommentOnlyPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		inserts = append(inserts, Insert{
			Line: i,
			Col:  len([]rune(m[1])) + 2,
			Text: "/",
		})
	}

	return inserts
}
