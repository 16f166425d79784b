package comment

// Insert is an edit that inserts Text at a line/column position.
// Line is 0-based; Col is a 0-based character offset.
type Insert struct {
	Line int
	Col  int
	Text string
}

// Replace is an edit that replaces the lines [StartLine, EndLine] (inclusive)
// with Text. Text contains the replacement lines joined by the end-of-line
// marker the edit was computed with, without a trailing newline.
type Replace struct {
	StartLine int
	EndLine   int
	Text      string
}
