package comment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinWrapWidth is the floor applied to requested wrap widths. Malformed or
// missing widths clamp here instead of failing.
const MinWrapWidth = 40

// WrapOptions controls reflow behavior.
type WrapOptions struct {
	// Width is the maximum total line width. Values below MinWrapWidth
	// (including zero and negatives) are clamped to MinWrapWidth.
	Width int

	// EOL is the end-of-line marker used to join replacement lines.
	// Empty means "\n".
	EOL string

	// CountFromCommentStart computes the available width from the comment
	// marker instead of the line start, ignoring indentation.
	CountFromCommentStart bool

	// AvoidPunctuationBreaks forces a paragraph break after a fragment
	// ending in sentence punctuation, so reflow never joins across
	// sentence ends.
	AvoidPunctuationBreaks bool
}

func (o WrapOptions) effectiveWidth() int {
	if o.Width < MinWrapWidth {
		return MinWrapWidth
	}
	return o.Width
}

func (o WrapOptions) eol() string {
	if o.EOL == "" {
		return "\n"
	}
	return o.EOL
}

// WrapBlocks re-wraps the prose of every comment block in lines to the
// requested width, leaving lists, fenced code, directives, tables, headings,
// and doc-tag alignment intact. A block produces a replacement edit only if
// its wrapped output differs from its original lines.
func WrapBlocks(lines []string, opts WrapOptions) []Replace {
	var edits []Replace

	for _, block := range ReflowBlocks(lines) {
		wrapped := wrapBlock(block, opts)
		if equalLines(wrapped, block.Lines) {
			continue
		}
		edits = append(edits, Replace{
			StartLine: block.StartLine,
			EndLine:   block.EndLine(),
			Text:      strings.Join(wrapped, opts.eol()),
		})
	}

	return edits
}

// directivePrefixes are tool-directive comment prefixes that must survive
// reflow verbatim.
var directivePrefixes = []string{
	"swiftlint:",
	"swiftformat:",
	"sourcery:",
	"swift-format-ignore",
}

// artRunPattern matches a run of four or more '-' or '=' characters, the
// telltale of an ASCII-art rule or table border.
var artRunPattern = regexp.MustCompile(`-{4,}|={4,}`)

// bulletItemPattern and numberedItemPattern match Markdown list markers at
// the start of trimmed comment text.
var (
	bulletItemPattern   = regexp.MustCompile(`^[-*+] `)
	numberedItemPattern = regexp.MustCompile(`^[0-9]+[.)] `)
)

// sentenceEndPattern matches a fragment ending in sentence punctuation,
// optionally followed by closing punctuation or quotes.
var sentenceEndPattern = regexp.MustCompile(`[.!?]["')\]]*$`)

func isDirective(trimmed string) bool {
	for _, p := range directivePrefixes {
		if strings.HasPrefix(trimmed, p) {
			return true
		}
	}
	return false
}

func isTableOrArt(trimmed string) bool {
	return strings.Count(trimmed, "|") >= 2 || artRunPattern.MatchString(trimmed)
}

func isListItem(trimmed string) bool {
	return bulletItemPattern.MatchString(trimmed) || numberedItemPattern.MatchString(trimmed)
}

// blockWrapper holds the single-pass reflow state for one block.
type blockWrapper struct {
	block Block
	opts  WrapOptions

	out     []string
	para    []string // accumulated paragraph fragments
	inFence bool
	inList  bool
}

// wrapBlock reflows one block and returns its replacement lines.
func wrapBlock(block Block, opts WrapOptions) []string {
	w := &blockWrapper{block: block, opts: opts}

	i := 0
	for i < len(block.Lines) {
		i = w.processLine(i)
	}
	w.flushPara()

	return w.out
}

// rest returns the text of line i after the block's indent and marker.
func (w *blockWrapper) rest(i int) string {
	line := w.block.Lines[i]
	return line[len(w.block.Indent)+len(w.block.Marker):]
}

// processLine handles one line and returns the index of the next line to
// process (doc tags consume their continuation lines).
func (w *blockWrapper) processLine(i int) int {
	line := w.block.Lines[i]
	rest := w.rest(i)
	trimmed := strings.TrimSpace(rest)

	// Fence toggles; fenced content is verbatim.
	if strings.HasPrefix(trimmed, "```") {
		w.flushPara()
		w.inFence = !w.inFence
		w.inList = false
		w.out = append(w.out, line)
		return i + 1
	}
	if w.inFence {
		w.out = append(w.out, line)
		return i + 1
	}

	// Blank comment line: paragraph boundary, emitted as a bare prefix.
	if trimmed == "" {
		w.flushPara()
		w.inList = false
		w.out = append(w.out, w.block.Indent+w.block.Marker)
		return i + 1
	}

	// Directives and table/ASCII-art lines pass through untouched.
	if isDirective(trimmed) || isTableOrArt(trimmed) {
		w.flushPara()
		w.out = append(w.out, line)
		return i + 1
	}

	// Doc-tag lines (doc blocks only) absorb their continuations and
	// re-wrap with bullet alignment.
	if w.block.Doc() {
		if tag, ok := ParseDocTag(rest); ok {
			return w.wrapTag(tag, i)
		}
	}

	// A colon heading that is not a list item is a hard boundary.
	if _, ok := FindDocColonHeading(rest); ok && !isListItem(trimmed) {
		w.flushPara()
		w.inList = false
		w.out = append(w.out, line)
		return i + 1
	}

	// A caps label starts a fresh paragraph; the line itself still goes
	// through the list/paragraph logic below.
	if _, ok := FindLeadingCapsLabel(rest); ok {
		w.flushPara()
	}

	if isListItem(trimmed) {
		w.flushPara()
		w.inList = true
		w.out = append(w.out, line)
		return i + 1
	}
	if w.inList {
		w.out = append(w.out, line)
		return i + 1
	}

	// Plain prose: accumulate into the paragraph buffer.
	frag := strings.TrimPrefix(rest, " ")
	if w.opts.AvoidPunctuationBreaks && len(w.para) > 0 &&
		sentenceEndPattern.MatchString(w.para[len(w.para)-1]) {
		w.flushPara()
	}
	w.para = append(w.para, frag)
	return i + 1
}

// wrapTag re-wraps a doc-tag line together with its aligned continuation
// lines. The first output line keeps the keyword prefix; continuations are
// indented by spaces matching the list prefix, aligning under the bullet.
func (w *blockWrapper) wrapTag(tag TagMatch, i int) int {
	w.flushPara()

	keywordPrefix := tag.KeywordPrefix
	listPrefix := tag.ListPrefix
	if tag.KnownKeyword {
		// Known keywords normalize to one space between marker and bullet.
		keywordPrefix = tag.NormalizedKeywordPrefix()
		listPrefix = tag.NormalizedListPrefix()
	}

	fragments := []string{strings.TrimSpace(tag.Description)}
	next := i + 1
	for next < len(w.block.Lines) {
		rest := w.rest(next)
		if !w.isTagContinuation(rest, tag) {
			break
		}
		fragments = append(fragments, strings.TrimSpace(rest))
		next++
	}

	text := joinFragments(fragments)
	avail := w.contentWidth(utf8.RuneCountInString(keywordPrefix))

	prefix := w.block.Indent + w.block.Marker
	if text == "" {
		w.out = append(w.out, prefix+strings.TrimRight(keywordPrefix, " \t"))
		return next
	}

	wrapped := wrapWords(text, avail)
	contIndent := strings.Repeat(" ", utf8.RuneCountInString(listPrefix))
	for n, part := range wrapped {
		if n == 0 {
			w.out = append(w.out, prefix+keywordPrefix+part)
		} else {
			w.out = append(w.out, prefix+contIndent+part)
		}
	}

	return next
}

// isTagContinuation reports whether a line's text is an aligned continuation
// of the given tag: a leading whitespace run whose width matches the tag's
// keyword prefix or list prefix (original or whitespace-normalized form,
// longest form first), and not itself a block construct.
func (w *blockWrapper) isTagContinuation(rest string, tag TagMatch) bool {
	trimmed := strings.TrimSpace(rest)
	if trimmed == "" ||
		strings.HasPrefix(trimmed, "```") ||
		isDirective(trimmed) ||
		isTableOrArt(trimmed) ||
		isListItem(trimmed) {
		return false
	}

	ws := 0
	for _, c := range rest {
		if c != ' ' && c != '\t' {
			break
		}
		ws++
	}
	if ws == 0 {
		return false
	}

	for _, p := range []string{
		tag.KeywordPrefix,
		tag.NormalizedKeywordPrefix(),
		tag.ListPrefix,
		tag.NormalizedListPrefix(),
	} {
		if ws == utf8.RuneCountInString(p) {
			return true
		}
	}
	return false
}

// contentWidth returns the usable text width after the given prefix width
// (measured from the comment marker), honoring CountFromCommentStart.
func (w *blockWrapper) contentWidth(prefixWidth int) int {
	width := w.opts.effectiveWidth() - len(w.block.Marker) - prefixWidth
	if !w.opts.CountFromCommentStart {
		width -= utf8.RuneCountInString(w.block.Indent)
	}
	if width < 1 {
		width = 1
	}
	return width
}

// flushPara word-wraps the buffered paragraph and emits it.
func (w *blockWrapper) flushPara() {
	if len(w.para) == 0 {
		return
	}
	text := joinFragments(w.para)
	w.para = w.para[:0]
	if text == "" {
		return
	}

	prefix := w.block.Indent + w.block.Marker + " "
	for _, part := range wrapWords(text, w.contentWidth(1)) {
		w.out = append(w.out, prefix+part)
	}
}

// joinFragments trims each fragment and joins the non-empty ones with
// single spaces.
func joinFragments(fragments []string) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// wrapWords greedily wraps text into lines of at most width characters.
// Tokens are never split: a token longer than width gets its own line.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	currentWidth := utf8.RuneCountInString(words[0])

	for _, word := range words[1:] {
		wordWidth := utf8.RuneCountInString(word)
		if currentWidth+1+wordWidth <= width {
			current += " " + word
			currentWidth += 1 + wordWidth
		} else {
			lines = append(lines, current)
			current = word
			currentWidth = wordWidth
		}
	}
	lines = append(lines, current)

	return lines
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
