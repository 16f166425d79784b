package comment

// CommentStart returns the column of the first "//" in line that is not
// inside a string literal, and true if one was found.
//
// The scan understands three string forms: normal ("..."), raw with hash
// delimiters (#"..."#, ##"..."## and so on), and triple-quoted ("""..."""),
// including raw triple-quoted combinations. It is a best-effort single-line
// scanner, not a full lexer: interpolation and strings spanning multiple
// lines are not modeled.
func CommentStart(line string) (int, bool) {
	runes := []rune(line)

	inString := false
	rawHashes := 0
	tripleQuoted := false

	i := 0
	for i < len(runes) {
		if !inString {
			// A run of '#' followed by '"' opens a raw string.
			if runes[i] == '#' {
				hashes := 0
				for i+hashes < len(runes) && runes[i+hashes] == '#' {
					hashes++
				}
				if i+hashes < len(runes) && runes[i+hashes] == '"' {
					inString = true
					rawHashes = hashes
					tripleQuoted = hasTripleQuote(runes, i+hashes)
					if tripleQuoted {
						i += hashes + 3
					} else {
						i += hashes + 1
					}
					continue
				}
				i += hashes
				continue
			}

			if runes[i] == '"' {
				inString = true
				rawHashes = 0
				tripleQuoted = hasTripleQuote(runes, i)
				if tripleQuoted {
					i += 3
				} else {
					i++
				}
				continue
			}

			if runes[i] == '/' && i+1 < len(runes) && runes[i+1] == '/' {
				return i, true
			}

			i++
			continue
		}

		// Inside a string.
		switch {
		case tripleQuoted:
			if hasTripleQuote(runes, i) && countHashes(runes, i+3) >= rawHashes {
				inString = false
				i += 3 + rawHashes
				continue
			}
			i++

		case rawHashes > 0:
			// Raw strings do not process backslash escapes.
			if runes[i] == '"' && countHashes(runes, i+1) >= rawHashes {
				inString = false
				i += 1 + rawHashes
				continue
			}
			i++

		default:
			if runes[i] == '\\' {
				i += 2
				continue
			}
			if runes[i] == '"' {
				inString = false
			}
			i++
		}
	}

	return 0, false
}

// hasTripleQuote reports whether runes[i:] starts with three double quotes.
func hasTripleQuote(runes []rune, i int) bool {
	return i+2 < len(runes) && runes[i] == '"' && runes[i+1] == '"' && runes[i+2] == '"'
}

// countHashes returns the number of consecutive '#' runes starting at i.
func countHashes(runes []rune, i int) int {
	n := 0
	for i+n < len(runes) && runes[i+n] == '#' {
		n++
	}
	return n
}
