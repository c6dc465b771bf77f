package scanner

// isTagNameByte reports whether r is part of the [A-Za-z0-9:_-]+ tag
// name alphabet shared by start and end tags (spec.md §4.4/§4.5).
func isTagNameByte(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ':' || r == '_' || r == '-':
		return true
	}
	return false
}

// readTagName consumes the longest run of tag-name bytes under the
// cursor and returns it. An empty result means the cursor was not
// positioned at a valid tag name at all; the caller should fail the
// scan rather than emit a zero-length name.
func readTagName(c Cursor) string {
	var buf []rune
	for isTagNameByte(c.Lookahead()) {
		buf = append(buf, c.Lookahead())
		c.Advance(false)
	}
	return string(buf)
}

func isHorizontalSpace(r rune) bool {
	return r == ' ' || r == '\t'
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentByte(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// isTagNameTerminator reports whether r can legally follow a tag name
// inside a closing "</name" sequence (spec.md §4.8/§4.9): whitespace,
// the self-closing slash, the tag's closing '>', or end of input.
func isTagNameTerminator(r rune) bool {
	return r == '>' || r == '/' || r == EOFRune || isHorizontalSpace(r) || r == '\n' || r == '\r'
}

func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// skipWhitespace advances past a run of whitespace and returns how
// many runes it consumed.
func skipWhitespace(c Cursor) int {
	n := 0
	for isWhitespaceRune(c.Lookahead()) {
		c.Advance(true)
		n++
	}
	return n
}

// matchLiteral consumes len(lit) runes from c and reports whether they
// match lit exactly (case-sensitive, ASCII). On mismatch the runes
// already consumed are left consumed, matching the convention used
// throughout the Django tag-probing scanners: a failed speculative
// match simply becomes ordinary content on the next loop iteration.
func matchLiteral(c Cursor, lit string) bool {
	for _, want := range lit {
		if c.Lookahead() != want {
			return false
		}
		c.Advance(true)
	}
	return true
}
