package scanner

// scanFilterColon implements spec.md §4.15: Django's filter-argument
// colon ("{{ value|date:\"Y-m-d\" }}") must immediately follow the
// filter name with no intervening whitespace, which a context-free
// grammar rule alone cannot enforce against a colon appearing for any
// other reason at the same grammar position. Accepting the colon also
// requires that it actually introduces an argument: the byte right
// after it must start a string, a number, or an identifier, otherwise
// the colon is left for the grammar's own punctuation rule.
func scanFilterColon(c Cursor) (TokenKind, bool) {
	if c.Lookahead() != ':' {
		return 0, false
	}
	c.Advance(false)
	c.MarkEnd()
	if !isFilterArgumentStart(c.Lookahead()) {
		return 0, false
	}
	return FilterColon, true
}

// isFilterArgumentStart reports whether r can legally open a filter
// argument: a quoted string, a signed/decimal number, or an
// identifier.
func isFilterArgumentStart(r rune) bool {
	switch {
	case r == '"' || r == '\'':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '+' || r == '-' || r == '.':
		return true
	case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		return true
	case r == '_':
		return true
	}
	return false
}
