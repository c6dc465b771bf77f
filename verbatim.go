package scanner

// scanVerbatimStart implements spec.md §4.12. The grammar matches the
// literal "{% verbatim" and the closing "%}" itself; this scanner is
// only responsible for the optional dynamic suffix between them
// ("{% verbatim somename %}"), which it records on the scanner so the
// matching content scanner (scanVerbatimContent) can require the same
// suffix on "{% endverbatim %}". An absent suffix is valid and clears
// any suffix left over from a previous, already-closed verbatim block.
func scanVerbatimStart(s *Scanner, c Cursor) (TokenKind, bool) {
	skipWhitespace(c)
	s.suffix.Clear()
	for !isVerbatimSuffixTerminator(c.Lookahead()) {
		if !s.suffix.Append(byte(c.Lookahead())) {
			s.suffix.Clear()
			return 0, false
		}
		c.Advance(false)
	}
	s.suffix.TrimTrailingHorizontalSpace()
	c.MarkEnd()
	return VerbatimStart, true
}

func isVerbatimSuffixTerminator(r rune) bool {
	return r == '%' || r == EOFRune || isWhitespaceRune(r)
}

// scanVerbatimContent implements spec.md §4.13: raw, markup-blind
// content that runs until "{% endverbatim %}" or, if the opening tag
// carried a suffix, "{% endverbatim <suffix> %}" with the identical
// suffix. A mismatched suffix (or no "{% endverbatim" at all) is
// ordinary verbatim content.
func scanVerbatimContent(s *Scanner, c Cursor) (TokenKind, bool) {
	consumed := false
	for {
		if c.EOF() {
			c.MarkEnd()
			if !consumed {
				return 0, false
			}
			return VerbatimBlockContent, true
		}
		if c.Lookahead() == '{' {
			if matchDjangoEndVerbatimTag(c, s.suffix.Bytes()) {
				// The closing tag itself is part of the token (spec.md
				// §4.13: "the entire block including the closing tag is
				// consumed"), so the end mark covers what
				// matchDjangoEndVerbatimTag just advanced past, rather
				// than rewinding to before it.
				c.MarkEnd()
				s.suffix.Clear()
				if !consumed {
					return 0, false
				}
				return VerbatimBlockContent, true
			}
			consumed = true
			continue
		}
		c.Advance(false)
		consumed = true
	}
}

func matchDjangoEndVerbatimTag(c Cursor, expectedSuffix []byte) bool {
	if c.Lookahead() != '{' {
		return false
	}
	c.Advance(true)
	if c.Lookahead() != '%' {
		return false
	}
	c.Advance(true)
	skipWhitespace(c)
	if !matchLiteral(c, "endverbatim") {
		return false
	}
	gotSpace := skipWhitespace(c) > 0
	var suffix []byte
	for !isVerbatimSuffixTerminator(c.Lookahead()) {
		suffix = append(suffix, byte(c.Lookahead()))
		c.Advance(true)
	}
	if len(suffix) > 0 && !gotSpace {
		return false
	}
	if string(suffix) != string(expectedSuffix) {
		return false
	}
	skipWhitespace(c)
	if c.Lookahead() != '%' {
		return false
	}
	c.Advance(true)
	if c.Lookahead() != '}' {
		return false
	}
	c.Advance(true)
	return true
}
