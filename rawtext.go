package scanner

// scanRawText implements spec.md §4.8: the literal, markup-blind body
// of a <script> or <style> element. Content runs until the first "</"
// followed by the currently open tag's name (case-insensitive) and a
// legal name terminator, the first Django delimiter ("{{", "{%", or
// "{#"), or end of input.
func scanRawText(s *Scanner, c Cursor) (TokenKind, bool) {
	top, ok := s.stack.Top()
	if !ok || (top.Kind != KindScript && top.Kind != KindStyle) {
		return 0, false
	}
	return scanTextUntilMatchingEndTag(s, c, RawText)
}

// scanRCDataText implements spec.md §4.9: the body of a <title> or
// <textarea> element. It is tokenized identically to raw text — this
// scanner does not decode character references, that is a concern of
// whatever consumes the token's text, not of finding its boundary.
func scanRCDataText(s *Scanner, c Cursor) (TokenKind, bool) {
	top, ok := s.stack.Top()
	if !ok || (top.Kind != KindTitle && top.Kind != KindTextarea) {
		return 0, false
	}
	return scanTextUntilMatchingEndTag(s, c, RCDataText)
}

func scanTextUntilMatchingEndTag(s *Scanner, c Cursor, kind TokenKind) (TokenKind, bool) {
	top, ok := s.stack.Top()
	if !ok {
		return 0, false
	}
	name, ok := kindTagName[top.Kind]
	if !ok {
		return 0, false
	}

	consumed := false
	for {
		if c.EOF() {
			c.MarkEnd()
			if !consumed {
				return 0, false
			}
			return kind, true
		}
		if c.Lookahead() == '<' {
			c.MarkEnd()
			c.Advance(true)
			if c.Lookahead() == '/' {
				c.Advance(true)
				if matchCaseInsensitiveName(c, name) && isTagNameTerminator(c.Lookahead()) {
					c.ResetToMark()
					if !consumed {
						return 0, false
					}
					return kind, true
				}
			}
			consumed = true
			continue
		}
		// A Django delimiter embedded in a raw-text/RCDATA body hands
		// control back to the grammar (spec.md §4.8/§4.9): stop here,
		// without consuming the "{", so "{{", "{%", and "{#" can all be
		// recognized by their own rules. A "{" followed by anything
		// else is ordinary content.
		if c.Lookahead() == '{' {
			c.MarkEnd()
			c.Advance(false)
			if next := c.Lookahead(); next == '{' || next == '%' || next == '#' {
				c.ResetToMark()
				if !consumed {
					return 0, false
				}
				return kind, true
			}
			consumed = true
			continue
		}
		c.Advance(false)
		consumed = true
	}
}

// matchCaseInsensitiveName consumes len(name) runes from c and reports
// whether they match name (which must already be lowercase)
// case-insensitively. On mismatch the runes it did consume before the
// mismatch are left consumed — the caller never rewinds past them,
// they simply become part of the raw text already marked as content.
func matchCaseInsensitiveName(c Cursor, name string) bool {
	for _, want := range name {
		if toLowerRune(c.Lookahead()) != want {
			return false
		}
		c.Advance(true)
	}
	return true
}

// scanPlaintextText implements spec.md §4.10: once a <plaintext>
// element is open, every remaining byte of input is literal text with
// no further tag recognition, ever (HTML5's plaintext state has no
// exit). The token runs to end of input in a single call, and the
// plaintext element is popped once its text is consumed.
func scanPlaintextText(s *Scanner, c Cursor) (TokenKind, bool) {
	top, ok := s.stack.Top()
	if !ok || top.Kind != KindPlaintext {
		return 0, false
	}
	if c.EOF() {
		return 0, false
	}
	for !c.EOF() {
		c.Advance(false)
	}
	c.MarkEnd()
	s.stack.Pop()
	return PlaintextText, true
}
