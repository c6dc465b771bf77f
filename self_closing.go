package scanner

// scanSelfClosingTagDelimiter implements spec.md §4.7: the "/>" that
// closes a start tag XML-style. If the element just opened is a
// foreign-content element (SVG/MathML) or an unrecognized custom tag,
// self-closing syntax is honored and the element is popped immediately
// since it has no content and no separate end tag; for ordinary HTML
// elements the slash is accepted but ignored, matching HTML5's parse
// rule that a stray self-closing slash on a non-void, non-foreign
// element is non-fatal.
func scanSelfClosingTagDelimiter(s *Scanner, c Cursor) (TokenKind, bool) {
	c.MarkEnd()
	if c.Lookahead() != '/' {
		return 0, false
	}
	c.Advance(false)
	if c.Lookahead() != '>' {
		c.ResetToMark()
		return 0, false
	}
	c.Advance(false)
	c.MarkEnd()

	if top, ok := s.stack.Top(); ok && (s.stack.InForeignContent() || top.Kind == KindCustom) {
		s.stack.Pop()
	}
	return SelfClosingTagDelimiter, true
}
