package scanner

// scanDjangoCommentContent implements spec.md §4.11: the body of a
// {% comment %}...{% endcomment %} block. Content runs until the
// first "{%", optional whitespace, the literal "endcomment", optional
// whitespace, "%}" — or end of input. A failed probe of "{%...%}" is
// not rewound past; it simply becomes ordinary comment content, the
// same convention scanRawText uses for a failed closing-tag probe.
func scanDjangoCommentContent(c Cursor) (TokenKind, bool) {
	consumed := false
	for {
		if c.EOF() {
			c.MarkEnd()
			if !consumed {
				return 0, false
			}
			return DjangoCommentContent, true
		}
		if c.Lookahead() == '{' {
			c.MarkEnd()
			if matchDjangoEndCommentTag(c) {
				c.ResetToMark()
				if !consumed {
					return 0, false
				}
				return DjangoCommentContent, true
			}
			consumed = true
			continue
		}
		c.Advance(false)
		consumed = true
	}
}

func matchDjangoEndCommentTag(c Cursor) bool {
	if c.Lookahead() != '{' {
		return false
	}
	c.Advance(true)
	if c.Lookahead() != '%' {
		return false
	}
	c.Advance(true)
	skipWhitespace(c)
	if !matchLiteral(c, "endcomment") {
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
