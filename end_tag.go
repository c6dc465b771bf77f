package scanner

import "strings"

// scanEndTagName implements spec.md §4.5. The caller has already
// consumed "</"; this reads the tag name and matches it against the
// element stack. A match at the top pops it and emits END_TAG_NAME; a
// match deeper in the stack emits END_TAG_NAME without popping (the
// implicit-end-tag scanner is responsible for unwinding down to it); no
// match at all emits ERRONEOUS_END_TAG_NAME and leaves the stack
// untouched.
func scanEndTagName(s *Scanner, c Cursor) (TokenKind, bool) {
	raw := readTagName(c)
	if raw == "" {
		return 0, false
	}
	c.MarkEnd()

	candidate := candidateForEndTagName(s, raw)
	top, hasTop := s.stack.Top()

	if hasTop && candidate.Equal(top) {
		s.stack.Pop()
		return EndTagName, true
	}
	if _, found := s.stack.FindTopDown(candidate); found {
		return EndTagName, true
	}
	return ErroneousEndTagName, true
}

// candidateForEndTagName builds the Tag an end tag's scanned name
// should be compared against, applying the same foreign-content case
// rule used by both the end-tag scanner and the implicit-end-tag
// scanner's end-tag lookahead: case-sensitive and unfolded only when
// the stack's top is itself a foreign KindCustom element, uppercase
// ASCII-folded otherwise.
func candidateForEndTagName(s *Scanner, raw string) Tag {
	top, hasTop := s.stack.Top()
	if hasTop && s.stack.InForeignContent() && top.Kind == KindCustom {
		return Tag{Kind: KindCustom, Name: raw}
	}
	return tagForName(strings.ToUpper(raw))
}
