package scanner

import "strings"

// scanImplicitEndTag implements spec.md §4.6: a zero-width token that
// pops one element off the stack, without consuming any input, when
// the grammar needs to synthesize a closing tag HTML never wrote out.
// It fires in exactly three situations:
//
//   - end of input, with elements still open: unwind them one at a
//     time so every call site sees a balanced tree;
//   - an upcoming end tag names an element further down the stack than
//     the top: pop the top first so the real end-tag scanner can match
//     it on a later call;
//   - an upcoming start tag is one the current top cannot contain
//     (spec.md §4.1's can_contain, e.g. <p> followed by <div>): pop the
//     top to close it implicitly.
//
// Foreign content (SVG/MathML) is exempt from the end-of-input and
// can't-contain cases: neither fires while the stack is in foreign
// content. An upcoming end tag whose name matches a deeper entry still
// pops the top, foreign or not.
func scanImplicitEndTag(s *Scanner, c Cursor) (TokenKind, bool) {
	if s.stack.Size() == 0 {
		return 0, false
	}
	top, _ := s.stack.Top()
	c.MarkEnd()

	if c.EOF() {
		if s.stack.InForeignContent() {
			return 0, false
		}
		s.stack.Pop()
		return ImplicitEndTag, true
	}

	if c.Lookahead() != '<' {
		return 0, false
	}
	c.Advance(true)

	if c.Lookahead() == '/' {
		c.Advance(true)
		name := readTagName(c)
		c.ResetToMark()
		if name == "" {
			return 0, false
		}
		candidate := candidateForEndTagName(s, name)
		if candidate.Equal(top) {
			// The real end-tag scanner handles a direct match; no
			// implicit unwind needed.
			return 0, false
		}
		if _, found := s.stack.FindTopDown(candidate); found {
			s.stack.Pop()
			return ImplicitEndTag, true
		}
		return 0, false
	}

	name := readTagName(c)
	c.ResetToMark()
	if name == "" {
		return 0, false
	}
	if s.stack.InForeignContent() {
		return 0, false
	}
	child := tagForName(strings.ToUpper(name))
	if !canContain(top, child) {
		s.stack.Pop()
		return ImplicitEndTag, true
	}
	return 0, false
}
