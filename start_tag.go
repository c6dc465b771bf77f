package scanner

import "strings"

// scanStartTagName implements spec.md §4.4. The caller has already
// consumed the opening "<"; this reads the tag name, classifies it,
// and pushes onto the element stack as needed.
func scanStartTagName(s *Scanner, c Cursor) (TokenKind, bool) {
	raw := readTagName(c)
	if raw == "" {
		return 0, false
	}
	c.MarkEnd()

	if s.stack.InForeignContent() {
		s.stack.Push(Tag{Kind: KindCustom, Name: raw})
		return ForeignStartTagName, true
	}

	tag := tagForName(strings.ToUpper(raw))
	switch {
	case tag.IsVoid():
		return VoidStartTagName, true
	case tag.Kind == KindScript:
		s.stack.Push(tag)
		return ScriptStartTagName, true
	case tag.Kind == KindStyle:
		s.stack.Push(tag)
		return StyleStartTagName, true
	case tag.Kind == KindTitle:
		s.stack.Push(tag)
		return TitleStartTagName, true
	case tag.Kind == KindTextarea:
		s.stack.Push(tag)
		return TextareaStartTagName, true
	case tag.Kind == KindPlaintext:
		s.stack.Push(tag)
		return PlaintextStartTagName, true
	case tag.Kind == KindSVG || tag.Kind == KindMath:
		s.stack.Push(tag)
		return ForeignStartTagName, true
	default:
		s.stack.Push(tag)
		return HTMLStartTagName, true
	}
}
