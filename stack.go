package scanner

// ElementStack is the ordered sequence of currently open tags (spec.md
// §3/§4.2). It exclusively owns the Tag values it holds, including any
// KindCustom name bytes; popping a tag releases that name.
//
// Invariants maintained by construction (never by post-hoc checks):
//   - at most one KindPlaintext entry, and if present it is the top
//     (Push refuses to push anything once plaintext is open — the
//     plaintext-text scanner consumes the rest of input unconditionally
//     and then pops it, so nothing else is ever pushed above it);
//   - inside foreign content every pushed entry is KindCustom
//     (start_tag.go keeps the original-case name while
//     InForeignContent is true); outside it, KindCustom entries are
//     unrecognized HTML names (tagForName's fallback), so KindCustom is
//     not confined to the region above a KindSVG / KindMath;
//   - entries are pushed by the start-tag scanner (and by Deserialize
//     when restoring state) and popped by end-tag / implicit-end /
//     plaintext-text / self-closing (in foreign content, or on a
//     KindCustom top).
type ElementStack struct {
	tags []Tag
}

// Push appends tag as the new top of the stack. A no-op once plaintext
// is open: plaintext has no closing tag, so nothing can ever be pushed
// above it (see the invariant list above).
func (s *ElementStack) Push(tag Tag) {
	if top, ok := s.Top(); ok && top.Kind == KindPlaintext {
		return
	}
	s.tags = append(s.tags, tag)
}

// Pop removes and returns the current top of the stack. Calling Pop on
// an empty stack is a caller bug (scanners only pop when Size() > 0 /
// the relevant token has already matched) and returns the zero Tag.
func (s *ElementStack) Pop() Tag {
	if len(s.tags) == 0 {
		return Tag{}
	}
	top := s.tags[len(s.tags)-1]
	s.tags = s.tags[:len(s.tags)-1]
	return top
}

// Top returns the current top of the stack and whether the stack is
// non-empty.
func (s *ElementStack) Top() (Tag, bool) {
	if len(s.tags) == 0 {
		return Tag{}, false
	}
	return s.tags[len(s.tags)-1], true
}

// Size returns the number of open elements.
func (s *ElementStack) Size() int {
	return len(s.tags)
}

// InForeignContent reports whether any KindSVG or KindMath entry is
// anywhere on the stack (spec.md §4.2).
func (s *ElementStack) InForeignContent() bool {
	for _, t := range s.tags {
		if t.Kind.IsForeignRoot() {
			return true
		}
	}
	return false
}

// FindTopDown scans from the top of the stack downward for an entry
// equal to tag, returning its index (0 = bottom) and true if found.
func (s *ElementStack) FindTopDown(tag Tag) (int, bool) {
	for i := len(s.tags) - 1; i >= 0; i-- {
		if s.tags[i].Equal(tag) {
			return i, true
		}
	}
	return 0, false
}

// reset empties the stack, releasing every entry (including custom
// names). Used by Deserialize, which always replaces state wholesale.
func (s *ElementStack) reset() {
	s.tags = s.tags[:0]
}
