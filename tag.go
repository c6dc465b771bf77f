package scanner

import "strings"

// Tag pairs a TagKind with an optional owned name, used only when Kind
// is KindCustom (spec.md §3). Two tags are equal iff they share a kind
// and, for KindCustom, identical name bytes.
type Tag struct {
	Kind TagKind
	Name string // meaningful only when Kind == KindCustom
}

// Equal implements the equality rule from spec.md §3: same kind, and
// for KindCustom, same name bytes.
func (t Tag) Equal(other Tag) bool {
	if t.Kind != other.Kind {
		return false
	}
	if t.Kind == KindCustom {
		return t.Name == other.Name
	}
	return true
}

// IsVoid reports whether t can never be pushed onto the element stack
// and has no matching end tag.
func (t Tag) IsVoid() bool {
	return t.Kind.IsVoid()
}

// tagForName implements spec.md §4.1's tag_for_name: an uppercase
// ASCII-folded lookup against the recognized HTML vocabulary (grounded
// on golang.org/x/net/html/atom, see atoms.go). Unrecognized names
// become KindCustom, carrying the name exactly as given by the caller
// (original case is the caller's responsibility — see start_tag.go and
// end_tag.go, which fold case differently depending on foreign-content
// context).
func tagForName(name string) Tag {
	lower := strings.ToLower(name)
	if kind, ok := lookupAtomKind([]byte(lower)); ok {
		return Tag{Kind: kind}
	}
	return Tag{Kind: KindCustom, Name: name}
}

// pClosers is the set of child kinds that force an open <p> closed
// (spec.md §4.1 "<p> cannot contain block elements").
var pClosers = map[TagKind]bool{
	KindP: true, KindDiv: true, KindUl: true, KindOl: true, KindDl: true,
	KindTable: true, KindForm: true, KindBlockquote: true, KindPre: true,
	KindHeading: true, KindSection: true, KindArticle: true, KindHeader: true,
	KindFooter: true, KindNav: true, KindAside: true, KindFieldset: true,
	KindFigure: true, KindFigcaption: true, KindMain: true, KindAddress: true,
	KindDetails: true, KindMenu: true, KindHgroup: true, KindVoidHr: true,
}

// canContain implements spec.md §4.1's can_contain(parent, child):
// HTML's well-known implicit-close table. Kinds with no rule default
// to true (conservative: no forced close).
func canContain(parent, child Tag) bool {
	switch parent.Kind {
	case KindP:
		return !pClosers[child.Kind]
	case KindLi:
		return child.Kind != KindLi
	case KindDt:
		return child.Kind != KindDt && child.Kind != KindDd
	case KindDd:
		return child.Kind != KindDt && child.Kind != KindDd
	case KindTr:
		return child.Kind != KindTr
	case KindTd, KindTh:
		return child.Kind != KindTd && child.Kind != KindTh && child.Kind != KindTr
	case KindThead, KindTbody, KindTfoot:
		return child.Kind != KindThead && child.Kind != KindTbody && child.Kind != KindTfoot
	case KindOption:
		return child.Kind != KindOption
	default:
		return true
	}
}
