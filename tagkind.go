package scanner

// TagKind is the closed set of tag categories the scanner and element
// stack reason about. Named kinds carry fixed semantics (containment
// rules, void-ness, raw-text/RCDATA dispatch); KindGenericHTML covers
// recognized HTML tags with no special rule of their own; KindCustom
// carries an owned name and is used both for foreign-content elements
// (case-sensitive SVG/MathML descendants) and for names the grammar
// does not recognize at all.
type TagKind int

const (
	KindCustom TagKind = iota

	// Document-structure kinds with fixed EOF/implicit-end behavior.
	KindHTML
	KindHead
	KindBody

	// Raw-text / RCDATA / plaintext content-mode kinds.
	KindScript
	KindStyle
	KindTitle
	KindTextarea
	KindPlaintext

	// Foreign-content roots.
	KindSVG
	KindMath

	// Void elements (spec.md §3/§4.1): no closing tag, no content,
	// never pushed onto the element stack.
	KindVoidArea
	KindVoidBase
	KindVoidBr
	KindVoidCol
	KindVoidEmbed
	KindVoidHr
	KindVoidImg
	KindVoidInput
	KindVoidLink
	KindVoidMeta
	KindVoidParam
	KindVoidSource
	KindVoidTrack
	KindVoidWbr

	// Block/inline tags with specific containment rules.
	KindP
	KindLi
	KindDt
	KindDd
	KindTr
	KindTd
	KindTh
	KindThead
	KindTbody
	KindTfoot
	KindOption
	KindSelect

	// Block-level containers; closing a <p> is the main rule that
	// needs them distinguished from KindGenericHTML (spec.md §4.1
	// "<p> cannot contain block elements").
	KindDiv
	KindUl
	KindOl
	KindDl
	KindTable
	KindForm
	KindBlockquote
	KindPre
	KindHeading
	KindSection
	KindArticle
	KindHeader
	KindFooter
	KindNav
	KindAside
	KindFieldset
	KindFigure
	KindFigcaption
	KindMain
	KindAddress
	KindDetails
	KindMenu
	KindHgroup

	// Generic recognized HTML tag with no special containment rule
	// (span, a, em, img is void so excluded, ...).
	KindGenericHTML
)

var voidKinds = map[TagKind]bool{
	KindVoidArea:   true,
	KindVoidBase:   true,
	KindVoidBr:     true,
	KindVoidCol:    true,
	KindVoidEmbed:  true,
	KindVoidHr:     true,
	KindVoidImg:    true,
	KindVoidInput:  true,
	KindVoidLink:   true,
	KindVoidMeta:   true,
	KindVoidParam:  true,
	KindVoidSource: true,
	KindVoidTrack:  true,
	KindVoidWbr:    true,
}

// IsVoid reports whether kind is one of the fixed HTML void elements.
func (k TagKind) IsVoid() bool {
	return voidKinds[k]
}

// IsForeignRoot reports whether kind switches the element stack into
// foreign content (spec.md §4.1, §4.2 in_foreign_content).
func (k TagKind) IsForeignRoot() bool {
	return k == KindSVG || k == KindMath
}
