package scanner

import "golang.org/x/net/html/atom"

// atomKind maps the well-known HTML atoms to non-CUSTOM TagKinds. Using
// golang.org/x/net/html/atom for the canonical tag-name table (rather
// than a hand-rolled string switch) gets us the same vocabulary the Go
// standard HTML parser is built on, including its case-insensitive,
// allocation-free lookup by byte slice.
//
// Only the atoms this scanner's category table in spec.md §4.1 actually
// distinguishes are listed; everything else recognized by atom.Lookup
// falls through to KindHTML, and anything atom.Lookup doesn't recognize
// at all becomes KindCustom.
var atomKind = map[atom.Atom]TagKind{
	atom.Html: KindHTML,
	atom.Head: KindHead,
	atom.Body: KindBody,

	atom.Script:    KindScript,
	atom.Style:     KindStyle,
	atom.Title:     KindTitle,
	atom.Textarea:  KindTextarea,
	atom.Plaintext: KindPlaintext,

	atom.Svg:  KindSVG,
	atom.Math: KindMath,

	atom.Area:   KindVoidArea,
	atom.Base:   KindVoidBase,
	atom.Br:     KindVoidBr,
	atom.Col:    KindVoidCol,
	atom.Embed:  KindVoidEmbed,
	atom.Hr:     KindVoidHr,
	atom.Img:    KindVoidImg,
	atom.Input:  KindVoidInput,
	atom.Link:   KindVoidLink,
	atom.Meta:   KindVoidMeta,
	atom.Param:  KindVoidParam,
	atom.Source: KindVoidSource,
	atom.Track:  KindVoidTrack,
	atom.Wbr:    KindVoidWbr,

	atom.P:      KindP,
	atom.Li:     KindLi,
	atom.Dt:     KindDt,
	atom.Dd:     KindDd,
	atom.Tr:     KindTr,
	atom.Td:     KindTd,
	atom.Th:     KindTh,
	atom.Thead:  KindThead,
	atom.Tbody:  KindTbody,
	atom.Tfoot:  KindTfoot,
	atom.Option: KindOption,
	atom.Select: KindSelect,

	// The set of block-level containers that force a <p> closed when
	// opened as its child (HTML5's "p element in button scope" list,
	// trimmed to the common subset).
	atom.Div:        KindDiv,
	atom.Ul:         KindUl,
	atom.Ol:         KindOl,
	atom.Dl:         KindDl,
	atom.Table:      KindTable,
	atom.Form:       KindForm,
	atom.Blockquote: KindBlockquote,
	atom.Pre:        KindPre,
	atom.H1:         KindHeading,
	atom.H2:         KindHeading,
	atom.H3:         KindHeading,
	atom.H4:         KindHeading,
	atom.H5:         KindHeading,
	atom.H6:         KindHeading,
	atom.Section:    KindSection,
	atom.Article:    KindArticle,
	atom.Header:     KindHeader,
	atom.Footer:     KindFooter,
	atom.Nav:        KindNav,
	atom.Aside:      KindAside,
	atom.Fieldset:   KindFieldset,
	atom.Figure:     KindFigure,
	atom.Figcaption: KindFigcaption,
	atom.Main:       KindMain,
	atom.Address:    KindAddress,
	atom.Details:    KindDetails,
	atom.Menu:       KindMenu,
	atom.Hgroup:     KindHgroup,
}

// lookupAtomKind resolves a lowercase tag name against the HTML atom
// table. atom.Lookup recognizes the full HTML5 element vocabulary; any
// atom not given a specific TagKind above (span, a, em, ...) is a
// generic, non-void, non-foreign HTML element. Names atom.Lookup does
// not recognize at all are reported back with ok=false so the caller
// can fall back to KindCustom.
func lookupAtomKind(lowerName []byte) (kind TagKind, ok bool) {
	a := atom.Lookup(lowerName)
	if a == 0 {
		return 0, false
	}
	if k, special := atomKind[a]; special {
		return k, true
	}
	return KindGenericHTML, true
}
