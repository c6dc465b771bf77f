package scanner

import (
	"strconv"

	"github.com/beevik/etree"
)

// kindTagName returns the element name DebugXML should print for a
// non-custom kind. It deliberately reuses the lowercase HTML spelling
// rather than the Go identifier (KindVoidBr -> "br"), so the XML dump
// reads like the markup it came from.
var kindTagName = map[TagKind]string{
	KindHTML: "html", KindHead: "head", KindBody: "body",
	KindScript: "script", KindStyle: "style", KindTitle: "title",
	KindTextarea: "textarea", KindPlaintext: "plaintext",
	KindSVG: "svg", KindMath: "math",
	KindVoidArea: "area", KindVoidBase: "base", KindVoidBr: "br",
	KindVoidCol: "col", KindVoidEmbed: "embed", KindVoidHr: "hr",
	KindVoidImg: "img", KindVoidInput: "input", KindVoidLink: "link",
	KindVoidMeta: "meta", KindVoidParam: "param", KindVoidSource: "source",
	KindVoidTrack: "track", KindVoidWbr: "wbr",
	KindP: "p", KindLi: "li", KindDt: "dt", KindDd: "dd",
	KindTr: "tr", KindTd: "td", KindTh: "th",
	KindThead: "thead", KindTbody: "tbody", KindTfoot: "tfoot",
	KindOption: "option", KindSelect: "select",
	KindDiv: "div", KindUl: "ul", KindOl: "ol", KindDl: "dl",
	KindTable: "table", KindForm: "form", KindBlockquote: "blockquote",
	KindPre: "pre", KindHeading: "h1..h6", KindSection: "section",
	KindArticle: "article", KindHeader: "header", KindFooter: "footer",
	KindNav: "nav", KindAside: "aside", KindFieldset: "fieldset",
	KindFigure: "figure", KindFigcaption: "figcaption", KindMain: "main",
	KindAddress: "address", KindDetails: "details", KindMenu: "menu",
	KindHgroup: "hgroup",
	KindGenericHTML: "html-element",
}

// DebugXML renders the currently open element stack as an indented XML
// document using github.com/beevik/etree: the outermost open tag is
// the document root, the innermost (top of stack) is the deepest leaf.
// This is diagnostics only — it is never consulted by any scanning
// decision, and its output format is not part of the scanner's
// external contract.
func (s *Scanner) DebugXML() string {
	doc := etree.NewDocument()
	doc.Indent(2)

	var parent *etree.Element
	for i, tag := range s.stack.tags {
		name := tagXMLName(tag)
		var el *etree.Element
		if parent == nil {
			el = doc.CreateElement(name)
		} else {
			el = parent.CreateElement(name)
		}
		el.CreateAttr("depth", strconv.Itoa(i))
		parent = el
	}
	if s.suffix.Len() > 0 {
		suffixEl := doc.CreateElement("verbatim-suffix")
		suffixEl.SetText(string(s.suffix.Bytes()))
	}

	out, err := doc.WriteToString()
	if err != nil {
		return "<error/>"
	}
	return out
}

func tagXMLName(tag Tag) string {
	if tag.Kind == KindCustom {
		if tag.Name == "" {
			return "unknown"
		}
		return tag.Name
	}
	if name, ok := kindTagName[tag.Kind]; ok {
		return name
	}
	return "unknown"
}
