package scanner

// Scan implements spec.md §4.16 and §6: the single entry point a
// tree-sitter host calls at every lexing decision point, gated by the
// valid vector the grammar computes for that parse state. Sub-scanners
// are tried in a fixed priority order; the first one whose token kind
// the grammar currently accepts and that matches the input wins.
//
// The order matters: the zero-width implicit-end-tag decision is tried
// first, and the content scanners are tried before plain tag-name
// scanning so that an open <script>/<style>/<title>/<textarea>/<plaintext>
// element's raw body is never accidentally re-tokenized as markup. The
// zero-width generic-tag and filter-colon disambiguators are tried
// last, after the content, comment, verbatim and tag-name scanners.
func (s *Scanner) Scan(c Cursor, valid ValiditySet) (TokenKind, bool) {
	if valid.Valid(ImplicitEndTag) {
		if kind, ok := scanImplicitEndTag(s, c); ok {
			return kind, true
		}
	}

	if valid.Valid(PlaintextText) {
		if kind, ok := scanPlaintextText(s, c); ok {
			return kind, true
		}
	}
	if valid.Valid(RawText) {
		if kind, ok := scanRawText(s, c); ok {
			return kind, true
		}
	}
	if valid.Valid(RCDataText) {
		if kind, ok := scanRCDataText(s, c); ok {
			return kind, true
		}
	}
	if valid.Valid(Comment) {
		if ok := scanHTMLComment(c); ok {
			return Comment, true
		}
	}
	if valid.Valid(DjangoCommentContent) {
		if kind, ok := scanDjangoCommentContent(c); ok {
			return kind, true
		}
	}
	if valid.Valid(VerbatimBlockContent) {
		if kind, ok := scanVerbatimContent(s, c); ok {
			return kind, true
		}
	}
	if valid.Valid(VerbatimStart) {
		if kind, ok := scanVerbatimStart(s, c); ok {
			return kind, true
		}
	}

	if valid.Valid(SelfClosingTagDelimiter) {
		if kind, ok := scanSelfClosingTagDelimiter(s, c); ok {
			return kind, true
		}
	}

	if valid.Valid(EndTagName) || valid.Valid(ErroneousEndTagName) {
		if kind, ok := scanEndTagName(s, c); ok {
			return kind, true
		}
	}

	if startTagKindsValid(valid) {
		if kind, ok := scanStartTagName(s, c); ok {
			return kind, true
		}
	}

	if valid.Valid(ValidateGenericBlock) || valid.Valid(ValidateGenericSimple) {
		if kind, ok := scanGenericTagValidator(c, valid); ok {
			return kind, true
		}
	}

	if valid.Valid(FilterColon) {
		if kind, ok := scanFilterColon(c); ok {
			return kind, true
		}
	}

	return 0, false
}

func startTagKindsValid(valid ValiditySet) bool {
	return valid.Valid(HTMLStartTagName) ||
		valid.Valid(VoidStartTagName) ||
		valid.Valid(ForeignStartTagName) ||
		valid.Valid(ScriptStartTagName) ||
		valid.Valid(StyleStartTagName) ||
		valid.Valid(TitleStartTagName) ||
		valid.Valid(TextareaStartTagName) ||
		valid.Valid(PlaintextStartTagName)
}
