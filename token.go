package scanner

// TokenKind enumerates every token the scanner can emit, in the stable
// order required by the parser host (spec §6). The numeric value of a
// TokenKind is part of the wire contract with the host: it indexes
// directly into a ValiditySet, so this order must never change without
// also regenerating the host's token table.
type TokenKind int

const (
	HTMLStartTagName TokenKind = iota
	VoidStartTagName
	ForeignStartTagName
	ScriptStartTagName
	StyleStartTagName
	TitleStartTagName
	TextareaStartTagName
	PlaintextStartTagName
	EndTagName
	ErroneousEndTagName
	SelfClosingTagDelimiter
	ImplicitEndTag
	RawText
	RCDataText
	PlaintextText
	Comment
	DjangoCommentContent
	VerbatimStart
	VerbatimBlockContent
	ValidateGenericBlock
	ValidateGenericSimple
	FilterColon

	// TokenCount is the number of distinct token kinds; it sizes
	// ValiditySet and is not itself a valid token.
	TokenCount
)

var tokenNames = [TokenCount]string{
	HTMLStartTagName:       "HTML_START_TAG_NAME",
	VoidStartTagName:       "VOID_START_TAG_NAME",
	ForeignStartTagName:    "FOREIGN_START_TAG_NAME",
	ScriptStartTagName:     "SCRIPT_START_TAG_NAME",
	StyleStartTagName:      "STYLE_START_TAG_NAME",
	TitleStartTagName:      "TITLE_START_TAG_NAME",
	TextareaStartTagName:   "TEXTAREA_START_TAG_NAME",
	PlaintextStartTagName:  "PLAINTEXT_START_TAG_NAME",
	EndTagName:             "END_TAG_NAME",
	ErroneousEndTagName:    "ERRONEOUS_END_TAG_NAME",
	SelfClosingTagDelimiter: "SELF_CLOSING_TAG_DELIMITER",
	ImplicitEndTag:         "IMPLICIT_END_TAG",
	RawText:                "RAW_TEXT",
	RCDataText:             "RCDATA_TEXT",
	PlaintextText:          "PLAINTEXT_TEXT",
	Comment:                "COMMENT",
	DjangoCommentContent:   "DJANGO_COMMENT_CONTENT",
	VerbatimStart:          "VERBATIM_START",
	VerbatimBlockContent:   "VERBATIM_BLOCK_CONTENT",
	ValidateGenericBlock:   "VALIDATE_GENERIC_BLOCK",
	ValidateGenericSimple:  "VALIDATE_GENERIC_SIMPLE",
	FilterColon:            "FILTER_COLON",
}

// String implements fmt.Stringer, matching the teacher's Token.String
// debug convention (lexer.go) of naming token kinds for diagnostics.
func (k TokenKind) String() string {
	if k < 0 || k >= TokenCount {
		return "UNKNOWN"
	}
	return tokenNames[k]
}

// ValiditySet is the validity vector the parser host passes into Scan:
// one flag per token kind, indicating which tokens are currently
// acceptable at this parse state.
type ValiditySet [TokenCount]bool

// Valid reports whether k is marked valid in the set.
func (v ValiditySet) Valid(k TokenKind) bool {
	return v[k]
}

// NewValiditySet builds a ValiditySet with exactly the given kinds
// marked valid. Intended for tests and for hosts that prefer
// constructing a vector from a short list rather than a full array
// literal.
func NewValiditySet(kinds ...TokenKind) ValiditySet {
	var v ValiditySet
	for _, k := range kinds {
		v[k] = true
	}
	return v
}
