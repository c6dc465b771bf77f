package scanner

import "strings"

// builtinGenericTagNames is the closed reserved list of built-in Django
// tag keywords (spec.md §4.14) that bypass this validator entirely —
// the grammar has its own dedicated productions for each of these, so
// a generic fallback production must never claim them.
var builtinGenericTagNames = map[string]bool{
	"if": true, "elif": true, "else": true, "endif": true,
	"for": true, "empty": true, "endfor": true,
	"with": true, "endwith": true,
	"block": true, "endblock": true,
	"extends": true, "include": true, "load": true, "url": true,
	"csrf_token": true,
	"autoescape": true, "endautoescape": true,
	"filter": true, "endfilter": true,
	"spaceless": true, "endspaceless": true,
	"verbatim": true, "endverbatim": true,
	"cycle": true, "firstof": true, "now": true, "regroup": true,
	"ifchanged": true, "endifchanged": true,
	"widthratio": true, "templatetag": true, "debug": true,
	"lorem": true, "resetcycle": true, "querystring": true,
	"partialdef": true, "endpartialdef": true, "partial": true,
	"comment": true, "endcomment": true,
}

// maxGenericTagNameLen bounds the identifier read by scanGenericTagValidator
// (spec.md §4.14: "bounded at 255 bytes").
const maxGenericTagNameLen = 255

// scanGenericTagValidator implements spec.md §4.14: a zero-width token
// that disambiguates, right after a generic "{% name", whether the
// grammar should commit to the block production (which requires a
// matching "{% end<name> %}" later in the input) or the bodyless
// simple-tag production. It never consumes input — the grammar itself
// still matches the name — so the cursor is always restored to where
// this call started before returning.
func scanGenericTagValidator(c Cursor, valid ValiditySet) (TokenKind, bool) {
	c.MarkEnd()
	name := readBoundedIdentifier(c)
	if name == "" || builtinGenericTagNames[name] || strings.HasPrefix(name, "end") {
		c.ResetToMark()
		return 0, false
	}

	if valid.Valid(ValidateGenericBlock) && scanAheadForGenericCloser(c, name) {
		c.ResetToMark()
		return ValidateGenericBlock, true
	}
	c.ResetToMark()
	if valid.Valid(ValidateGenericSimple) {
		return ValidateGenericSimple, true
	}
	return 0, false
}

// readBoundedIdentifier reads [A-Za-z_][A-Za-z0-9_]*, capped at
// maxGenericTagNameLen bytes, without any further bound on what
// follows it (the caller resets the cursor regardless).
func readBoundedIdentifier(c Cursor) string {
	if !isIdentStart(c.Lookahead()) {
		return ""
	}
	var buf []rune
	buf = append(buf, c.Lookahead())
	c.Advance(true)
	for len(buf) < maxGenericTagNameLen && isIdentByte(c.Lookahead()) {
		buf = append(buf, c.Lookahead())
		c.Advance(true)
	}
	return string(buf)
}

// scanAheadForGenericCloser looks forward, character by character, for
// a literal "{%", optional whitespace, "end"+name, and whitespace or
// "%" — the exact closer shape spec.md §4.14 requires before the
// grammar may commit to treating name as a block tag. It never leaves
// a mark of its own; the caller always resets the cursor afterward.
func scanAheadForGenericCloser(c Cursor, name string) bool {
	closer := "end" + name
	for !c.EOF() {
		if c.Lookahead() != '{' {
			c.Advance(true)
			continue
		}
		c.Advance(true)
		if c.Lookahead() != '%' {
			continue
		}
		c.Advance(true)
		skipWhitespace(c)
		if matchLiteral(c, closer) && (isWhitespaceRune(c.Lookahead()) || c.Lookahead() == '%') {
			return true
		}
	}
	return false
}
