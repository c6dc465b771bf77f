// Package harness drives a scanner.Scanner over raw input the way a
// tree-sitter parser would: walking the text left to right, deciding
// at each position which token kinds the surrounding grammar would
// currently accept, and calling Scan with that ValiditySet.
//
// It is not a Django expression evaluator and does not build a parse
// tree — it exists only so the scanner package's integration tests
// (and internal/fixtures scenarios) can exercise Scan end to end
// without a real tree-sitter runtime. Its token-cursor shape (Peek,
// Match, Consume) is adapted from pongo2's Parser (parser.go), reduced
// to walking raw runes instead of a pre-lexed token slice, since
// tokenizing raw input is exactly the job being tested here.
package harness

import (
	"fmt"
	"strings"

	sc "github.com/tree-sitter-grammars/tree-sitter-htmldjango"
)

// Token is one emitted scanner token plus the literal text it covered,
// for test assertions.
type Token struct {
	Kind sc.TokenKind
	Text string
}

// Run scans input completely and returns every token the scanner
// emitted, in document order. It panics on malformed input that no
// fallback rule covers, since this is test-only code driven by
// hand-written fixtures, not a production parser.
func Run(input string) []Token {
	c := sc.NewStringCursor(input)
	s := sc.New()
	defer s.Destroy()
	var out []Token
	runDocument(s, c, &out, nil)
	return out
}

func validOf(kinds ...sc.TokenKind) sc.ValiditySet {
	return sc.NewValiditySet(kinds...)
}

func emit(c *sc.StringCursor, out *[]Token, kind sc.TokenKind, start int) {
	*out = append(*out, Token{Kind: kind, Text: c.Text(start, c.EndMark())})
}

// peekLiteral consumes lit if it matches at the cursor, or leaves the
// cursor untouched (via Cursor.ResetToMark) if it doesn't.
func peekLiteral(c *sc.StringCursor, lit string) bool {
	c.MarkEnd()
	for _, want := range lit {
		if c.Lookahead() != want {
			c.ResetToMark()
			return false
		}
		c.Advance(true)
	}
	return true
}

func skipHorizontalWhitespace(c *sc.StringCursor) {
	for c.Lookahead() == ' ' || c.Lookahead() == '\t' {
		c.Advance(true)
	}
}

// readIdentifier consumes a run of identifier runes as plain literal
// text (the grammar's own job, not the scanner's).
func readIdentifier(c *sc.StringCursor) string {
	var b strings.Builder
	for r := c.Lookahead(); r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9'); r = c.Lookahead() {
		b.WriteRune(r)
		c.Advance(true)
	}
	return b.String()
}

// stopSet optionally bounds a content region (e.g. stop walking a
// generic block tag's body at its own "{% end<name> %}"); nil means
// "run to end of input".
type stopSet struct {
	endTag string
}

// runDocument walks content until EOF or, if stop is non-nil, until it
// consumes stop's matching "{% end<name> %}".
func runDocument(s *sc.Scanner, c *sc.StringCursor, out *[]Token, stop *stopSet) {
	for !c.EOF() {
		if stop != nil && tryConsumeBlockEnd(c, stop.endTag) {
			return
		}
		if stepContentMode(s, c, out) {
			continue
		}
		if stepImplicitEnd(s, c, out) {
			continue
		}
		if stepHTML(s, c, out) {
			continue
		}
		if stepDjango(s, c, out) {
			continue
		}
		// Plain text: the grammar consumes one rune of literal
		// document text and tries again.
		c.Advance(false)
	}
	if stop != nil {
		panic(fmt.Sprintf("harness: unterminated block %q", stop.endTag))
	}
}

// stepContentMode tries the raw-text/RCDATA/plaintext scanners when
// the current stack top puts the document in one of those content
// modes.
func stepContentMode(s *sc.Scanner, c *sc.StringCursor, out *[]Token) bool {
	start := c.Pos()
	if kind, ok := s.Scan(c, validOf(sc.RawText)); ok {
		emit(c, out, kind, start)
		return true
	}
	if kind, ok := s.Scan(c, validOf(sc.RCDataText)); ok {
		emit(c, out, kind, start)
		return true
	}
	if kind, ok := s.Scan(c, validOf(sc.PlaintextText)); ok {
		emit(c, out, kind, start)
		return true
	}
	return false
}

func stepImplicitEnd(s *sc.Scanner, c *sc.StringCursor, out *[]Token) bool {
	start := c.Pos()
	if kind, ok := s.Scan(c, validOf(sc.ImplicitEndTag)); ok {
		emit(c, out, kind, start)
		return true
	}
	return false
}

// stepHTML handles "<!--...-->", "</name...>", "<name...>" and the
// self-closing "/>" delimiter.
func stepHTML(s *sc.Scanner, c *sc.StringCursor, out *[]Token) bool {
	if peekLiteral(c, "<!") {
		start := c.Pos()
		if kind, ok := s.Scan(c, validOf(sc.Comment)); ok {
			emit(c, out, kind, start)
			return true
		}
		panic("harness: malformed comment")
	}

	if peekLiteral(c, "</") {
		start := c.Pos()
		kind, ok := s.Scan(c, validOf(sc.EndTagName, sc.ErroneousEndTagName))
		if !ok {
			panic("harness: malformed end tag")
		}
		emit(c, out, kind, start)
		skipHorizontalWhitespace(c)
		if c.Lookahead() == '>' {
			c.Advance(false)
		}
		return true
	}

	if c.Lookahead() == '<' {
		c.MarkEnd()
		c.Advance(true)
		start := c.Pos()
		kind, ok := s.Scan(c, validOf(
			sc.HTMLStartTagName, sc.VoidStartTagName, sc.ForeignStartTagName,
			sc.ScriptStartTagName, sc.StyleStartTagName, sc.TitleStartTagName,
			sc.TextareaStartTagName, sc.PlaintextStartTagName,
		))
		if !ok {
			c.ResetToMark()
			return false
		}
		emit(c, out, kind, start)
		skipTagAttributes(s, c, out)
		return true
	}
	return false
}

// skipTagAttributes consumes whatever sits between a tag name and its
// closing '>' or self-closing "/>". Real attribute syntax is outside
// this scanner's scope (spec.md §1 non-goals); the harness only needs
// to find the boundary.
func skipTagAttributes(s *sc.Scanner, c *sc.StringCursor, out *[]Token) {
	for !c.EOF() {
		if c.Lookahead() == '"' || c.Lookahead() == '\'' {
			quote := c.Lookahead()
			c.Advance(false)
			for !c.EOF() && c.Lookahead() != quote {
				c.Advance(false)
			}
			if !c.EOF() {
				c.Advance(false)
			}
			continue
		}
		start := c.Pos()
		if kind, ok := s.Scan(c, validOf(sc.SelfClosingTagDelimiter)); ok {
			emit(c, out, kind, start)
			return
		}
		if c.Lookahead() == '>' {
			c.Advance(false)
			return
		}
		if c.EOF() {
			return
		}
		c.Advance(true)
	}
}

// stepDjango handles "{# ... #}" short comments, "{% comment %}",
// "{% verbatim %}", generic "{% name ... %}" tags, and "{{ ... }}"
// variable tags.
func stepDjango(s *sc.Scanner, c *sc.StringCursor, out *[]Token) bool {
	if peekLiteral(c, "{#") {
		for !c.EOF() && !peekLiteral(c, "#}") {
			c.Advance(false)
		}
		return true
	}

	if peekLiteral(c, "{%") {
		skipHorizontalWhitespace(c)
		c.MarkEnd()
		name := readIdentifier(c)
		c.ResetToMark()
		if name == "comment" {
			readIdentifier(c)
			skipHorizontalWhitespace(c)
			mustConsumeLiteral(c, "%}")
			start := c.Pos()
			if kind, ok := s.Scan(c, validOf(sc.DjangoCommentContent)); ok {
				emit(c, out, kind, start)
			}
			consumeLiteralTag(c, "endcomment")
			return true
		}
		if name == "verbatim" {
			readIdentifier(c)
			start := c.Pos()
			kind, ok := s.Scan(c, validOf(sc.VerbatimStart))
			if !ok {
				panic("harness: malformed verbatim start")
			}
			emit(c, out, kind, start)
			skipHorizontalWhitespace(c)
			mustConsumeLiteral(c, "%}")
			start = c.Pos()
			// The content scanner advances through the matching
			// "{% endverbatim ... %}" itself, so no closing tag is
			// left for the harness to consume here.
			if kind, ok := s.Scan(c, validOf(sc.VerbatimBlockContent)); ok {
				emit(c, out, kind, start)
			}
			return true
		}

		// Offer both generic validity bits, the way a real grammar
		// would at this point, and let the scanner's own forward
		// lookahead for a matching "{% end<name> %}" (spec.md §4.14)
		// decide whether this is a block or a simple tag. A built-in
		// keyword like "if" or "load" bypasses this validator
		// entirely (ok == false); the harness has no dedicated
		// production for those, so it just treats the body as plain
		// document content.
		start := c.Pos()
		kind, ok := s.Scan(c, validOf(sc.ValidateGenericBlock, sc.ValidateGenericSimple))
		if ok {
			emit(c, out, kind, start)
		}
		readIdentifier(c)
		skipToTagClose(c)
		if ok && kind == sc.ValidateGenericBlock {
			runDocument(s, c, out, &stopSet{endTag: name})
		}
		return true
	}

	if peekLiteral(c, "{{") {
		skipHorizontalWhitespace(c)
		readIdentifier(c)
		for {
			skipHorizontalWhitespace(c)
			if c.Lookahead() != '|' {
				break
			}
			c.Advance(false)
			readIdentifier(c)
			start := c.Pos()
			if kind, ok := s.Scan(c, validOf(sc.FilterColon)); ok {
				emit(c, out, kind, start)
				readFilterArgument(c)
			}
		}
		skipHorizontalWhitespace(c)
		mustConsumeLiteral(c, "}}")
		return true
	}

	return false
}

func readFilterArgument(c *sc.StringCursor) {
	if c.Lookahead() == '"' || c.Lookahead() == '\'' {
		quote := c.Lookahead()
		c.Advance(false)
		for !c.EOF() && c.Lookahead() != quote {
			c.Advance(false)
		}
		if !c.EOF() {
			c.Advance(false)
		}
		return
	}
	readIdentifier(c)
}

func skipToTagClose(c *sc.StringCursor) {
	for !c.EOF() && !peekLiteral(c, "%}") {
		c.Advance(false)
	}
}

func mustConsumeLiteral(c *sc.StringCursor, lit string) {
	if !peekLiteral(c, lit) {
		panic(fmt.Sprintf("harness: expected %q", lit))
	}
}

func consumeLiteralTag(c *sc.StringCursor, name string) {
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, "{%")
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, name)
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, "%}")
}

func consumeLiteralTagWithOptionalArg(c *sc.StringCursor, name string) {
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, "{%")
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, name)
	skipHorizontalWhitespace(c)
	readIdentifier(c)
	skipHorizontalWhitespace(c)
	mustConsumeLiteral(c, "%}")
}

func tryConsumeBlockEnd(c *sc.StringCursor, name string) bool {
	c.MarkEnd()
	if !peekLiteral(c, "{%") {
		c.ResetToMark()
		return false
	}
	skipHorizontalWhitespace(c)
	if !peekLiteral(c, "end"+name) {
		c.ResetToMark()
		return false
	}
	skipHorizontalWhitespace(c)
	if !peekLiteral(c, "%}") {
		c.ResetToMark()
		return false
	}
	return true
}
