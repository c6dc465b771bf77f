package scanner

import "testing"

func TestScanRawTextStopsAtMatchingEndTag(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindScript})
	c := NewStringCursor("var x = 1 < 2;</script>")
	kind, ok := scanRawText(s, c)
	if !ok || kind != RawText {
		t.Fatalf("scanRawText = %v, %v, want RawText, true", kind, ok)
	}
	if got := c.Text(0, c.EndMark()); got != "var x = 1 < 2;" {
		t.Fatalf("raw text content = %q, want %q", got, "var x = 1 < 2;")
	}
}

func TestScanRawTextStopsAtDjangoDelimiter(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindScript})
	c := NewStringCursor("var x = 1; {% if y %}a{% endif %}</script>")
	kind, ok := scanRawText(s, c)
	if !ok || kind != RawText {
		t.Fatalf("scanRawText = %v, %v, want RawText, true", kind, ok)
	}
	if got := c.Text(0, c.EndMark()); got != "var x = 1; " {
		t.Fatalf("raw text content = %q, want %q", got, "var x = 1; ")
	}
	if c.Lookahead() != '{' {
		t.Fatalf("expected cursor left sitting on the Django delimiter, got %q", c.Lookahead())
	}
}

func TestScanRawTextRejectsWrongTopKind(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindP})
	c := NewStringCursor("hello</p>")
	if _, ok := scanRawText(s, c); ok {
		t.Fatal("expected scanRawText to refuse a non-script/style top (regression: must not treat <p> content as raw text)")
	}
}

func TestScanRawTextCaseInsensitiveEndTagMatch(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindStyle})
	c := NewStringCursor("body{color:red}</STYLE>")
	kind, ok := scanRawText(s, c)
	if !ok || kind != RawText {
		t.Fatalf("scanRawText = %v, %v, want RawText, true", kind, ok)
	}
	if c.EndMark() != len("body{color:red}") {
		t.Fatalf("EndMark = %d, want %d", c.EndMark(), len("body{color:red}"))
	}
}

func TestScanRawTextLenientEOF(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindScript})
	c := NewStringCursor("no closing tag")
	kind, ok := scanRawText(s, c)
	if !ok || kind != RawText {
		t.Fatalf("scanRawText at EOF = %v, %v, want RawText, true", kind, ok)
	}
}

func TestScanRawTextEmptyFails(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindScript})
	c := NewStringCursor("</script>")
	if _, ok := scanRawText(s, c); ok {
		t.Fatal("expected failure when there is no content before the end tag")
	}
}

func TestScanRCDataTextRejectsWrongTopKind(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindDiv})
	c := NewStringCursor("hello</div>")
	if _, ok := scanRCDataText(s, c); ok {
		t.Fatal("expected scanRCDataText to refuse a non-title/textarea top")
	}
}

func TestScanRCDataTextOrdinary(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindTextarea})
	c := NewStringCursor("<b>not a tag</b></textarea>")
	kind, ok := scanRCDataText(s, c)
	if !ok || kind != RCDataText {
		t.Fatalf("scanRCDataText = %v, %v, want RCDataText, true", kind, ok)
	}
	if c.EndMark() != len("<b>not a tag</b>") {
		t.Fatalf("EndMark = %d, want %d", c.EndMark(), len("<b>not a tag</b>"))
	}
}

func TestScanPlaintextTextConsumesToEOF(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindPlaintext})
	c := NewStringCursor("<div>still just text")
	kind, ok := scanPlaintextText(s, c)
	if !ok || kind != PlaintextText {
		t.Fatalf("scanPlaintextText = %v, %v, want PlaintextText, true", kind, ok)
	}
	if !c.EOF() {
		t.Fatal("expected plaintext to consume through EOF")
	}
}

func TestScanPlaintextTextRejectsWrongTopKind(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindDiv})
	c := NewStringCursor("text")
	if _, ok := scanPlaintextText(s, c); ok {
		t.Fatal("expected failure outside a plaintext element")
	}
}

func TestScanPlaintextTextEmptyFails(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindPlaintext})
	c := NewStringCursor("")
	if _, ok := scanPlaintextText(s, c); ok {
		t.Fatal("expected failure when there is nothing left to consume")
	}
}

func TestScanDjangoCommentContentStopsAtEndComment(t *testing.T) {
	c := NewStringCursor("hidden {% endcomment %}")
	kind, ok := scanDjangoCommentContent(c)
	if !ok || kind != DjangoCommentContent {
		t.Fatalf("scanDjangoCommentContent = %v, %v, want DjangoCommentContent, true", kind, ok)
	}
	if got := c.Text(0, c.EndMark()); got != "hidden " {
		t.Fatalf("comment content = %q, want %q", got, "hidden ")
	}
}

func TestScanDjangoCommentContentLenientEOF(t *testing.T) {
	c := NewStringCursor("never closed")
	kind, ok := scanDjangoCommentContent(c)
	if !ok || kind != DjangoCommentContent {
		t.Fatalf("scanDjangoCommentContent at EOF = %v, %v, want DjangoCommentContent, true", kind, ok)
	}
}

func TestScanDjangoCommentContentEmptyFails(t *testing.T) {
	c := NewStringCursor("{% endcomment %}")
	if _, ok := scanDjangoCommentContent(c); ok {
		t.Fatal("expected failure when there is no content before endcomment")
	}
}

func TestScanVerbatimStartCapturesSuffix(t *testing.T) {
	s := New()
	c := NewStringCursor(" myblock %}")
	kind, ok := scanVerbatimStart(s, c)
	if !ok || kind != VerbatimStart {
		t.Fatalf("scanVerbatimStart = %v, %v, want VerbatimStart, true", kind, ok)
	}
	if string(s.suffix.Bytes()) != "myblock" {
		t.Fatalf("suffix = %q, want %q", s.suffix.Bytes(), "myblock")
	}
}

func TestScanVerbatimStartEmptySuffixIsValid(t *testing.T) {
	s := New()
	c := NewStringCursor(" %}")
	kind, ok := scanVerbatimStart(s, c)
	if !ok || kind != VerbatimStart {
		t.Fatalf("scanVerbatimStart with no suffix = %v, %v, want VerbatimStart, true", kind, ok)
	}
	if s.suffix.Len() != 0 {
		t.Fatalf("suffix len = %d, want 0", s.suffix.Len())
	}
}

func TestScanVerbatimContentRequiresMatchingSuffix(t *testing.T) {
	s := New()
	s.suffix.Set([]byte("myblock"))
	c := NewStringCursor("{{ raw }}{% endverbatim other %}{% endverbatim myblock %}")
	kind, ok := scanVerbatimContent(s, c)
	if !ok || kind != VerbatimBlockContent {
		t.Fatalf("scanVerbatimContent = %v, %v, want VerbatimBlockContent, true", kind, ok)
	}
	input := "{{ raw }}{% endverbatim other %}{% endverbatim myblock %}"
	wantEnd := len(input)
	if c.EndMark() != wantEnd {
		t.Fatalf("EndMark = %d, want %d (the mismatched closer is content; the matching closer ends the token, closing tag included)", c.EndMark(), wantEnd)
	}
	if s.suffix.Len() != 0 {
		t.Fatal("expected suffix cleared after a successful close")
	}
}

func TestScanVerbatimContentNoSuffixRequiresBareEnd(t *testing.T) {
	s := New()
	s.suffix.Clear()
	input := "x{% endverbatim %}"
	c := NewStringCursor(input)
	kind, ok := scanVerbatimContent(s, c)
	if !ok || kind != VerbatimBlockContent {
		t.Fatalf("scanVerbatimContent = %v, %v, want VerbatimBlockContent, true", kind, ok)
	}
	if c.EndMark() != len(input) {
		t.Fatalf("EndMark = %d, want %d (closing tag must be included in the token)", c.EndMark(), len(input))
	}
}
