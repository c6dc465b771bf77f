package scanner

import "testing"

func TestScanGenericTagValidatorBuiltinBypassesValidator(t *testing.T) {
	c := NewStringCursor("if cond %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	if _, ok := scanGenericTagValidator(c, valid); ok {
		t.Fatal("expected a built-in keyword like \"if\" to bypass this validator entirely")
	}
	if c.Pos() != 0 {
		t.Fatal("expected the cursor to be restored even on rejection")
	}
}

func TestScanGenericTagValidatorBuiltinSimpleKeywordBypassesValidator(t *testing.T) {
	c := NewStringCursor("load static %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	if _, ok := scanGenericTagValidator(c, valid); ok {
		t.Fatal("expected a built-in keyword like \"load\" to bypass this validator entirely")
	}
}

func TestScanGenericTagValidatorNameBeginningWithEndFails(t *testing.T) {
	c := NewStringCursor("endsomething %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	if _, ok := scanGenericTagValidator(c, valid); ok {
		t.Fatal("expected a name beginning with \"end\" to be rejected")
	}
}

func TestScanGenericTagValidatorCustomTagWithoutCloserFallsBackToSimple(t *testing.T) {
	c := NewStringCursor("my_custom_tag %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	kind, ok := scanGenericTagValidator(c, valid)
	if !ok || kind != ValidateGenericSimple {
		t.Fatalf("scanGenericTagValidator(my_custom_tag) = %v, %v, want ValidateGenericSimple, true", kind, ok)
	}
	if c.Pos() != 0 {
		t.Fatal("expected zero-width: cursor position unchanged")
	}
}

func TestScanGenericTagValidatorCustomTagWithForwardCloserIsBlock(t *testing.T) {
	c := NewStringCursor("mytag %}body{% endmytag %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	kind, ok := scanGenericTagValidator(c, valid)
	if !ok || kind != ValidateGenericBlock {
		t.Fatalf("scanGenericTagValidator(mytag) = %v, %v, want ValidateGenericBlock, true", kind, ok)
	}
	if c.Pos() != 0 {
		t.Fatal("expected zero-width: cursor position unchanged")
	}
}

func TestScanGenericTagValidatorCustomTagWithMismatchedCloserFallsBackToSimple(t *testing.T) {
	c := NewStringCursor("mytag %}body{% endother %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	kind, ok := scanGenericTagValidator(c, valid)
	if !ok || kind != ValidateGenericSimple {
		t.Fatalf("scanGenericTagValidator(mytag) = %v, %v, want ValidateGenericSimple, true", kind, ok)
	}
}

func TestScanGenericTagValidatorNameIsCaseSensitive(t *testing.T) {
	c := NewStringCursor("IF cond %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	kind, ok := scanGenericTagValidator(c, valid)
	if !ok || kind != ValidateGenericSimple {
		t.Fatalf("scanGenericTagValidator(IF) = %v, %v, want ValidateGenericSimple, true (tag names are case-sensitive, so IF is a custom name, not the built-in if)", kind, ok)
	}
}

func TestScanGenericTagValidatorHonorsValiditySet(t *testing.T) {
	c := NewStringCursor("mytag %}body{% endmytag %}")
	valid := NewValiditySet(ValidateGenericSimple)
	kind, ok := scanGenericTagValidator(c, valid)
	if !ok || kind != ValidateGenericSimple {
		t.Fatalf("scanGenericTagValidator(mytag) with only simple valid = %v, %v, want ValidateGenericSimple, true", kind, ok)
	}
}

func TestScanGenericTagValidatorNeitherValid(t *testing.T) {
	c := NewStringCursor("mytag %}")
	var valid ValiditySet
	if _, ok := scanGenericTagValidator(c, valid); ok {
		t.Fatal("expected failure when neither generic validator token is valid")
	}
}

func TestScanGenericTagValidatorEmptyNameFails(t *testing.T) {
	c := NewStringCursor(" %}")
	valid := NewValiditySet(ValidateGenericBlock, ValidateGenericSimple)
	if _, ok := scanGenericTagValidator(c, valid); ok {
		t.Fatal("expected failure when no identifier follows")
	}
}

func TestScanFilterColonAcceptsAdjacentColon(t *testing.T) {
	c := NewStringCursor(`:"Y-m-d"`)
	kind, ok := scanFilterColon(c)
	if !ok || kind != FilterColon {
		t.Fatalf("scanFilterColon = %v, %v, want FilterColon, true", kind, ok)
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos = %d, want 1", c.Pos())
	}
}

func TestScanFilterColonRejectsNonColon(t *testing.T) {
	c := NewStringCursor("x")
	if _, ok := scanFilterColon(c); ok {
		t.Fatal("expected failure when cursor is not on a colon")
	}
}

func TestScanFilterColonRejectsDisallowedFollower(t *testing.T) {
	for _, input := range []string{": y", ":}}", ":"} {
		c := NewStringCursor(input)
		if _, ok := scanFilterColon(c); ok {
			t.Fatalf("scanFilterColon(%q) = true, want false (colon not immediately followed by an argument start)", input)
		}
	}
}

func TestScanFilterColonAcceptsEachArgumentStartClass(t *testing.T) {
	for _, input := range []string{":'x'", ":42", ":+1", ":-1", ":.5", ":_x", ":Name"} {
		c := NewStringCursor(input)
		kind, ok := scanFilterColon(c)
		if !ok || kind != FilterColon {
			t.Fatalf("scanFilterColon(%q) = %v, %v, want FilterColon, true", input, kind, ok)
		}
		if c.Pos() != 1 {
			t.Fatalf("scanFilterColon(%q) Pos = %d, want 1", input, c.Pos())
		}
	}
}
