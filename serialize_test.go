package scanner

import "testing"

func TestSerializeDeserializeRoundTrip(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindDiv})
	s.stack.Push(Tag{Kind: KindSVG})
	s.stack.Push(Tag{Kind: KindCustom, Name: "my-widget"})
	s.suffix.Set([]byte("block1"))

	buf := make([]byte, SerializationBufferSize)
	n := s.Serialize(buf)
	if n == 0 {
		t.Fatal("Serialize wrote 0 bytes")
	}

	restored := New()
	restored.Deserialize(buf[:n])

	if restored.stack.Size() != 3 {
		t.Fatalf("restored stack size = %d, want 3", restored.stack.Size())
	}
	top, _ := restored.stack.Top()
	if top.Kind != KindCustom || top.Name != "my-widget" {
		t.Fatalf("restored top = %v, want custom my-widget", top)
	}
	if string(restored.suffix.Bytes()) != "block1" {
		t.Fatalf("restored suffix = %q, want %q", restored.suffix.Bytes(), "block1")
	}
}

func TestDeserializeEmptyResetsScanner(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindDiv})
	s.suffix.Set([]byte("x"))

	s.Deserialize(nil)
	if s.stack.Size() != 0 {
		t.Fatalf("stack size after Deserialize(nil) = %d, want 0", s.stack.Size())
	}
	if s.suffix.Len() != 0 {
		t.Fatalf("suffix len after Deserialize(nil) = %d, want 0", s.suffix.Len())
	}
}

func TestSerializeOverflowPreservesLogicalDepth(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.stack.Push(Tag{Kind: KindDiv})
	}

	// Buffer far too small to hold every tag, but large enough for the
	// suffix byte and the count header.
	buf := make([]byte, 5)
	n := s.Serialize(buf)

	restored := New()
	restored.Deserialize(buf[:n])
	if restored.stack.Size() != 10 {
		t.Fatalf("restored stack size = %d, want 10 (logical depth preserved via placeholders)", restored.stack.Size())
	}
}

func TestDeserializeCheckedTruncatedSuffix(t *testing.T) {
	s := New()
	buf := []byte{5, 'a', 'b'} // claims 5 suffix bytes, only 2 present
	if err := s.DeserializeChecked(buf); err == nil {
		t.Fatal("expected error for truncated suffix")
	}
}

func TestDeserializeCheckedNoRoomForCounts(t *testing.T) {
	s := New()
	buf := []byte{0, 1, 2} // suffix len 0, then only 2 bytes for a 4-byte count header
	if err := s.DeserializeChecked(buf); err == nil {
		t.Fatal("expected error for missing count header")
	}
}

func TestDeserializeCheckedOverflowNotice(t *testing.T) {
	s := New()
	for i := 0; i < 10; i++ {
		s.stack.Push(Tag{Kind: KindDiv})
	}
	buf := make([]byte, 5)
	n := s.Serialize(buf)

	restored := New()
	err := restored.DeserializeChecked(buf[:n])
	if err == nil {
		t.Fatal("expected a non-nil notice when logical_tag_count exceeds serialized_tag_count")
	}
}

func TestDeserializeCheckedExactRoundTripIsClean(t *testing.T) {
	s := New()
	s.stack.Push(Tag{Kind: KindP})
	buf := make([]byte, SerializationBufferSize)
	n := s.Serialize(buf)

	restored := New()
	if err := restored.DeserializeChecked(buf[:n]); err != nil {
		t.Fatalf("DeserializeChecked on a clean buffer returned error: %v", err)
	}
}
