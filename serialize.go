package scanner

// SerializationBufferSize is the capacity of the buffer the parser
// host provides to Serialize (spec.md §6, mirroring tree-sitter's
// TREE_SITTER_SERIALIZATION_BUFFER_SIZE contract). Serialize never
// writes more than this many bytes regardless of the buffer it is
// handed.
const SerializationBufferSize = 1024

// Serialize encodes the full scanner state into buf per spec.md
// §4.17's wire format and returns the number of bytes written.
//
//	offset 0: u8  verbatim_suffix_length (0..=255)
//	          verbatim_suffix_length bytes of suffix
//	then:     u16 serialized_tag_count
//	          u16 logical_tag_count (>= serialized)
//	          [per serialized tag]
//	              u8 kind
//	              if kind == KindCustom:
//	                  u8 name_length (0..=255)
//	                  name_length bytes of name
//
// If buf is too small to hold every open tag, Serialize drops trailing
// tags (the ones closest to the top of the stack) but always writes a
// correct prefix and correct counts: logical_tag_count always reflects
// the true open-element depth, even when serialized_tag_count is
// smaller. This is an accepted partial-failure mode (spec.md §4.17,
// §7) — it forces a cold reparse of the dropped region on the next
// edit rather than corrupting state.
func (s *Scanner) Serialize(buf []byte) int {
	pos := 0
	writeByte := func(b byte) bool {
		if pos >= len(buf) || pos >= SerializationBufferSize {
			return false
		}
		buf[pos] = b
		pos++
		return true
	}

	suffixLen := s.suffix.Len()
	if suffixLen > maxVerbatimSuffix {
		suffixLen = maxVerbatimSuffix
	}
	if !writeByte(byte(suffixLen)) {
		return pos
	}
	suffixBytes := s.suffix.Bytes()
	for i := 0; i < suffixLen; i++ {
		if !writeByte(suffixBytes[i]) {
			return pos
		}
	}

	countsPos := pos
	if !writeByte(0) || !writeByte(0) || !writeByte(0) || !writeByte(0) {
		// No room even for the count header: nothing further can be
		// expressed. Leave whatever partial count bytes were written;
		// Deserialize treats a short buffer as "stop cleanly".
		return pos
	}

	tags := s.stack.tags
	serializedCount := 0
	for _, tag := range tags {
		start := pos
		ok := writeByte(byte(tag.Kind))
		if ok && tag.Kind == KindCustom {
			nameLen := len(tag.Name)
			if nameLen > 255 {
				nameLen = 255
			}
			if writeByte(byte(nameLen)) {
				for i := 0; i < nameLen; i++ {
					if !writeByte(tag.Name[i]) {
						ok = false
						break
					}
				}
			} else {
				ok = false
			}
		}
		if !ok {
			pos = start
			break
		}
		serializedCount++
	}

	putU16(buf, countsPos, uint16(serializedCount))
	putU16(buf, countsPos+2, uint16(len(tags)))
	return pos
}

// Deserialize replaces scanner state wholesale from buf (spec.md §6,
// §4.17). It first frees the existing stack and suffix, then restores
// the suffix, then the tags. Length zero resets to a fresh scanner. On
// a truncated or malformed buffer it stops cleanly, leaving the
// scanner in a valid-but-possibly-lossy state rather than panicking —
// Deserialize itself reports nothing; use DeserializeChecked when the
// host wants to know whether the restore was lossy.
func (s *Scanner) Deserialize(buf []byte) {
	s.stack.reset()
	s.suffix.Clear()
	if len(buf) == 0 {
		return
	}

	pos := 0
	suffixLen := int(buf[pos])
	pos++
	if pos+suffixLen > len(buf) {
		avail := len(buf) - pos
		if avail > 0 {
			s.suffix.Set(buf[pos : pos+avail])
		}
		return
	}
	s.suffix.Set(buf[pos : pos+suffixLen])
	pos += suffixLen

	if pos+4 > len(buf) {
		return
	}
	serializedCount := int(getU16(buf, pos))
	pos += 2
	logicalCount := int(getU16(buf, pos))
	pos += 2

	restored := 0
	for restored < serializedCount && pos < len(buf) {
		kind := TagKind(buf[pos])
		pos++
		tag := Tag{Kind: kind}
		if kind == KindCustom {
			if pos >= len(buf) {
				break
			}
			nameLen := int(buf[pos])
			pos++
			if pos+nameLen > len(buf) {
				break
			}
			tag.Name = string(buf[pos : pos+nameLen])
			pos += nameLen
		}
		s.stack.Push(tag)
		restored++
	}

	// logical_tag_count may exceed what was actually serialized
	// (buffer overflow on the previous Serialize); restore the
	// missing depth as empty placeholders, preserving stack depth
	// while losing their identity — an accepted partial-failure mode.
	for i := restored; i < logicalCount; i++ {
		s.stack.Push(Tag{Kind: KindCustom})
	}
}

func putU16(buf []byte, pos int, v uint16) {
	if pos < 0 || pos+2 > len(buf) {
		return
	}
	buf[pos] = byte(v)
	buf[pos+1] = byte(v >> 8)
}

func getU16(buf []byte, pos int) uint16 {
	return uint16(buf[pos]) | uint16(buf[pos+1])<<8
}
