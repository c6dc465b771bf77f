package scanner

import "github.com/juju/errors"

// ErrTruncatedState is returned by DeserializeChecked when buf does
// not contain enough bytes to restore every tag its own counts claim
// it holds — i.e. buf itself (not just a prior Serialize call) was
// cut short.
var ErrTruncatedState = errors.New("scanner: serialized state buffer is truncated")

// DeserializeChecked wraps Deserialize for hosts that want to know
// whether the restore was lossy, instead of Deserialize's silent
// best-effort degradation (spec.md §7 "suffix longer than 255 bytes at
// serialization -> truncate silently" accepts lossy Deserialize as the
// core contract; this is an additive convenience, not a replacement).
//
// It does not change what Deserialize restores — only whether the
// caller is told about it — so it is always safe to call
// DeserializeChecked wherever Deserialize would be called.
func (s *Scanner) DeserializeChecked(buf []byte) error {
	s.Deserialize(buf)

	if len(buf) == 0 {
		return nil
	}
	pos := 1 + int(buf[0])
	if pos > len(buf) {
		return errors.Annotatef(ErrTruncatedState, "suffix claims %d bytes, buffer has %d", buf[0], len(buf)-1)
	}
	if pos+4 > len(buf) {
		return errors.Annotatef(ErrTruncatedState, "no room for tag counts after suffix at offset %d", pos)
	}
	serialized := int(getU16(buf, pos))
	logical := int(getU16(buf, pos+2))
	if logical < serialized {
		return errors.Annotatef(ErrTruncatedState, "logical_tag_count %d < serialized_tag_count %d", logical, serialized)
	}
	p := pos + 4
	for i := 0; i < serialized; i++ {
		if p >= len(buf) {
			return errors.Annotatef(ErrTruncatedState, "buffer ends after %d of %d serialized tags", i, serialized)
		}
		kind := TagKind(buf[p])
		p++
		if kind == KindCustom {
			if p >= len(buf) || p+1+int(buf[p]) > len(buf) {
				return errors.Annotatef(ErrTruncatedState, "name of serialized tag %d is cut short", i)
			}
			p += 1 + int(buf[p])
		}
	}
	if logical > serialized {
		// Not an error in buf itself — this is the documented
		// overflow-recovery path (spec.md §4.17) — but the host asked
		// to be told, so surface it as a traced, non-fatal notice via
		// the same error value callers already check for.
		return errors.Trace(errors.Annotatef(ErrTruncatedState, "restored %d of %d open tags as placeholders", serialized, logical))
	}
	return nil
}
