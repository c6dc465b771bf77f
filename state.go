package scanner

// maxVerbatimSuffix is the maximum storable verbatim suffix length
// (spec.md §8 boundary behaviors, §4.17 serialization format: the wire
// format encodes the length in a single byte). The verbatim-start
// scanner rejects (fails) rather than truncates when a suffix would
// exceed this.
const maxVerbatimSuffix = 255

// VerbatimSuffix is a growable byte buffer holding the dynamic
// terminator suffix captured by the verbatim-start scanner (spec.md
// §3, §4.12, §4.13) — the canonical example in this scanner of a
// context-sensitive terminator that cannot be expressed in the
// context-free grammar.
type VerbatimSuffix struct {
	buf []byte
}

// Bytes returns the current suffix bytes. The returned slice aliases
// internal storage and must not be retained past the next mutating
// call.
func (v *VerbatimSuffix) Bytes() []byte {
	return v.buf
}

// Len returns the current suffix length.
func (v *VerbatimSuffix) Len() int {
	return len(v.buf)
}

// Append grows the suffix by one byte, doubling the underlying array
// via Go's append when capacity is exhausted. Returns false (and
// leaves the buffer unchanged) if growing would exceed
// maxVerbatimSuffix, mirroring an allocation-failure-style soft
// rejection (spec.md §7).
func (v *VerbatimSuffix) Append(b byte) bool {
	if len(v.buf) >= maxVerbatimSuffix {
		return false
	}
	v.buf = append(v.buf, b)
	return true
}

// TrimTrailingHorizontalSpace drops trailing ' ', '\t', '\r' bytes from
// the recorded suffix, per spec.md §4.12.
func (v *VerbatimSuffix) TrimTrailingHorizontalSpace() {
	n := len(v.buf)
	for n > 0 {
		switch v.buf[n-1] {
		case ' ', '\t', '\r':
			n--
			continue
		}
		break
	}
	v.buf = v.buf[:n]
}

// Clear empties the suffix. Called by the verbatim-content scanner on
// successful match and by Deserialize.
func (v *VerbatimSuffix) Clear() {
	v.buf = v.buf[:0]
}

// Set replaces the suffix contents wholesale (used by Deserialize).
func (v *VerbatimSuffix) Set(b []byte) {
	v.buf = append(v.buf[:0], b...)
}

// Scanner is the full mutable state the parser host manages across
// incremental edits: the open-element stack and the verbatim suffix
// buffer (spec.md §3). Scanner exclusively owns both; no references to
// its internals escape across the Cursor boundary.
//
// Scanner is strictly single-threaded and non-reentrant per parser
// instance (spec.md §5): one Scanner per parser, no internal
// concurrency, no suspension points inside Scan.
type Scanner struct {
	stack   ElementStack
	suffix  VerbatimSuffix
}

// New returns a zero-initialized scanner (spec.md §6 "create").
func New() *Scanner {
	return &Scanner{}
}

// Destroy releases the stack and verbatim buffer (spec.md §6
// "destroy"). Go's garbage collector reclaims the backing arrays once
// the Scanner itself is unreachable; Destroy exists to satisfy the
// five-operation contract explicitly and to make reuse-after-destroy a
// detectable bug rather than silent corruption.
func (s *Scanner) Destroy() {
	s.stack.tags = nil
	s.suffix.buf = nil
}

// Stack exposes the element stack for read access by callers that need
// to inspect scanner state (diagnostics, tests). Sub-scanners in this
// package mutate s.stack directly; external callers should treat the
// returned pointer as read-only.
func (s *Scanner) Stack() *ElementStack {
	return &s.stack
}
