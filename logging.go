package scanner

import "github.com/juju/loggo"

// logger is the package's loggo logger. loggo's default root logger
// level is WARNING, so Traced emits nothing unless a host explicitly
// raises the "scanner" module's level — the core Scanner itself never
// touches this logger at all (spec.md §7: "the scanner never ...
// logs").
var logger = loggo.GetLogger("scanner")

// Traced wraps a *Scanner and logs one debug line per Scan call
// (accepted token or no match), without changing scanning behavior at
// all. It exists purely as an
// opt-in diagnostic aid for hosts debugging incremental-reparse
// sessions; nothing in this package's own sub-scanners depends on it.
type Traced struct {
	*Scanner
}

// NewTraced wraps s for logging. Passing the result anywhere a
// *Scanner is expected requires using the embedded Scanner directly
// (Traced only adds a logging Scan wrapper, it does not re-implement
// the Cursor/ValiditySet contract).
func NewTraced(s *Scanner) *Traced {
	return &Traced{Scanner: s}
}

// Scan calls the wrapped Scanner's Scan and logs the outcome at debug
// level: accepted token kind and the resulting stack depth, or a
// one-line "no match" notice on failure. The log call happens
// synchronously after Scan returns, on the same goroutine (spec.md §5:
// no suspension points inside a scan call, and this wrapper does not
// introduce any).
func (t *Traced) Scan(c Cursor, valid ValiditySet) (TokenKind, bool) {
	kind, ok := t.Scanner.Scan(c, valid)
	if !ok {
		logger.Debugf("scan: no match (stack depth %d)", t.Scanner.stack.Size())
		return kind, ok
	}
	logger.Debugf("scan: accepted %s (stack depth %d)", kind, t.Scanner.stack.Size())
	return kind, ok
}
