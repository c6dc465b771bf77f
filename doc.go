// Package scanner implements the external lexical scanner for the
// htmldjango tree-sitter grammar: a mixed HTML + Django template
// language.
//
// The scanner cooperates with a GLR-style incremental parser at points
// where the context-free grammar cannot decide between ambiguous or
// context-sensitive tokens. It owns the only mutable state visible to
// incremental parsing: an open-element stack (driving HTML's implicit
// end-tag behavior and foreign-content rules) and a verbatim-suffix
// buffer (the dynamic terminator for {% verbatim %} blocks).
//
// The grammar productions, tag evaluation, CLI, and highlighting
// queries are out of scope here; the parser host is described only by
// the Cursor and ValiditySet types in this package.
package scanner
