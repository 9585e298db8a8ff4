// Package toml implements an ordered TOML document parser and encoder with
// deterministic semantics and typed, line-numbered errors.
//
// Scope:
// - Explicit AST (Table / Array / Value) preserving key order
// - Character-level scanning with typed parse errors
// - Dotted keys, quoted keys, table and array-of-tables headers
// - Multiline and literal strings, unicode escapes
// - Best-effort encoder back to TOML text
//
// Non-goals (by design):
// - Full TOML v1.0.0 (no native date type, no hex/octal/binary integers)
// - Comment preservation
// - Byte-exact formatting round-trip
//
// Parsing and encoding are synchronous single-threaded passes over an
// in-memory string; no I/O happens inside this package.
package toml

import "io"

// DefaultMaxDepth bounds value nesting when Options.MaxDepth is zero.
// Pathologically nested input fails with ErrDepthExceeded instead of
// exhausting the call stack.
const DefaultMaxDepth = 128

// Options configures one parse call. It is read-only for the duration of
// the call; there is no process-wide parser state.
type Options struct {
	// Strict makes duplicate keys and table redefinitions fatal.
	Strict bool
	// MixedTypes permits heterogeneous array element types.
	MixedTypes bool
	// PreserveOrder keeps one table entry per assignment. When false,
	// repeated assignments overwrite in place with no duplicate detection.
	PreserveOrder bool
	// MaxDepth bounds array/inline-table nesting; DefaultMaxDepth when zero.
	MaxDepth int
}

// DefaultOptions is the configuration used by tooling that has no reason to
// tolerate malformed input.
func DefaultOptions() Options {
	return Options{Strict: true, PreserveOrder: true, MaxDepth: DefaultMaxDepth}
}

// Parse reads all of r and parses it as one TOML document.
func Parse(r io.Reader, opts Options) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseString(string(data), opts)
}

// ParseString parses a TOML document and returns its root table. On failure
// the result is nil and the error is a *ParseError carrying the kind and the
// 1-based line of the failure; no partial document is returned.
func ParseString(input string, opts Options) (*Table, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	p := &parser{
		cur:  &cursor{input: input},
		opts: opts,
		root: NewTable(),
	}
	p.tbl = p.root
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.root, nil
}
