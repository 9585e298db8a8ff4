package toml

import "fmt"

// =========================
// Parse Errors
// =========================

// ErrorKind classifies a parse failure.
type ErrorKind uint8

const (
	ErrUnterminatedString ErrorKind = iota + 1
	ErrInvalidEscape
	ErrInvalidUnicodeEscape
	ErrInvalidNumber
	ErrInvalidExponent
	ErrInvalidPrimitive
	ErrEmptyKeyName
	ErrDuplicateKey
	ErrTableRedefinition
	ErrMismatchedBrackets
	ErrNewlineInInlineTable
	ErrMixedTypesInArray
	ErrDepthExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnterminatedString:
		return "unterminated string"
	case ErrInvalidEscape:
		return "invalid escape"
	case ErrInvalidUnicodeEscape:
		return "invalid unicode escape"
	case ErrInvalidNumber:
		return "invalid number"
	case ErrInvalidExponent:
		return "invalid exponent"
	case ErrInvalidPrimitive:
		return "invalid primitive"
	case ErrEmptyKeyName:
		return "empty key name"
	case ErrDuplicateKey:
		return "duplicate key"
	case ErrTableRedefinition:
		return "table redefinition"
	case ErrMismatchedBrackets:
		return "mismatched brackets"
	case ErrNewlineInInlineTable:
		return "newline in inline table"
	case ErrMixedTypesInArray:
		return "mixed types in array"
	case ErrDepthExceeded:
		return "nesting depth exceeded"
	}
	return "unknown error"
}

// ParseError reports a parse failure tied to a 1-based line number of the
// input. The parser always returns it to the caller; it never aborts the
// process on its own.
type ParseError struct {
	Kind ErrorKind
	Msg  string
	Line int
}

func (e *ParseError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("toml:%d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("toml:%d: %s: %s", e.Line, e.Kind, e.Msg)
}
