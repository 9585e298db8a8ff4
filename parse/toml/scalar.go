package toml

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// =========================
// Scalar Parsing
// =========================

// parseString consumes a quoted string starting at the opening quote. Three
// identical quote characters open a multiline string. Double quotes process
// backslash escapes; single quotes are literal.
func (p *parser) parseString() (Node, error) {
	quote := p.cur.peek(0)
	multiline := p.cur.peek(1) == quote && p.cur.peek(2) == quote
	if multiline {
		p.cur.advance(3)
		// a line break right after the opening triple quote is discarded
		if p.cur.peek(0) == '\r' && p.cur.peek(1) == '\n' {
			p.cur.advance(2)
		} else if p.cur.peek(0) == '\n' {
			p.cur.advance(1)
		}
	} else {
		p.cur.advance(1)
	}

	var b strings.Builder
	for {
		if p.cur.atEnd() {
			return nil, p.errf(ErrUnterminatedString, "missing closing %q", string(quote))
		}
		c := p.cur.peek(0)
		if c == quote {
			if !multiline {
				p.cur.advance(1)
				break
			}
			if p.cur.peek(1) == quote && p.cur.peek(2) == quote {
				p.cur.advance(3)
				break
			}
		}
		if !multiline && (c == '\n' || c == '\r') {
			return nil, p.errf(ErrUnterminatedString, "line break before closing %q", string(quote))
		}
		if quote == '"' && c == '\\' {
			next := p.cur.peek(1)
			if multiline && (next == '\n' || (next == '\r' && p.cur.peek(2) == '\n')) {
				// line continuation: drop everything up to the next
				// non-whitespace character
				p.cur.advance(1)
				for {
					c := p.cur.peek(0)
					if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
						break
					}
					p.cur.advance(1)
				}
				continue
			}
			if err := p.decodeEscape(&b); err != nil {
				return nil, err
			}
			continue
		}
		b.WriteByte(c)
		p.cur.advance(1)
	}
	return &Value{Type: ValueString, V: b.String()}, nil
}

// decodeEscape resolves one backslash escape with the cursor at the
// backslash.
func (p *parser) decodeEscape(b *strings.Builder) error {
	switch esc := p.cur.peek(1); esc {
	case 'b':
		b.WriteByte('\b')
	case 't':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case '/':
		b.WriteByte('/')
	case 'u':
		return p.decodeUnicodeEscape(b, 4)
	case 'U':
		return p.decodeUnicodeEscape(b, 8)
	case eof:
		return p.errf(ErrUnterminatedString, "input ends inside escape sequence")
	default:
		return p.errf(ErrInvalidEscape, `unknown escape '\%s'`, string(esc))
	}
	p.cur.advance(2)
	return nil
}

// decodeUnicodeEscape resolves \uXXXX or \UXXXXXXXX into the UTF-8 encoding
// of the escaped scalar. Surrogates and values beyond the unicode range are
// rejected.
func (p *parser) decodeUnicodeEscape(b *strings.Builder, digits int) error {
	start := p.cur.pos + 2
	if start+digits > len(p.cur.input) {
		return p.errf(ErrInvalidUnicodeEscape, "truncated unicode escape")
	}
	hex := p.cur.input[start : start+digits]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return p.errf(ErrInvalidUnicodeEscape, "invalid hex digits %q", hex)
	}
	// range-check before converting: rune(v) would wrap values past int32
	if v > unicode.MaxRune || (v >= 0xD800 && v <= 0xDFFF) {
		return p.errf(ErrInvalidUnicodeEscape, "%#x is not a unicode scalar value", v)
	}
	b.WriteRune(rune(v))
	p.cur.advance(2 + digits)
	return nil
}

// parseBool consumes a true/false literal.
func (p *parser) parseBool() (Node, error) {
	for _, lit := range [...]string{"true", "false"} {
		if strings.HasPrefix(p.cur.input[p.cur.pos:], lit) {
			p.cur.advance(len(lit))
			return &Value{Type: ValueBool, V: lit == "true"}, nil
		}
	}
	return nil, p.errf(ErrInvalidPrimitive, "expected boolean")
}

// isValueTerminator reports whether c ends a number or date token.
func isValueTerminator(c byte) bool {
	switch c {
	case ',', ']', '}', '#', '\n', '\r', ' ', '\t', eof:
		return true
	}
	return false
}

// parseNumberOrDate scans a maximal run of number characters. Seeing a 'T'
// or 'Z' switches to date mode, which consumes opaque text until a
// terminator; dates carry no calendar semantics. In numeric mode
// underscores are digit separators and the first 'e'/'E' starts an exponent
// buffer.
func (p *parser) parseNumberOrDate() (Node, error) {
	start := p.cur.pos
	var mantissa, exponent strings.Builder
	inExponent := false
	dateMode := false

	for !p.cur.atEnd() {
		c := p.cur.peek(0)
		if dateMode {
			if isValueTerminator(c) {
				break
			}
			p.cur.advance(1)
			continue
		}
		if c == 'T' || c == 'Z' {
			dateMode = true
			p.cur.advance(1)
			continue
		}
		if isValueTerminator(c) {
			break
		}
		if inExponent {
			if c == '+' || c == '-' || (c >= '0' && c <= '9') {
				exponent.WriteByte(c)
				p.cur.advance(1)
				continue
			}
			return nil, p.errf(ErrInvalidExponent, "unexpected character %q in exponent", string(c))
		}
		switch {
		case c == 'e' || c == 'E':
			inExponent = true
		case c == '_':
			// digit separator, dropped
		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			mantissa.WriteByte(c)
		default:
			return nil, p.errf(ErrInvalidNumber, "unexpected character %q in number", string(c))
		}
		p.cur.advance(1)
	}

	if dateMode {
		return &Value{Type: ValueDate, V: p.cur.input[start:p.cur.pos]}, nil
	}
	return p.finishNumber(mantissa.String(), exponent.String(), inExponent)
}

// finishNumber turns the accumulated buffers into an Integer or Float. A
// literal '.' in the mantissa selects Float; an exponent on an integer
// literal folds back to an exact integral value, failing when the product
// leaves int64 range.
func (p *parser) finishNumber(mantissa, exponent string, hasExponent bool) (Node, error) {
	if mantissa == "" {
		return nil, p.errf(ErrInvalidNumber, "empty number")
	}
	exp := 0
	if hasExponent {
		v, err := strconv.Atoi(exponent)
		if err != nil {
			return nil, p.errf(ErrInvalidExponent, "invalid exponent %q", exponent)
		}
		exp = v
	}
	if strings.Contains(mantissa, ".") {
		f, err := strconv.ParseFloat(mantissa, 64)
		if err != nil {
			return nil, p.errf(ErrInvalidNumber, "invalid float %q", mantissa)
		}
		if exp != 0 {
			f *= math.Pow10(exp)
		}
		return &Value{Type: ValueFloat, V: f}, nil
	}
	i, err := strconv.ParseInt(mantissa, 10, 64)
	if err != nil {
		return nil, p.errf(ErrInvalidNumber, "invalid integer %q", mantissa)
	}
	if hasExponent && i != 0 {
		// the product must stay in int64 range; the float64 conversion
		// would otherwise wrap silently
		f := math.Floor(float64(i) * math.Pow10(exp))
		if f >= math.MaxInt64 || f < math.MinInt64 {
			return nil, p.errf(ErrInvalidNumber, "integer %se%d out of range", mantissa, exp)
		}
		return &Value{Type: ValueInt, V: int64(f)}, nil
	}
	return &Value{Type: ValueInt, V: i}, nil
}
