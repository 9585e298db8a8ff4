package toml

// =========================
// Composite Parsing
// =========================

// getValue dispatches on the first character of a value. Arrays and inline
// tables recurse back into it; the depth counter bounds that recursion.
func (p *parser) getValue() (Node, error) {
	if p.depth >= p.opts.MaxDepth {
		return nil, p.errf(ErrDepthExceeded, "value nesting exceeds %d levels", p.opts.MaxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	switch c := p.cur.peek(0); {
	case c == '"' || c == '\'':
		return p.parseString()
	case c == '[':
		return p.parseArray()
	case c == '{':
		return p.parseInlineTable()
	case c == 't' || c == 'f':
		return p.parseBool()
	case c == '+' || c == '-' || c == '.' || c == '_' || (c >= '0' && c <= '9'):
		return p.parseNumberOrDate()
	case c == eof || c == '\n' || c == '\r':
		return nil, p.errf(ErrInvalidPrimitive, "missing value")
	default:
		return nil, p.errf(ErrInvalidPrimitive, "unexpected character %q", string(c))
	}
}

// parseArray consumes a bracketed array with the cursor at '['. Whitespace,
// newlines and comments between elements are skipped and trailing commas are
// tolerated. The first element establishes the type unless MixedTypes is
// set.
func (p *parser) parseArray() (Node, error) {
	p.cur.advance(1)
	arr := &Array{}
	for {
		p.skipIgnored(true)
		if p.cur.atEnd() {
			return nil, p.errf(ErrMismatchedBrackets, "unterminated array")
		}
		if p.cur.peek(0) == ']' {
			p.cur.advance(1)
			return arr, nil
		}

		elem, err := p.getValue()
		if err != nil {
			return nil, err
		}
		if len(arr.Elems) > 0 && !p.opts.MixedTypes && !sameElemKind(arr.Elems[0], elem) {
			return nil, p.errf(ErrMixedTypesInArray, "array elements must share one type")
		}
		arr.Elems = append(arr.Elems, elem)

		p.skipIgnored(true)
		switch p.cur.peek(0) {
		case ',':
			p.cur.advance(1)
		case ']':
			p.cur.advance(1)
			return arr, nil
		case eof:
			return nil, p.errf(ErrMismatchedBrackets, "unterminated array")
		default:
			return nil, p.errf(ErrInvalidPrimitive, "expected ',' or ']' after array element")
		}
	}
}

// parseInlineTable consumes a single-line { k = v, ... } literal with the
// cursor at '{'. A raw line break before the closing brace is fatal.
func (p *parser) parseInlineTable() (Node, error) {
	p.cur.advance(1)
	tbl := NewTable()
	for {
		p.skipInline()
		switch c := p.cur.peek(0); c {
		case '\n', '\r':
			return nil, p.errf(ErrNewlineInInlineTable, "inline tables are single-line")
		case eof:
			return nil, p.errf(ErrMismatchedBrackets, "unterminated inline table")
		case '}':
			p.cur.advance(1)
			return tbl, nil
		}

		seg, quoted, err := p.scanKeySegment()
		if err != nil {
			return nil, err
		}
		if seg == "" && !quoted {
			return nil, p.errf(ErrEmptyKeyName, "empty key in inline table")
		}

		p.skipInline()
		if p.cur.peek(0) != '=' {
			return nil, p.errf(ErrInvalidPrimitive, "expected '=' after inline table key %q", seg)
		}
		p.cur.advance(1)
		p.skipInline()
		if c := p.cur.peek(0); c == '\n' || c == '\r' {
			return nil, p.errf(ErrNewlineInInlineTable, "inline tables are single-line")
		}

		val, err := p.getValue()
		if err != nil {
			return nil, err
		}
		if err := p.insert(tbl, seg, val); err != nil {
			return nil, err
		}

		p.skipInline()
		switch p.cur.peek(0) {
		case ',':
			p.cur.advance(1)
		case '}':
			p.cur.advance(1)
			return tbl, nil
		case '\n', '\r':
			return nil, p.errf(ErrNewlineInInlineTable, "inline tables are single-line")
		case eof:
			return nil, p.errf(ErrMismatchedBrackets, "unterminated inline table")
		default:
			return nil, p.errf(ErrInvalidPrimitive, "expected ',' or '}' in inline table")
		}
	}
}
