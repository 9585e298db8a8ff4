package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// =========================
// Parser Implementation
// =========================

type parser struct {
	cur   *cursor
	opts  Options
	root  *Table
	tbl   *Table // active write target
	depth int
}

func (p *parser) errf(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: p.cur.line()}
}

// parse runs the top-level loop: skip blanks and comments, hand '[' lines to
// the header parser, treat everything else as a key=value line writing into
// the active target. The loop ends at end of input.
func (p *parser) parse() error {
	for {
		p.skipIgnored(true)
		if p.cur.atEnd() {
			return nil
		}
		if p.cur.peek(0) == '[' {
			if err := p.parseTableHeader(); err != nil {
				return err
			}
			continue
		}
		if err := p.parseKeyValue(); err != nil {
			return err
		}
	}
}

func (p *parser) parseKeyValue() error {
	parts, err := p.scanKeyPath()
	if err != nil {
		return err
	}

	p.skipInline()
	val, err := p.getValue()
	if err != nil {
		return err
	}

	target := p.tbl
	for _, part := range parts[:len(parts)-1] {
		target, err = p.descendTable(target, part)
		if err != nil {
			return err
		}
	}
	if err := p.insert(target, parts[len(parts)-1], val); err != nil {
		return err
	}
	return p.expectLineEnd()
}

// scanKeyPath accumulates dotted key segments up to and including the '='.
func (p *parser) scanKeyPath() ([]string, error) {
	var parts []string
	for {
		p.skipInline()
		seg, quoted, err := p.scanKeySegment()
		if err != nil {
			return nil, err
		}
		if seg == "" && !quoted {
			return nil, p.errf(ErrEmptyKeyName, "empty key")
		}
		if !quoted {
			seg = normalizeBareKey(seg)
		}
		parts = append(parts, seg)

		p.skipInline()
		switch p.cur.peek(0) {
		case '.':
			p.cur.advance(1)
		case '=':
			p.cur.advance(1)
			return parts, nil
		default:
			return nil, p.errf(ErrInvalidPrimitive, "expected '=' after key")
		}
	}
}

// scanKeySegment reads one bare or quoted key segment. Quoted segments may
// contain dots without being split; double-quoted segments resolve the \"
// and \\ escapes the encoder emits, everything else is literal.
func (p *parser) scanKeySegment() (string, bool, error) {
	if c := p.cur.peek(0); c == '"' || c == '\'' {
		quote := c
		p.cur.advance(1)
		var b strings.Builder
		for {
			c := p.cur.peek(0)
			if c == eof || c == '\n' || c == '\r' {
				return "", true, p.errf(ErrUnterminatedString, "missing closing %q in key", string(quote))
			}
			if quote == '"' && c == '\\' {
				if next := p.cur.peek(1); next == '"' || next == '\\' {
					b.WriteByte(next)
					p.cur.advance(2)
					continue
				}
			}
			if c == quote {
				p.cur.advance(1)
				return b.String(), true, nil
			}
			b.WriteByte(c)
			p.cur.advance(1)
		}
	}

	start := p.cur.pos
	for !isBareKeyTerminator(p.cur.peek(0)) {
		p.cur.advance(1)
	}
	return p.cur.input[start:p.cur.pos], false, nil
}

func isBareKeyTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '=', '.', '[', ']', '{', '}', ',', '#', eof:
		return true
	}
	return false
}

// normalizeBareKey runs digit-only bare keys through integer conversion, so
// "007" and "7" address the same entry. Quoted keys keep their exact text.
func normalizeBareKey(seg string) string {
	for i := 0; i < len(seg); i++ {
		if seg[i] < '0' || seg[i] > '9' {
			return seg
		}
	}
	if n, err := strconv.ParseInt(seg, 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	return seg
}

// insert applies the configured duplicate-key policy. Ordered mode appends
// (strict parses fail instead on a repeat; non-strict ones retain both
// entries and lookups see the newest); unordered mode is a plain last-write-
// wins write with no duplicate detection.
func (p *parser) insert(t *Table, key string, n Node) error {
	if !p.opts.PreserveOrder {
		t.Set(key, n)
		return nil
	}
	if t.Has(key) && p.opts.Strict {
		return p.errf(ErrDuplicateKey, "duplicate key %q", key)
	}
	t.Append(key, n)
	return nil
}

// expectLineEnd rejects non-whitespace, non-comment content between a value
// and the end of its line.
func (p *parser) expectLineEnd() error {
	p.skipInline()
	c := p.cur.peek(0)
	if c == '#' {
		for !p.cur.atEnd() && p.cur.peek(0) != '\n' {
			p.cur.advance(1)
		}
		return nil
	}
	if c == eof || c == '\n' || (c == '\r' && p.cur.peek(1) == '\n') {
		return nil
	}
	return p.errf(ErrInvalidPrimitive, "unexpected content %q after value", string(c))
}

// skipIgnored advances over whitespace and #-comments, and over line breaks
// when newlines is set.
func (p *parser) skipIgnored(newlines bool) {
	for !p.cur.atEnd() {
		switch c := p.cur.peek(0); {
		case c == ' ' || c == '\t':
			p.cur.advance(1)
		case newlines && (c == '\n' || c == '\r'):
			p.cur.advance(1)
		case c == '#':
			for !p.cur.atEnd() && p.cur.peek(0) != '\n' {
				p.cur.advance(1)
			}
		default:
			return
		}
	}
}

// skipInline advances over spaces and tabs only.
func (p *parser) skipInline() {
	for {
		c := p.cur.peek(0)
		if c != ' ' && c != '\t' {
			return
		}
		p.cur.advance(1)
	}
}
