package toml

import "strings"

// =========================
// Cursor
// =========================

const eof = byte(0)

// cursor tracks a byte position over the raw input. It has no side effects
// beyond position movement; line numbers are reconstructed on demand for
// diagnostics instead of being tracked incrementally.
type cursor struct {
	input string
	pos   int
}

// peek returns the byte at the given offset from the current position, or
// eof past the end of input.
func (c *cursor) peek(offset int) byte {
	i := c.pos + offset
	if i >= len(c.input) {
		return eof
	}
	return c.input[i]
}

func (c *cursor) advance(n int) {
	c.pos += n
	if c.pos > len(c.input) {
		c.pos = len(c.input)
	}
}

func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

// lineOf reports the 1-based line number of pos by counting line breaks up
// to it.
func (c *cursor) lineOf(pos int) int {
	if pos > len(c.input) {
		pos = len(c.input)
	}
	return strings.Count(c.input[:pos], "\n") + 1
}

// line reports the 1-based line number of the current position.
func (c *cursor) line() int {
	return c.lineOf(c.pos)
}
