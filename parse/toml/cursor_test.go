package toml

import "testing"

func TestCursor(t *testing.T) {
	c := &cursor{input: "ab\ncd\ne"}

	if c.peek(0) != 'a' || c.peek(1) != 'b' {
		t.Error("peek at start")
	}
	if c.peek(100) != eof {
		t.Error("peek past end should be eof")
	}

	c.advance(3)
	if c.peek(0) != 'c' {
		t.Errorf("after advance got %q", c.peek(0))
	}
	if c.atEnd() {
		t.Error("not at end yet")
	}

	c.advance(100)
	if !c.atEnd() {
		t.Error("advance clamps at end")
	}
	if c.peek(0) != eof {
		t.Error("peek at end should be eof")
	}
}

func TestCursorLineOf(t *testing.T) {
	c := &cursor{input: "ab\ncd\ne"}

	tests := []struct {
		pos  int
		line int
	}{
		{0, 1},
		{2, 1},  // the newline itself still belongs to line 1
		{3, 2},  // first char after it
		{5, 2},
		{6, 3},
		{99, 3}, // clamped
	}
	for _, tt := range tests {
		if got := c.lineOf(tt.pos); got != tt.line {
			t.Errorf("lineOf(%d) = %d, want %d", tt.pos, got, tt.line)
		}
	}

	c.pos = 4
	if c.line() != 2 {
		t.Errorf("line() = %d, want 2", c.line())
	}
}
