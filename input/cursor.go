// Package input provides an immutable cursor over an in-memory string.
package input

import "unicode/utf8"

// Cursor is a position in an input string. Cursors are values: advancing
// returns a new cursor and never mutates the receiver. Offsets are byte
// offsets into the underlying string, so input[c.Offset():] is always an
// exact slice. Lines and columns are 1-based; every codepoint counts as one
// column, and "\r\n" counts as a single newline.
type Cursor struct {
	src  string
	off  int
	line int
	col  int
}

// NewCursor returns a cursor at the start of src.
func NewCursor(src string) Cursor {
	return Cursor{src: src, line: 1, col: 1}
}

// Peek returns the codepoint at the cursor without advancing.
// The second result is false at end of input.
func (c Cursor) Peek() (rune, bool) {
	if c.off >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.off:])
	return r, true
}

// Advance returns the cursor moved past one codepoint.
// At end of input it returns the cursor unchanged.
func (c Cursor) Advance() Cursor {
	if c.off >= len(c.src) {
		return c
	}
	r, size := utf8.DecodeRuneInString(c.src[c.off:])
	c.off += size
	switch {
	case r == '\n':
		c.line++
		c.col = 1
	case r == '\r' && c.off < len(c.src) && c.src[c.off] == '\n':
		// part of a \r\n pair; the \n does the line accounting
	default:
		c.col++
	}
	return c
}

// Offset returns the byte offset into the input.
func (c Cursor) Offset() int { return c.off }

// Line returns the 1-based line number.
func (c Cursor) Line() int { return c.line }

// Column returns the 1-based column number.
func (c Cursor) Column() int { return c.col }

// AtEOF reports whether the cursor is at end of input.
func (c Cursor) AtEOF() bool { return c.off >= len(c.src) }

// StringTo returns the input text between c and end, which must be a later
// cursor over the same input.
func (c Cursor) StringTo(end Cursor) string {
	if end.off < c.off || end.off > len(c.src) {
		return ""
	}
	return c.src[c.off:end.off]
}
