package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Source is the immutable text being tokenized. It is shared by pointer between every Cursor derived from it.
type Source struct {
	text string
}

// NewSource wraps text for tokenization. The text is never modified.
func NewSource(text string) *Source {
	return &Source{text: text}
}

// Text returns the full source text. A nil Source has empty text.
func (s *Source) Text() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Start returns the cursor at offset 0.
func (s *Source) Start() Cursor {
	return Cursor{src: s}
}

// PositionAt replays the source from the start and returns the cursor at the given byte offset.
// Offsets that fall inside a multi-byte character resolve to the end of that character.
func (s *Source) PositionAt(offset int) Cursor {
	c := s.Start()
	for c.Offset < offset && !c.AtEnd() {
		c = c.Advance()
	}
	return c
}

// Cursor is a position within a Source. Cursors are values: every operation returns a new
// Cursor and never modifies the receiver, so any number of them can be held and resumed from.
type Cursor struct {
	src *Source

	// Offset is the position of the cursor in bytes relative to the start of the source text.
	Offset int

	// Line and Column are zero-based. Column counts characters, not bytes.
	Line   int
	Column int
}

// Source returns the source the cursor points into.
func (c Cursor) Source() *Source { return c.src }

// Peek returns the character under the cursor. The bool is false past the end of the text.
func (c Cursor) Peek() (rune, bool) {
	text := c.src.Text()
	if c.Offset >= len(text) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(text[c.Offset:])
	return r, true
}

// PeekAt returns the character n positions ahead of the cursor without advancing.
func (c Cursor) PeekAt(n int) (rune, bool) {
	return c.AdvanceBy(n).Peek()
}

// AtEnd is true when no characters remain after the cursor.
func (c Cursor) AtEnd() bool {
	_, ok := c.Peek()
	return !ok
}

// Advance moves past the current character. Leaving a newline starts the next line.
// At the end of the text the cursor is returned unchanged.
func (c Cursor) Advance() Cursor {
	text := c.src.Text()
	if c.Offset >= len(text) {
		return c
	}
	r, size := utf8.DecodeRuneInString(text[c.Offset:])
	c.Offset += size
	if r == '\n' {
		c.Line++
		c.Column = 0
	} else {
		c.Column++
	}
	return c
}

// AdvanceBy advances n characters, stopping at the end of the text.
func (c Cursor) AdvanceBy(n int) Cursor {
	for i := 0; i < n; i++ {
		c = c.Advance()
	}
	return c
}

// Fail returns a LexError of the given kind located at the cursor.
// Detail is appended to the kind's message when non-empty.
func (c Cursor) Fail(kind error, detail string) *LexError {
	msg := kind.Error()
	if detail != "" {
		msg += " " + detail
	}
	return &LexError{Err: kind, Message: msg, Line: c.Line, Column: c.Column, Cursor: c}
}

// String formats the cursor as line:column.
func (c Cursor) String() string {
	return fmt.Sprintf("%d:%d", c.Line, c.Column)
}

// slice returns the source text between two cursors over the same source.
func (c Cursor) slice(end Cursor) string {
	return c.src.Text()[c.Offset:end.Offset]
}
