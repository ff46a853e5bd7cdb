package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorAdvance(t *testing.T) {
	src := NewSource("ab\ncd")
	c := src.Start()
	assert.Equal(t, 0, c.Offset)

	expected := []struct{ Offset, Line, Column int }{
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{5, 1, 2},
	}
	for _, exp := range expected {
		c = c.Advance()
		assert.Equal(t, exp.Offset, c.Offset)
		assert.Equal(t, exp.Line, c.Line)
		assert.Equal(t, exp.Column, c.Column)
	}
	assert.True(t, c.AtEnd())

	// Advancing past the end is a no-op
	assert.Equal(t, c, c.Advance())
}

func TestCursorPeekIsPure(t *testing.T) {
	src := NewSource("hello world")
	c := src.Start()

	r1, ok1 := c.Peek()
	r2, ok2 := c.Peek()
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, 'h', r1)
	assert.Equal(t, r1, r2)
	assert.Equal(t, src.Start(), c)

	next := c.Advance()
	r, _ := next.Peek()
	assert.Equal(t, 'e', r)

	// The original cursor is still usable
	r, _ = c.Peek()
	assert.Equal(t, 'h', r)
}

func TestCursorPeekAt(t *testing.T) {
	c := NewSource("/*").Start()
	r, ok := c.PeekAt(1)
	assert.True(t, ok)
	assert.Equal(t, '*', r)

	_, ok = c.PeekAt(2)
	assert.False(t, ok)
}

func TestCursorMultibyte(t *testing.T) {
	c := NewSource("é\nx").Start()
	r, _ := c.Peek()
	assert.Equal(t, 'é', r)

	c = c.Advance()
	assert.Equal(t, 2, c.Offset)
	assert.Equal(t, 1, c.Column)

	c = c.Advance()
	assert.Equal(t, 3, c.Offset)
	assert.Equal(t, 1, c.Line)
	assert.Equal(t, 0, c.Column)
}

func TestCursorAdvanceBy(t *testing.T) {
	src := NewSource("one\ntwo\nthree")
	c := src.Start()
	assert.Equal(t, c.Advance().Advance().Advance().Advance().Advance(), c.AdvanceBy(5))

	empty := NewSource("")
	assert.Equal(t, empty.Start(), empty.Start().AdvanceBy(3))
}

func TestSourcePositionAt(t *testing.T) {
	src := NewSource("one\ntwo\nthree")
	c := src.PositionAt(9)
	assert.Equal(t, src.Start().AdvanceBy(9), c)
	assert.Equal(t, 2, c.Line)
	assert.Equal(t, 1, c.Column)

	// Clamped to the end of the text
	end := src.PositionAt(100)
	assert.True(t, end.AtEnd())
	assert.Equal(t, len(src.Text()), end.Offset)
}

func TestZeroCursor(t *testing.T) {
	var c Cursor
	assert.True(t, c.AtEnd())
	assert.Equal(t, c, c.Advance())
	assert.Equal(t, "", (*Source)(nil).Text())
}

func TestCursorFail(t *testing.T) {
	c := NewSource("ab\ncd").Start().AdvanceBy(4)
	err := c.Fail(ErrUnrecognizedCharacter, "'d'")

	assert.Equal(t, 1, err.Line)
	assert.Equal(t, 1, err.Column)
	assert.Equal(t, c, err.Cursor)
	assert.Equal(t, "unrecognized character 'd' at line 1, column 1", err.Error())
	assert.True(t, errors.Is(err, ErrUnrecognizedCharacter))

	var lexErr *LexError
	require.True(t, errors.As(error(err), &lexErr))
	assert.Equal(t, ErrUnrecognizedCharacter, lexErr.Err)
	assert.Equal(t, "1:1", c.String())
}
