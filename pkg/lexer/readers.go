package lexer

import (
	"strconv"
	"strings"
)

// ReadWhile consumes characters while pred holds and returns the consumed text.
func ReadWhile(c Cursor, pred func(rune) bool) (string, Cursor) {
	start := c
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c = c.Advance()
	}
	return start.slice(c), c
}

// ReadNumber consumes digits with at most one decimal point. A second point ends the number
// and is left for the next token, so "12.34.4" reads as 12.34 followed by ".4".
// A trailing point with no digits after it ("12.") is part of the number.
func ReadNumber(c Cursor) (Token, Cursor) {
	var seenDot bool
	text, end := ReadWhile(c, func(r rune) bool {
		if r == '.' {
			if seenDot {
				return false
			}
			seenDot = true
			return true
		}
		return IsDigit(r)
	})

	// Only digits and one dot can reach this point, so the only possible error is ErrRange (value is ±Inf).
	val, _ := strconv.ParseFloat(text, 64)
	return Token{Kind: Number, Text: text, Number: val, Start: c, End: end}, end
}

// ReadIdentifier expects the cursor to be at an identifier-start character.
func ReadIdentifier(c Cursor) (Token, Cursor) {
	text, end := ReadWhile(c, IsIdentifierPart)
	return Token{Kind: Identifier, Text: text, Start: c, End: end}, end
}

// ReadString expects the cursor to be at the opening delimiter. A backslash causes the next character
// to be taken literally (the backslash itself is dropped).
func ReadString(c Cursor, delim rune) (Token, Cursor, error) {
	start := c
	c = c.Advance()

	var (
		buf     strings.Builder
		escaped bool
	)
	for {
		r, ok := c.Peek()
		if !ok {
			return Token{}, c, c.Fail(ErrUnterminatedString, "")
		}
		c = c.Advance()

		switch {
		case escaped:
			buf.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == delim:
			return Token{Kind: String, Text: buf.String(), Start: start, End: c}, c, nil
		default:
			buf.WriteRune(r)
		}
	}
}

// SkipLineComment expects the cursor to be at "//". The terminating newline is consumed.
func SkipLineComment(c Cursor) Cursor {
	_, c = ReadWhile(c, func(r rune) bool { return r != '\n' })
	return c.Advance()
}

// SkipBlockComment expects the cursor to be at "/*" and returns the cursor just past the closing "*/".
func SkipBlockComment(c Cursor) (Cursor, error) {
	c = c.AdvanceBy(2)
	for {
		r, ok := c.Peek()
		if !ok {
			return c, c.Fail(ErrUnterminatedBlockComment, "")
		}
		if r == '*' {
			if next, _ := c.PeekAt(1); next == '/' {
				return c.AdvanceBy(2), nil
			}
		}
		c = c.Advance()
	}
}
