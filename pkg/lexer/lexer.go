package lexer

import (
	"fmt"
	"iter"
)

// NextToken skips whitespace and comments and reads the token that starts at the cursor.
// The returned token has EOF set when the end of the text has been reached.
// On error the returned cursor is where the failure was detected.
func NextToken(c Cursor) (Token, Cursor, error) {
	for {
		_, c = ReadWhile(c, IsWhitespace)

		r, ok := c.Peek()
		if !ok {
			return Token{EOF: true, Start: c, End: c}, c, nil
		}
		next, _ := c.PeekAt(1)

		switch {
		case r == '/' && next == '/':
			c = SkipLineComment(c)
			continue

		case r == '/' && next == '*':
			var err error
			if c, err = SkipBlockComment(c); err != nil {
				return Token{}, c, err
			}
			continue

		case IsPunctuation(r):
			end := c.Advance()
			return Token{Kind: Punctuation, Text: string(r), Start: c, End: end}, end, nil

		case r == '\'' || r == '"':
			return ReadString(c, r)

		case IsDigit(r):
			tok, end := ReadNumber(c)
			return tok, end, nil

		case IsIdentifierStart(r):
			tok, end := ReadIdentifier(c)
			return tok, end, nil

		case IsOperatorSymbol(r):
			text, end := ReadWhile(c, IsOperatorSymbol)
			return Token{Kind: Operator, Text: text, Start: c, End: end}, end, nil
		}

		return Token{}, c, c.Fail(ErrUnrecognizedCharacter, fmt.Sprintf("%q", r))
	}
}

// Stream reads tokens one at a time from a source. Once it has returned EOF or an error it keeps returning it.
type Stream struct {
	cursor Cursor
	last   Token
	err    error
	done   bool
}

func NewStream(src *Source) *Stream {
	return &Stream{cursor: src.Start()}
}

// Next returns the next token. The token's EOF field is set when the end of the text has been reached.
func (s *Stream) Next() (Token, error) {
	if s.done {
		return s.last, s.err
	}

	tok, next, err := NextToken(s.cursor)
	s.cursor = next
	if err != nil || tok.EOF {
		s.done = true
		s.last = tok
		s.err = err
	}
	return tok, err
}

// Cursor returns the position the next call to Next will start from.
func (s *Stream) Cursor() Cursor { return s.cursor }

// Tokens yields every token in the source in order. Iteration ends after the last token
// or after yielding the first error. The EOF token is not yielded.
func Tokens(src *Source) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		s := NewStream(src)
		for {
			tok, err := s.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if tok.EOF || !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize returns every token in the text. On error the tokens read before the failure are returned with it.
func Tokenize(text string) ([]Token, error) {
	var toks []Token
	for tok, err := range Tokens(NewSource(text)) {
		if err != nil {
			return toks, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}
