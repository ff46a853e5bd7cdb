package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString       = errors.New("unterminated string literal")
	ErrUnterminatedBlockComment = errors.New("unterminated block comment")
	ErrUnrecognizedCharacter    = errors.New("unrecognized character")
)

// LexError reports where tokenization failed. Err is one of the sentinel errors above.
type LexError struct {
	Err     error
	Message string
	Line    int
	Column  int

	// Cursor is where the failure was detected. Source and earlier cursors remain valid,
	// so callers may resume from here (or from any cursor they kept) if they want to recover.
	Cursor Cursor
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

func (e *LexError) Unwrap() error { return e.Err }
