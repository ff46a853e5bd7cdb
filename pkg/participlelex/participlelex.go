// Package participlelex exposes the lexer as a participle lexer definition so participle grammars can
// be built on top of its token stream.
//
//	parser := participle.MustBuild[Program](participle.Lexer(participlelex.Definition()))
//
// Grammars refer to token types by the names returned by Symbols: Number, String, Ident, Punct, and Operator.
// String token values are already unquoted and unescaped.
package participlelex

import (
	"errors"
	"fmt"
	"io"

	plexer "github.com/alecthomas/participle/v2/lexer"

	"github.com/Azure/lexis/pkg/lexer"
)

const (
	NumberType plexer.TokenType = -(iota + 2)
	StringType
	IdentType
	PunctType
	OperatorType
)

var symbols = map[string]plexer.TokenType{
	"EOF":      plexer.EOF,
	"Number":   NumberType,
	"String":   StringType,
	"Ident":    IdentType,
	"Punct":    PunctType,
	"Operator": OperatorType,
}

var kindTypes = map[lexer.Kind]plexer.TokenType{
	lexer.Number:      NumberType,
	lexer.String:      StringType,
	lexer.Identifier:  IdentType,
	lexer.Punctuation: PunctType,
	lexer.Operator:    OperatorType,
}

type definition struct{}

// Definition returns the participle lexer definition.
func Definition() plexer.Definition { return definition{} }

func (definition) Symbols() map[string]plexer.TokenType {
	out := make(map[string]plexer.TokenType, len(symbols))
	for k, v := range symbols {
		out[k] = v
	}
	return out
}

func (d definition) Lex(filename string, r io.Reader) (plexer.Lexer, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return d.LexString(filename, string(buf))
}

func (definition) LexString(filename string, input string) (plexer.Lexer, error) {
	return &tokenLexer{filename: filename, stream: lexer.NewStream(lexer.NewSource(input))}, nil
}

func (d definition) LexBytes(filename string, input []byte) (plexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

type tokenLexer struct {
	filename string
	stream   *lexer.Stream
}

func (l *tokenLexer) Next() (plexer.Token, error) {
	tok, err := l.stream.Next()
	if err != nil {
		var lexErr *lexer.LexError
		if errors.As(err, &lexErr) {
			return plexer.Token{}, &plexer.Error{Msg: lexErr.Message, Pos: l.position(lexErr.Cursor)}
		}
		return plexer.Token{}, err
	}
	if tok.EOF {
		return plexer.EOFToken(l.position(tok.Start)), nil
	}
	return plexer.Token{Type: kindTypes[tok.Kind], Value: tok.Text, Pos: l.position(tok.Start)}, nil
}

// position converts to participle's 1-based lines and columns.
func (l *tokenLexer) position(c lexer.Cursor) plexer.Position {
	return plexer.Position{
		Filename: l.filename,
		Offset:   c.Offset,
		Line:     c.Line + 1,
		Column:   c.Column + 1,
	}
}
