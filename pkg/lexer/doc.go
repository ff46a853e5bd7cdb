// Package lexer converts source text into a stream of classified tokens.
//
// Tokens are numbers, strings, identifiers, punctuation, and operators. Whitespace (space, \n, \r),
// line comments (//) and block comments (/* */) are skipped.
//
// # Cursors
//
// Positions are immutable Cursor values over a shared Source. Every scanning function takes a cursor
// and returns a new one, so a caller can keep any earlier cursor and scan again from it:
//
//	src := lexer.NewSource(`var greeting = "hello";`)
//	tok, next, err := lexer.NextToken(src.Start())
//	// tok.Kind == lexer.Identifier, tok.Text == "var"
//	tok, next, err = lexer.NextToken(next)
//
// Cursors never modify the Source, so goroutines may scan the same Source concurrently.
//
// # Streams
//
// Tokens and Tokenize read the whole stream, stopping at the first error:
//
//	for tok, err := range lexer.Tokens(src) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(tok.Kind, tok.Value())
//	}
//
// # Numbers
//
// A number is a run of digits with at most one decimal point. A second point is not part of the number
// ("12.34.4" is the number 12.34, the punctuation ".", and the number 4) and a trailing point is
// ("12." is the number 12).
//
// # Errors
//
// Failures are *LexError values wrapping ErrUnterminatedString, ErrUnterminatedBlockComment, or
// ErrUnrecognizedCharacter. They carry the cursor where the failure was detected; the lexer does not
// attempt recovery, but a caller may resume from that cursor (or any earlier one).
//
// Keywords are not recognized here. Every word is an Identifier; see package keywords.
package lexer
