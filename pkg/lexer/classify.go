package lexer

import "unicode/utf8"

type charClass uint8

const (
	classDigit charClass = 1 << iota
	classIdentStart
	classOperator
	classPunctuation
	classWhitespace
)

const (
	operatorSymbols    = "+-*/%=&|<>!"
	punctuationSymbols = ",;.()[]{}"
	whitespaceSymbols  = " \n\r"
)

// classes is filled once by init and only read afterwards.
var classes [utf8.RuneSelf]charClass

func init() {
	for r := '0'; r <= '9'; r++ {
		classes[r] |= classDigit
	}
	for r := 'a'; r <= 'z'; r++ {
		classes[r] |= classIdentStart
		classes[r-'a'+'A'] |= classIdentStart
	}
	classes['_'] |= classIdentStart
	classes['$'] |= classIdentStart

	for _, set := range []struct {
		chars string
		class charClass
	}{
		{operatorSymbols, classOperator},
		{punctuationSymbols, classPunctuation},
		{whitespaceSymbols, classWhitespace},
	} {
		for i := 0; i < len(set.chars); i++ {
			classes[set.chars[i]] |= set.class
		}
	}
}

func is(r rune, class charClass) bool {
	return r >= 0 && r < utf8.RuneSelf && classes[r]&class != 0
}

func IsDigit(r rune) bool           { return is(r, classDigit) }
func IsIdentifierStart(r rune) bool { return is(r, classIdentStart) }
func IsIdentifierPart(r rune) bool  { return is(r, classIdentStart|classDigit) }
func IsOperatorSymbol(r rune) bool  { return is(r, classOperator) }
func IsPunctuation(r rune) bool     { return is(r, classPunctuation) }
func IsWhitespace(r rune) bool      { return is(r, classWhitespace) }
