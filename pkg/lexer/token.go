package lexer

// Kind classifies a token. The zero value is only used by the EOF token.
type Kind int

const (
	Number Kind = iota + 1
	String
	Identifier
	Punctuation
	Operator
)

var kindNames = map[Kind]string{
	Number:      "Number",
	String:      "String",
	Identifier:  "Identifier",
	Punctuation: "Punctuation",
	Operator:    "Operator",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Kinds returns every token kind in declaration order.
func Kinds() []Kind {
	return []Kind{Number, String, Identifier, Punctuation, Operator}
}

type Token struct {
	Kind Kind

	// Text is the decoded value for strings and the literal lexeme for every other kind.
	Text string

	// Number is only set for Number tokens.
	Number float64

	// Start is the cursor at the first character of the lexeme, End is just past its last one.
	Start Cursor
	End   Cursor

	EOF bool
}

// Value returns the token's value as the downstream contract defines it:
// a float64 for numbers and text for everything else.
func (t Token) Value() any {
	if t.Kind == Number {
		return t.Number
	}
	return t.Text
}
