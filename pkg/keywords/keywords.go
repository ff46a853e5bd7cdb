// Package keywords decides which identifiers are reserved words.
//
// The lexer reports every word as an Identifier. A Set is applied on top of the token stream
// and only matches a token whose full text is a member, so "variable" is never mistaken for "var".
package keywords

import (
	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/Azure/lexis/pkg/lexer"
)

// Set is an immutable set of keywords.
type Set struct {
	tree *redblacktree.Tree[string, struct{}]
}

// New returns a set holding the given words. Empty strings are ignored.
func New(words ...string) *Set {
	s := &Set{tree: redblacktree.New[string, struct{}]()}
	for _, w := range words {
		if w == "" {
			continue
		}
		s.tree.Put(w, struct{}{})
	}
	return s
}

// Default returns the keywords of the scripting language the lexer was built for.
func Default() *Set { return New("var", "function") }

func (s *Set) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, found := s.tree.Get(word)
	return found
}

// IsKeyword is true for identifier tokens whose text is in the set.
func (s *Set) IsKeyword(tok lexer.Token) bool {
	return tok.Kind == lexer.Identifier && s.Contains(tok.Text)
}

// Values returns the keywords in sorted order.
func (s *Set) Values() []string {
	if s == nil {
		return nil
	}
	return s.tree.Keys()
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.tree.Size()
}
