// Package lex implements the stateful, longest-match lexer engine (C3) and
// the lexeme record it produces (C2).
package lex

import (
	"fmt"

	"github.com/dekarrin/ictiobus/pos"
)

// Lexeme is a token read from source text: the rule kind that matched, the
// raw (possibly rule-transformed) text, and the position at which the match
// began. Lexemes are immutable once produced.
type Lexeme struct {
	Kind string
	Raw  string
	Pos  pos.Position
}

func (lx Lexeme) String() string {
	return fmt.Sprintf("%s(%q)@%s", lx.Kind, lx.Raw, lx.Pos)
}
