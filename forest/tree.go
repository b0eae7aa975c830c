// Package forest builds the parse forest (C6) from a recognizer's completed
// items and defines the shared tree node type (C7).
package forest

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
)

// Tree is a parse tree node: either a Leaf wrapping a lexeme, or an internal
// Node tagged with the rule name and the production responsible for it.
// Trees are shared by plain Go pointer (the forest is a DAG of *Tree; Go's
// garbage collector makes the reference-counting discipline a reference
// implementation in another language needs unnecessary here).
type Tree struct {
	Terminal bool

	// Lexeme is valid when Terminal is true.
	Lexeme lex.Lexeme

	// Rule and Prod are valid when Terminal is false.
	Rule string
	Prod *grammar.Production

	Children []*Tree
}

// Leaf wraps a lexeme as a terminal tree node.
func Leaf(l lex.Lexeme) *Tree {
	return &Tree{Terminal: true, Lexeme: l}
}

// Node builds an internal tree node. children count must equal prod's arity.
func Node(rule string, prod *grammar.Production, children []*Tree) *Tree {
	return &Tree{Rule: rule, Prod: prod, Children: children}
}

// Fringe returns the leaf sequence of t in left-to-right order: the lexemes
// this tree's derivation consumed (Testable Property 5).
func (t *Tree) Fringe() []lex.Lexeme {
	if t.Terminal {
		return []lex.Lexeme{t.Lexeme}
	}
	var out []lex.Lexeme
	for _, c := range t.Children {
		out = append(out, c.Fringe()...)
	}
	return out
}

func (t *Tree) String() string {
	var sb strings.Builder
	t.write(&sb, "")
	return sb.String()
}

func (t *Tree) write(sb *strings.Builder, indent string) {
	if t.Terminal {
		fmt.Fprintf(sb, "%s%s\n", indent, t.Lexeme)
		return
	}
	fmt.Fprintf(sb, "%s%s\n", indent, t.Rule)
	for _, c := range t.Children {
		c.write(sb, indent+"  ")
	}
}
