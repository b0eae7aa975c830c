// Package ictiobus is the public facade: Lex, Parse, and Evaluate are the
// three external entry points, plus a ParseString convenience that chains
// Lex and Parse for the common case of lexing and parsing a string in one
// call.
// It wires together lex.Engine, earley.Recognize/Accepted, forest.Builder,
// and eval.Evaluate the way the teacher's own ictiobus.go chains a lexer and
// a parser behind one function.
package ictiobus

import (
	"github.com/dekarrin/ictiobus/earley"
	"github.com/dekarrin/ictiobus/eval"
	"github.com/dekarrin/ictiobus/forest"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/icterrors"
	"github.com/dekarrin/ictiobus/lex"
)

// Lex runs rules over input, returning the lexeme sequence or a *lex.Error
// describing where and why lexing failed.
func Lex(rules []lex.Rule, input string) ([]lex.Lexeme, error) {
	eng := lex.NewEngine(rules)
	lexemes, err := eng.Lex(input)
	if err != nil {
		return nil, err
	}
	return lexemes, nil
}

// Parse recognizes lexemes against g and builds every derivation tree
// rooted at an accepting start-rule completion. If no such completion
// exists, it returns a *earley.Error describing the furthest point the
// recognizer reached.
func Parse(g *grammar.Grammar, lexemes []lex.Lexeme) ([]*forest.Tree, error) {
	columns, stats := earley.Recognize(g, lexemes)

	start, ok := earley.Accepted(g, columns)
	if !ok {
		return nil, earley.NewError(columns, lexemes, stats)
	}

	fb := forest.NewBuilder(g, lexemes, columns)
	return fb.Trees(start), nil
}

// Evaluate folds t bottom-up into a single result, applying each node's
// production action in post-order.
func Evaluate(t *forest.Tree) any {
	return eval.Evaluate(t)
}

// ParseString chains Lex and Parse for the common case of parsing a raw
// string against a grammar and a lexer rule set in one call.
func ParseString(g *grammar.Grammar, rules []lex.Rule, input string) ([]*forest.Tree, error) {
	lexemes, err := Lex(rules, input)
	if err != nil {
		return nil, err
	}
	return Parse(g, lexemes)
}

// Report renders a human-readable diagnostic for an error returned by Lex or
// Parse, typesetting its structured fields (position, mode stack, in-flight
// items, and so on) as a table. It returns err.Error() unchanged for any
// error that isn't one of those two kinds.
func Report(err error) string {
	switch e := err.(type) {
	case *lex.Error:
		return icterrors.LexReport(e)
	case *earley.Error:
		return icterrors.ParseReport(e)
	default:
		return err.Error()
	}
}
