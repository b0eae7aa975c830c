package grammar

import (
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/lex"
)

// Kind distinguishes a production's symbol list: it is either entirely
// lexeme kinds or entirely rule names, never mixed (§3 DATA MODEL).
type Kind int

const (
	// OfLexemes productions' Symbols are lexeme kinds.
	OfLexemes Kind = iota
	// OfRules productions' Symbols are rule names.
	OfRules
)

func (k Kind) String() string {
	if k == OfLexemes {
		return "lexemes"
	}
	return "rules"
}

// LexemeAction folds a production's matched lexemes (left-to-right) into a
// semantic value, for a Production of Kind OfLexemes.
type LexemeAction func(lexemes []lex.Lexeme) any

// RuleAction folds a production's already-evaluated children (left-to-right)
// into a semantic value, for a Production of Kind OfRules.
type RuleAction func(values []any) any

// Production is one alternative of a Rule. An empty Symbols list represents
// the empty production (ε) and is permitted.
type Production struct {
	Kind    Kind
	Symbols []string

	LexAction  LexemeAction
	RuleAction RuleAction

	// first is the cached set of lexeme kinds this production can begin
	// with, computed by Builder.Finalize. Empty (and non-nil) means the
	// set has genuinely converged to empty, which only happens for an ε
	// production or one whose every reachable alternative is itself ε;
	// such productions are never filtered by the recognizer (§9 Open
	// Question).
	first util.ISet[string]
}

// First returns the production's FIRST-lexeme set, computed during
// Builder.Finalize. Calling it on a Production that was never finalized
// returns nil, unless the set was given with WithFirst.
func (p Production) First() util.ISet[string] {
	return p.first
}

// Arity is the number of symbols (and therefore children) of the production.
func (p Production) Arity() int {
	return len(p.Symbols)
}

// Empty reports whether this is an ε production.
func (p Production) Empty() bool {
	return len(p.Symbols) == 0
}

// WithFirst returns a copy of p with its FIRST-lexeme set preset to the
// given kinds. This is an escape hatch for callers assembling a grammar
// programmatically who already know a production's FIRST set (e.g. it was
// precomputed by an external macro layer). Builder.Finalize keeps the preset
// kinds as a starting point and still adds whatever its fixed-point pass
// computes for the production, so the final set is the union of both; the
// preset does not restrict or replace the computed set.
func (p Production) WithFirst(kinds ...string) Production {
	s := util.NewStringSet()
	for _, k := range kinds {
		s.Add(k)
	}
	p.first = s
	return p
}
