// Package earley implements the Earley recognizer (C5): for each input
// position, the set of dotted items reachable via predictor, scanner, and
// completer, filtered by the grammar's precomputed FIRST-lexeme sets.
package earley

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/grammar"
)

// Item is a dotted item with span: a production, a dot position within its
// symbols, and the column range the match has progressed over so far. Items
// are identity-compared by all five fields (Go struct equality, also used for
// map keys). Rule is the name of the rule Prod belongs to; the completer,
// Accepted, and the forest builder match items against a symbol by it.
type Item struct {
	Rule  string
	Prod  *grammar.Production
	Dot   int
	Start int
	End   int
}

// Complete reports whether the dot has advanced past the last symbol.
func (it Item) Complete() bool {
	return it.Dot >= it.Prod.Arity()
}

// NextSymbol returns the symbol immediately after the dot and true, or ("",
// false) if the item is complete.
func (it Item) NextSymbol() (string, bool) {
	if it.Complete() {
		return "", false
	}
	return it.Prod.Symbols[it.Dot], true
}

// Advanced returns a copy of it with the dot moved one position to the right
// and End set to the given column.
func (it Item) Advanced(end int) Item {
	it.Dot++
	it.End = end
	return it
}

func (it Item) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s ->", it.Rule)
	for i, sym := range it.Prod.Symbols {
		if i == it.Dot {
			sb.WriteString(" •")
		}
		sb.WriteString(" ")
		sb.WriteString(sym)
	}
	if it.Dot == len(it.Prod.Symbols) {
		sb.WriteString(" •")
	}
	fmt.Fprintf(&sb, " [%d,%d]", it.Start, it.End)
	return sb.String()
}
