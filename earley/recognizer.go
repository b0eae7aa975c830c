package earley

import (
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/dekarrin/ictiobus/lex"
)

// Stats is a side-channel of bookkeeping gathered while Recognize runs, used
// by callers (the root package's Parse) to build a "furthest-error"
// diagnostic without a second pass over the columns. Grounded on the
// reference implementation's forest-construction furthest-position tracking.
type Stats struct {
	// Furthest is the highest column index that contains at least one item.
	Furthest int

	// ItemCounts holds, for each column (index-aligned with the returned
	// []Column), the number of distinct items the recognizer settled on
	// after predictor/scanner/completer reached a fixed point there.
	ItemCounts []int
}

// Recognize computes, for each input position, the set of dotted items
// reachable from the grammar's start rule, implementing predictor/scanner/
// completer (§4.3). It never fails: absence of a complete start-rule item
// spanning the whole input just means the input is unrecognized, which the
// caller detects by inspecting the returned columns.
func Recognize(g *grammar.Grammar, lexemes []lex.Lexeme) ([]Column, Stats) {
	n := len(lexemes)
	columns := make([]*Column, n+1)
	columns[0] = newColumn(0, headLookahead)
	for k := 1; k <= n; k++ {
		columns[k] = newColumn(k, lexemes[k-1].Kind)
	}

	start := g.StartRule()
	startProd := &start.Productions[0]
	columns[0].insert(Item{Rule: start.Name, Prod: startProd, Dot: 0, Start: 0, End: 0})

	stats := Stats{ItemCounts: make([]int, n+1)}

	for k := 0; k <= n; k++ {
		col := columns[k]
		predicted := util.NewStringSet()

		for i := 0; i < len(col.Items); i++ {
			it := col.Items[i]
			sym, hasNext := it.NextSymbol()

			if !hasNext {
				completer(columns, col, it)
				continue
			}

			if it.Prod.Kind == grammar.OfRules {
				if !predicted.Has(sym) {
					predicted.Add(sym)
					rule, _ := g.Rule(sym)
					predictor(g, col, rule, k, n, lexemes)
				}
				continue
			}

			// sym names a lexeme kind: scan it into the next column.
			if k < n && sym == lexemes[k].Kind {
				columns[k+1].insert(it.Advanced(k + 1))
			}
		}

		stats.ItemCounts[k] = len(col.Items)
		if len(col.Items) > 0 {
			stats.Furthest = k
		}
	}

	out := make([]Column, n+1)
	for i, c := range columns {
		out[i] = *c
	}
	return out, stats
}

// Accepted reports whether columns contains a complete start-rule item
// spanning the whole input (Testable Property 4), returning it if so.
func Accepted(g *grammar.Grammar, columns []Column) (Item, bool) {
	last := columns[len(columns)-1]
	for _, it := range last.Items {
		if it.Rule == g.StartName() && it.Start == 0 && it.Complete() {
			return it, true
		}
	}
	return Item{}, false
}

// NewError builds the furthest-error parser diagnostic from a finished
// Recognize run: the lexeme at the furthest reached column (or nil for the
// empty-input case), that column's index, and its in-flight items.
func NewError(columns []Column, lexemes []lex.Lexeme, stats Stats) *Error {
	col := columns[stats.Furthest]

	// At is the lexeme immediately after the furthest reached column (the
	// one that could not be consumed), or nil if the furthest column is
	// past the end of the lexeme sequence (including the empty-input
	// case), per §9's Open Question convention.
	var at *lex.Lexeme
	if stats.Furthest < len(lexemes) {
		at = &lexemes[stats.Furthest]
	}

	return &Error{
		At:       at,
		Column:   stats.Furthest,
		InFlight: append([]Item(nil), col.Items...),
	}
}

func predictor(g *grammar.Grammar, col *Column, rule *grammar.Rule, k, n int, lexemes []lex.Lexeme) {
	for pi := range rule.Productions {
		p := &rule.Productions[pi]

		if k < n {
			first := p.First()
			// an empty FIRST set (ε-productions, or one whose FIRST set
			// has not converged to include a usable terminal) is treated
			// as non-filterable: always predicted (§9 Open Question).
			if first != nil && first.Len() > 0 && !first.Has(lexemes[k].Kind) {
				continue
			}
		}

		col.insert(Item{Rule: rule.Name, Prod: p, Dot: 0, Start: k, End: k})
	}
}

func completer(columns []*Column, col *Column, it Item) {
	origin := columns[it.Start]
	for _, j := range origin.Items {
		sym, hasNext := j.NextSymbol()
		if !hasNext || j.Prod.Kind != grammar.OfRules || sym != it.Rule {
			continue
		}
		col.insert(j.Advanced(col.Index))
	}
}
