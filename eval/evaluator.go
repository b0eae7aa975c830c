// Package eval implements C8: folding a chosen parse tree bottom-up by
// applying the semantic action attached to each matched production.
package eval

import (
	"github.com/dekarrin/ictiobus/forest"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
)

// workItem is either a tree still awaiting its children to be visited
// (pending == true, visited on the way down) or a tree whose children have
// already been pushed and which is now ready to be folded (pending ==
// false, visited on the way back up).
type workItem struct {
	tree    *forest.Tree
	pending bool
}

// Evaluate folds t bottom-up, applying each Node's production action to its
// already-evaluated children (for OfRules productions) or to its consumed
// lexemes (for OfLexemes productions). It uses an explicit work stack plus a
// single value stack rather than native recursion, so that deep
// right-recursive derivations (lists, chained binary operators) do not
// overflow the call stack. Leaf lexemes and computed values share the value
// stack: a leaf pushes its lexeme, an OfLexemes node pops its leaves'
// lexemes, and an OfRules node pops its children's values.
func Evaluate(t *forest.Tree) any {
	var (
		stack  = []workItem{{tree: t, pending: true}}
		values []any
	)

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if top.pending {
			stack[len(stack)-1] = workItem{tree: top.tree, pending: false}
			for i := len(top.tree.Children) - 1; i >= 0; i-- {
				stack = append(stack, workItem{tree: top.tree.Children[i], pending: true})
			}
			continue
		}

		stack = stack[:len(stack)-1]

		if top.tree.Terminal {
			// a leaf pushes its lexeme onto the value stack; the enclosing
			// OfLexemes node pops it below.
			values = append(values, top.tree.Lexeme)
			continue
		}

		n := top.tree.Prod.Arity()
		consumed := values[len(values)-n:]
		values = values[:len(values)-n]

		var result any
		if top.tree.Prod.Kind == grammar.OfLexemes {
			lexemes := make([]lex.Lexeme, n)
			for i, v := range consumed {
				lexemes[i] = v.(lex.Lexeme)
			}
			if top.tree.Prod.LexAction != nil {
				result = top.tree.Prod.LexAction(lexemes)
			}
		} else {
			vals := make([]any, n)
			copy(vals, consumed)
			if top.tree.Prod.RuleAction != nil {
				result = top.tree.Prod.RuleAction(vals)
			}
		}

		values = append(values, result)
	}

	return values[0]
}
