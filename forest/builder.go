package forest

import (
	"github.com/dekarrin/ictiobus/earley"
	"github.com/dekarrin/ictiobus/grammar"
	"github.com/dekarrin/ictiobus/lex"
)

// Builder enumerates every derivation tree rooted at a completed Earley item,
// memoizing shared sub-forests by item identity so that the DAG of shared
// structure is built once regardless of how many times a sub-item is
// reachable from distinct parents.
type Builder struct {
	g       *grammar.Grammar
	lexemes []lex.Lexeme
	columns []earley.Column

	memo map[earley.Item][]*Tree
	// building marks items currently under construction, guarding against a
	// malformed grammar inducing a derivation cycle (never expected for a
	// well-formed recognizer run, but cheap to guard against).
	building map[earley.Item]bool
}

// NewBuilder returns a Builder over the recognizer's output for lexemes.
func NewBuilder(g *grammar.Grammar, lexemes []lex.Lexeme, columns []earley.Column) *Builder {
	return &Builder{
		g:        g,
		lexemes:  lexemes,
		columns:  columns,
		memo:     make(map[earley.Item][]*Tree),
		building: make(map[earley.Item]bool),
	}
}

// Trees returns every derivation tree rooted at the completed item start.
// Calling it twice for the same item returns the same (pointer-equal) slice,
// since the result is cached on first computation (Testable Property 6).
func (b *Builder) Trees(start earley.Item) []*Tree {
	return b.alternatives(start)
}

func (b *Builder) alternatives(it earley.Item) []*Tree {
	if cached, ok := b.memo[it]; ok {
		return cached
	}
	if b.building[it] {
		// a cycle in the derivation graph, which a well-formed Earley run
		// never produces; return no alternatives rather than recurse
		// forever.
		return nil
	}
	b.building[it] = true
	defer delete(b.building, it)

	childLists := b.childLists(it, it.Prod.Arity()-1, it.End)

	trees := make([]*Tree, 0, len(childLists))
	for _, children := range childLists {
		trees = append(trees, b.wrap(it, children))
	}

	b.memo[it] = trees
	return trees
}

// wrap builds the Node for it given one admissible child list, applying the
// sentinel-suppression special case: a single child that is already an
// internal Node is returned directly instead of being re-wrapped.
func (b *Builder) wrap(it earley.Item, children []*Tree) *Tree {
	if len(children) == 1 && !children[0].Terminal {
		return children[0]
	}
	return Node(it.Rule, it.Prod, children)
}

// childLists returns every admissible child list covering symbol positions
// 0..j of it's production, where e is the column at which position j's span
// ends. It recurses right-to-left per §4.4, appending each resolved child
// after the (already correctly ordered) children for the positions to its
// left.
func (b *Builder) childLists(it earley.Item, j, e int) [][]*Tree {
	if j < 0 {
		return [][]*Tree{{}}
	}

	p := it.Prod

	if p.Kind == grammar.OfLexemes {
		leaf := Leaf(b.lexemes[e-1])
		rest := b.childLists(it, j-1, e-1)
		return appendEach(rest, leaf)
	}

	symbol := p.Symbols[j]
	col := b.columns[e]

	var results [][]*Tree
	for _, J := range col.Items {
		if !J.Complete() || J.Rule != symbol {
			continue
		}
		if j == 0 && J.Start != it.Start {
			continue
		}
		if J == it {
			continue
		}
		if !b.admits(J, it) {
			continue
		}

		for _, sub := range b.alternatives(J) {
			rest := b.childLists(it, j-1, J.Start)
			results = append(results, appendEach(rest, sub)...)
		}
	}
	return results
}

func appendEach(lists [][]*Tree, t *Tree) [][]*Tree {
	out := make([][]*Tree, len(lists))
	for i, l := range lists {
		combined := make([]*Tree, len(l)+1)
		copy(combined, l)
		combined[len(l)] = t
		out[i] = combined
	}
	return out
}

// admits is the disambiguation predicate: whether candidate subtree item J
// may serve as a child of parent item I, per the precedence/associativity
// filter of §4.4.
func (b *Builder) admits(j, i earley.Item) bool {
	part := b.disambiguationOf(j)
	whole := b.disambiguationOf(i)
	if part == nil || whole == nil {
		return true
	}

	if part.Precedence < whole.Precedence {
		return false
	}
	if part.Precedence == whole.Precedence {
		if j.End == i.End && part.Assoc == grammar.AssocLeft {
			return false
		}
		if j.Start == i.Start && whole.Assoc == grammar.AssocRight {
			return false
		}
	}
	return true
}

// disambiguationOf finds the first symbol in it's production that names a
// rule carrying a disambiguation annotation, and returns that rule's
// Disambiguation, or nil if there is none.
func (b *Builder) disambiguationOf(it earley.Item) *grammar.Disambiguation {
	if it.Prod.Kind != grammar.OfRules {
		return nil
	}
	for _, sym := range it.Prod.Symbols {
		r, ok := b.g.Rule(sym)
		if ok && r.Disambig != nil {
			return r.Disambig
		}
	}
	return nil
}
