package earley

import "github.com/dekarrin/ictiobus/internal/util"

// headLookahead is the synthetic lookahead kind for column 0, before any
// lexeme has been consumed.
const headLookahead = "$head"

// Column is the set of dotted items whose end column is Index.
type Column struct {
	Index     int
	Lookahead string
	Items     []Item

	seen util.ISet[Item]
}

func newColumn(index int, lookahead string) *Column {
	return &Column{
		Index:     index,
		Lookahead: lookahead,
		seen:      util.NewKeySet[Item](),
	}
}

// insert adds it to the column if an identical item (by the five-field
// identity) is not already present. It reports whether the item was newly
// added, which callers use to decide whether the main loop must still visit
// it.
func (c *Column) insert(it Item) bool {
	if c.seen.Has(it) {
		return false
	}
	c.seen.Add(it)
	c.Items = append(c.Items, it)
	return true
}

// Completed returns the subset of Items that are complete (dot past the last
// symbol). It is a convenience for the forest builder, not required for
// recognizer correctness.
func (c *Column) Completed() []Item {
	out := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Complete() {
			out = append(out, it)
		}
	}
	return out
}
