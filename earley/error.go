package earley

import (
	"fmt"

	"github.com/dekarrin/ictiobus/lex"
)

// Error is a parser diagnostic: no start-rule completion spans the whole
// input. It is reported at the furthest column the recognizer still had
// live items in (the classical Earley "furthest-error" heuristic), together
// with the items still in flight there so a caller can reconstruct a set of
// expected rules.
type Error struct {
	// At is the lexeme immediately after the furthest reached column (the
	// one that could not be consumed), or nil if that column is at the end
	// of the lexeme sequence (including the empty-input case), per §9's
	// Open Question convention.
	At *lex.Lexeme

	// Column is the index of the furthest reached column.
	Column int

	// InFlight lists every (incomplete or complete) item live in that
	// column.
	InFlight []Item
}

func (e *Error) Error() string {
	if e.At == nil {
		if e.Column == 0 {
			return fmt.Sprintf("parse error at start of input (column %d): no complete derivation", e.Column)
		}
		return fmt.Sprintf("parse error at end of input (column %d): no complete derivation", e.Column)
	}
	return fmt.Sprintf("parse error at %s (column %d): no complete derivation", e.At, e.Column)
}
