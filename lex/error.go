package lex

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ictiobus/pos"
)

// Error is a lexer diagnostic: no active rule matched at the cursor, or a
// rule action explicitly reported an error. It names the expected rule kinds
// in declaration order so a caller can show what would have been valid.
type Error struct {
	Msg       string
	Offset    int
	Pos       pos.Position
	ModeStack []string
	// Expected lists, in declaration order, the kinds of every rule that was
	// active (by mode) at the point of failure. Empty when the action itself
	// raised the error via Error(msg).
	Expected []string
	// MatchLen is the byte length of the rule match in flight when the
	// action raised the error via Error(msg), or nil when no rule matched at
	// all (there is no "current match" to report a length for).
	MatchLen *int
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "lex error at %s (byte %d): %s", e.Pos, e.Offset, e.Msg)
	if e.MatchLen != nil {
		fmt.Fprintf(&sb, " (current match length %d)", *e.MatchLen)
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&sb, "; expected one of: %s", strings.Join(e.Expected, ", "))
	}
	return sb.String()
}
