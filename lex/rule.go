package lex

// DefaultMode is the sentinel mode name the engine's mode stack is seeded
// with. It is a fixed implementation constant, not configuration (§9).
const DefaultMode = "DEFAULT"

// Rule is one lexer rule: the modes it is active in, the kind assigned to its
// matches, its matcher, and the action invoked on a match.
type Rule struct {
	// Modes lists the mode names this rule is active under. A rule with no
	// Modes is never selected; use DefaultMode to make a rule active in the
	// starting mode.
	Modes []string

	// Kind is the lexeme kind assigned to a Take/TakeRetry match.
	Kind string

	// Match finds the longest match at the cursor.
	Match Matcher

	// Action decides the fate of a match. If nil, TakeAction is used.
	Action ActionFunc
}

func (r Rule) action() ActionFunc {
	if r.Action == nil {
		return TakeAction
	}
	return r.Action
}

func (r Rule) appliesTo(mode string) bool {
	for _, m := range r.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
