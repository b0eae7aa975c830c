package lex

// outcomeKind is the closed set of ways a rule action can dispose of a match,
// per the DATA MODEL's "Lexer rule" action contract.
type outcomeKind int

const (
	outcomeTake outcomeKind = iota
	outcomeSkip
	outcomeTakeRetry
	outcomeSkipRetry
	outcomeError
)

// Outcome is the tagged union returned by an ActionFunc. Build one with Take,
// Skip, TakeRetry, SkipRetry, or Error; the zero value is not meaningful.
type Outcome struct {
	kind        outcomeKind
	rawOverride *string
	errMsg      string
}

// Take emits a lexeme of the rule's kind, with the matched text as its Raw,
// and advances the cursor by the match length.
func Take() Outcome {
	return Outcome{kind: outcomeTake}
}

// TakeTransformed is Take, but the emitted lexeme's Raw field is set to raw
// instead of the untransformed matched substring (e.g. to unescape a string
// literal). Position tracking still advances by the untransformed matched
// text.
func TakeTransformed(raw string) Outcome {
	return Outcome{kind: outcomeTake, rawOverride: &raw}
}

// Skip advances the cursor by the match length and emits no lexeme.
func Skip() Outcome {
	return Outcome{kind: outcomeSkip}
}

// TakeRetry is Take, except the cursor is not advanced: the next engine
// iteration re-matches at the same position, intended for use alongside a
// mode push/pop so the same substring is reclassified under a new rule set.
func TakeRetry() Outcome {
	return Outcome{kind: outcomeTakeRetry}
}

// SkipRetry is Skip, except the cursor is not advanced.
func SkipRetry() Outcome {
	return Outcome{kind: outcomeSkipRetry}
}

// Error aborts lexing with the given human-readable message.
func Error(msg string) Outcome {
	return Outcome{kind: outcomeError, errMsg: msg}
}

// ActionFunc decides, given the lexer's current state (valid only for the
// duration of the call), how to dispose of the rule's match. It may also
// push or pop modes via the State before returning; mode changes take effect
// for the next engine iteration.
type ActionFunc func(s *State) Outcome

// TakeAction is the default ActionFunc used by rules constructed without an
// explicit action: always emit the match untransformed.
func TakeAction(*State) Outcome {
	return Take()
}
