package lex

import "github.com/dekarrin/ictiobus/pos"

// Engine is an immutable set of rules, ready to lex input. Construct one with
// NewEngine; the zero value is not usable.
type Engine struct {
	rules []Rule
}

// NewEngine builds an Engine from rules in their declared order. Declaration
// order is significant: it is the tie-break for longest-match ties (§4.1
// step 5) and the order "expected" kinds are reported in on a lex error.
func NewEngine(rules []Rule) *Engine {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Engine{rules: cp}
}

// Lex runs the engine over input and returns the resulting lexeme sequence in
// left-to-right order, or a lexer error. The full input must be consumed
// (back to DefaultMode) for success; any error aborts lexing and the partial
// lexeme list is discarded.
func (e *Engine) Lex(input string) ([]Lexeme, *Error) {
	var (
		lexemes []Lexeme
		cursor  int
		p       = pos.Start()
		modes   = []string{DefaultMode}
	)

	for {
		if cursor == len(input) && modes[len(modes)-1] == DefaultMode {
			return lexemes, nil
		}

		remaining := input[cursor:]

		active := e.activeRules(modes[len(modes)-1])

		bestIdx := -1
		bestLen := -1
		for i, r := range active {
			n, ok := r.Match.Length(remaining)
			if !ok {
				continue
			}
			if n > bestLen {
				bestLen = n
				bestIdx = i
			}
			// ties broken by declaration order: since we only replace on
			// strictly greater length, the first-declared rule of equal
			// longest length is kept automatically.
		}

		if bestIdx < 0 {
			expected := make([]string, 0, len(active))
			for _, r := range active {
				expected = append(expected, r.Kind)
			}
			return nil, &Error{
				Msg:       "no rule matches remaining input",
				Offset:    cursor,
				Pos:       p,
				ModeStack: append([]string(nil), modes...),
				Expected:  expected,
			}
		}

		rule := active[bestIdx]
		matched := remaining[:bestLen]

		st := &State{
			cursor:   cursor,
			position: p,
			modes:    modes,
			match:    matched,
			rule:     rule,
		}

		outcome := rule.action()(st)
		modes = st.modes // rule action may have pushed/popped

		switch outcome.kind {
		case outcomeTake:
			raw := matched
			if outcome.rawOverride != nil {
				raw = *outcome.rawOverride
			}
			lexemes = append(lexemes, Lexeme{Kind: rule.Kind, Raw: raw, Pos: p})
			p = p.Advance(matched)
			cursor += bestLen
		case outcomeSkip:
			p = p.Advance(matched)
			cursor += bestLen
		case outcomeTakeRetry:
			raw := matched
			if outcome.rawOverride != nil {
				raw = *outcome.rawOverride
			}
			lexemes = append(lexemes, Lexeme{Kind: rule.Kind, Raw: raw, Pos: p})
			// cursor and position intentionally not advanced.
		case outcomeSkipRetry:
			// cursor and position intentionally not advanced.
		case outcomeError:
			matchLen := bestLen
			return nil, &Error{
				Msg:       outcome.errMsg,
				Offset:    cursor,
				Pos:       p,
				ModeStack: append([]string(nil), modes...),
				MatchLen:  &matchLen,
			}
		}
	}
}

func (e *Engine) activeRules(mode string) []Rule {
	out := make([]Rule, 0, len(e.rules))
	for _, r := range e.rules {
		if r.appliesTo(mode) {
			out = append(out, r)
		}
	}
	return out
}
