package lex

import "github.com/dekarrin/ictiobus/pos"

// State is the lexer engine state exposed to a rule action for the duration
// of that action's call. It must not be retained past the call.
type State struct {
	cursor   int
	position pos.Position
	modes    []string
	match    string
	rule     Rule
}

// Match returns the text matched by the rule currently being actioned.
func (s *State) Match() string {
	return s.match
}

// Position returns the position at the start of the current match.
func (s *State) Position() pos.Position {
	return s.position
}

// Cursor returns the byte offset at the start of the current match.
func (s *State) Cursor() int {
	return s.cursor
}

// Mode returns the mode at the top of the mode stack.
func (s *State) Mode() string {
	return s.modes[len(s.modes)-1]
}

// Modes returns a snapshot of the full mode stack, bottom first.
func (s *State) Modes() []string {
	cp := make([]string, len(s.modes))
	copy(cp, s.modes)
	return cp
}

// PushMode pushes a new mode onto the stack; it becomes active starting with
// the engine's next iteration.
func (s *State) PushMode(mode string) {
	s.modes = append(s.modes, mode)
}

// PopMode pops the current mode off the stack. Popping the last remaining
// mode is a programmer error in the caller's rule actions and is fatal, per
// §4.1's failure semantics.
func (s *State) PopMode() {
	if len(s.modes) <= 1 {
		panic("lex: mode stack underflow: cannot pop the last remaining mode")
	}
	s.modes = s.modes[:len(s.modes)-1]
}
