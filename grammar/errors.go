package grammar

import "fmt"

// ValidationError reports a Builder.Finalize failure: a rule referencing a
// name that does not exist, or an empty grammar with no declared rules.
type ValidationError struct {
	Rule string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("grammar: %s", e.Msg)
	}
	return fmt.Sprintf("grammar: rule %q: %s", e.Rule, e.Msg)
}
