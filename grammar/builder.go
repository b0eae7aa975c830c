package grammar

import (
	"github.com/dekarrin/ictiobus/internal/util"
	"github.com/google/uuid"
)

// startPrefix names the synthesized start-rule sentinel. Finalize suffixes it
// with a fresh UUID so it can never collide with a user-declared rule name,
// satisfying §4.2's "globally unique" requirement outright rather than by
// convention.
const startPrefix = "$start"

// Builder accumulates rules and productions; call Finalize to validate and
// compute FIRST-lexeme sets.
type Builder struct {
	rules map[string]*Rule
	order []string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{rules: make(map[string]*Rule)}
}

// RuleBuilder accumulates productions for a single named rule.
type RuleBuilder struct {
	b    *Builder
	rule *Rule
}

// Rule returns a RuleBuilder for name, creating it (and recording its
// declaration order) on first use.
func (b *Builder) Rule(name string) *RuleBuilder {
	r, ok := b.rules[name]
	if !ok {
		r = &Rule{Name: name}
		b.rules[name] = r
		b.order = append(b.order, name)
	}
	return &RuleBuilder{b: b, rule: r}
}

// Lexemes adds a production of kind OfLexemes matching the given lexeme
// kinds in order, with an optional action (nil is permitted: the production
// then folds to nil).
func (rb *RuleBuilder) Lexemes(kinds []string, action LexemeAction) *RuleBuilder {
	rb.rule.Productions = append(rb.rule.Productions, Production{
		Kind:      OfLexemes,
		Symbols:   append([]string(nil), kinds...),
		LexAction: action,
	})
	return rb
}

// Rules adds a production of kind OfRules referencing the given rule names in
// order, with an optional action.
func (rb *RuleBuilder) Rules(names []string, action RuleAction) *RuleBuilder {
	rb.rule.Productions = append(rb.rule.Productions, Production{
		Kind:       OfRules,
		Symbols:    append([]string(nil), names...),
		RuleAction: action,
	})
	return rb
}

// Empty adds an ε production (the empty string) with an optional action
// invoked with no lexemes.
func (rb *RuleBuilder) Empty(action LexemeAction) *RuleBuilder {
	rb.rule.Productions = append(rb.rule.Productions, Production{
		Kind:      OfLexemes,
		LexAction: action,
	})
	return rb
}

// Production appends an already-built Production verbatim, for callers that
// precomputed a FIRST set via Production.WithFirst.
func (rb *RuleBuilder) Production(p Production) *RuleBuilder {
	rb.rule.Productions = append(rb.rule.Productions, p)
	return rb
}

// Disambiguate attaches precedence/associativity metadata to the rule.
func (rb *RuleBuilder) Disambiguate(assoc Associativity, precedence uint) *RuleBuilder {
	rb.rule.Disambig = &Disambiguation{Assoc: assoc, Precedence: precedence}
	return rb
}

// Finalize validates the accumulated rules and computes FIRST-lexeme sets,
// returning the immutable Grammar. It returns a *ValidationError rather than
// panicking (a deliberate deviation from a reference implementation that
// panics here, recorded in DESIGN.md) so a library caller can surface a bad
// grammar to an end user instead of crashing.
func (b *Builder) Finalize() (*Grammar, error) {
	if len(b.order) == 0 {
		return nil, &ValidationError{Msg: "no rules declared"}
	}

	rules := make(map[string]*Rule, len(b.rules)+1)
	for name, r := range b.rules {
		rules[name] = r
	}

	start := startPrefix + "-" + uuid.New().String()
	rules[start] = &Rule{
		Name: start,
		Productions: []Production{
			{Kind: OfRules, Symbols: []string{b.order[0]}},
		},
	}

	// (a) every OfRules symbol must resolve to a declared rule.
	for name, r := range rules {
		for _, p := range r.Productions {
			if p.Kind != OfRules {
				continue
			}
			for _, sym := range p.Symbols {
				if _, ok := rules[sym]; !ok {
					return nil, &ValidationError{Rule: name, Msg: "references undeclared rule " + sym}
				}
			}
		}
	}

	computeFirstSets(rules)

	return &Grammar{rules: rules, start: start}, nil
}

// computeFirstSets runs the FIRST-lexeme fixed-point pass of §4.2 over every
// production in rules, including the synthesized start rule.
func computeFirstSets(rules map[string]*Rule) {
	for _, r := range rules {
		for i := range r.Productions {
			if r.Productions[i].first == nil {
				r.Productions[i].first = util.NewStringSet()
			}
		}
	}

	changed := true
	for changed {
		changed = false
		for _, r := range rules {
			for i := range r.Productions {
				p := &r.Productions[i]
				if p.Empty() {
					// n >= 1 required by the algorithm; ε productions are
					// left with an empty FIRST set and are never filtered
					// by the recognizer (§9 Open Question).
					continue
				}
				if p.Kind == OfLexemes {
					if !p.first.Has(p.Symbols[0]) {
						p.first.Add(p.Symbols[0])
						changed = true
					}
					continue
				}

				target := rules[p.Symbols[0]]
				for j := range target.Productions {
					other := &target.Productions[j]
					if other == p || other.Empty() {
						continue
					}
					for _, kind := range other.first.Elements() {
						if !p.first.Has(kind) {
							p.first.Add(kind)
							changed = true
						}
					}
				}
			}
		}
	}
}
