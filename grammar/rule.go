package grammar

// Associativity disambiguates a binary production under equal precedence.
type Associativity int

const (
	// AssocNone means no associativity was declared; disambiguation never
	// rejects on associativity grounds for this rule.
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
)

func (a Associativity) String() string {
	switch a {
	case AssocLeft:
		return "left"
	case AssocRight:
		return "right"
	default:
		return "none"
	}
}

// Disambiguation is the precedence/associativity annotation attached to a
// Rule, consulted by the forest builder's disambiguation predicate (§4.4).
// Lower Precedence binds less tightly.
type Disambiguation struct {
	Assoc      Associativity
	Precedence uint
}

// Rule is a named, ordered list of productions, plus optional disambiguation
// metadata.
type Rule struct {
	Name        string
	Productions []Production
	Disambig    *Disambiguation
}
