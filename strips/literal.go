package strips

// Literal is an atomic fact (a fluent) or its negation. It is an immutable
// comparable value: two Literals are equal exactly when they name the same
// fluent with the same polarity, so Literal may be used as a map key.
type Literal struct {
	// Fluent is the name of the atomic state variable, including any bound
	// arguments, e.g. "At(C1,SFO)".
	Fluent string

	// Negated reports the polarity: false for the fact, true for its negation.
	Negated bool
}

// Pos returns the positive literal for fluent.
func Pos(fluent string) Literal { return Literal{Fluent: fluent} }

// Neg returns the negative literal for fluent.
func Neg(fluent string) Literal { return Literal{Fluent: fluent, Negated: true} }

// Negation returns the literal with flipped polarity. The receiver is
// unchanged.
func (l Literal) Negation() Literal {
	l.Negated = !l.Negated
	return l
}

// String renders the literal, prefixing negations with "~", e.g. "~At(C1,SFO)".
func (l Literal) String() string {
	if l.Negated {
		return "~" + l.Fluent
	}
	return l.Fluent
}

// Less defines a total order over literals: by fluent name, positive before
// negative. Useful for producing stable output from literal sets.
func (l Literal) Less(other Literal) bool {
	if l.Fluent != other.Fluent {
		return l.Fluent < other.Fluent
	}
	return !l.Negated && other.Negated
}
