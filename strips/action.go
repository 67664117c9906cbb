package strips

// Action is a ground STRIPS action node: a name that identifies it (the
// name of a ground action includes its bound arguments, e.g.
// "Fly(P1,SFO,JFK)"), an ordered set of precondition literals that must all
// hold for the action to be applicable, and an ordered set of effect
// literals it makes true when applied.
//
// Identity is the Name. Two Action values with the same Name are the same
// action; graph layers key on it.
type Action struct {
	// Name identifies the action, or carries the synthesized no-op tag.
	Name string

	// Preconditions are the literals required for applicability.
	Preconditions []Literal

	// Effects are the literals the action asserts.
	Effects []Literal

	// NoOp marks synthesized persistence actions.
	NoOp bool
}

// Serializable reports whether the action competes for the one-real-action
// slot of a serialized layer. Persistence actions are exempt so literals
// keep flowing forward regardless of serialization.
func (a Action) Serializable() bool { return !a.NoOp }

// Requires reports whether lit is one of the action's preconditions.
func (a Action) Requires(lit Literal) bool {
	for _, p := range a.Preconditions {
		if p == lit {
			return true
		}
	}
	return false
}

// Asserts reports whether lit is one of the action's effects.
func (a Action) Asserts(lit Literal) bool {
	for _, e := range a.Effects {
		if e == lit {
			return true
		}
	}
	return false
}
