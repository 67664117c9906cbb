package strips

import (
	"errors"
	"fmt"
)

// Sentinel errors for Problem validation.
var (
	// ErrNoFluents indicates an empty state map.
	ErrNoFluents = errors.New("strips: problem must declare at least one fluent")

	// ErrDuplicateFluent indicates a fluent declared twice in the state map.
	ErrDuplicateFluent = errors.New("strips: duplicate fluent in state map")

	// ErrDuplicateAction indicates two actions sharing a name.
	ErrDuplicateAction = errors.New("strips: duplicate action name")

	// ErrUnknownFluent indicates an action literal naming a fluent outside
	// the state map.
	ErrUnknownFluent = errors.New("strips: action references unknown fluent")

	// ErrUnknownGoalFluent indicates a goal literal naming a fluent outside
	// the state map.
	ErrUnknownGoalFluent = errors.New("strips: goal references unknown fluent")
)

// Problem aggregates everything graphplan needs: the ordered fluent
// universe (the state map), the ground actions, and the goal literals.
// The order of Fluents fixes the meaning of boolean state vectors: index i
// of a state vector reports whether Fluents[i] holds positively.
type Problem struct {
	Fluents []string
	Actions []Action
	Goal    []Literal
}

// Validate checks internal consistency: a non-empty, duplicate-free state
// map, unique action names, and every precondition, effect and goal literal
// naming a declared fluent. Returns nil when the problem is well-formed.
func (p *Problem) Validate() error {
	if len(p.Fluents) == 0 {
		return ErrNoFluents
	}
	known := make(map[string]struct{}, len(p.Fluents))
	for _, f := range p.Fluents {
		if _, dup := known[f]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateFluent, f)
		}
		known[f] = struct{}{}
	}

	names := make(map[string]struct{}, len(p.Actions))
	for _, a := range p.Actions {
		if _, dup := names[a.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateAction, a.Name)
		}
		names[a.Name] = struct{}{}
		for _, lit := range a.Preconditions {
			if _, ok := known[lit.Fluent]; !ok {
				return fmt.Errorf("%w: precondition %s of %q", ErrUnknownFluent, lit, a.Name)
			}
		}
		for _, lit := range a.Effects {
			if _, ok := known[lit.Fluent]; !ok {
				return fmt.Errorf("%w: effect %s of %q", ErrUnknownFluent, lit, a.Name)
			}
		}
	}

	for _, lit := range p.Goal {
		if _, ok := known[lit.Fluent]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownGoalFluent, lit)
		}
	}
	return nil
}
