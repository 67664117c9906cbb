package strips

// noOpPrefix tags synthesized persistence actions; it keeps their names
// disjoint from any ground action name.
const noOpPrefix = "NoOp::"

// NoOp builds the pair of persistence actions for a single fluent: one
// carrying the positive literal forward, one carrying the negative.
// Each has precondition = effect = that single literal.
func NoOp(fluent string) [2]Action {
	pos, neg := Pos(fluent), Neg(fluent)
	return [2]Action{
		{
			Name:          noOpPrefix + pos.String(),
			Preconditions: []Literal{pos},
			Effects:       []Literal{pos},
			NoOp:          true,
		},
		{
			Name:          noOpPrefix + neg.String(),
			Preconditions: []Literal{neg},
			Effects:       []Literal{neg},
			NoOp:          true,
		},
	}
}

// NoOps synthesizes persistence actions for an entire fluent universe, in
// state-map order, two per fluent (positive first). It is a pure function
// of its input; callers own the returned slice.
func NoOps(fluents []string) []Action {
	acts := make([]Action, 0, 2*len(fluents))
	for _, f := range fluents {
		pair := NoOp(f)
		acts = append(acts, pair[0], pair[1])
	}
	return acts
}
