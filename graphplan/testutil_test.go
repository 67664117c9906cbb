package graphplan_test

import (
	"github.com/katalvlaran/strata/strips"
)

// cakeProblem is the classic have-cake-and-eat-it domain: two fluents, an
// Eat action that trades the cake for having eaten it, and a Bake action
// that restores it. Initially the cake exists uneaten; the goal wants both.
func cakeProblem() (*strips.Problem, []bool) {
	have, eaten := "Have(Cake)", "Eaten(Cake)"
	p := &strips.Problem{
		Fluents: []string{have, eaten},
		Actions: []strips.Action{
			{
				Name:          "Eat(Cake)",
				Preconditions: []strips.Literal{strips.Pos(have)},
				Effects:       []strips.Literal{strips.Neg(have), strips.Pos(eaten)},
			},
			{
				Name:          "Bake(Cake)",
				Preconditions: []strips.Literal{strips.Neg(have)},
				Effects:       []strips.Literal{strips.Pos(have)},
			},
		},
		Goal: []strips.Literal{strips.Pos(have), strips.Pos(eaten)},
	}
	return p, []bool{true, false}
}

// chainProblem produces goals at staggered levels: A first appears at level
// 1 and B at level 2, and the two are not mutex once both exist.
func chainProblem() (*strips.Problem, []bool) {
	p := &strips.Problem{
		Fluents: []string{"P", "A", "B"},
		Actions: []strips.Action{
			{
				Name:          "MakeA",
				Preconditions: []strips.Literal{strips.Pos("P")},
				Effects:       []strips.Literal{strips.Pos("A")},
			},
			{
				Name:          "MakeB",
				Preconditions: []strips.Literal{strips.Pos("A")},
				Effects:       []strips.Literal{strips.Pos("B")},
			},
		},
		Goal: []strips.Literal{strips.Pos("A"), strips.Pos("B")},
	}
	return p, []bool{true, false, false}
}

// deadEndProblem has a goal no action can ever produce.
func deadEndProblem() (*strips.Problem, []bool) {
	p := &strips.Problem{
		Fluents: []string{"X", "G"},
		Goal:    []strips.Literal{strips.Pos("G")},
	}
	return p, []bool{true, false}
}
