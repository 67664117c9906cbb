// Package aircargo generates air-cargo benchmark problems of configurable
// size: C cargos and P planes distributed over A airports, with Load,
// Unload and Fly ground actions and the goal of moving every cargo to the
// next airport around.
//
// The generated problems are the standard exercise domain for planning
// graphs; cmd/strata and the benchmarks build graphs from them.
package aircargo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strata/strips"
)

// ErrBadSize indicates a non-positive cargo, plane, or airport count.
var ErrBadSize = errors.New("aircargo: cargo, plane and airport counts must be positive")

// Problem builds the air-cargo problem with the given counts and its
// initial state vector. Cargo i and plane i start at airport i (mod
// airports); the goal places each cargo at the following airport.
func Problem(cargos, planes, airports int) (*strips.Problem, []bool, error) {
	if cargos < 1 || planes < 1 || airports < 1 {
		return nil, nil, fmt.Errorf("%w: got %d/%d/%d", ErrBadSize, cargos, planes, airports)
	}

	names := func(prefix string, n int) []string {
		out := make([]string, n)
		for i := range out {
			out[i] = fmt.Sprintf("%s%d", prefix, i+1)
		}
		return out
	}
	cs, ps, as := names("C", cargos), names("P", planes), names("A", airports)

	at := func(what, where string) string { return fmt.Sprintf("At(%s,%s)", what, where) }
	in := func(c, p string) string { return fmt.Sprintf("In(%s,%s)", c, p) }

	p := &strips.Problem{}
	for _, c := range cs {
		for _, a := range as {
			p.Fluents = append(p.Fluents, at(c, a))
		}
	}
	for _, c := range cs {
		for _, pl := range ps {
			p.Fluents = append(p.Fluents, in(c, pl))
		}
	}
	for _, pl := range ps {
		for _, a := range as {
			p.Fluents = append(p.Fluents, at(pl, a))
		}
	}

	for _, c := range cs {
		for _, pl := range ps {
			for _, a := range as {
				p.Actions = append(p.Actions,
					strips.Action{
						Name: fmt.Sprintf("Load(%s,%s,%s)", c, pl, a),
						Preconditions: []strips.Literal{
							strips.Pos(at(c, a)), strips.Pos(at(pl, a)),
						},
						Effects: []strips.Literal{
							strips.Pos(in(c, pl)), strips.Neg(at(c, a)),
						},
					},
					strips.Action{
						Name: fmt.Sprintf("Unload(%s,%s,%s)", c, pl, a),
						Preconditions: []strips.Literal{
							strips.Pos(in(c, pl)), strips.Pos(at(pl, a)),
						},
						Effects: []strips.Literal{
							strips.Pos(at(c, a)), strips.Neg(in(c, pl)),
						},
					},
				)
			}
		}
	}
	for _, pl := range ps {
		for _, from := range as {
			for _, to := range as {
				if from == to {
					continue
				}
				p.Actions = append(p.Actions, strips.Action{
					Name: fmt.Sprintf("Fly(%s,%s,%s)", pl, from, to),
					Preconditions: []strips.Literal{
						strips.Pos(at(pl, from)),
					},
					Effects: []strips.Literal{
						strips.Pos(at(pl, to)), strips.Neg(at(pl, from)),
					},
				})
			}
		}
	}

	// Initial positions, row-major over the fluent order declared above.
	initial := make(map[string]struct{})
	for i, c := range cs {
		initial[at(c, as[i%airports])] = struct{}{}
	}
	for i, pl := range ps {
		initial[at(pl, as[i%airports])] = struct{}{}
	}
	state := make([]bool, len(p.Fluents))
	for i, f := range p.Fluents {
		_, state[i] = initial[f]
	}

	for i, c := range cs {
		p.Goal = append(p.Goal, strips.Pos(at(c, as[(i+1)%airports])))
	}
	return p, state, nil
}
