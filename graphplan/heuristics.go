package graphplan

import (
	"fmt"

	"github.com/katalvlaran/strata/strips"
)

// LevelCost — first appearance level of a single literal.
//
// Description:
//
//	The level cost of a literal is the index of the first literal layer
//	containing it. The graph is grown lazily, one level at a time, until
//	the literal appears or the graph levels out.
//
// Errors:
//   - ErrGoalUnreachable — the fully leveled graph never produces lit.
//
// Complexity: O(levels · extend) growth on first call; pure reads after.
func (g *Graph) LevelCost(lit strips.Literal) (int, error) {
	for level := 0; ; level++ {
		if !g.ensureLevel(level) {
			return 0, fmt.Errorf("%w: %s", ErrGoalUnreachable, lit)
		}
		if g.literalLayers[level].Contains(lit) {
			return level, nil
		}
	}
}

// LevelSum — the level-sum heuristic.
//
// Description:
//
//	The sum over all goal literals of each literal's level cost. Per-goal
//	costs are independent — interaction between goals is ignored — so the
//	sum is not an estimate of minimal joint plan length, but it remains
//	admissible under the relaxed-planning-graph argument.
//
// Errors:
//   - ErrGoalUnreachable — some goal literal never appears in the leveled
//     graph.
func (g *Graph) LevelSum() (int, error) {
	sum := 0
	for _, lit := range g.goal {
		cost, err := g.LevelCost(lit)
		if err != nil {
			return 0, err
		}
		sum += cost
	}
	return sum, nil
}

// MaxLevel — the max-level heuristic.
//
// Description:
//
//	The maximum over all goal literals of each literal's level cost — a
//	weaker but cheaper admissible estimate than LevelSum.
//
// Errors:
//   - ErrGoalUnreachable — some goal literal never appears in the leveled
//     graph.
func (g *Graph) MaxLevel() (int, error) {
	max := 0
	for _, lit := range g.goal {
		cost, err := g.LevelCost(lit)
		if err != nil {
			return 0, err
		}
		if cost > max {
			max = cost
		}
	}
	return max, nil
}

// SetLevel — the set-level heuristic.
//
// Description:
//
//	The smallest level at which all goal literals are simultaneously
//	present and no two distinct goal literals are mutex. The graph is
//	grown level by level until such a layer is found or the graph levels
//	out without one.
//
// Errors:
//   - ErrNoSetLevel — the graph leveled out before any layer satisfied
//     the condition (a goal literal never appears, or the goals never
//     become pairwise mutex-free). No finite estimate exists; the caller
//     decides how to treat the state, never a sentinel level number.
func (g *Graph) SetLevel() (int, error) {
	for level := 0; ; level++ {
		if !g.ensureLevel(level) {
			return 0, ErrNoSetLevel
		}
		layer := g.literalLayers[level]
		if g.goalsPresent(layer) && !g.goalsMutex(layer) {
			return level, nil
		}
	}
}

// goalsPresent reports whether every goal literal is a member of layer.
func (g *Graph) goalsPresent(layer *LiteralLayer) bool {
	for _, lit := range g.goal {
		if !layer.Contains(lit) {
			return false
		}
	}
	return true
}

// goalsMutex reports whether any pair of distinct goal literals is mutex in
// layer. Callers check goalsPresent first; layer 0 has an empty relation.
func (g *Graph) goalsMutex(layer *LiteralLayer) bool {
	for i := 0; i < len(g.goal); i++ {
		for j := i + 1; j < len(g.goal); j++ {
			if layer.IsMutex(g.goal[i], g.goal[j]) {
				return true
			}
		}
	}
	return false
}
