// Package graphplan builds leveled planning graphs for STRIPS problems and
// derives admissible goal heuristics from them.
//
// A Graph is a strictly alternating sequence of literal and action layers:
//
//	L0 ──► A1 ──► L1 ──► A2 ──► L2 …
//
// Literal layer 0 is the initial state. Each expansion step admits every
// action whose preconditions hold in the newest literal layer (persistence
// no-ops included), records the union of their effects as the next literal
// layer, and classifies every pair of actions and every pair of literals as
// mutually exclusive ("mutex") or not:
//
//   - actions: inconsistent effects, interference, competing needs
//     (plus an optional serialization rule for non-persistence actions)
//   - literals: negation, inconsistent support
//
// Layers are append-only write-once snapshots; once the graph stops growing
// it is "leveled" and further expansion is a no-op.
//
// Three heuristic queries read goal levels out of the graph, growing it
// lazily as far as each needs:
//
//	LevelSum — sum of each goal literal's level cost
//	MaxLevel — maximum goal literal level cost
//	SetLevel — first level with all goals present and pairwise mutex-free
//
// Queries never return a made-up number: a goal the leveled graph cannot
// reach surfaces as ErrGoalUnreachable or ErrNoSetLevel.
package graphplan
