// Package strips defines the input contract of the planning-graph engine:
// immutable Literal values, ground Action nodes with precondition and
// effect sets, synthesized persistence (no-op) actions, and the Problem
// aggregate that graphplan consumes.
//
// The package deliberately stops at representation. Domain loading and
// expression parsing live with the caller; strips only validates that a
// Problem is internally consistent (every literal names a known fluent,
// names are unique) so that graph construction can fail fast.
package strips
