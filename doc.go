// Package strata is your in-memory engine for leveled planning graphs —
// from STRIPS primitives to mutex analysis and admissible heuristics.
//
// 🚀 What is strata?
//
//	A compact, deterministic library that brings together:
//		• STRIPS primitives: literals, ground actions, persistence (no-op) actions
//		• Planning graphs: alternating literal/action layers, grown to a fixed point
//		• Mutex analysis: inconsistent effects, interference, competing needs,
//		  negation and inconsistent support
//		• Heuristics: level-sum, max-level and set-level goal estimates
//
// ✨ Why choose strata?
//
//   - Lazy by default – layers are grown only as far as a query needs
//   - Rock-solid guarantees – append-only layers, write-once mutex tables
//   - Pure Go – no cgo, deterministic results, parallel-safe reads
//   - Explicit failure modes – unreachable goals surface as errors, never
//     as a misleading level number
//
// Under the hood, everything is organized under three subpackages:
//
//	strips/    — Literal, Action and Problem input contract + no-op synthesis
//	graphplan/ — ActionLayer, LiteralLayer, Graph expansion and heuristics
//	aircargo/  — generated air-cargo benchmark problems
//
// Quick ASCII example:
//
//	    L0 ──► A1 ──► L1 ──► A2 ──► L2 …
//
//	literal and action layers strictly alternate; every layer is a
//	superset of the one two steps back.
//
// A binary demo lives in cmd/strata: it generates an air-cargo benchmark
// problem, levels the graph and reports all three heuristic values.
//
//	go get github.com/katalvlaran/strata/graphplan
package strata
