package graphplan

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strata/strips"
)

// Graph is a leveled planning graph: alternating literal and action layers
// grown from an initial state until a fixed point. Construct one per
// problem/state pair with New, then query the heuristics (LevelSum,
// MaxLevel, SetLevel) or level it eagerly with Fill.
//
// Layers are appended monotonically and never mutated after publication, so
// any number of goroutines may read a constructed-and-filled graph without
// locking. Growth itself (Fill and the lazily extending queries) is not
// safe for concurrent callers; one growing Graph belongs to one evaluation
// context.
type Graph struct {
	opts Options

	// actions is the global action universe: persistence no-ops first (two
	// per fluent, state-map order), then the problem's ground actions.
	// Slice index is the graph-global action id.
	actions  []strips.Action
	actionID map[string]int

	goal []strips.Literal

	literalLayers []*LiteralLayer
	actionLayers  []*ActionLayer
	leveled       bool
}

// New builds a planning graph over problem p seeded from state, a boolean
// vector aligned with p.Fluents (true = the fluent holds positively).
//
// Validation is fail-fast: a malformed problem (including goal literals
// outside the fluent universe) or a misaligned state vector is rejected
// here, never silently treated as achieved.
//
// Complexity: O(F) for seeding plus O(A) for no-op synthesis, with F
// fluents and A actions. No layers beyond level 0 are built until a query
// or Fill asks for them.
func New(p *strips.Problem, state []bool, opts ...Option) (*Graph, error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if len(state) != len(p.Fluents) {
		return nil, fmt.Errorf("%w: %d values for %d fluents", ErrStateLength, len(state), len(p.Fluents))
	}

	actions := strips.NoOps(p.Fluents)
	actions = append(actions, p.Actions...)
	g := &Graph{
		opts:     o,
		actions:  actions,
		actionID: make(map[string]int, len(actions)),
	}
	for id, a := range actions {
		g.actionID[a.Name] = id
	}

	// Goal is a set; drop duplicates but keep first-seen order.
	seen := make(map[strips.Literal]struct{}, len(p.Goal))
	for _, lit := range p.Goal {
		if _, dup := seen[lit]; dup {
			continue
		}
		seen[lit] = struct{}{}
		g.goal = append(g.goal, lit)
	}

	// Literal layer 0 reflects the initial state: one literal per fluent,
	// polarity from the state vector. It has no parent action layer, no
	// supports, and no mutexes — a single consistent assignment.
	layer := newLiteralLayer(g, -1, len(p.Fluents))
	for i, f := range p.Fluents {
		lit := strips.Pos(f)
		if !state[i] {
			lit = lit.Negation()
		}
		layer.add(lit)
	}
	layer.mutex = newMutexTable(layer.Len())
	g.literalLayers = []*LiteralLayer{layer}
	return g, nil
}

// Goal returns the goal literal set in first-seen order.
func (g *Graph) Goal() []strips.Literal {
	out := make([]strips.Literal, len(g.goal))
	copy(out, g.goal)
	return out
}

// Leveled reports whether the graph has reached its fixed point: one full
// expansion step added no new actions and no new literals.
func (g *Graph) Leveled() bool { return g.leveled }

// Levels returns the number of literal layers built so far. Literal level
// indices run 0..Levels()-1.
func (g *Graph) Levels() int { return len(g.literalLayers) }

// NumActions returns the size of the global action universe, persistence
// no-ops included.
func (g *Graph) NumActions() int { return len(g.actions) }

// LiteralLayerAt returns the literal layer at the given level.
func (g *Graph) LiteralLayerAt(level int) *LiteralLayer { return g.literalLayers[level] }

// ActionLayerAt returns the i-th action layer: the one between literal
// levels i and i+1. Action layer indices run 0..Levels()-2.
func (g *Graph) ActionLayerAt(i int) *ActionLayer { return g.actionLayers[i] }

// Fill extends the graph until it is leveled, or until maxLevels further
// expansion steps have run. A negative maxLevels never interrupts the loop.
// Fill is idempotent: once leveled, it changes nothing.
func (g *Graph) Fill(maxLevels int) *Graph {
	for !g.leveled {
		if maxLevels == 0 {
			break
		}
		g.extend()
		maxLevels--
	}
	return g
}

// ensureLevel grows the graph until literal layer `level` exists or the
// graph levels out, and reports whether the layer exists. It is the single
// growth entry point for every heuristic query, and is idempotent: calls
// for already-built levels touch nothing.
func (g *Graph) ensureLevel(level int) bool {
	for len(g.literalLayers) <= level && !g.leveled {
		g.extend()
	}
	return level < len(g.literalLayers)
}

// extend performs one expansion step: derive the next action layer from the
// newest literal layer, the next literal layer from that action layer's
// effects, compute both mutex tables (actions first — the literal support
// test reads them), and append. A no-op once the graph is leveled.
func (g *Graph) extend() {
	if g.leveled {
		return
	}

	parentLits := g.literalLayers[len(g.literalLayers)-1]
	al := newActionLayer(g, len(g.literalLayers)-1, len(g.actions))
	ll := newLiteralLayer(g, len(g.actionLayers), parentLits.Len())

	// Monotonicity: carry every prior action forward, and every prior
	// literal together with its accumulated support set.
	if n := len(g.actionLayers); n > 0 {
		for _, id := range g.actionLayers[n-1].ids {
			al.add(id)
		}
	}
	for local, lit := range parentLits.lits {
		carried := ll.add(lit)
		ll.supports[carried] = append(ll.supports[carried], parentLits.supports[local]...)
	}

	// Admit every action not yet present whose preconditions all hold in
	// the parent literal layer, recording action → effect support edges.
	for id, a := range g.actions {
		if al.contains(id) || !applicable(a, parentLits) {
			continue
		}
		al.add(id)
		for _, e := range a.Effects {
			ll.support(e, id)
		}
	}

	al.mutex = newMutexTable(al.Len())
	g.fillMutexes(al.mutex, al.mutexPair)
	g.actionLayers = append(g.actionLayers, al)

	ll.mutex = newMutexTable(ll.Len())
	g.fillMutexes(ll.mutex, ll.mutexPair)
	g.literalLayers = append(g.literalLayers, ll)

	// Fixed point: the new literal layer is a superset of its parent, so
	// equal sizes mean equal sets — nothing grew this step.
	g.leveled = ll.Len() == parentLits.Len()
}

// applicable reports whether every precondition of a holds in layer.
func applicable(a strips.Action, layer *LiteralLayer) bool {
	for _, p := range a.Preconditions {
		if !layer.Contains(p) {
			return false
		}
	}
	return true
}

// fillMutexes materializes a layer's mutex table by running pair over every
// unordered member pair (i < j). Each pair's test reads only prior-layer
// data, never current-layer peers, so pairs are independent: beyond the
// configured threshold the rows are striped across workers. Row j of the
// table is word-aligned and written only by the worker owning j, and the
// table is complete before the layer is published.
func (g *Graph) fillMutexes(t *mutexTable, pair func(i, j int) bool) {
	n := t.n
	if g.opts.ParallelThreshold == 0 || n*(n-1)/2 < g.opts.ParallelThreshold {
		for j := 1; j < n; j++ {
			for i := 0; i < j; i++ {
				if pair(i, j) {
					t.set(i, j)
				}
			}
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			// Interleaved rows balance the triangular row costs.
			for j := 1 + w; j < n; j += workers {
				for i := 0; i < j; i++ {
					if pair(i, j) {
						t.set(i, j)
					}
				}
			}
			return nil
		})
	}
	_ = eg.Wait() // pair tests are pure predicates; they cannot fail
}
