package graphplan

import (
	"fmt"

	"github.com/katalvlaran/strata/strips"
)

// LiteralLayer holds every literal achievable at one graph level, the set
// of parent-layer actions supporting each literal, and the pairwise mutex
// relation over the literals. Membership is monotone: persistence no-ops
// carry every literal of the previous literal layer forward.
//
// Literal layer 0 is the initial state; it has no parent action layer and
// carries no mutexes (a single consistent assignment).
//
// A LiteralLayer is a write-once snapshot; all queries are safe for
// concurrent readers once the layer has been published.
type LiteralLayer struct {
	g        *Graph
	parent   int // index of the parent action layer, -1 for layer 0
	lits     []strips.Literal
	pos      map[strips.Literal]int
	supports [][]int // per local id: graph-global ids of producing actions
	mutex    *mutexTable
}

func newLiteralLayer(g *Graph, parent, capHint int) *LiteralLayer {
	return &LiteralLayer{
		g:        g,
		parent:   parent,
		lits:     make([]strips.Literal, 0, capHint),
		pos:      make(map[strips.Literal]int, capHint),
		supports: make([][]int, 0, capHint),
	}
}

// add inserts lit if absent and returns its layer-local id.
func (l *LiteralLayer) add(lit strips.Literal) int {
	if local, ok := l.pos[lit]; ok {
		return local
	}
	local := len(l.lits)
	l.pos[lit] = local
	l.lits = append(l.lits, lit)
	l.supports = append(l.supports, nil)
	return local
}

// support records that the action with graph-global id produces lit here.
func (l *LiteralLayer) support(lit strips.Literal, id int) {
	local := l.add(lit)
	l.supports[local] = append(l.supports[local], id)
}

// Len returns the number of literals in the layer.
func (l *LiteralLayer) Len() int { return len(l.lits) }

// Contains reports whether lit is achievable at this level.
func (l *LiteralLayer) Contains(lit strips.Literal) bool {
	_, ok := l.pos[lit]
	return ok
}

// Literals returns the layer's literals in insertion order. The slice is
// freshly allocated; callers own it.
func (l *LiteralLayer) Literals() []strips.Literal {
	out := make([]strips.Literal, len(l.lits))
	copy(out, l.lits)
	return out
}

// Supports returns the names of the parent-layer actions that produce lit
// at this level. Empty for every literal of layer 0.
func (l *LiteralLayer) Supports(lit strips.Literal) []string {
	local, ok := l.pos[lit]
	if !ok {
		return nil
	}
	out := make([]string, len(l.supports[local]))
	for i, id := range l.supports[local] {
		out[i] = l.g.actions[id].Name
	}
	return out
}

// Parent returns the action layer this layer was derived from, or nil for
// literal layer 0.
func (l *LiteralLayer) Parent() *ActionLayer {
	if l.parent < 0 {
		return nil
	}
	return l.g.actionLayers[l.parent]
}

// IsMutex reports whether two member literals are mutually exclusive at
// this level. The relation is symmetric and irreflexive; it is empty for
// layer 0. Querying a literal that is not a member of the layer is a
// contract violation and panics.
func (l *LiteralLayer) IsMutex(a, b strips.Literal) bool {
	return l.mutex.get(l.mustLocal(a), l.mustLocal(b))
}

// mustLocal resolves a literal to its layer-local id, panicking when the
// literal is absent from the layer.
func (l *LiteralLayer) mustLocal(lit strips.Literal) int {
	local, ok := l.pos[lit]
	if !ok {
		panic(fmt.Sprintf("graphplan: literal %s not in layer queried for mutex", lit))
	}
	return local
}

// isMutexLits answers the mutex question for two member literals; used by
// competing-needs, where membership is guaranteed (admitted actions have
// all preconditions in this layer).
func (l *LiteralLayer) isMutexLits(a, b strips.Literal) bool {
	return l.mutex.get(l.pos[a], l.pos[b])
}

// mutexPair classifies one unordered pair of members (by local id).
// Test order: negation, then — unless mutexes are ignored — inconsistent
// support.
func (l *LiteralLayer) mutexPair(i, j int) bool {
	if l.lits[i].Negation() == l.lits[j] {
		return true
	}
	if l.g.opts.IgnoreMutexes {
		return false
	}
	return l.inconsistentSupport(i, j)
}

// inconsistentSupport reports whether every pairing of an action supporting
// the first literal with an action supporting the second is action-mutex in
// the parent layer: no non-conflicting way exists to achieve both. The test
// is vacuously true over an empty pairing set. An action supporting both
// literals defeats the test, since the mutex relation is irreflexive.
func (l *LiteralLayer) inconsistentSupport(i, j int) bool {
	parent := l.g.actionLayers[l.parent]
	for _, sa := range l.supports[i] {
		for _, sb := range l.supports[j] {
			if !parent.isMutexIDs(sa, sb) {
				return false
			}
		}
	}
	return true
}
