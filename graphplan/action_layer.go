package graphplan

import (
	"fmt"

	"github.com/katalvlaran/strata/strips"
)

// ActionLayer holds every action applicable at one graph level — ground
// actions and persistence no-ops alike — together with the pairwise mutex
// relation over them. Membership is monotone: a layer contains all actions
// of the previous action layer plus the newly enabled ones.
//
// An ActionLayer is a write-once snapshot; all queries are safe for
// concurrent readers once the layer has been published.
type ActionLayer struct {
	g      *Graph
	parent int   // index of the parent literal layer
	ids    []int // graph-global action ids, insertion order = local id
	pos    map[int]int
	mutex  *mutexTable
}

func newActionLayer(g *Graph, parent, capHint int) *ActionLayer {
	return &ActionLayer{
		g:      g,
		parent: parent,
		ids:    make([]int, 0, capHint),
		pos:    make(map[int]int, capHint),
	}
}

// add admits the action with graph-global id, assigning the next local id.
func (l *ActionLayer) add(id int) {
	l.pos[id] = len(l.ids)
	l.ids = append(l.ids, id)
}

// contains reports membership by graph-global action id.
func (l *ActionLayer) contains(id int) bool {
	_, ok := l.pos[id]
	return ok
}

// Len returns the number of actions in the layer.
func (l *ActionLayer) Len() int { return len(l.ids) }

// Contains reports whether the named action is a member of the layer.
func (l *ActionLayer) Contains(name string) bool {
	id, ok := l.g.actionID[name]
	if !ok {
		return false
	}
	return l.contains(id)
}

// Actions returns the layer's actions in insertion order. The slice is
// freshly allocated; callers own it.
func (l *ActionLayer) Actions() []strips.Action {
	out := make([]strips.Action, len(l.ids))
	for i, id := range l.ids {
		out[i] = l.g.actions[id]
	}
	return out
}

// Parent returns the literal layer this layer was derived from.
func (l *ActionLayer) Parent() *LiteralLayer { return l.g.literalLayers[l.parent] }

// IsMutex reports whether two member actions are mutually exclusive at this
// level. The relation is symmetric and irreflexive. Querying an action that
// is not a member of the layer is a contract violation and panics.
func (l *ActionLayer) IsMutex(nameA, nameB string) bool {
	return l.mutex.get(l.mustLocal(nameA), l.mustLocal(nameB))
}

// mustLocal resolves an action name to its layer-local id, panicking when
// the action is absent from the layer.
func (l *ActionLayer) mustLocal(name string) int {
	id, ok := l.g.actionID[name]
	if !ok {
		panic(fmt.Sprintf("graphplan: unknown action %q queried for mutex", name))
	}
	local, ok := l.pos[id]
	if !ok {
		panic(fmt.Sprintf("graphplan: action %q not in layer queried for mutex", name))
	}
	return local
}

// isMutexIDs answers the mutex question for two member actions by their
// graph-global ids. Both must be members; used by inconsistent-support.
func (l *ActionLayer) isMutexIDs(a, b int) bool {
	return l.mutex.get(l.pos[a], l.pos[b])
}

// mutexPair classifies one unordered pair of members (by local id).
// Test order: serialization, inconsistent effects, interference, then —
// unless mutexes are ignored — competing needs.
func (l *ActionLayer) mutexPair(i, j int) bool {
	a := l.g.actions[l.ids[i]]
	b := l.g.actions[l.ids[j]]
	if l.g.opts.Serialize && a.Serializable() && b.Serializable() {
		return true
	}
	if inconsistentEffects(a, b) || interference(a, b) {
		return true
	}
	if l.g.opts.IgnoreMutexes {
		return false
	}
	return l.competingNeeds(a, b)
}

// inconsistentEffects reports whether an effect of one action negates an
// effect of the other: the two outcomes contradict, so the actions can
// never co-occur.
func inconsistentEffects(a, b strips.Action) bool {
	for _, ea := range a.Effects {
		if b.Asserts(ea.Negation()) {
			return true
		}
	}
	return false
}

// interference reports whether an effect of either action negates a
// precondition of the other: applying one would invalidate the other's
// applicability.
func interference(a, b strips.Action) bool {
	for _, eb := range b.Effects {
		if a.Requires(eb.Negation()) {
			return true
		}
	}
	for _, ea := range a.Effects {
		if b.Requires(ea.Negation()) {
			return true
		}
	}
	return false
}

// competingNeeds reports whether some precondition of a is mutex with some
// precondition of b in the parent literal layer: the prerequisites
// themselves cannot hold together.
func (l *ActionLayer) competingNeeds(a, b strips.Action) bool {
	parent := l.g.literalLayers[l.parent]
	for _, pa := range a.Preconditions {
		for _, pb := range b.Preconditions {
			if parent.isMutexLits(pa, pb) {
				return true
			}
		}
	}
	return false
}
