package graphplan

// mutexTable is a symmetric, irreflexive boolean relation over the members
// of one layer, keyed by stable layer-local ids (0..n-1, assigned in
// insertion order). Only the strict lower triangle is stored: bit i of row
// j (i < j) records whether members i and j are mutex.
//
// Rows are word-aligned so that concurrent writers owning disjoint row sets
// never touch the same word; see fillMutexes.
type mutexTable struct {
	n      int
	stride int // words per row
	bits   []uint64
}

// newMutexTable returns an all-false relation over n members.
func newMutexTable(n int) *mutexTable {
	stride := (n + 63) / 64
	return &mutexTable{n: n, stride: stride, bits: make([]uint64, n*stride)}
}

// set marks members i and j as mutex. Setting i == j is ignored: the
// relation is irreflexive by construction.
func (t *mutexTable) set(i, j int) {
	if i == j {
		return
	}
	if i > j {
		i, j = j, i
	}
	t.bits[j*t.stride+i>>6] |= 1 << (uint(i) & 63)
}

// get reports whether members i and j are mutex. Always false for i == j.
func (t *mutexTable) get(i, j int) bool {
	if i == j {
		return false
	}
	if i > j {
		i, j = j, i
	}
	return t.bits[j*t.stride+i>>6]&(1<<(uint(i)&63)) != 0
}
