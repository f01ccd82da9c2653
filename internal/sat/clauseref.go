package sat

// ClauseRef is a stable reference to a clause: a dense integer encoding
// both which arena (original or learned) holds the clause and its slot
// index within that arena. It is never an owning pointer; arenas may
// recycle a slot after the clause it names is detached.
//
// The invalid ClauseRef is overloaded for two roles, per spec: the reason
// of a decision or unit fact, and "no current conflict".
type ClauseRef uint32

const invalidClauseRef ClauseRef = 1<<32 - 1

// newClauseRef builds a reference to slot idx in the learned or original
// arena.
func newClauseRef(idx int, learned bool) ClauseRef {
	r := ClauseRef(idx) * 2
	if learned {
		r++
	}
	return r
}

// Slot returns the arena-local slot index.
func (r ClauseRef) Slot() int {
	return int(r / 2)
}

// Learned reports whether r names a slot in the learned-clause arena.
func (r ClauseRef) Learned() bool {
	return r&1 != 0
}

// Valid reports whether r is not the invalid sentinel.
func (r ClauseRef) Valid() bool {
	return r != invalidClauseRef
}
