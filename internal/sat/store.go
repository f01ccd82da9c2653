package sat

// arena holds the bodies of one class of clauses (original or learned) in
// a growable slice plus a free list of emptied slots. Adding a clause
// reuses a free slot if one is available, otherwise it appends; removing a
// clause either pops the slot (if it is the last one) or empties it in
// place and records it on the free list. Slot indices, once handed out via
// a ClauseRef, are stable for the arena's lifetime: a later add may reuse
// the slot's storage, but never the slot of a clause still attached.
type arena struct {
	learned bool
	bodies  [][]Literal
	free    []int
}

func newArena(learned bool) *arena {
	return &arena{learned: learned}
}

func (a *arena) len() int {
	return len(a.bodies)
}

// add stores literals in a free or fresh slot and returns its reference.
// When a freed slot's backing array has enough capacity, its storage is
// reused instead of allocating new memory for the literal slice -- the
// arena-level analogue of the teacher's capacity-bucketed slice pools.
func (a *arena) add(literals []Literal) ClauseRef {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		body := a.bodies[idx][:0]
		body = append(body, literals...)
		a.bodies[idx] = body
		return newClauseRef(idx, a.learned)
	}
	idx := len(a.bodies)
	body := make([]Literal, len(literals))
	copy(body, literals)
	a.bodies = append(a.bodies, body)
	return newClauseRef(idx, a.learned)
}

// remove detaches the clause at ref, recycling its slot.
func (a *arena) remove(ref ClauseRef) {
	idx := ref.Slot()
	if idx == len(a.bodies)-1 {
		a.bodies = a.bodies[:idx]
		return
	}
	a.bodies[idx] = a.bodies[idx][:0]
	a.free = append(a.free, idx)
}

// at returns the literal slice for the given slot, for indexing only by
// code that already knows it belongs to this arena.
func (a *arena) at(idx int) []Literal {
	return a.bodies[idx]
}

// store owns the two clause arenas (original and learned clauses) and
// resolves a ClauseRef to its literals regardless of which arena it names.
type store struct {
	original *arena
	learned  *arena
}

func newStore() *store {
	return &store{
		original: newArena(false),
		learned:  newArena(true),
	}
}

func (s *store) arenaFor(ref ClauseRef) *arena {
	if ref.Learned() {
		return s.learned
	}
	return s.original
}

// Literals returns the literal slice of the clause named by ref. Indexing
// with an invalid reference is a programming error and panics.
func (s *store) Literals(ref ClauseRef) []Literal {
	if !ref.Valid() {
		panic("sat: indexing with an invalid clause reference")
	}
	return s.arenaFor(ref).at(ref.Slot())
}

// SetLiterals overwrites the literal slice of the clause named by ref in
// place (used by propagation to keep the watched positions canonical and
// by simplification to trim falsified tail literals).
func (s *store) SetLiterals(ref ClauseRef, literals []Literal) {
	a := s.arenaFor(ref)
	a.bodies[ref.Slot()] = literals
}

// Add stores a new clause and returns its reference.
func (s *store) Add(literals []Literal, learned bool) ClauseRef {
	if learned {
		return s.learned.add(literals)
	}
	return s.original.add(literals)
}

// Remove detaches the clause named by ref.
func (s *store) Remove(ref ClauseRef) {
	s.arenaFor(ref).remove(ref)
}

// NumOriginal returns the number of slots (including recycled-but-unused
// ones) in the original-clause arena.
func (s *store) NumOriginal() int {
	return s.original.len()
}

// NumLearned returns the number of slots in the learned-clause arena.
func (s *store) NumLearned() int {
	return s.learned.len()
}
