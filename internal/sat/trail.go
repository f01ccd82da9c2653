package sat

// trail is the ordered sequence of assigned literals, partitioned into
// decision levels by a parallel sequence of separator indices (the trail
// index at which each level >= 1 begins; level 0 has no separator and
// begins at 0). head is the propagation head: literals at positions <
// head have had their watch lists processed, positions in [head, len) are
// pending.
type trail struct {
	lits       []Literal
	separators []int
	head       int
}

func newTrail() *trail {
	return &trail{}
}

// decisionLevel returns the number of decisions currently on the trail.
func (t *trail) decisionLevel() int {
	return len(t.separators)
}

// newDecisionLevel opens decision level len(separators)+1, to be followed
// immediately by assigning the branch literal.
func (t *trail) newDecisionLevel() {
	t.separators = append(t.separators, len(t.lits))
}

// assign sets l's value in vs at the current decision level with the given
// reason and appends l to the trail. l must be unset beforehand; assign
// does not check this.
func (t *trail) assign(vs *varState, l Literal, reason ClauseRef) {
	vs.assign(l, t.decisionLevel(), reason)
	t.lits = append(t.lits, l)
}

// pending reports whether any trail position at or past the propagation
// head remains to be processed.
func (t *trail) pending() bool {
	return t.head < len(t.lits)
}

// nextPending returns the next literal to propagate and advances the
// propagation head.
func (t *trail) nextPending() Literal {
	l := t.lits[t.head]
	t.head++
	return l
}

// revertTo pops the trail back to the separator for level, unsetting each
// popped variable, saving its polarity for phase-saving, and pushing it
// back into the unset-variable pool. Reverting to a level >= the current
// decision level is a no-op.
func (t *trail) revertTo(level int, vs *varState, pool *branchPool) {
	if t.decisionLevel() <= level {
		return
	}

	limit := t.separators[level]
	for c := len(t.lits); c > limit; c-- {
		l := t.lits[c-1]
		vs.unassign(l)
		pool.push(l.Var())
	}

	t.lits = t.lits[:limit]
	t.head = limit
	t.separators = t.separators[:level]
}

// len returns the number of assigned literals.
func (t *trail) len() int {
	return len(t.lits)
}
