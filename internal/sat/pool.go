package sat

// branchPool is a shuffled reservoir of variables available for
// branching. It may contain stale entries for variables that have since
// been assigned (e.g. by propagation); pickBranchLiteral skips over those rather
// than maintaining a fully-accurate membership set, which would cost more
// to keep in sync than it saves.
//
// This replaces the teacher's VSIDS-ordered VarOrder: branching here is
// uniform-random over unassigned variables with phase saving, per spec,
// so the underlying structure is a plain slice rather than a priority
// heap.
type branchPool struct {
	vars []Variable
}

func newBranchPool() *branchPool {
	return &branchPool{}
}

// push adds v back to the pool (called when v becomes unset again via
// backtracking).
func (p *branchPool) push(v Variable) {
	p.vars = append(p.vars, v)
}

// rebuild replaces the pool's contents with exactly the variables
// currently unset in vs, in increasing order, ready to be shuffled by the
// caller.
func (p *branchPool) rebuild(vs *varState) {
	p.vars = p.vars[:0]
	for v := 0; v < vs.numVariables(); v++ {
		if vs.values[v] == Unset {
			p.vars = append(p.vars, Variable(v))
		}
	}
}

// shuffle randomizes the pool's order in place using rng.
func (p *branchPool) shuffle(rng *rng) {
	for i := len(p.vars) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p.vars[i], p.vars[j] = p.vars[j], p.vars[i]
	}
}

// pickBranchLiteral repeatedly pops a uniformly random entry from the pool
// (swap-with-back) until it finds one that is genuinely unset, and returns
// the literal built from that variable and its saved preferred polarity.
// It reports false if the pool is exhausted without finding an unset
// variable, meaning every variable is assigned.
func (p *branchPool) pickBranchLiteral(vs *varState, rng *rng) (Literal, bool) {
	for len(p.vars) > 0 {
		idx := rng.Intn(len(p.vars))
		last := len(p.vars) - 1
		v := p.vars[idx]
		p.vars[idx] = p.vars[last]
		p.vars = p.vars[:last]

		if vs.values[v] != Unset {
			continue
		}
		if vs.polarity[v] {
			return PositiveLiteral(v), true
		}
		return NegativeLiteral(v), true
	}
	return invalidLiteral, false
}
