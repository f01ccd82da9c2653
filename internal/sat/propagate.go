package sat

// propagator drains pending trail literals against the watch lists,
// discovering unit facts and detecting conflicts. It owns the watch-list
// vectors (one per literal) since they are rewritten in place as clauses
// are scanned.
type propagator struct {
	watches [][]watch
	numProp int64
}

func newPropagator() *propagator {
	return &propagator{}
}

func (p *propagator) addVariable() {
	// One watch list per literal (two per variable).
	p.watches = append(p.watches, nil, nil)
}

// Watch registers that clause ref watches literal l, skippable while
// blocker is true.
func (p *propagator) Watch(l Literal, ref ClauseRef, blocker Literal) {
	p.watches[l] = append(p.watches[l], watch{Ref: ref, Blocker: blocker})
}

// Unwatch removes the watch naming ref from literal l's watch list.
func (p *propagator) Unwatch(l Literal, ref ClauseRef) {
	target := watch{Ref: ref}
	ws := p.watches[l]
	j := 0
	for i := range ws {
		if !ws[i].equal(target) {
			ws[j] = ws[i]
			j++
		}
	}
	p.watches[l] = ws[:j]
}

// attach creates the two watches a freshly added clause needs (4.2/4.5).
func (p *propagator) attach(ref ClauseRef, lits []Literal) {
	p.Watch(lits[0].Opposite(), ref, lits[1])
	p.Watch(lits[1].Opposite(), ref, lits[0])
}

// detach removes both of a clause's watches.
func (p *propagator) detach(ref ClauseRef, lits []Literal) {
	p.Unwatch(lits[0].Opposite(), ref)
	p.Unwatch(lits[1].Opposite(), ref)
}

// propagate drains the trail from its propagation head, updating watch
// lists and assigning forced literals, stopping at the first conflict (if
// any). It returns the conflicting clause reference, or invalidClauseRef
// if propagation completed cleanly.
func (p *propagator) propagate(t *trail, vs *varState, st *store) ClauseRef {
	conflict := invalidClauseRef

	for t.pending() {
		lit := t.nextPending()
		p.numProp++

		ws := p.watches[lit]
		i, j := 0, 0
		n := len(ws)

		for i < n {
			w := ws[i]

			// Blocker shortcut.
			if vs.isTrue(w.Blocker) {
				ws[j] = w
				i++
				j++
				continue
			}

			lits := st.Literals(w.Ref)

			// Normalize so the newly-false literal sits at position 1.
			notLit := lit.Opposite()
			if lits[0] == notLit {
				lits[0], lits[1] = lits[1], lits[0]
			}
			first := lits[0]
			i++

			// First-literal satisfied: rewrite the blocker and keep.
			if first != w.Blocker && vs.isTrue(first) {
				ws[j] = watch{Ref: w.Ref, Blocker: first}
				j++
				continue
			}

			// Seek a replacement watch among lits[2:].
			found := false
			for k := 2; k < len(lits); k++ {
				if !vs.isFalse(lits[k]) {
					lits[1], lits[k] = lits[k], lits[1]
					p.Watch(lits[1].Opposite(), w.Ref, first)
					found = true
					break
				}
			}
			if found {
				continue
			}

			// No replacement: the clause is unit (or conflicting) on first.
			ws[j] = watch{Ref: w.Ref, Blocker: first}
			j++
			if vs.isFalse(first) {
				conflict = w.Ref
				t.head = len(t.lits)
				// Preserve the remaining, not-yet-processed watch entries
				// of this literal verbatim.
				for i < n {
					ws[j] = ws[i]
					i++
					j++
				}
				break
			}
			t.assign(vs, first, w.Ref)
		}

		p.watches[lit] = ws[:j]
		if conflict.Valid() {
			break
		}
	}

	return conflict
}
