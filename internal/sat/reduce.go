package sat

// pruneLearned randomly detaches learned clauses, per spec.md 4.8: every
// learned clause longer than two literals and not currently locked is
// dropped with probability one half. Binary learned clauses are never
// dropped since they are cheap to keep and frequently reused.
func (s *Solver) pruneLearned() {
	for idx := 0; idx < s.store.learned.len(); idx++ {
		lits := s.store.learned.at(idx)
		if len(lits) == 0 || len(lits) <= 2 {
			continue
		}

		ref := newClauseRef(idx, true)
		if !s.locked(ref) && s.rng.CoinFlip(0.5) {
			s.detachClause(ref)
		}
	}
}
