package dimacs

import "github.com/mhartl/nsat/internal/sat"

// recordingReceiver is a ClauseReceiver that keeps every clause it is
// given verbatim, for asserting on parser output without a real Solver.
type recordingReceiver struct {
	numVars int
	clauses [][]sat.Literal

	// unsatAfter, if positive, makes AddClause report false starting with
	// the n-th clause (1-indexed), to exercise early-unsat handling.
	unsatAfter int
}

func (r *recordingReceiver) AddVariable() sat.Variable {
	v := sat.Variable(r.numVars)
	r.numVars++
	return v
}

func (r *recordingReceiver) AddClause(literals []sat.Literal) bool {
	clause := append([]sat.Literal(nil), literals...)
	r.clauses = append(r.clauses, clause)
	if r.unsatAfter > 0 && len(r.clauses) >= r.unsatAfter {
		return false
	}
	return true
}
