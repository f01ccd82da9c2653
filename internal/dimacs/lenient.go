package dimacs

import (
	"fmt"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/mhartl/nsat/internal/sat"
)

// ParseLenient reads a DIMACS CNF instance from path using the
// line-oriented parser of github.com/rhartert/dimacs, which tolerates a
// clause spanning multiple lines. Decompression follows spec.md's
// extension rules (Open).
func ParseLenient(path string, recv ClauseReceiver) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	b := &lenientBuilder{recv: recv}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("error parsing %q: %w", path, err)
	}
	if b.unsat {
		// The receiver already knows it is unsatisfiable; nothing further
		// to report as an error.
		return nil
	}
	if b.declaredClauses != b.seenClauses {
		return fmt.Errorf("cnf file %q: clause count does not match header", path)
	}
	return nil
}

// lenientBuilder adapts a ClauseReceiver to the extdimacs.Builder
// interface, converting DIMACS's signed-int literal convention into
// sat.Literal as it goes. It also cross-checks the header's declared
// clause count against the number of clause lines actually seen, per
// spec.md 6's validation rule.
type lenientBuilder struct {
	recv  ClauseReceiver
	unsat bool

	declaredClauses int
	seenClauses     int
}

func (b *lenientBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("instance type %q is not supported", problem)
	}
	b.declaredClauses = nClauses
	for i := 0; i < nVars; i++ {
		b.recv.AddVariable()
	}
	return nil
}

func (b *lenientBuilder) Clause(tmpClause []int) error {
	b.seenClauses++
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		clause[i] = literalFromDIMACS(l)
	}
	if !b.recv.AddClause(clause) {
		b.unsat = true
	}
	return nil
}

func (b *lenientBuilder) Comment(_ string) error {
	return nil
}

// literalFromDIMACS converts a DIMACS signed variable token (1-indexed,
// negative for negation) into the engine's dense zero-indexed Literal.
func literalFromDIMACS(l int) sat.Literal {
	if l < 0 {
		return sat.NegativeLiteral(sat.Variable(-l - 1))
	}
	return sat.PositiveLiteral(sat.Variable(l - 1))
}
