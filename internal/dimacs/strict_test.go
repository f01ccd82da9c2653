package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/mhartl/nsat/internal/sat"
)

func TestParseStrict_SimpleInstance(t *testing.T) {
	path := writeCNF(t, "c comment line\np cnf 3 2\n1 -2 0\n2 3 0\n")

	recv := &recordingReceiver{}
	if err := ParseStrict(path, recv); err != nil {
		t.Fatalf("ParseStrict() = %v, want nil", err)
	}

	if recv.numVars != 3 {
		t.Errorf("numVars = %d, want 3", recv.numVars)
	}
	want := [][]sat.Literal{
		{sat.PositiveLiteral(0), sat.NegativeLiteral(1)},
		{sat.PositiveLiteral(1), sat.PositiveLiteral(2)},
	}
	if diff := cmp.Diff(want, recv.clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrict_RejectsContentBeforeHeader(t *testing.T) {
	path := writeCNF(t, "1 2 0\np cnf 2 1\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with a clause before the header = nil error, want error")
	}
}

func TestParseStrict_RejectsRepeatedHeader(t *testing.T) {
	path := writeCNF(t, "p cnf 2 1\np cnf 2 1\n1 2 0\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with a repeated header = nil error, want error")
	}
}

func TestParseStrict_RejectsZeroPaddedCount(t *testing.T) {
	path := writeCNF(t, "p cnf 02 1\n1 2 0\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with a zero-padded count = nil error, want error")
	}
}

func TestParseStrict_RejectsInvalidByte(t *testing.T) {
	path := writeCNF(t, "p cnf 2 1\n1 a 0\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with an invalid byte in a clause = nil error, want error")
	}
}

func TestParseStrict_RejectsMidClauseEOF(t *testing.T) {
	path := writeCNF(t, "p cnf 2 1\n1 2")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with EOF mid-clause = nil error, want error")
	}
}

func TestParseStrict_RejectsVariableCountMismatch(t *testing.T) {
	path := writeCNF(t, "p cnf 5 1\n1 2 0\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with unused declared variables = nil error, want error")
	}
}

func TestParseStrict_RejectsClauseCountMismatch(t *testing.T) {
	path := writeCNF(t, "p cnf 2 2\n1 2 0\n")

	if err := ParseStrict(path, &recordingReceiver{}); err == nil {
		t.Errorf("ParseStrict() with fewer clauses than declared = nil error, want error")
	}
}

func TestParseStrict_StopsCleanlyOnEarlyUnsat(t *testing.T) {
	path := writeCNF(t, "p cnf 1 2\n1 0\n-1 0\n")

	recv := &recordingReceiver{unsatAfter: 2}
	if err := ParseStrict(path, recv); err != nil {
		t.Errorf("ParseStrict() on early-unsat instance = %v, want nil", err)
	}
}

func TestParseStrict_NegativeDoubleDigitLiteral(t *testing.T) {
	path := writeCNF(t, "p cnf 11 1\n-11 0\n")

	recv := &recordingReceiver{}
	if err := ParseStrict(path, recv); err != nil {
		t.Fatalf("ParseStrict() = %v, want nil", err)
	}
	want := [][]sat.Literal{{sat.NegativeLiteral(10)}}
	if diff := cmp.Diff(want, recv.clauses); diff != "" {
		t.Errorf("clauses mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStrict_AcceptsCRLFLineEndings(t *testing.T) {
	path := writeCNF(t, strings.Join([]string{"p cnf 2 1", "1 2 0", ""}, "\r\n"))

	recv := &recordingReceiver{}
	if err := ParseStrict(path, recv); err != nil {
		t.Errorf("ParseStrict() with CRLF endings = %v, want nil", err)
	}
}
