package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/mhartl/nsat/internal/sat"
)

// parseState is one state of the byte-level DIMACS state machine.
type parseState int

const (
	stateNewLine parseState = iota
	stateExpectNewLine
	stateComment

	// "p cnf nv nc" header, one state per matched character.
	stateHeaderP
	stateHeaderPC
	stateHeaderPCn
	stateHeaderPCnf
	stateHeaderPCnfSpace
	stateHeaderPCnfN
	stateHeaderPCnfNSpace
	stateHeaderPCnfNN
	stateHeaderPCnfNNSpace

	stateClauseDigit
	stateClauseDigitSpace
	stateClauseDigitMinus
)

// strictParser is a byte-level DIMACS state machine with no line
// buffering: it rejects malformed input at the first offending byte
// instead of first collecting a line and then inspecting it.
type strictParser struct {
	recv ClauseReceiver

	numVariablesHeader int
	currNumVariables    int
	numClausesHeader    int
	currNumClauses      int
	processedHeader     bool

	clause   []sat.Literal
	variable int
	polarity bool

	state parseState
}

// ParseStrict reads a DIMACS CNF instance from path one byte at a time,
// rejecting anything but comment and empty lines before the header, a
// repeated header, zero-padded
// counts, or any byte outside "0-9", "-", space, newline and carriage
// return. Decompression follows spec.md's extension rules (Open).
func ParseStrict(path string, recv ClauseReceiver) error {
	r, err := Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	p := &strictParser{recv: recv, polarity: true, state: stateNewLine}
	br := bufio.NewReader(r)

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading %q: %w", path, err)
		}

		stillSat, err := p.step(c)
		if err != nil {
			return fmt.Errorf("malformed cnf file %q: %w", path, err)
		}
		if !stillSat {
			return nil // unsatisfiability at intake is not a parse error
		}
	}

	if p.state != stateNewLine {
		return fmt.Errorf("malformed cnf file %q: unexpected end of file mid-clause", path)
	}
	if p.currNumVariables != p.numVariablesHeader {
		return fmt.Errorf("cnf file %q: variable count does not match header", path)
	}
	if p.currNumClauses != p.numClausesHeader {
		return fmt.Errorf("cnf file %q: clause count does not match header", path)
	}
	return nil
}

func isDigit(c byte) bool     { return c >= '0' && c <= '9' }
func isNonZeroDigit(c byte) bool { return c >= '1' && c <= '9' }
func isNewline(c byte) bool   { return c == '\n' || c == '\r' }

func unexpected(c byte) error {
	return fmt.Errorf("unexpected byte %q", c)
}

// step feeds one byte into the state machine. It returns false (with a
// nil error) the moment a clause completes and the receiver reports the
// instance has become unsatisfiable, mirroring ClauseReceiver.AddClause's
// contract.
func (p *strictParser) step(c byte) (bool, error) {
	switch p.state {
	case stateNewLine:
		switch {
		case isNewline(c):
			return true, nil
		case !p.processedHeader && c == 'p':
			p.state = stateHeaderP
			p.processedHeader = true
		case c == 'c':
			p.state = stateComment
		case p.processedHeader && c == '-':
			p.polarity = false
			p.state = stateClauseDigit
			p.clause = p.clause[:0]
			p.currNumClauses++
		case p.processedHeader && isNonZeroDigit(c):
			p.variable = int(c - '0')
			p.polarity = true
			p.state = stateClauseDigitSpace
			p.clause = p.clause[:0]
			p.currNumClauses++
		default:
			return true, unexpected(c)
		}

	case stateExpectNewLine:
		if !isNewline(c) {
			return true, unexpected(c)
		}
		p.state = stateNewLine

	case stateComment:
		if isNewline(c) {
			p.state = stateNewLine
		}

	case stateHeaderP:
		if c != ' ' {
			return true, unexpected(c)
		}
		p.state = stateHeaderPC
	case stateHeaderPC:
		if c != 'c' {
			return true, unexpected(c)
		}
		p.state = stateHeaderPCn
	case stateHeaderPCn:
		if c != 'n' {
			return true, unexpected(c)
		}
		p.state = stateHeaderPCnf
	case stateHeaderPCnf:
		if c != 'f' {
			return true, unexpected(c)
		}
		p.state = stateHeaderPCnfSpace
	case stateHeaderPCnfSpace:
		if c != ' ' {
			return true, unexpected(c)
		}
		p.state = stateHeaderPCnfN
	case stateHeaderPCnfN:
		if !isNonZeroDigit(c) {
			return true, unexpected(c)
		}
		p.numVariablesHeader = int(c - '0')
		p.state = stateHeaderPCnfNSpace
	case stateHeaderPCnfNSpace:
		switch {
		case c == ' ':
			p.state = stateHeaderPCnfNN
		case isDigit(c):
			p.numVariablesHeader = 10*p.numVariablesHeader + int(c-'0')
		default:
			return true, unexpected(c)
		}
	case stateHeaderPCnfNN:
		if !isNonZeroDigit(c) {
			return true, unexpected(c)
		}
		p.numClausesHeader = int(c - '0')
		p.state = stateHeaderPCnfNNSpace
	case stateHeaderPCnfNNSpace:
		switch {
		case isNewline(c):
			for i := 0; i < p.numVariablesHeader; i++ {
				p.recv.AddVariable()
			}
			p.state = stateNewLine
		case isDigit(c):
			p.numClausesHeader = 10*p.numClausesHeader + int(c-'0')
		default:
			return true, unexpected(c)
		}

	case stateClauseDigit:
		if !isNonZeroDigit(c) {
			return true, unexpected(c)
		}
		p.variable = int(c - '0')
		p.state = stateClauseDigitSpace

	case stateClauseDigitSpace:
		switch {
		case c == ' ':
			p.state = stateClauseDigitMinus
			p.pushLiteral()
		case isDigit(c):
			p.variable = 10*p.variable + int(c-'0')
		default:
			return true, unexpected(c)
		}

	case stateClauseDigitMinus:
		switch {
		case c == '-':
			p.state = stateClauseDigit
			p.polarity = false
		case c == '0':
			p.state = stateExpectNewLine
			if !p.recv.AddClause(p.clause) {
				return false, nil
			}
		case isNonZeroDigit(c):
			p.variable = int(c - '0')
			p.state = stateClauseDigitSpace
		default:
			return true, unexpected(c)
		}
	}

	return true, nil
}

// pushLiteral appends the just-completed literal to the in-progress
// clause and tracks the header's declared variable count against the
// highest variable actually used.
func (p *strictParser) pushLiteral() {
	v := p.variable - 1
	if v+1 > p.currNumVariables {
		p.currNumVariables = v + 1
	}
	if p.polarity {
		p.clause = append(p.clause, sat.PositiveLiteral(sat.Variable(v)))
	} else {
		p.clause = append(p.clause, sat.NegativeLiteral(sat.Variable(v)))
	}
	p.polarity = true
}
