// Package parsers wires a DIMACS parser implementation to a sat.Solver,
// and provides the small reader used to compare against expected-model
// fixtures in tests.
package parsers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mhartl/nsat/internal/dimacs"
	"github.com/mhartl/nsat/internal/sat"
)

// Load parses the instance at path into solver, using the strict
// byte-level parser if strict is true and the lenient line-oriented
// parser otherwise. Both are alternative implementations of the same
// contract (spec.md 9's open question); callers may pick either.
func Load(path string, strict bool, solver *sat.Solver) error {
	if strict {
		return dimacs.ParseStrict(path, solver)
	}
	return dimacs.ParseLenient(path, solver)
}

// ReadModels reads a file of expected models, one per line, each a
// whitespace-separated list of signed DIMACS literals terminated
// optionally by a trailing 0, and returns one []bool per line indicating
// each literal's polarity in order. It is used by tests to compare a
// solved model against a known-good fixture.
func ReadModels(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading file %q: %w", path, err)
	}
	defer f.Close()

	var models [][]bool
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		model := make([]bool, 0, len(fields))
		for _, tok := range fields {
			if tok == "0" {
				continue
			}
			l, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("error parsing literal %q: %w", tok, err)
			}
			model = append(model, l > 0)
		}
		models = append(models, model)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return models, nil
}
