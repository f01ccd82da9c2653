// Package dimacs parses DIMACS CNF instances into anything implementing
// ClauseReceiver, most often a sat.Solver.
package dimacs

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mhartl/nsat/internal/sat"
)

// ClauseReceiver is the consumer a parser feeds as it reads an instance:
// anything that can create variables and accept clauses one at a time,
// reporting whether the instance is still satisfiable. sat.Solver
// implements it directly; tests supply a recording collaborator that
// retains clauses verbatim instead.
type ClauseReceiver interface {
	AddVariable() sat.Variable
	AddClause(literals []sat.Literal) bool
}

// subprocessReader wraps a decompressor child process's standard output,
// waiting for the process to exit when closed so it is never left as a
// zombie.
type subprocessReader struct {
	io.ReadCloser
	cmd *exec.Cmd
}

func (r *subprocessReader) Close() error {
	pipeErr := r.ReadCloser.Close()
	waitErr := r.cmd.Wait()
	if pipeErr != nil {
		return pipeErr
	}
	return waitErr
}

// openDecompressed spawns name with args and returns its piped standard
// output. It names the utility in any error so the caller can report a
// precise message, per spec.md 6/7.
func openDecompressed(name string, args ...string) (io.ReadCloser, error) {
	cmd := exec.Command(name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", name, err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to spawn %q: %w", name, err)
	}
	return &subprocessReader{ReadCloser: stdout, cmd: cmd}, nil
}

// Open opens path for reading, transparently decompressing .xz and .gz
// (case-insensitive) inputs via a spawned xz/gzip child process. Any
// other extension is opened as plain text.
func Open(path string) (io.ReadCloser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		return openDecompressed("xz", "-dc", path)
	case ".gz":
		return openDecompressed("gzip", "-dc", path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("error opening file %q: %w", path, err)
		}
		return f, nil
	}
}
