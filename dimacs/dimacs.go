// Package dimacs reads and writes the DIMACS CNF text format described
// in spec.md section 6. It is deliberately kept outside internal/core:
// the core consumes parsed formulas and produces no I/O of its own.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sat-tools/satkit/internal/core"
)

// Builder receives callbacks as ReadBuilder scans a DIMACS CNF stream,
// in the order the lines appear. ParseDIMACS and ReadFormula are both
// thin Builder implementations over the same scan.
type Builder interface {
	// Problem processes the problem line's declared counts. When it is
	// called, it precedes every Clause call (a problem line after
	// clauses is an error); a stream may omit the problem line
	// entirely, in which case Problem is never called.
	Problem(numVars, numClauses int)

	// Clause processes one fully-scanned clause. lits belongs to the
	// caller only for the duration of the call; retaining it requires
	// copying.
	Clause(lits []int)

	// Comment processes one 'c'-prefixed line, without the prefix
	// stripped.
	Comment(line string)
}

// clauseBuilder is the Builder ParseDIMACS drives: it only cares about
// the clause list, matching that function's original contract.
type clauseBuilder struct {
	clauses [][]int
}

func (b *clauseBuilder) Problem(int, int) {}
func (b *clauseBuilder) Comment(string)   {}
func (b *clauseBuilder) Clause(lits []int) {
	c := make([]int, len(lits))
	copy(c, lits)
	b.clauses = append(b.clauses, c)
}

// ParseDIMACS parses text in the DIMACS CNF format.
//
// For convenience, a few non-standard variations are accepted:
//
//   - Comments (lines beginning with 'c') may appear anywhere, not just in the
//     preamble.
//   - The problem line may be missing.
func ParseDIMACS(r io.Reader) ([][]int, error) {
	b := &clauseBuilder{}
	if err := ReadBuilder(r, b); err != nil {
		return nil, err
	}
	return b.clauses, nil
}

// ReadBuilder scans r for DIMACS CNF content and drives b's callbacks
// in line order. Unlike the stricter one-clause-per-line grammar this
// is modeled on, it keeps the tolerant dialect this package's fixtures
// depend on: a clause's literals may be split across several lines (it
// ends at the first literal `0`), comments may appear between or
// inside clauses, and a line containing a lone `%` ends the scan.
func ReadBuilder(r io.Reader, b Builder) error {
	var problem struct {
		vars    int
		clauses int
	}
	varsSeen := make(map[int]struct{})
	clauseCount := 0
	var clause []int

	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == 'c' {
			b.Comment(line)
			continue
		}
		// Some CNF formats attach extra data in a trailer after a line
		// containing a single %.
		if line == "%" {
			break
		}
		if line[0] == 'p' {
			if clauseCount > 0 {
				return errors.New("problem line appears after clauses")
			}
			if problem.vars > 0 {
				return errors.New("multiple problem lines")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 {
				return fmt.Errorf("malformed problem line %q", line)
			}
			if fields[0] != "p" {
				return fmt.Errorf("problem line starts with unexpected signifier %q", fields[0])
			}
			if fields[1] != "cnf" {
				return fmt.Errorf("only cnf supported; got %q", fields[1])
			}
			var err error
			problem.vars, err = strconv.Atoi(fields[2])
			if err != nil {
				return fmt.Errorf("malformed #vars in problem line: %s", err)
			}
			problem.clauses, err = strconv.Atoi(fields[3])
			if err != nil {
				return fmt.Errorf("malformed #clauses in problem line: %s", err)
			}
			if problem.vars < 0 {
				return fmt.Errorf("invalid #vars %d", problem.vars)
			}
			if problem.clauses < 0 {
				return fmt.Errorf("invalid #clauses %d", problem.clauses)
			}
			b.Problem(problem.vars, problem.clauses)
			continue
		}
		for _, field := range strings.Fields(line) {
			n, err := strconv.Atoi(field)
			if err != nil {
				return fmt.Errorf("invalid variable: %s", err)
			}
			if n == 0 {
				if err := recordClause(b, clause, problem.vars, varsSeen); err != nil {
					return err
				}
				clauseCount++
				clause = nil
			} else {
				clause = append(clause, n)
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if len(clause) > 0 {
		if err := recordClause(b, clause, problem.vars, varsSeen); err != nil {
			return err
		}
		clauseCount++
	}

	if problem.vars > 0 {
		// Allow some vars to be missing.
		if len(varsSeen) > problem.vars {
			return fmt.Errorf("problem line specifies %d vars, but there are %d", problem.vars, len(varsSeen))
		}
		if clauseCount != problem.clauses {
			return fmt.Errorf("problem line specifies %d clauses, but there are %d", problem.clauses, clauseCount)
		}
	}
	return nil
}

// recordClause bound-checks clause against the declared variable count
// (when one was declared), tracks which variables have been used, and
// forwards the clause to b.
func recordClause(b Builder, clause []int, declaredVars int, varsSeen map[int]struct{}) error {
	if declaredVars > 0 {
		for _, v := range clause {
			if v < 0 {
				v = -v
			}
			if v > declaredVars {
				return fmt.Errorf("formula contains var %d, but problem line asserts %d vars (only vars in [1, %d] expected)",
					v, declaredVars, declaredVars)
			}
			varsSeen[v] = struct{}{}
		}
	}
	b.Clause(clause)
	return nil
}

// WriteDIMACS writes clauses in the DIMACS CNF format: a `p cnf N M`
// problem line (N is the largest variable referenced, M the clause
// count) followed by one zero-terminated clause per line. It is the
// inverse of ParseDIMACS; the package's tests use it for round-trip
// checks, and it can persist formulas such as those the gen package
// generates.
func WriteDIMACS(w io.Writer, clauses [][]int) error {
	n := 0
	for _, c := range clauses {
		for _, lit := range c {
			if lit < 0 {
				lit = -lit
			}
			if lit > n {
				n = lit
			}
		}
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", n, len(clauses)); err != nil {
		return err
	}
	for _, c := range clauses {
		for i, lit := range c {
			if i > 0 {
				if _, err := bw.WriteString(" "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", lit); err != nil {
				return err
			}
		}
		if len(c) > 0 {
			if _, err := bw.WriteString(" "); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// formulaBuilder is the Builder ReadFormula drives: it collects clauses
// like clauseBuilder, but also remembers the declared variable count
// (if any) so ReadFormula doesn't need a second pass to derive it.
type formulaBuilder struct {
	clauseBuilder
	declaredVars int
}

func (b *formulaBuilder) Problem(numVars, _ int) {
	b.declaredVars = numVars
}

// ReadFormula parses r and adapts the result into core.InputFormula,
// preferring the DIMACS problem line's declared variable count and
// falling back to the largest variable referenced when the line is
// absent or understates it.
func ReadFormula(r io.Reader) (core.InputFormula, error) {
	b := &formulaBuilder{}
	if err := ReadBuilder(r, b); err != nil {
		return core.InputFormula{}, err
	}
	numVars := b.declaredVars
	for _, c := range b.clauses {
		for _, lit := range c {
			if lit < 0 {
				lit = -lit
			}
			if lit > numVars {
				numVars = lit
			}
		}
	}
	return core.InputFormula{NumVars: numVars, Clauses: b.clauses}, nil
}

// WriteFormula writes f in the DIMACS CNF format.
func WriteFormula(w io.Writer, f core.InputFormula) error {
	return WriteDIMACS(w, f.Clauses)
}
