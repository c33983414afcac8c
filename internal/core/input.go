package core

import "fmt"

// InputFormula is the parsed-formula contract handed to the core by an
// external collaborator (a DIMACS reader, a generator, a test). NumVars
// fixes the variable universe [1, NumVars]; every literal in Clauses must
// have an absolute value in that range. Duplicate literals within a
// clause are removed when the core builds its formula, and a clause
// containing both l and -l is dropped as a tautology (Rule 1). Other
// malformed input is a façade-boundary programming error that the core
// does not recover from (spec.md section 7).
type InputFormula struct {
	NumVars int
	Clauses [][]int
}

// validate panics on a contract violation: an out-of-range literal, a
// zero literal, or a negative NumVars. This is deliberately a panic, not
// an error return — per spec.md section 7, the core does not attempt to
// recover from malformed input.
func (f InputFormula) validate() {
	if f.NumVars < 0 {
		panic(fmt.Sprintf("core: negative NumVars %d", f.NumVars))
	}
	for ci, cls := range f.Clauses {
		for _, lit := range cls {
			if lit == 0 {
				panic(fmt.Sprintf("core: clause %d contains a zero literal", ci))
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > f.NumVars {
				panic(fmt.Sprintf("core: clause %d contains literal %d outside [1,%d]", ci, lit, f.NumVars))
			}
		}
	}
}

// Model is a total assignment covering every variable in [1, NumVars],
// expressed as the signed literal true under the assignment.
type Model []int

// IsTrue reports whether variable v is assigned true in m.
func (m Model) IsTrue(v Var) bool {
	idx := int(v) - 1
	if idx < 0 || idx >= len(m) {
		return false
	}
	return m[idx] > 0
}

// Result is the outcome of a solve: either Sat with a model, or Unsat.
type Result struct {
	Sat   bool
	Model Model
}

// Stats carries purely informational counters about a single solve; the
// core never logs them itself (spec.md section 5/7), it only reports
// them back to the caller.
type Stats struct {
	Variant                string
	Decisions              int64
	Propagations           int64
	SolvedBySimplification bool
	// Trail is the final decision/propagation order, each entry a signed
	// literal (negative for a false assignment). Populated by the
	// trail-based variants (dp never builds one) for verbose/debug
	// dumps; callers that don't need it can ignore it.
	Trail []int
}
