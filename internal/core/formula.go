package core

import "sort"

// Clause is a disjunction of literals in their raw signed-int form. The
// DP procedure copies formulas by value on every branch (spec.md section
// 4.4/4.9), so clauses here are plain slices rather than the array-backed
// representation the DPLL and watcher variants use for in-place mutation.
type Clause []int

// Formula is a mutable collection of clauses, interpreted as their
// conjunction (spec.md section 3). It backs the DP procedure and the
// simplification rules shared with DPLL's unit/pure-literal passes.
type Formula []Clause

// Clone returns a deep copy of f so that branching can hand out two
// independent formulas without aliasing clause slices.
func (f Formula) Clone() Formula {
	out := make(Formula, len(f))
	for i, c := range f {
		cc := make(Clause, len(c))
		copy(cc, c)
		out[i] = cc
	}
	return out
}

// HasEmptyClause reports whether any clause in f is empty, which makes f
// unsatisfiable by construction (spec.md section 3).
func (f Formula) HasEmptyClause() bool {
	for _, c := range f {
		if len(c) == 0 {
			return true
		}
	}
	return false
}

// dedupAndCheckTautology removes duplicate literals from c and reports
// whether c is a tautology (contains both l and -l). Applied once per
// clause at construction time, per spec.md section 4.2 Rule 1.
func dedupAndCheckTautology(c Clause) (Clause, bool) {
	seen := make(map[int]struct{}, len(c))
	out := make(Clause, 0, len(c))
	for _, lit := range c {
		if _, ok := seen[-lit]; ok {
			return nil, true
		}
		if _, ok := seen[lit]; ok {
			continue
		}
		seen[lit] = struct{}{}
		out = append(out, lit)
	}
	return out, false
}

// NewFormula builds a Formula from raw input clauses, applying Rule 1
// (tautology elimination) once as each clause enters the formula, per
// spec.md section 4.2's invariant that tautologies cannot reappear once
// removed.
func NewFormula(clauses [][]int) Formula {
	f := make(Formula, 0, len(clauses))
	for _, raw := range clauses {
		c, taut := dedupAndCheckTautology(Clause(append(Clause(nil), raw...)))
		if taut {
			continue
		}
		f = append(f, c)
	}
	return f
}

// occurrenceCounts computes pos(v)/neg(v) for every variable touched by
// f, per spec.md section 3's occurrence/frequency tables. numVars sizes
// the returned arrays so callers can index by variable id directly.
func occurrenceCounts(f Formula, numVars int) (pos, neg []int) {
	pos = make([]int, numVars+1)
	neg = make([]int, numVars+1)
	for _, c := range f {
		for _, lit := range c {
			if lit > 0 {
				pos[lit]++
			} else {
				neg[-lit]++
			}
		}
	}
	return pos, neg
}

// sortedClauseCopy returns a sorted copy of c, used by subsumption to
// compare clauses as sets regardless of insertion order.
func sortedClauseCopy(c Clause) Clause {
	out := make(Clause, len(c))
	copy(out, c)
	sort.Ints(out)
	return out
}
