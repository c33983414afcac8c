package core

// simplifyResult distinguishes "reached a fixpoint with formula f
// remaining" from the two terminal outcomes the core returns early on.
type simplifyResult struct {
	formula  Formula
	assigned []int // literals recorded true along the way (trail for DP)
	unsat    bool
}

// unitPropagate applies Rule 2 to fixpoint: while some clause is unit
// with literal l, satisfy every clause containing l, strike -l from
// every other clause (detecting conflicts), and record l. Clause
// selection is lowest-index-first for deterministic, reproducible
// behavior (spec.md section 4.2).
func unitPropagate(f Formula) (Formula, []int, bool) {
	var assigned []int
	for {
		unitLit, found := 0, false
		for _, c := range f {
			if len(c) == 1 {
				unitLit, found = c[0], true
				break
			}
		}
		if !found {
			return f, assigned, true
		}
		assigned = append(assigned, unitLit)
		next := f[:0:0]
		for _, c := range f {
			satisfied := false
			out := c[:0:0]
			for _, lit := range c {
				switch {
				case lit == unitLit:
					satisfied = true
				case lit == -unitLit:
					// dropped
				default:
					out = append(out, lit)
				}
			}
			if satisfied {
				continue
			}
			if len(out) == 0 {
				return f, assigned, false // conflict: clause emptied
			}
			next = append(next, out)
		}
		f = next
	}
}

// pureLiteralElim applies Rule 3 to fixpoint: a literal l is pure if -l
// appears in no active clause; every clause containing a pure literal is
// satisfied and removed, and the literal is recorded true.
func pureLiteralElim(f Formula) (Formula, []int) {
	var assigned []int
	for {
		posSeen := map[int]bool{}
		negSeen := map[int]bool{}
		for _, c := range f {
			for _, lit := range c {
				if lit > 0 {
					posSeen[lit] = true
				} else {
					negSeen[-lit] = true
				}
			}
		}
		var pure []int
		for v := range posSeen {
			if !negSeen[v] {
				pure = append(pure, v)
			}
		}
		for v := range negSeen {
			if !posSeen[v] {
				pure = append(pure, -v)
			}
		}
		if len(pure) == 0 {
			return f, assigned
		}
		pureSet := make(map[int]bool, len(pure))
		for _, l := range pure {
			pureSet[l] = true
		}
		assigned = append(assigned, pure...)
		next := f[:0:0]
		for _, c := range f {
			satisfied := false
			for _, lit := range c {
				if pureSet[lit] {
					satisfied = true
					break
				}
			}
			if !satisfied {
				next = append(next, c)
			}
		}
		f = next
	}
}

// subsumptionElim applies Rule 4: if clause A is a strict subset of
// clause B, B is redundant. Optional and disabled by default (spec.md
// section 4.2, DESIGN.md Open Question 2): quadratic in clause count,
// rarely worth its cost outside of pathological inputs.
func subsumptionElim(f Formula) (Formula, bool) {
	sorted := make([]Clause, len(f))
	for i, c := range f {
		sorted[i] = sortedClauseCopy(c)
	}
	removed := make([]bool, len(f))
	changed := false
	for i := range f {
		if removed[i] {
			continue
		}
		for j := range f {
			if i == j || removed[j] || len(sorted[i]) >= len(sorted[j]) {
				continue
			}
			if isSubset(sorted[i], sorted[j]) {
				removed[j] = true
				changed = true
			}
		}
	}
	if !changed {
		return f, false
	}
	out := f[:0:0]
	for i, c := range f {
		if !removed[i] {
			out = append(out, c)
		}
	}
	return out, true
}

// isSubset reports whether every literal of a (sorted, strictly smaller)
// also appears in b (sorted).
func isSubset(a, b Clause) bool {
	bi := 0
	for _, lit := range a {
		for bi < len(b) && b[bi] < lit {
			bi++
		}
		if bi >= len(b) || b[bi] != lit {
			return false
		}
		bi++
	}
	return true
}

// SimplifyOptions controls which optional rules run during fixpoint
// simplification.
type SimplifyOptions struct {
	// Subsumption enables Rule 4. Disabled by default per spec.md
	// section 4.2.
	Subsumption bool
}

// simplifyToFixpoint runs unit propagation, pure-literal elimination,
// and (optionally) subsumption to fixpoint, as the DP procedure's outer
// loop requires (spec.md section 4.4).
func simplifyToFixpoint(f Formula, opts SimplifyOptions) simplifyResult {
	var allAssigned []int
	for {
		var assigned []int
		var ok bool
		f, assigned, ok = unitPropagate(f)
		allAssigned = append(allAssigned, assigned...)
		if !ok {
			return simplifyResult{unsat: true}
		}
		var pureAssigned []int
		f, pureAssigned = pureLiteralElim(f)
		allAssigned = append(allAssigned, pureAssigned...)

		changed := false
		if opts.Subsumption {
			f, changed = subsumptionElim(f)
		}
		if !changed {
			return simplifyResult{formula: f, assigned: allAssigned}
		}
		// Subsumption may have exposed new units/pures; loop again.
	}
}
