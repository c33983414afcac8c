package core

// firstLiteral implements the classical (non-heuristic) branch rule: the
// first literal of the first active clause. Deterministic and cheap but
// uninformed (spec.md section 4.3).
func firstLiteral(f Formula) (int, bool) {
	for _, c := range f {
		if len(c) > 0 {
			return c[0], true
		}
	}
	return 0, false
}

// heuristicLiteral implements the frequency-scored branch rule of
// spec.md section 4.3: pick the unassigned variable v maximizing
// pos(v)+neg(v), tie-break by smallest variable id, then pick the
// polarity with the larger individual count.
func heuristicLiteral(f Formula, numVars int) (int, bool) {
	pos, neg := occurrenceCounts(f, numVars)
	best, bestScore := 0, -1
	for v := 1; v <= numVars; v++ {
		score := pos[v] + neg[v]
		if score > bestScore {
			best, bestScore = v, score
		}
	}
	if best == 0 || bestScore == 0 {
		return 0, false
	}
	if pos[best] >= neg[best] {
		return best, true
	}
	return -best, true
}

// branchLiteralCounts is the array-indexed analogue of heuristicLiteral
// used by the DPLL and watcher variants, which pass in pos/neg tables
// (spec.md section 3's occurrence tables) recomputed over the active
// clauses by occurrenceCountsActive. assigned[v] must be Unassigned for
// v to be a candidate.
func branchLiteralCounts(pos, neg []int, assigned []Value, numVars int) (Lit, bool) {
	best, bestScore := Var(0), -1
	for v := 1; v <= numVars; v++ {
		if assigned[v] != Unassigned {
			continue
		}
		score := pos[v] + neg[v]
		if score > bestScore {
			best, bestScore = Var(v), score
		}
	}
	if best == 0 || bestScore <= 0 {
		return 0, false
	}
	return mkLit(best, pos[best] < neg[best]), true
}

// firstUnassignedLiteral implements first-literal branching for the
// array-backed DPLL/watcher state: the first unassigned literal of the
// first clause that is not yet satisfied.
func firstUnassignedLiteral(clauses []dpllClause, assigned []Value) (Lit, bool) {
	for _, c := range clauses {
		if c.satisfied {
			continue
		}
		for _, lit := range c.lits {
			if assigned[lit.Var()] == Unassigned {
				return lit, true
			}
		}
	}
	return 0, false
}

// occurrenceCountsActive scans the active (non-satisfied) clauses of an
// array-backed clause set to build spec.md section 3's pos/neg tables.
// Shared by the dpll and watcher variants, both of which recompute the
// tables at each decision rather than maintaining them incrementally.
func occurrenceCountsActive(clauses []dpllClause, numVars int) (pos, neg []int) {
	pos = make([]int, numVars+1)
	neg = make([]int, numVars+1)
	for i := range clauses {
		c := &clauses[i]
		if c.satisfied {
			continue
		}
		for _, lit := range c.lits {
			if lit.Negated() {
				neg[lit.Var()]++
			} else {
				pos[lit.Var()]++
			}
		}
	}
	return pos, neg
}
