package core

// dpState carries the counters the façade reports back plus the shared
// options for one dp/dp_default solve.
type dpState struct {
	heuristic bool
	opts      SimplifyOptions
	numVars   int
	decisions int64
}

// solveDP implements spec.md section 4.4's recursive Davis-Putnam
// procedure: simplify to fixpoint, then branch by value-copying the
// formula for each polarity. trail accumulates the literals forced
// along the current recursion path so the final model can be built from
// it plus the last branch decision.
func (st *dpState) solveDP(f Formula, trail []int) ([]int, bool) {
	res := simplifyToFixpoint(f, st.opts)
	if res.unsat {
		return nil, false
	}
	trail = append(append([]int{}, trail...), res.assigned...)
	f = res.formula

	if len(f) == 0 {
		return trail, true
	}
	if f.HasEmptyClause() {
		return nil, false
	}

	var lit int
	var ok bool
	if st.heuristic {
		lit, ok = heuristicLiteral(f, st.numVars)
	} else {
		lit, ok = firstLiteral(f)
	}
	if !ok {
		// No literal scores positively but the formula is non-empty;
		// every remaining clause is already satisfied by assignments
		// outside the counted vars, which cannot happen given the
		// fixpoint above, so fall back to the first literal of the
		// first clause to guarantee progress.
		lit, ok = firstLiteral(f)
		if !ok {
			return trail, true
		}
	}
	st.decisions++

	withPos := f.Clone()
	withPos = append(withPos, Clause{lit})
	if soln, sat := st.solveDP(withPos, trail); sat {
		return soln, true
	}

	withNeg := f.Clone()
	withNeg = append(withNeg, Clause{-lit})
	return st.solveDP(withNeg, trail)
}

// SolveDP runs the DP procedure (dp_default if heuristic is false, dp if
// true) over in and returns SAT/UNSAT plus the completed model.
func SolveDP(in InputFormula, heuristic bool, opts SimplifyOptions) (Result, Stats) {
	in.validate()
	st := &dpState{heuristic: heuristic, opts: opts, numVars: in.NumVars}
	f := NewFormula(in.Clauses)
	if f.HasEmptyClause() {
		return Result{Sat: false}, Stats{Decisions: 0}
	}
	trail, sat := st.solveDP(f, nil)
	stats := Stats{Decisions: st.decisions}
	if !sat {
		return Result{Sat: false}, stats
	}
	return Result{Sat: true, Model: modelFromTrail(trail, in.NumVars)}, stats
}

// modelFromTrail completes a model over [1, numVars] from a list of
// signed literals known true, defaulting any untouched variable to true
// per spec.md section 9's open question on free-variable polarity.
func modelFromTrail(trail []int, numVars int) Model {
	m := make(Model, numVars)
	for i := range m {
		m[i] = i + 1
	}
	for _, lit := range trail {
		v := lit
		if v < 0 {
			v = -v
		}
		if v >= 1 && v <= numVars {
			m[v-1] = lit
		}
	}
	return m
}
