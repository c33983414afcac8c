package core

// dpllClause is the array-backed clause representation the DPLL and
// watcher variants mutate in place: literals are removed destructively
// (journaled for undo) instead of rebuilding the clause by value, per
// spec.md section 4.5.
type dpllClause struct {
	lits      []Lit
	satisfied bool
}

// journalKind tags the two mutation kinds spec.md section 9's Design
// Notes calls ClauseDeactivated and LiteralRemoved. The watcher engine
// (watch.go) adds a third kind, WatcherSwapped, in its own journal.
type journalKind int8

const (
	jDeactivate journalKind = iota
	jRemoveLiteral
)

type journalEntry struct {
	kind     journalKind
	clauseID int
	lit      Lit
}

// dpllState is the mutable search state for classical_dpll and dpll: an
// explicit trail, an undo journal, and literal-indexed occurrence lists
// for finding the clauses a newly-assigned literal affects.
type dpllState struct {
	numVars int
	clauses []dpllClause
	occ     [][]int // indexed by encoded Lit
	assigned []Value // indexed by Var

	trail   []trailEntry
	journal []journalEntry

	heuristic   bool
	pureLiteral bool

	decisions    int64
	propagations int64
}

// newDPLLState builds the array-backed formula from in, applying Rule 1
// (tautology elimination) once per clause as it is inserted. The second
// return value is true if some clause reduced to empty at construction
// time, which spec.md section 4.1 treats as immediate UNSAT.
func newDPLLState(in InputFormula, heuristic, pureLiteral bool) (*dpllState, bool) {
	s := &dpllState{
		numVars:     in.NumVars,
		heuristic:   heuristic,
		pureLiteral: pureLiteral,
		assigned:    make([]Value, in.NumVars+1),
		occ:         make([][]int, 2*in.NumVars),
	}
	for _, raw := range in.Clauses {
		c, taut := dedupAndCheckTautology(Clause(append(Clause(nil), raw...)))
		if taut {
			continue
		}
		if len(c) == 0 {
			return s, true
		}
		lits := make([]Lit, len(c))
		for i, x := range c {
			lits[i] = litFromRaw(x)
		}
		s.clauses = append(s.clauses, dpllClause{lits: lits})
	}
	for cid, c := range s.clauses {
		for _, lit := range c.lits {
			s.occ[lit] = append(s.occ[lit], cid)
		}
	}
	return s, false
}

// assign pushes (lit, reason) onto the trail, satisfies every clause
// containing lit, and strikes lit's negation from every clause
// containing it. It returns false if doing so empties a clause
// (conflict) or if lit contradicts an existing assignment.
func (s *dpllState) assign(lit Lit, reason Reason) bool {
	v := lit.Var()
	want := True
	if lit.Negated() {
		want = False
	}
	if s.assigned[v] != Unassigned {
		return s.assigned[v] == want
	}
	s.assigned[v] = want
	s.trail = append(s.trail, trailEntry{lit: lit, reason: reason})
	if reason == Decision {
		s.decisions++
	}

	for _, cid := range s.occ[lit] {
		c := &s.clauses[cid]
		if !c.satisfied {
			c.satisfied = true
			s.journal = append(s.journal, journalEntry{kind: jDeactivate, clauseID: cid})
		}
	}

	neg := lit.Neg()
	ok := true
	for _, cid := range s.occ[neg] {
		c := &s.clauses[cid]
		if c.satisfied {
			continue
		}
		idx := -1
		for i, l := range c.lits {
			if l == neg {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}
		c.lits[idx] = c.lits[len(c.lits)-1]
		c.lits = c.lits[:len(c.lits)-1]
		s.journal = append(s.journal, journalEntry{kind: jRemoveLiteral, clauseID: cid, lit: neg})
		if len(c.lits) == 0 {
			ok = false
		}
	}
	return ok
}

// propagate implements Rule 2 by full-scan: repeatedly find any active
// unit clause and assign its literal with reason Propagated, continuing
// until none remain or a conflict arises. This is the naive, O(clauses)
// -per-step propagation spec.md section 4.6 contrasts with the watcher
// engine's inverted-index approach.
func (s *dpllState) propagate() bool {
	for {
		unit := -1
		for i := range s.clauses {
			c := &s.clauses[i]
			if c.satisfied {
				continue
			}
			if len(c.lits) == 1 {
				unit = i
				break
			}
		}
		if unit == -1 {
			return true
		}
		lit := s.clauses[unit].lits[0]
		s.propagations++
		if !s.assign(lit, Propagated) {
			return false
		}
	}
}

// applyPureLiteralElim implements Rule 3 over the array-backed state,
// run to fixpoint. Used unconditionally by the heuristic dpll variant
// and, per the classical_dpll setting documented in DESIGN.md's Open
// Questions, skipped by classical_dpll.
func (s *dpllState) applyPureLiteralElim() bool {
	for {
		posSeen := make([]bool, s.numVars+1)
		negSeen := make([]bool, s.numVars+1)
		for i := range s.clauses {
			c := &s.clauses[i]
			if c.satisfied {
				continue
			}
			for _, lit := range c.lits {
				if lit.Negated() {
					negSeen[lit.Var()] = true
				} else {
					posSeen[lit.Var()] = true
				}
			}
		}
		changed := false
		for v := 1; v <= s.numVars; v++ {
			if s.assigned[v] != Unassigned {
				continue
			}
			p, n := posSeen[v], negSeen[v]
			if p == n {
				continue
			}
			lit := mkLit(Var(v), n)
			if !s.assign(lit, Propagated) {
				return false
			}
			changed = true
		}
		if !changed {
			return true
		}
	}
}

// allSatisfied reports whether every clause has been marked satisfied,
// spec.md section 4.5's "all clauses inactive" terminal condition.
func (s *dpllState) allSatisfied() bool {
	for i := range s.clauses {
		if !s.clauses[i].satisfied {
			return false
		}
	}
	return true
}

// computeCounts scans the active clauses to build the pos/neg
// occurrence tables spec.md section 4.3 branches on; see
// occurrenceCountsActive for the shared implementation (invariant I2
// holds because the tables are recomputed fresh at the point they are
// read).
func (s *dpllState) computeCounts() (pos, neg []int) {
	return occurrenceCountsActive(s.clauses, s.numVars)
}

func (s *dpllState) mark() mark {
	return mark{trailLen: len(s.trail), journalLen: len(s.journal)}
}

// popTo replays the journal in reverse until it is back to m.journalLen,
// then truncates the trail back to m.trailLen, unassigning every
// variable popped along the way. Spec.md section 4.5's pop_until.
func (s *dpllState) popTo(m mark) {
	for i := len(s.journal) - 1; i >= m.journalLen; i-- {
		e := s.journal[i]
		switch e.kind {
		case jDeactivate:
			s.clauses[e.clauseID].satisfied = false
		case jRemoveLiteral:
			c := &s.clauses[e.clauseID]
			c.lits = append(c.lits, e.lit)
		}
	}
	s.journal = s.journal[:m.journalLen]
	for i := len(s.trail) - 1; i >= m.trailLen; i-- {
		s.assigned[s.trail[i].lit.Var()] = Unassigned
	}
	s.trail = s.trail[:m.trailLen]
}

// search implements spec.md section 4.5's dpll() pseudocode: propagate,
// optionally eliminate pure literals, check for a total assignment,
// otherwise branch on both polarities of the chosen literal.
func (s *dpllState) search() bool {
	if !s.propagate() {
		return false
	}
	if s.pureLiteral {
		if !s.applyPureLiteralElim() {
			return false
		}
	}
	if s.allSatisfied() {
		return true
	}

	var lit Lit
	var ok bool
	if s.heuristic {
		pos, neg := s.computeCounts()
		lit, ok = branchLiteralCounts(pos, neg, s.assigned, s.numVars)
	} else {
		lit, ok = firstUnassignedLiteral(s.clauses, s.assigned)
	}
	if !ok {
		return true
	}

	m := s.mark()
	if s.assign(lit, Decision) && s.search() {
		return true
	}
	s.popTo(m)

	if s.assign(lit.Neg(), Decision) && s.search() {
		return true
	}
	s.popTo(m)
	return false
}

// SolveDPLL runs classical_dpll (heuristic=false) or dpll
// (heuristic=true) over in. pureLiteral selects whether Rule 3 runs;
// DESIGN.md's Open Questions record the default for each variant.
func SolveDPLL(in InputFormula, heuristic, pureLiteral bool) (Result, Stats) {
	in.validate()
	s, trivialUnsat := newDPLLState(in, heuristic, pureLiteral)
	if trivialUnsat {
		return Result{Sat: false}, Stats{}
	}
	sat := s.search()
	stats := Stats{Decisions: s.decisions, Propagations: s.propagations, Trail: signedTrail(s.trail)}
	if !sat {
		return Result{Sat: false}, stats
	}
	return Result{Sat: true, Model: s.model()}, stats
}

// model completes a total assignment from the final trail state,
// defaulting any never-touched variable to true (spec.md section 9).
func (s *dpllState) model() Model {
	m := make(Model, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if s.assigned[v] == False {
			m[v-1] = -v
		} else {
			m[v-1] = v
		}
	}
	return m
}
