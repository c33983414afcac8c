package core

// watchJournalKind tags the watcher engine's undo log entries. Unlike
// dpll.go's journal, the watcher engine never removes a literal from a
// clause; it only ever marks a clause satisfied, swaps which two of its
// literals are watched, or reorders its own two watched positions
// (spec.md section 4.6, section 9's WatcherSwapped entry). All three
// are journaled: clause.lits[0]/lits[1] must always equal exactly the
// two literals watchers[] has on record for that clause, at every point
// popTo can rewind to, so every mutation of those two positions needs
// an undo entry.
type watchJournalKind int8

const (
	wjSatisfied watchJournalKind = iota
	wjSwap
	wjNormalize
)

type watchJournalEntry struct {
	kind     watchJournalKind
	clauseID int
	// For wjSwap: the watch moved from fromLit to toLit, and toLit had
	// been sitting at lits[idx] before the swap. wjNormalize carries no
	// extra fields: it is its own inverse, swapping lits[0] and lits[1]
	// back without touching watchers[] (neither position's watched
	// literal changes, only which index it sits at).
	fromLit Lit
	toLit   Lit
	idx     int
}

// watchState is the mutable search state for dpll_watchers: the same
// trail-and-journal shape as dpllState, plus a literal-indexed watcher
// table instead of full-scan unit detection (spec.md section 4.6).
type watchState struct {
	numVars  int
	clauses  []dpllClause
	watchers [][]int // indexed by encoded Lit: clause ids currently watching that literal
	assigned []Value

	trail   []trailEntry
	journal []watchJournalEntry

	queue []Lit
	qHead int

	heuristic bool

	decisions    int64
	propagations int64
}

// newWatchState builds the watcher index described in spec.md section
// 3: every non-unit, non-tautological clause watches the first two of
// its literals; a unit clause (one literal after Rule 1) is satisfied
// outright by enqueueing its literal, per the Watcher index definition
// ("a unit clause watches its single literal"). The second return value
// is true on a contract-level immediate UNSAT (an empty clause, or two
// contradictory unit clauses).
func newWatchState(in InputFormula, heuristic bool) (*watchState, bool) {
	s := &watchState{
		numVars:   in.NumVars,
		heuristic: heuristic,
		assigned:  make([]Value, in.NumVars+1),
		watchers:  make([][]int, 2*in.NumVars),
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
		cid := len(s.clauses)
		s.clauses = append(s.clauses, dpllClause{lits: lits})
		if len(lits) == 1 {
			s.clauses[cid].satisfied = true
			s.watchers[lits[0]] = append(s.watchers[lits[0]], cid)
			if !s.enqueueAssign(lits[0], Propagated) {
				return s, true
			}
			continue
		}
		s.watchers[lits[0]] = append(s.watchers[lits[0]], cid)
		s.watchers[lits[1]] = append(s.watchers[lits[1]], cid)
	}
	return s, false
}

// litValue returns the truth value of literal lit under the current
// trail.
func (s *watchState) litValue(lit Lit) Value {
	v := s.assigned[lit.Var()]
	if v == Unassigned {
		return Unassigned
	}
	if lit.Negated() {
		return v.Inv()
	}
	return v
}

// enqueueAssign records lit as true with the given reason and queues it
// for watcher propagation. Returns false if lit contradicts an existing
// assignment.
func (s *watchState) enqueueAssign(lit Lit, reason Reason) bool {
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
	} else {
		s.propagations++
	}
	s.queue = append(s.queue, lit)
	return true
}

func (s *watchState) markSatisfied(cid int) {
	c := &s.clauses[cid]
	if c.satisfied {
		return
	}
	c.satisfied = true
	s.journal = append(s.journal, watchJournalEntry{kind: wjSatisfied, clauseID: cid})
}

// propagateLiteral implements spec.md section 4.6's "On assign(ℓ)" rule:
// ℓ is now true, so -ℓ is false, and only clauses watching -ℓ can
// change status.
func (s *watchState) propagateLiteral(lit Lit) bool {
	falseLit := lit.Neg()
	ws := s.watchers[falseLit]
	i := 0
	for i < len(ws) {
		cid := ws[i]
		c := &s.clauses[cid]
		if c.satisfied {
			i++
			continue
		}

		// Put falseLit at lits[1] so lits[0] is always "the other watch".
		// This only reorders the two watched positions, it doesn't change
		// which literals are watched, but it still must be journaled: a
		// later pop that restores an earlier wjSwap expects lits[0]/[1]
		// to be exactly where they were when that wjSwap was recorded.
		if c.lits[0] == falseLit {
			c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			s.journal = append(s.journal, watchJournalEntry{kind: wjNormalize, clauseID: cid})
		}
		other := c.lits[0]

		if s.litValue(other) == True {
			s.markSatisfied(cid)
			i++
			continue
		}

		replaced := false
		for j := 2; j < len(c.lits); j++ {
			cand := c.lits[j]
			if s.litValue(cand) == False {
				continue
			}
			c.lits[1], c.lits[j] = c.lits[j], c.lits[1]
			s.journal = append(s.journal, watchJournalEntry{
				kind: wjSwap, clauseID: cid, fromLit: falseLit, toLit: cand, idx: j,
			})
			ws[i] = ws[len(ws)-1]
			ws = ws[:len(ws)-1]
			s.watchers[cand] = append(s.watchers[cand], cid)
			replaced = true
			break
		}
		if replaced {
			continue // ws shrank in place; re-examine index i.
		}

		i++
		switch s.litValue(other) {
		case True:
			s.markSatisfied(cid)
		case Unassigned:
			if !s.enqueueAssign(other, Propagated) {
				s.watchers[falseLit] = ws
				return false
			}
		case False:
			s.watchers[falseLit] = ws
			return false
		}
	}
	s.watchers[falseLit] = ws
	return true
}

// propagateAll drains the propagation queue, per spec.md section 4.6's
// FIFO processing of newly-implied literals.
func (s *watchState) propagateAll() bool {
	for s.qHead < len(s.queue) {
		lit := s.queue[s.qHead]
		s.qHead++
		if !s.propagateLiteral(lit) {
			return false
		}
	}
	return true
}

func (s *watchState) allSatisfied() bool {
	for i := range s.clauses {
		if !s.clauses[i].satisfied {
			return false
		}
	}
	return true
}

type watchMark struct {
	trailLen   int
	journalLen int
	queueLen   int
	qHead      int
}

func (s *watchState) mark() watchMark {
	return watchMark{
		trailLen:   len(s.trail),
		journalLen: len(s.journal),
		queueLen:   len(s.queue),
		qHead:      s.qHead,
	}
}

// removeFromWatchList swap-removes the first occurrence of cid from
// list, by value (clause ids are unique, so this always finds the
// intended entry regardless of how the list has been reordered since).
func removeFromWatchList(list []int, cid int) []int {
	for i, id := range list {
		if id == cid {
			list[i] = list[len(list)-1]
			return list[:len(list)-1]
		}
	}
	return list
}

// popTo replays the journal in reverse to m.journalLen, undoing watcher
// swaps and satisfied flags, then rewinds the trail and propagation
// queue — spec.md section 4.6's "incremental undo" backtracking
// strategy (DESIGN.md Open Question 3).
func (s *watchState) popTo(m watchMark) {
	for i := len(s.journal) - 1; i >= m.journalLen; i-- {
		e := s.journal[i]
		switch e.kind {
		case wjSatisfied:
			s.clauses[e.clauseID].satisfied = false
		case wjSwap:
			c := &s.clauses[e.clauseID]
			c.lits[1], c.lits[e.idx] = c.lits[e.idx], c.lits[1]
			s.watchers[e.toLit] = removeFromWatchList(s.watchers[e.toLit], e.clauseID)
			s.watchers[e.fromLit] = append(s.watchers[e.fromLit], e.clauseID)
		case wjNormalize:
			c := &s.clauses[e.clauseID]
			c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
		}
	}
	s.journal = s.journal[:m.journalLen]

	for i := len(s.trail) - 1; i >= m.trailLen; i-- {
		s.assigned[s.trail[i].lit.Var()] = Unassigned
	}
	s.trail = s.trail[:m.trailLen]
	s.queue = s.queue[:m.queueLen]
	s.qHead = m.qHead
}

// search mirrors dpllState.search but drives propagation through the
// watcher index instead of a full clause scan. It branches with the
// heuristic (frequency-scored) rule when s.heuristic is set, which
// SolveWatchers always does, and with first-literal branching otherwise
// — the watcher engine is the spec's performance-oriented variant
// (spec.md section 4.6, section 8's watcher-vs-naive propagation-count
// sanity check).
func (s *watchState) search() bool {
	if !s.propagateAll() {
		return false
	}
	if s.allSatisfied() {
		return true
	}

	var lit Lit
	var ok bool
	if s.heuristic {
		pos, neg := occurrenceCountsActive(s.clauses, s.numVars)
		lit, ok = branchLiteralCounts(pos, neg, s.assigned, s.numVars)
	} else {
		lit, ok = firstUnassignedLiteral(s.clauses, s.assigned)
	}
	if !ok {
		return true
	}

	m := s.mark()
	if s.enqueueAssign(lit, Decision) && s.search() {
		return true
	}
	s.popTo(m)

	if s.enqueueAssign(lit.Neg(), Decision) && s.search() {
		return true
	}
	s.popTo(m)
	return false
}

// SolveWatchers runs dpll_watchers over in.
func SolveWatchers(in InputFormula) (Result, Stats) {
	in.validate()
	s, trivialUnsat := newWatchState(in, true)
	if trivialUnsat {
		return Result{Sat: false}, Stats{}
	}
	sat := s.search()
	stats := Stats{Decisions: s.decisions, Propagations: s.propagations, Trail: signedTrail(s.trail)}
	if !sat {
		return Result{Sat: false}, stats
	}
	m := make(Model, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if s.assigned[v] == False {
			m[v-1] = -v
		} else {
			m[v-1] = v
		}
	}
	return Result{Sat: true, Model: m}, stats
}
