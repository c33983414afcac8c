package core

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// solutionIsValid checks P1 (soundness): every clause of problem
// contains at least one literal true under m.
func solutionIsValid(problem [][]int, m Model) bool {
	vars := make(map[int]bool)
	for _, lit := range m {
		if lit < 0 {
			vars[-lit] = false
		} else {
			vars[lit] = true
		}
	}
clauseLoop:
	for _, clause := range problem {
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			want := lit > 0
			if vars[v] == want {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

func numVarsOf(problem [][]int) int {
	n := 0
	for _, c := range problem {
		for _, lit := range c {
			if lit < 0 {
				lit = -lit
			}
			if lit > n {
				n = lit
			}
		}
	}
	return n
}

func TestBoundaryCases(t *testing.T) {
	for _, tt := range []struct {
		name     string
		numVars  int
		problem  [][]int
		wantSat  bool
	}{
		{"empty formula", 0, nil, true},
		{"empty clause", 1, [][]int{{}}, false},
		{"single unit", 1, [][]int{{1}}, true},
		{"unit contradiction", 1, [][]int{{1}, {-1}}, false},
		{"tautology removed", 2, [][]int{{1, -1, 2}}, true},
		{"pure literal", 2, [][]int{{1, 2}, {1, -2}}, true},
	} {
		for _, v := range Variants() {
			t.Run(fmt.Sprintf("%s/%s", tt.name, v), func(t *testing.T) {
				in := InputFormula{NumVars: tt.numVars, Clauses: tt.problem}
				res, _ := Solve(in, v)
				if res.Sat != tt.wantSat {
					t.Fatalf("Solve(%v, %s) = %v, want sat=%v", tt.problem, v, res.Sat, tt.wantSat)
				}
				if res.Sat && !solutionIsValid(tt.problem, res.Model) {
					t.Fatalf("Solve(%v, %s) returned invalid model %v", tt.problem, v, res.Model)
				}
			})
		}
	}
}

func TestEndToEndScenarios(t *testing.T) {
	for _, tt := range []struct {
		name    string
		numVars int
		problem [][]int
		wantSat bool
	}{
		{
			name:    "scenario 1",
			numVars: 3,
			problem: [][]int{{1, 2}, {-1, 3}, {-2, -3}, {1, -3}},
			wantSat: true,
		},
		{
			name:    "scenario 2",
			numVars: 1,
			problem: [][]int{{1}, {-1}},
			wantSat: false,
		},
		{
			name:    "scenario 3 (all 8 clauses over 3 vars)",
			numVars: 3,
			problem: [][]int{
				{1, 2, 3}, {1, 2, -3}, {1, -2, 3}, {1, -2, -3},
				{-1, 2, 3}, {-1, 2, -3}, {-1, -2, 3}, {-1, -2, -3},
			},
			wantSat: false,
		},
		{
			name:    "pigeonhole PHP(3,2)",
			numVars: 6,
			problem: pigeonholeFixture(),
			wantSat: false,
		},
	} {
		for _, v := range Variants() {
			t.Run(fmt.Sprintf("%s/%s", tt.name, v), func(t *testing.T) {
				in := InputFormula{NumVars: tt.numVars, Clauses: tt.problem}
				res, _ := Solve(in, v)
				if res.Sat != tt.wantSat {
					t.Fatalf("Solve(%s, %s) = sat=%v, want sat=%v", tt.name, v, res.Sat, tt.wantSat)
				}
				if res.Sat && !solutionIsValid(tt.problem, res.Model) {
					t.Fatalf("Solve(%s, %s) returned invalid model %v", tt.name, v, res.Model)
				}
			})
		}
	}
}

// pigeonholeFixture encodes PHP(3,2): 3 pigeons, 2 holes, over 6
// variables x_{p,h} meaning "pigeon p is in hole h" (spec.md section 8
// scenario 6).
func pigeonholeFixture() [][]int {
	// var(p,h) = (p-1)*2 + h, p in [1,3], h in [1,2]
	v := func(p, h int) int { return (p-1)*2 + h }
	var clauses [][]int
	for p := 1; p <= 3; p++ {
		clauses = append(clauses, []int{v(p, 1), v(p, 2)})
	}
	for h := 1; h <= 2; h++ {
		for p1 := 1; p1 <= 3; p1++ {
			for p2 := p1 + 1; p2 <= 3; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	return clauses
}

// TestVariantAgreement checks P3: for any pair of variants, on the same
// formula both return SAT or both return UNSAT.
func TestVariantAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		numVars := 2 + rng.Intn(6)
		numClauses := 2 + rng.Intn(12)
		problem := randomCNF(rng, numVars, numClauses)
		in := InputFormula{NumVars: numVars, Clauses: problem}

		var firstSat bool
		for i, v := range Variants() {
			res, _ := Solve(in, v)
			if i == 0 {
				firstSat = res.Sat
			} else if res.Sat != firstSat {
				t.Fatalf("trial %d: variant %s disagrees with %s on %v (sat=%v vs %v)",
					trial, v, Variants()[0], problem, res.Sat, firstSat)
			}
			if res.Sat && !solutionIsValid(problem, res.Model) {
				t.Fatalf("trial %d: variant %s returned invalid model %v for %v", trial, v, res.Model, problem)
			}
		}
	}
}

// randomCNF generates a random CNF formula by picking clauses
// independently, biasing toward satisfiable-but-not-trivial instances
// without guaranteeing satisfiability overall (clauses are generated
// independently, so conflicts across clauses can still arise).
func randomCNF(rng *rand.Rand, numVars, numClauses int) [][]int {
	problem := make([][]int, numClauses)
	for i := range problem {
		size := 1 + rng.Intn(numVars)
		seen := map[int]bool{}
		var clause []int
		for len(clause) < size {
			v := 1 + rng.Intn(numVars)
			lit := v
			if rng.Intn(2) == 1 {
				lit = -v
			}
			if seen[lit] {
				continue
			}
			seen[lit] = true
			clause = append(clause, lit)
		}
		problem[i] = clause
	}
	return problem
}

func TestSimplifyIdempotent(t *testing.T) {
	problem := [][]int{{1, 2, 3}, {-1, 2}, {2, 3}, {-2, 1}}
	f := NewFormula(problem)
	once := simplifyToFixpoint(f, SimplifyOptions{})
	twice := simplifyToFixpoint(once.formula, SimplifyOptions{})
	if diff := cmp.Diff(once.formula, twice.formula); diff != "" {
		t.Fatalf("simplification not idempotent (-once, +twice):\n%s", diff)
	}
}

func ExampleSolve() {
	problem := [][]int{
		{-1, -2},
		{-2, 3},
		{1, -3, 2},
		{2},
	}
	in := InputFormula{NumVars: 3, Clauses: problem}
	res, _ := Solve(in, DPLLWatchers)
	fmt.Println("sat:", res.Sat)
	// Output: sat: true
}
