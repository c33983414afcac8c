// Package gen synthesizes CNF formulas for testing and benchmarking:
// planted-satisfiable random 3-SAT instances and pigeonhole-principle
// formulas (spec.md section 8 scenario 6, generalized to arbitrary
// size).
package gen

import "math/rand"

// RandomSAT3 generates a random 3-SAT-flavored formula over numVars
// variables with numClauses clauses, planting a random assignment so
// every clause contains at least one literal that satisfies it (the
// teacher's makeRandomSat strategy: pick a random total assignment
// first, then build each clause around a literal fixed to agree with
// it, with the remaining literals random). Clauses beyond the planted
// literal are independent, so the whole formula is not guaranteed
// satisfiable when combined with other formulas, but each individual
// generated instance is.
func RandomSAT3(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		if rng.Intn(2) == 1 {
			assignment[v] = true
		}
	}
	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}
	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(a, b int) {
			vars[a], vars[b] = vars[b], vars[a]
		})
		width := 3
		if numVars < width {
			width = numVars
		}
		problem[i] = make([]int, width)
		fixed := rng.Intn(len(problem[i]))
		for j := range problem[i] {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else if rng.Intn(2) == 1 {
				v = -v
			}
			problem[i][j] = v
		}
	}
	return problem
}

// Pigeonhole encodes PHP(n, n-1): n pigeons into n-1 holes, which is
// unsatisfiable by the pigeonhole principle for every n >= 2. Variable
// var(p, h) = (p-1)*(n-1) + h means "pigeon p occupies hole h".
// Generalizes the PHP(3,2) fixture from spec.md section 8 scenario 6 to
// arbitrary n for stress benchmarking the exponential blowup DPLL-style
// search suffers on pigeonhole instances.
func Pigeonhole(n int) [][]int {
	if n < 2 {
		return nil
	}
	holes := n - 1
	v := func(p, h int) int { return (p-1)*holes + h }

	var clauses [][]int
	for p := 1; p <= n; p++ {
		clause := make([]int, holes)
		for h := 1; h <= holes; h++ {
			clause[h-1] = v(p, h)
		}
		clauses = append(clauses, clause)
	}
	for h := 1; h <= holes; h++ {
		for p1 := 1; p1 <= n; p1++ {
			for p2 := p1 + 1; p2 <= n; p2++ {
				clauses = append(clauses, []int{-v(p1, h), -v(p2, h)})
			}
		}
	}
	return clauses
}

// NumVars returns the number of variables Pigeonhole(n) references.
func NumVars(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1)
}
