package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sat-tools/satkit/internal/core"
)

func TestRandomSAT3IsSatisfiable(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		problem := RandomSAT3(seed, 6, 20)
		in := core.InputFormula{NumVars: 6, Clauses: problem}
		res, _ := core.Solve(in, core.DPLLWatchers)
		require.True(t, res.Sat, "seed %d: RandomSAT3 produced an unsatisfiable instance: %v", seed, problem)
	}
}

func TestRandomSAT3Bounds(t *testing.T) {
	problem := RandomSAT3(1, 4, 10)
	assert.Len(t, problem, 10)
	for _, clause := range problem {
		assert.NotEmpty(t, clause)
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			assert.LessOrEqual(t, v, 4)
			assert.GreaterOrEqual(t, v, 1)
		}
	}
}

func TestPigeonholeIsUnsat(t *testing.T) {
	for n := 2; n <= 5; n++ {
		problem := Pigeonhole(n)
		in := core.InputFormula{NumVars: NumVars(n), Clauses: problem}
		res, _ := core.Solve(in, core.DPLLWatchers)
		assert.False(t, res.Sat, "PHP(%d,%d) should be unsatisfiable", n, n-1)
	}
}

func TestPigeonholeDegenerate(t *testing.T) {
	assert.Nil(t, Pigeonhole(1))
	assert.Equal(t, 0, NumVars(1))
	assert.Equal(t, 6, NumVars(3))
}
