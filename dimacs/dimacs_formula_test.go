package dimacs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sat-tools/satkit/internal/core"
)

func TestReadFormula(t *testing.T) {
	in, err := ReadFormula(strings.NewReader("p cnf 3 2\n1 2 0\n-2 3 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, in.NumVars)
	assert.Equal(t, [][]int{{1, 2}, {-2, 3}}, in.Clauses)
}

func TestReadFormulaDerivesNumVarsWithoutProblemLine(t *testing.T) {
	in, err := ReadFormula(strings.NewReader("1 -5 0\n2 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, in.NumVars)
}

func TestWriteFormulaRoundTrip(t *testing.T) {
	want := core.InputFormula{NumVars: 2, Clauses: [][]int{{1, 2}, {-1}}}
	var b strings.Builder
	require.NoError(t, WriteFormula(&b, want))

	got, err := ReadFormula(strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, want.Clauses, got.Clauses)
}
