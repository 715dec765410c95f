package equation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsUndeclaredSymbol(t *testing.T) {
	_, err := New("bad", "a + b", []Variable{{Symbol: "a", Meaning: "only a"}})
	require.ErrorContains(t, err, "undeclared symbol")
}

func TestNewRejectsUnusedVariable(t *testing.T) {
	_, err := New("bad", "a + 1", []Variable{
		{Symbol: "a", Meaning: "a"},
		{Symbol: "b", Meaning: "never used"},
	})
	require.ErrorContains(t, err, "does not appear")
}

func TestNewRejectsDuplicateVariable(t *testing.T) {
	_, err := New("bad", "a + a", []Variable{
		{Symbol: "a", Meaning: "a"},
		{Symbol: "a", Meaning: "again"},
	})
	require.ErrorContains(t, err, "duplicate")
}

func TestNewRejectsUnparseableExpression(t *testing.T) {
	_, err := New("bad", "a + ", []Variable{{Symbol: "a", Meaning: "a"}})
	require.Error(t, err)
}

func TestMustNewPanics(t *testing.T) {
	require.Panics(t, func() {
		MustNew("bad", "a +", []Variable{{Symbol: "a", Meaning: "a"}})
	})
}

func TestEquationEval(t *testing.T) {
	eq, err := New("Punching force", "F - (t * L * S_s)", []Variable{
		{Symbol: "F", Meaning: "force"},
		{Symbol: "t", Meaning: "thickness"},
		{Symbol: "L", Meaning: "length"},
		{Symbol: "S_s", Meaning: "shear strength"},
	})
	require.NoError(t, err)

	residual, err := eq.Eval(map[string]float64{"F": 20000, "t": 0.05, "L": 10, "S_s": 40000})
	require.NoError(t, err)
	require.InDelta(t, 0, residual, 1e-9)

	_, err = eq.Eval(map[string]float64{"F": 20000})
	var miss *MissingInputError
	require.ErrorAs(t, err, &miss)
	require.Equal(t, []string{"t", "L", "S_s"}, miss.Missing)
}

func TestHasVariable(t *testing.T) {
	eq, err := New("simple", "x - 1", []Variable{{Symbol: "x", Meaning: "x"}})
	require.NoError(t, err)
	require.True(t, eq.HasVariable("x"))
	require.False(t, eq.HasVariable("y"))
}
