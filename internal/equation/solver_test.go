package equation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func punchingForce(t *testing.T) Equation {
	t.Helper()
	eq, err := New("Punching force", "F - (t * L * S_s)", []Variable{
		{Symbol: "F", Meaning: "Punching force (lbf)"},
		{Symbol: "t", Meaning: "Sheet thickness (in)"},
		{Symbol: "L", Meaning: "Total length of cut/perimeter (in)"},
		{Symbol: "S_s", Meaning: "Shear strength of material (psi)"},
	})
	require.NoError(t, err)
	return eq
}

func shearFlow(t *testing.T) Equation {
	t.Helper()
	eq, err := New("Shear flow between bonded plates", "tau - V*Q/(I*b)", []Variable{
		{Symbol: "tau", Meaning: "Shear stress (psi)"},
		{Symbol: "V", Meaning: "Shear force (lbf)"},
		{Symbol: "Q", Meaning: "First moment of area (in^3)"},
		{Symbol: "I", Meaning: "Moment of inertia (in^4)"},
		{Symbol: "b", Meaning: "Width of the bond line (in)"},
	})
	require.NoError(t, err)
	return eq
}

func airBending(t *testing.T) Equation {
	t.Helper()
	eq, err := New("Air bending force (approximate)", "F - (k * S_t * t**2 * W / (8 * V_d))", []Variable{
		{Symbol: "F", Meaning: "Force per unit length (lbf/in)"},
		{Symbol: "k", Meaning: "Die/geometry factor"},
		{Symbol: "S_t", Meaning: "Tensile strength (psi)"},
		{Symbol: "t", Meaning: "Sheet thickness (in)"},
		{Symbol: "W", Meaning: "Part width engaged (in)"},
		{Symbol: "V_d", Meaning: "V-die opening (in)"},
	})
	require.NoError(t, err)
	return eq
}

func TestSolveMissingInput(t *testing.T) {
	eq := punchingForce(t)
	full := map[string]float64{"t": 0.05, "L": 10.0, "S_s": 40000}

	// Omitting any single required known must fail, whichever it is.
	for omit := range full {
		knowns := make(map[string]float64)
		for k, v := range full {
			if k != omit {
				knowns[k] = v
			}
		}
		_, err := Solve(eq, "F", knowns)
		var miss *MissingInputError
		require.ErrorAs(t, err, &miss, "omitting %s", omit)
		require.Equal(t, []string{omit}, miss.Missing)
	}

	// All knowns absent: every missing variable reported, declaration order.
	_, err := Solve(eq, "F", map[string]float64{})
	var miss *MissingInputError
	require.ErrorAs(t, err, &miss)
	require.Equal(t, []string{"t", "L", "S_s"}, miss.Missing)
}

func TestSolveLinearExact(t *testing.T) {
	eq := punchingForce(t)
	sols, err := Solve(eq, "F", map[string]float64{"t": 0.05, "L": 10.0, "S_s": 40000})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.InDelta(t, 20000.0, sols[0], 1e-9)
}

func TestSolveQuadraticRoots(t *testing.T) {
	eq, err := New("quadratic", "x**2 - 4", []Variable{{Symbol: "x", Meaning: "unknown"}})
	require.NoError(t, err)

	sols, err := Solve(eq, "x", nil)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	require.InDelta(t, -2.0, sols[0], 1e-12)
	require.InDelta(t, 2.0, sols[1], 1e-12)
}

func TestSolveComplexRootsFiltered(t *testing.T) {
	eq, err := New("no real roots", "x**2 + 4", []Variable{{Symbol: "x", Meaning: "unknown"}})
	require.NoError(t, err)

	// Purely imaginary roots: empty result, not an error.
	sols, err := Solve(eq, "x", nil)
	require.NoError(t, err)
	require.Empty(t, sols)
}

func TestSolveDeterminism(t *testing.T) {
	eq := airBending(t)
	knowns := map[string]float64{"k": 1.33, "S_t": 45000, "t": 0.06, "W": 12, "V_d": 0.5}

	first, err := Solve(eq, "F", knowns)
	require.NoError(t, err)
	second, err := Solve(eq, "F", knowns)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSolveRoundTrip(t *testing.T) {
	eq := punchingForce(t)
	knowns := map[string]float64{"t": 0.05, "L": 10.0, "S_s": 40000}

	force, err := Solve(eq, "F", knowns)
	require.NoError(t, err)
	require.Len(t, force, 1)

	back, err := Solve(eq, "t", map[string]float64{"F": force[0], "L": 10.0, "S_s": 40000})
	require.NoError(t, err)
	require.Len(t, back, 1)
	require.InDelta(t, 0.05, back[0], 1e-12)
}

func TestSolveUnknownIndependence(t *testing.T) {
	eq := punchingForce(t)
	full := map[string]float64{"F": 20000, "t": 0.05, "L": 10.0, "S_s": 40000}

	for _, unknown := range []string{"t", "L"} {
		knowns := make(map[string]float64)
		for k, v := range full {
			if k != unknown {
				knowns[k] = v
			}
		}
		sols, err := Solve(eq, unknown, knowns)
		require.NoError(t, err)
		require.Len(t, sols, 1)

		// Substituting the solution back must satisfy the equation.
		values := make(map[string]float64)
		for k, v := range knowns {
			values[k] = v
		}
		values[unknown] = sols[0]
		residual, err := eq.Eval(values)
		require.NoError(t, err)
		require.InDelta(t, 0, residual, 1e-6)
	}
}

func TestSolveAirBendingEndToEnd(t *testing.T) {
	eq := airBending(t)
	sols, err := Solve(eq, "F", map[string]float64{
		"k": 1.33, "S_t": 45000, "t": 0.06, "W": 12, "V_d": 0.5,
	})
	require.NoError(t, err)
	require.Len(t, sols, 1)

	expected := 1.33 * 45000 * 0.06 * 0.06 * 12 / (8 * 0.5)
	require.InDelta(t, expected, sols[0], 1e-6)
}

func TestSolveUnknownInDenominator(t *testing.T) {
	eq := shearFlow(t)
	sols, err := Solve(eq, "I", map[string]float64{"tau": 100, "V": 50, "Q": 10, "b": 2})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.InDelta(t, 2.5, sols[0], 1e-9)
}

func TestSolveDivisionByZero(t *testing.T) {
	eq := shearFlow(t)
	_, err := Solve(eq, "tau", map[string]float64{"V": 50, "Q": 10, "I": 0, "b": 2})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
}

func TestSolveIgnoresValueForUnknown(t *testing.T) {
	eq := punchingForce(t)
	sols, err := Solve(eq, "F", map[string]float64{
		"F": 123456, // ignored
		"t": 0.05, "L": 10.0, "S_s": 40000,
	})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	require.InDelta(t, 20000.0, sols[0], 1e-9)
}

func TestSolveNotAVariable(t *testing.T) {
	eq := punchingForce(t)
	_, err := Solve(eq, "bogus", map[string]float64{"t": 0.05, "L": 10.0, "S_s": 40000})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
}

func TestSolveDegenerateIdentity(t *testing.T) {
	eq, err := New("identity", "x - x", []Variable{{Symbol: "x", Meaning: "unknown"}})
	require.NoError(t, err)

	// 0 = 0 has no isolated roots; empty result, not an error.
	sols, err := Solve(eq, "x", nil)
	require.NoError(t, err)
	require.Empty(t, sols)
}

func TestSolveCubic(t *testing.T) {
	eq, err := New("cubic", "x**3 - 8", []Variable{{Symbol: "x", Meaning: "unknown"}})
	require.NoError(t, err)

	sols, err := Solve(eq, "x", nil)
	require.NoError(t, err)
	require.Len(t, sols, 1, "two of the three cube roots are complex")
	require.InDelta(t, 2.0, sols[0], 1e-6)
}

func TestSolveNonFiniteInput(t *testing.T) {
	eq := punchingForce(t)
	_, err := Solve(eq, "F", map[string]float64{"t": math.NaN(), "L": 10.0, "S_s": 40000})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
}
