package equation

import (
	"fmt"
	"math"
)

// Solve computes the real-valued solutions for one unknown variable, given
// numeric values for every other variable of the equation.
//
// A value supplied for the unknown itself is ignored. An empty (nil) result
// with a nil error means the equation has no real root for these inputs,
// which is a normal outcome and distinct from both error kinds:
//
//   - *MissingInputError when a required known value is absent
//   - *EvaluationError when substitution or root finding fails
//
// Solve is a pure function and safe for concurrent use; the order of the
// returned roots is deterministic but carries no physical meaning.
func Solve(eq Equation, unknown string, knowns map[string]float64) ([]float64, error) {
	if !eq.HasVariable(unknown) {
		return nil, &EvaluationError{
			Equation: eq.Name,
			Err:      fmt.Errorf("%q is not a variable of this equation", unknown),
		}
	}

	var missing []string
	for _, v := range eq.Variables {
		if v.Symbol == unknown {
			continue
		}
		if _, ok := knowns[v.Symbol]; !ok {
			missing = append(missing, v.Symbol)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingInputError{Equation: eq.Name, Missing: missing}
	}

	expr := eq.expr
	for _, v := range eq.Variables {
		if v.Symbol == unknown {
			continue
		}
		value := knowns[v.Symbol]
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, &EvaluationError{
				Equation: eq.Name,
				Err:      fmt.Errorf("value for %q is not finite", v.Symbol),
			}
		}
		expr = expr.Sub(v.Symbol, value)
	}

	rat, err := reduce(expr, unknown)
	if err != nil {
		return nil, &EvaluationError{Equation: eq.Name, Err: err}
	}

	if _, constant := rat.num.isConst(); constant {
		// Nothing left to solve for: either an identity (0 = 0) or an
		// inconsistent constant. Neither has isolated real roots.
		return nil, nil
	}

	denScale := 0.0
	for _, c := range rat.den {
		if a := math.Abs(c); a > denScale {
			denScale = a
		}
	}
	if denScale == 0 {
		return nil, &EvaluationError{Equation: eq.Name, Err: fmt.Errorf("division by zero")}
	}

	var solutions []float64
	for _, root := range realRoots(rat.num) {
		// A root of the numerator is spurious where the denominator
		// vanishes too.
		if math.Abs(rat.den.at(root)) <= 1e-9*denScale {
			continue
		}
		solutions = append(solutions, root)
	}
	return solutions, nil
}
