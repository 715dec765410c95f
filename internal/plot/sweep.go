// Package plot turns solver output into sweep curves, rendered either as
// terminal charts or as image files.
package plot

import (
	"errors"
	"fmt"

	"github.com/mdelacruz/gobraze/internal/equation"
)

// Sweep samples one known variable across a range and solves the equation
// for the unknown at every sample.
type Sweep struct {
	Equation equation.Equation
	Unknown  string             // variable solved at each sample
	Across   string             // variable swept over [From, To]
	From, To float64
	Points   int
	Fixed    map[string]float64 // values for the remaining variables
}

// Series is a sampled solution curve. Samples where the equation has no real
// solution (or where evaluation fails, e.g. at a singularity) are skipped,
// so X and Y may be shorter than Sweep.Points.
type Series struct {
	X []float64
	Y []float64
}

// Run evaluates the sweep. When the first root of a multi-root sample is
// ambiguous, the solver's deterministic first root is used.
func (s Sweep) Run() (Series, error) {
	if s.Points < 2 {
		return Series{}, fmt.Errorf("sweep needs at least 2 points, got %d", s.Points)
	}
	if s.Across == s.Unknown {
		return Series{}, fmt.Errorf("cannot sweep the unknown variable %q", s.Unknown)
	}
	if !s.Equation.HasVariable(s.Across) {
		return Series{}, fmt.Errorf("%q is not a variable of %q", s.Across, s.Equation.Name)
	}
	if s.From == s.To {
		return Series{}, fmt.Errorf("sweep range is empty")
	}

	step := (s.To - s.From) / float64(s.Points-1)

	var series Series
	for i := 0; i < s.Points; i++ {
		x := s.From + step*float64(i)

		knowns := make(map[string]float64, len(s.Fixed)+1)
		for k, v := range s.Fixed {
			knowns[k] = v
		}
		knowns[s.Across] = x

		solutions, err := equation.Solve(s.Equation, s.Unknown, knowns)
		if err != nil {
			var miss *equation.MissingInputError
			if errors.As(err, &miss) {
				// Missing fixed values fail every sample identically.
				return Series{}, err
			}
			// Singular sample; leave a gap.
			continue
		}
		if len(solutions) == 0 {
			continue
		}

		series.X = append(series.X, x)
		series.Y = append(series.Y, solutions[0])
	}

	if len(series.Y) == 0 {
		return Series{}, fmt.Errorf("no real solutions anywhere in [%g, %g]", s.From, s.To)
	}
	return series, nil
}
