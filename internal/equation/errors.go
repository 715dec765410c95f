package equation

import (
	"fmt"
	"strings"
)

// MissingInputError reports required variables that were not given a value.
// It is user-correctable: supply the listed values and retry.
type MissingInputError struct {
	Equation string
	Missing  []string // declaration order
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("provide all other values before solving (missing: %s)",
		strings.Join(e.Missing, ", "))
}

// EvaluationError wraps a failure during substitution or root finding, such
// as a division by zero or an expression form the solver cannot reduce.
type EvaluationError struct {
	Equation string
	Err      error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("solving %q: %v", e.Equation, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
