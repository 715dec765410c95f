// Package equation holds the algebraic core of gobraze: a small expression
// model, a parser for equation text, and a single-unknown solver.
//
// An Equation is a named relation "expression = 0" over a fixed, ordered set
// of variables. Solving substitutes numeric values for all variables but one
// and returns the real roots of what remains.
package equation

import (
	"fmt"
	"sort"
)

// Variable pairs a symbol with its human-readable meaning, units included.
type Variable struct {
	Symbol  string
	Meaning string
}

// Equation is an immutable named relation of the form "expression = 0".
// Variables keep their declaration order, which is also the canonical
// display and input order.
type Equation struct {
	Name       string
	Expression string
	Variables  []Variable

	expr Expr
}

// New parses the expression text and validates that its free symbols and the
// declared variables coincide exactly: no undeclared symbol may appear in the
// expression and no declared variable may go unused.
func New(name, expression string, variables []Variable) (Equation, error) {
	expr, err := Parse(expression)
	if err != nil {
		return Equation{}, fmt.Errorf("equation %q: %w", name, err)
	}

	declared := make(map[string]bool, len(variables))
	for _, v := range variables {
		if declared[v.Symbol] {
			return Equation{}, fmt.Errorf("equation %q: duplicate variable %q", name, v.Symbol)
		}
		declared[v.Symbol] = true
	}

	free := FreeSymbols(expr)
	for _, s := range sortedKeys(free) {
		if !declared[s] {
			return Equation{}, fmt.Errorf("equation %q: undeclared symbol %q in expression", name, s)
		}
	}
	for _, v := range variables {
		if !free[v.Symbol] {
			return Equation{}, fmt.Errorf("equation %q: variable %q does not appear in expression", name, v.Symbol)
		}
	}

	return Equation{
		Name:       name,
		Expression: expression,
		Variables:  variables,
		expr:       expr,
	}, nil
}

// MustNew is New for static catalogs; it panics on invalid definitions.
func MustNew(name, expression string, variables []Variable) Equation {
	eq, err := New(name, expression, variables)
	if err != nil {
		panic(err)
	}
	return eq
}

// HasVariable reports whether name is one of the equation's variables.
func (e Equation) HasVariable(name string) bool {
	for _, v := range e.Variables {
		if v.Symbol == name {
			return true
		}
	}
	return false
}

// Eval computes the residual of "expression" under a full assignment.
// A residual near zero means the values satisfy the equation.
func (e Equation) Eval(values map[string]float64) (float64, error) {
	var missing []string
	for _, v := range e.Variables {
		if _, ok := values[v.Symbol]; !ok {
			missing = append(missing, v.Symbol)
		}
	}
	if len(missing) > 0 {
		return 0, &MissingInputError{Equation: e.Name, Missing: missing}
	}
	r, err := e.expr.Eval(values)
	if err != nil {
		return 0, &EvaluationError{Equation: e.Name, Err: err}
	}
	return r, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
