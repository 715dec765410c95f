package equation

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Expr is an immutable algebraic expression over named symbols.
// Subtraction is stored as addition of a (-1) multiple and division as a
// (-1) power, so add and mul are the only n-ary nodes.
type Expr interface {
	// Eval computes the expression under the given symbol assignment.
	Eval(values map[string]float64) (float64, error)

	// Sub replaces every occurrence of a symbol with a constant.
	Sub(name string, value float64) Expr

	String() string

	collectSymbols(set map[string]bool)
}

// FreeSymbols returns the set of symbol names appearing in e.
func FreeSymbols(e Expr) map[string]bool {
	set := make(map[string]bool)
	e.collectSymbols(set)
	return set
}

type num struct {
	val float64
}

func (n num) Eval(map[string]float64) (float64, error) { return n.val, nil }
func (n num) Sub(string, float64) Expr                 { return n }
func (n num) collectSymbols(map[string]bool)           {}

func (n num) String() string {
	return strconv.FormatFloat(n.val, 'g', -1, 64)
}

type sym struct {
	name string
}

func (s sym) Eval(values map[string]float64) (float64, error) {
	v, ok := values[s.name]
	if !ok {
		return 0, fmt.Errorf("unbound symbol %q", s.name)
	}
	return v, nil
}

func (s sym) Sub(name string, value float64) Expr {
	if s.name == name {
		return num{val: value}
	}
	return s
}

func (s sym) collectSymbols(set map[string]bool) { set[s.name] = true }
func (s sym) String() string                     { return s.name }

type add struct {
	terms []Expr
}

// newAdd flattens nested sums so the term list stays one level deep.
func newAdd(terms ...Expr) Expr {
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return add{terms: flat}
}

func (a add) Eval(values map[string]float64) (float64, error) {
	var sum float64
	for _, t := range a.terms {
		v, err := t.Eval(values)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

func (a add) Sub(name string, value float64) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Sub(name, value)
	}
	return add{terms: terms}
}

func (a add) collectSymbols(set map[string]bool) {
	for _, t := range a.terms {
		t.collectSymbols(set)
	}
}

func (a add) String() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

type mul struct {
	factors []Expr
}

func newMul(factors ...Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if inner, ok := f.(mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, f)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return mul{factors: flat}
}

// neg represents -x as (-1)*x.
func neg(e Expr) Expr { return newMul(num{val: -1}, e) }

// div represents a/b as a*b**-1.
func div(a, b Expr) Expr { return newMul(a, pow{base: b, exp: num{val: -1}}) }

func (m mul) Eval(values map[string]float64) (float64, error) {
	product := 1.0
	for _, f := range m.factors {
		v, err := f.Eval(values)
		if err != nil {
			return 0, err
		}
		product *= v
	}
	return product, nil
}

func (m mul) Sub(name string, value float64) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Sub(name, value)
	}
	return mul{factors: factors}
}

func (m mul) collectSymbols(set map[string]bool) {
	for _, f := range m.factors {
		f.collectSymbols(set)
	}
}

func (m mul) String() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, "*") + ")"
}

type pow struct {
	base Expr
	exp  Expr
}

func (p pow) Eval(values map[string]float64) (float64, error) {
	base, err := p.base.Eval(values)
	if err != nil {
		return 0, err
	}
	exp, err := p.exp.Eval(values)
	if err != nil {
		return 0, err
	}
	if base == 0 && exp < 0 {
		return 0, fmt.Errorf("division by zero")
	}
	v := math.Pow(base, exp)
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%g**%g is not a real number", base, exp)
	}
	return v, nil
}

func (p pow) Sub(name string, value float64) Expr {
	return pow{base: p.base.Sub(name, value), exp: p.exp.Sub(name, value)}
}

func (p pow) collectSymbols(set map[string]bool) {
	p.base.collectSymbols(set)
	p.exp.collectSymbols(set)
}

func (p pow) String() string {
	return p.base.String() + "**" + p.exp.String()
}
