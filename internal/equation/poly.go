package equation

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// poly is a dense polynomial; index i holds the coefficient of x**i.
type poly []float64

func polyConst(c float64) poly { return poly{c} }

func polyAdd(a, b poly) poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make(poly, n)
	copy(out, a)
	for i, c := range b {
		out[i] += c
	}
	return out
}

func polyMul(a, b poly) poly {
	if len(a) == 0 || len(b) == 0 {
		return poly{0}
	}
	out := make(poly, len(a)+len(b)-1)
	for i, ca := range a {
		if ca == 0 {
			continue
		}
		for j, cb := range b {
			out[i+j] += ca * cb
		}
	}
	return out
}

func polyPow(p poly, n int) poly {
	out := polyConst(1)
	for i := 0; i < n; i++ {
		out = polyMul(out, p)
	}
	return out
}

// trim drops exactly-zero leading coefficients.
func (p poly) trim() poly {
	n := len(p)
	for n > 1 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

func (p poly) degree() int { return len(p.trim()) - 1 }

// isConst reports whether p carries no x dependence, returning its value.
func (p poly) isConst() (float64, bool) {
	t := p.trim()
	if len(t) == 1 {
		return t[0], true
	}
	return 0, false
}

func (p poly) at(x float64) float64 {
	// Horner evaluation.
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + p[i]
	}
	return v
}

func (p poly) atComplex(x complex128) complex128 {
	v := complex(0, 0)
	for i := len(p) - 1; i >= 0; i-- {
		v = v*x + complex(p[i], 0)
	}
	return v
}

// rational is a quotient of two polynomials in the unknown.
type rational struct {
	num poly
	den poly
}

// reduce rewrites an expression whose only free symbol is unknown into a
// rational function of that symbol. Exponents must reduce to integer
// constants; anything else is outside the solvable catalog forms.
func reduce(e Expr, unknown string) (rational, error) {
	switch n := e.(type) {
	case num:
		return rational{num: polyConst(n.val), den: polyConst(1)}, nil

	case sym:
		if n.name != unknown {
			return rational{}, fmt.Errorf("unbound symbol %q", n.name)
		}
		return rational{num: poly{0, 1}, den: polyConst(1)}, nil

	case add:
		out := rational{num: polyConst(0), den: polyConst(1)}
		for _, t := range n.terms {
			r, err := reduce(t, unknown)
			if err != nil {
				return rational{}, err
			}
			out = rational{
				num: polyAdd(polyMul(out.num, r.den), polyMul(r.num, out.den)),
				den: polyMul(out.den, r.den),
			}
		}
		return out, nil

	case mul:
		out := rational{num: polyConst(1), den: polyConst(1)}
		for _, f := range n.factors {
			r, err := reduce(f, unknown)
			if err != nil {
				return rational{}, err
			}
			out = rational{num: polyMul(out.num, r.num), den: polyMul(out.den, r.den)}
		}
		return out, nil

	case pow:
		expSyms := FreeSymbols(n.exp)
		if expSyms[unknown] {
			return rational{}, fmt.Errorf("unknown %q appears in an exponent", unknown)
		}
		exp, err := n.exp.Eval(nil)
		if err != nil {
			return rational{}, err
		}

		base, err := reduce(n.base, unknown)
		if err != nil {
			return rational{}, err
		}
		c, numConst := base.num.isConst()
		d, denConst := base.den.isConst()
		if numConst && denConst {
			// Fully numeric power; no integer restriction needed.
			if d == 0 {
				return rational{}, fmt.Errorf("division by zero")
			}
			v, err := (pow{base: num{val: c / d}, exp: num{val: exp}}).Eval(nil)
			if err != nil {
				return rational{}, err
			}
			return rational{num: polyConst(v), den: polyConst(1)}, nil
		}

		k := int(math.Round(exp))
		if math.Abs(exp-float64(k)) > 1e-9 {
			return rational{}, fmt.Errorf("non-integer exponent %g on the unknown", exp)
		}
		if k >= 0 {
			return rational{num: polyPow(base.num, k), den: polyPow(base.den, k)}, nil
		}
		return rational{num: polyPow(base.den, -k), den: polyPow(base.num, -k)}, nil

	default:
		return rational{}, fmt.Errorf("unsupported expression node %T", e)
	}
}

// realRoots returns the real roots of p, ascending for degree > 2 and in
// closed-form order (-b−√D before -b+√D) for quadratics. A constant or
// identically zero polynomial has no isolated roots and yields nil.
func realRoots(p poly) []float64 {
	p = p.trim()
	switch p.degree() {
	case 0:
		return nil
	case 1:
		return []float64{-p[0] / p[1]}
	case 2:
		a, b, c := p[2], p[1], p[0]
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		if disc == 0 {
			return []float64{-b / (2 * a)}
		}
		s := math.Sqrt(disc)
		return []float64{(-b - s) / (2 * a), (-b + s) / (2 * a)}
	default:
		return realRootsIterative(p)
	}
}

// realRootsIterative finds all roots with the Durand-Kerner iteration and
// keeps those with negligible imaginary part.
func realRootsIterative(p poly) []float64 {
	n := p.degree()

	// Monic complex coefficients.
	coeff := make([]complex128, n+1)
	lead := p[n]
	for i := 0; i <= n; i++ {
		coeff[i] = complex(p[i]/lead, 0)
	}
	evalMonic := func(x complex128) complex128 {
		v := complex(1, 0)
		for i := n - 1; i >= 0; i-- {
			v = v*x + coeff[i]
		}
		return v
	}

	// Standard starting points on a non-real spiral.
	roots := make([]complex128, n)
	seed := complex(0.4, 0.9)
	roots[0] = complex(1, 0)
	for i := 1; i < n; i++ {
		roots[i] = roots[i-1] * seed
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)
	for iter := 0; iter < maxIter; iter++ {
		maxDelta := 0.0
		for i := range roots {
			denom := complex(1, 0)
			for j := range roots {
				if j != i {
					denom *= roots[i] - roots[j]
				}
			}
			if denom == 0 {
				continue
			}
			delta := evalMonic(roots[i]) / denom
			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}
		if maxDelta < tol {
			break
		}
	}

	scale := 0.0
	for _, r := range roots {
		if a := cmplx.Abs(r); a > scale {
			scale = a
		}
	}
	imagTol := 1e-8 * (1 + scale)

	var out []float64
	for _, r := range roots {
		if math.Abs(imag(r)) <= imagTol {
			out = append(out, real(r))
		}
	}
	sort.Float64s(out)

	// Collapse numerically coincident roots, e.g. double roots.
	dedup := out[:0]
	for i, r := range out {
		if i == 0 || math.Abs(r-dedup[len(dedup)-1]) > 1e-8*(1+math.Abs(r)) {
			dedup = append(dedup, r)
		}
	}
	return dedup
}
