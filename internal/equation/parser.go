package equation

import (
	"fmt"
	"strconv"
	"unicode"
)

// Parse builds an expression tree from algebraic text.
//
// Supported syntax: numbers, identifiers, parentheses, and the operators
// + - * / ** with the usual precedence; ** is right-associative and binds
// tighter than unary minus, so -x**2 parses as -(x**2).
func Parse(text string) (Expr, error) {
	p := &parser{input: []rune(text)}
	e, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected %q at offset %d", p.input[p.pos], p.pos)
	}
	return e, nil
}

type parser struct {
	input []rune
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && unicode.IsSpace(p.input[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() rune {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// accept consumes the literal token if it is next in the input.
func (p *parser) accept(tok string) bool {
	p.skipSpace()
	if p.pos+len(tok) > len(p.input) {
		return false
	}
	for i, r := range tok {
		if p.input[p.pos+i] != r {
			return false
		}
	}
	// A single '*' must not swallow the first half of '**'.
	if tok == "*" && p.pos+1 < len(p.input) && p.input[p.pos+1] == '*' {
		return false
	}
	p.pos += len(tok)
	return true
}

func (p *parser) parseSum() (Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept("+"):
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = newAdd(left, right)
		case p.accept("-"):
			right, err := p.parseProduct()
			if err != nil {
				return nil, err
			}
			left = newAdd(left, neg(right))
		default:
			return left, nil
		}
	}
}

func (p *parser) parseProduct() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.accept("*"):
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = newMul(left, right)
		case p.accept("/"):
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = div(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.accept("-") {
		e, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return neg(e), nil
	}
	if p.accept("+") {
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.accept("**") {
		// Right-associative; the exponent may carry its own sign.
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return pow{base: base, exp: exp}, nil
	}
	return base, nil
}

func (p *parser) parseAtom() (Expr, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of expression")
	}

	if p.accept("(") {
		e, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if !p.accept(")") {
			return nil, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		return e, nil
	}

	r := p.peek()
	switch {
	case unicode.IsDigit(r) || r == '.':
		return p.parseNumber()
	case unicode.IsLetter(r) || r == '_':
		return p.parseSymbol(), nil
	default:
		return nil, fmt.Errorf("unexpected %q at offset %d", r, p.pos)
	}
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	for p.pos < len(p.input) && (unicode.IsDigit(p.input[p.pos]) || p.input[p.pos] == '.') {
		p.pos++
	}
	// Optional exponent part, e.g. 2.5e-3.
	if p.pos < len(p.input) && (p.input[p.pos] == 'e' || p.input[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.input) && (p.input[p.pos] == '+' || p.input[p.pos] == '-') {
			p.pos++
		}
		if p.pos < len(p.input) && unicode.IsDigit(p.input[p.pos]) {
			for p.pos < len(p.input) && unicode.IsDigit(p.input[p.pos]) {
				p.pos++
			}
		} else {
			// Not an exponent after all; 'e' starts an identifier.
			p.pos = mark
		}
	}
	text := string(p.input[start:p.pos])
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number %q at offset %d", text, start)
	}
	return num{val: v}, nil
}

func (p *parser) parseSymbol() Expr {
	start := p.pos
	for p.pos < len(p.input) {
		r := p.input[p.pos]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			break
		}
		p.pos++
	}
	return sym{name: string(p.input[start:p.pos])}
}
