package bridge

import "github.com/njchilds90/exactcalc/expr"

// parser runs precedence climbing over a lexed item stream. Two
// adjacent operands multiply implicitly, unary minus binds below
// multiplication, "^" is right-associative, and the angle suffixes
// bind tightest of all as postfix operators.
type parser struct {
	items []item
	pos   int
}

func (p *parser) parseExpr() (expr.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peekOp("+"):
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = expr.SumOf(left, right)
		case p.peekOp("-"):
			p.pos++
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = expr.SubOf(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (expr.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peekOp("*"):
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.ProdOf(left, right)
		case p.peekOp("/"):
			p.pos++
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.DivOf(left, right)
		case p.peekOperand():
			// Implicit multiplication: 2x, x(x+1), 3√2.
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = expr.ProdOf(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (expr.Expr, error) {
	if p.peekOp("-") {
		p.pos++
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return expr.Neg(inner), nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (expr.Expr, error) {
	e, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.peekOp("°"):
			p.pos++
			e = expr.ProdOf(e, expr.DivOf(expr.Pi(), expr.N(180)))
		case p.peekOp("rad"):
			// Radians are the native unit.
			p.pos++
		default:
			return e, nil
		}
	}
}

func (p *parser) parsePower() (expr.Expr, error) {
	base, err := p.operand()
	if err != nil {
		return nil, err
	}
	if !p.peekOp("^") {
		return base, nil
	}
	p.pos++
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return expr.PowOf(base, exp), nil
}

func (p *parser) operand() (expr.Expr, error) {
	if !p.peekOperand() {
		return nil, ErrMalformed
	}
	e := p.items[p.pos].ex
	p.pos++
	return e, nil
}

func (p *parser) peekOp(op string) bool {
	return p.pos < len(p.items) && p.items[p.pos].op == op
}

func (p *parser) peekOperand() bool {
	return p.pos < len(p.items) && p.items[p.pos].op == ""
}
