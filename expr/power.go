package expr

import (
	"math"
	"math/big"
)

// ============================================================
// Power — base^exponent, exponent may stay symbolic
// ============================================================

type Power struct{ Base, Exp Expr }

// PowOf builds and canonicalizes a power.
func PowOf(base, exp Expr) Expr { return (&Power{Base: base, Exp: exp}).Simplify() }

// Exponent magnitude up to which rational powers are folded exactly.
const maxFoldExp = 4096

func (p *Power) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exp.Simplify()

	if IsZero(exp) {
		if IsZero(base) {
			// 0^0 stays put; it approximates to NaN.
			return &Power{Base: base, Exp: exp}
		}
		return N(1)
	}
	if IsOne(exp) {
		return base
	}
	if IsZero(base) {
		if r, ok := RatOf(exp); ok {
			if r.Sign() > 0 {
				return N(0)
			}
			// 0^negative approximates to an infinity.
			return &Power{Base: base, Exp: exp}
		}
		return &Power{Base: base, Exp: exp}
	}
	if IsOne(base) {
		return N(1)
	}

	if br, ok := RatOf(base); ok {
		if er, ok2 := RatOf(exp); ok2 {
			if er.IsInt() {
				if folded, ok3 := powRat(br, er.Num()); ok3 {
					return FromRat(folded)
				}
			} else if br.Sign() > 0 {
				// Rational base with fractional exponent p/q becomes a
				// degree-q radical over base^p, letting the Root rules
				// extract perfect powers and rationalize.
				q := er.Denom()
				if q.IsInt64() && q.Int64() >= 2 && q.Int64() <= 64 {
					if inner, ok3 := powRat(br, er.Num()); ok3 {
						return RootOf(FromRat(inner), int(q.Int64()))
					}
				}
			}
		}
	}

	if inner, ok := base.(*Power); ok {
		return PowOf(inner.Base, ProdOf(inner.Exp, exp))
	}
	if rt, ok := base.(*Root); ok {
		if _, isInt := IsInteger(exp); isInt {
			return RootOf(PowOf(rt.Radicand, exp), rt.Degree)
		}
	}
	return &Power{Base: base, Exp: exp}
}

// powRat raises a nonzero rational to an exact integer power. ok=false
// when the exponent is too large to fold.
func powRat(r *big.Rat, e *big.Int) (*big.Rat, bool) {
	if !e.IsInt64() {
		return nil, false
	}
	n := e.Int64()
	neg := n < 0
	if neg {
		n = -n
	}
	if n > maxFoldExp {
		return nil, false
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(n), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(n), nil)
	out := new(big.Rat).SetFrac(num, den)
	if neg {
		out.Inv(out)
	}
	return out, true
}

func parenthesize(e Expr) string {
	switch e.(type) {
	case *Sum, *Product, *Fraction, *Div:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func (p *Power) String() string {
	return parenthesize(p.Base) + "^" + parenthesize(p.Exp)
}

func (p *Power) LaTeX() string {
	baseStr := p.Base.LaTeX()
	switch p.Base.(type) {
	case *Sum, *Product:
		baseStr = "\\left(" + baseStr + "\\right)"
	}
	return baseStr + "^{" + p.Exp.LaTeX() + "}"
}

func (p *Power) Sub(name string, value Expr) Expr {
	return PowOf(p.Base.Sub(name, value), p.Exp.Sub(name, value))
}

func (p *Power) Approx() (float64, bool) {
	b, ok1 := p.Base.Approx()
	e, ok2 := p.Exp.Approx()
	if !ok1 || !ok2 {
		return 0, false
	}
	if b == 0 && e == 0 {
		// math.Pow(0, 0) is 1; the indeterminate form stays NaN here.
		return math.NaN(), true
	}
	// Infinities and NaN propagate; the result layer renders them.
	return math.Pow(b, e), true
}

func (p *Power) Equal(other Expr) bool {
	o, ok := other.(*Power)
	return ok && p.Base.Equal(o.Base) && p.Exp.Equal(o.Exp)
}

func (p *Power) exprType() string { return "power" }
