package expr

import (
	"fmt"
	"math"
	"math/big"
)

// ============================================================
// Root — degree-n radical with perfect-power extraction
// ============================================================

// Root keeps its radicand with the largest perfect power of the degree
// factored out, and never keeps a radical in a denominator.
type Root struct {
	Radicand Expr
	Degree   int
}

// RootOf builds and canonicalizes a radical. A degree below 2 collapses
// to the radicand itself.
func RootOf(radicand Expr, degree int) Expr {
	return (&Root{Radicand: radicand, Degree: degree}).Simplify()
}

// Sqrt is shorthand for a square root.
func Sqrt(radicand Expr) Expr { return RootOf(radicand, 2) }

func (r *Root) Simplify() Expr {
	rad := r.Radicand.Simplify()
	if r.Degree < 2 {
		return rad
	}

	switch v := rad.(type) {
	case *Integer:
		return simplifyIntRoot(v.Val, r.Degree)

	case *Fraction:
		// Rationalize: root(a/b) = root(a·b^(n-1)) / b, so the radical
		// never stays in a denominator.
		bPow := new(big.Int).Exp(v.Den, big.NewInt(int64(r.Degree-1)), nil)
		inner := new(big.Int).Mul(v.Num, bPow)
		return ProdOf(
			FromRat(new(big.Rat).SetFrac(big.NewInt(1), v.Den)),
			simplifyIntRoot(inner, r.Degree),
		)

	case *Power:
		if k, ok := IsInteger(v.Exp); ok && k.Sign() > 0 && k.IsInt64() {
			q, rem := k.Int64()/int64(r.Degree), k.Int64()%int64(r.Degree)
			if rem == 0 {
				return PowOf(v.Base, N(q))
			}
			if q > 0 {
				return ProdOf(PowOf(v.Base, N(q)), &Root{Radicand: PowOf(v.Base, N(rem)), Degree: r.Degree})
			}
		}
	}
	return &Root{Radicand: rad, Degree: r.Degree}
}

// simplifyIntRoot extracts the largest perfect degree-th power from an
// integer radicand: root(8) → 2·root(2).
func simplifyIntRoot(m *big.Int, degree int) Expr {
	sign := m.Sign()
	if sign == 0 {
		return N(0)
	}
	if sign < 0 && degree%2 == 0 {
		// Even root of a negative number: stays symbolic, approximates
		// to NaN.
		return &Root{Radicand: NBig(m), Degree: degree}
	}

	abs := new(big.Int).Abs(m)
	outside, inside := extractPerfectPower(abs, degree)
	if sign < 0 {
		outside.Neg(outside)
	}
	if inside.Cmp(big.NewInt(1)) == 0 {
		return NBig(outside)
	}
	radical := &Root{Radicand: NBig(inside), Degree: degree}
	if outside.Cmp(big.NewInt(1)) == 0 {
		return radical
	}
	return ProdOf(NBig(outside), radical)
}

// extractPerfectPower factors abs = outside^degree · inside with inside
// free of perfect degree-th power factors. Trial division is bounded;
// a leftover cofactor beyond the bound stays under the radical.
func extractPerfectPower(abs *big.Int, degree int) (outside, inside *big.Int) {
	outside = big.NewInt(1)
	inside = big.NewInt(1)
	rest := new(big.Int).Set(abs)
	deg := big.NewInt(int64(degree))

	p := big.NewInt(2)
	limit := big.NewInt(1 << 20)
	sq := new(big.Int)
	for p.Cmp(limit) <= 0 && sq.Mul(p, p).Cmp(rest) <= 0 {
		q, mod := new(big.Int), new(big.Int)
		mult := 0
		for {
			q.QuoRem(rest, p, mod)
			if mod.Sign() != 0 {
				break
			}
			rest.Set(q)
			mult++
		}
		if mult > 0 {
			outPow := new(big.Int).Exp(p, new(big.Int).Div(big.NewInt(int64(mult)), deg), nil)
			inPow := new(big.Int).Exp(p, big.NewInt(int64(mult%degree)), nil)
			outside.Mul(outside, outPow)
			inside.Mul(inside, inPow)
		}
		if p.Cmp(big.NewInt(2)) == 0 {
			p = big.NewInt(3)
		} else {
			p.Add(p, big.NewInt(2))
		}
	}
	inside.Mul(inside, rest)
	return outside, inside
}

func (r *Root) String() string {
	if r.Degree == 2 {
		return "√(" + r.Radicand.String() + ")"
	}
	return fmt.Sprintf("root[%d](%s)", r.Degree, r.Radicand.String())
}

func (r *Root) LaTeX() string {
	if r.Degree == 2 {
		return "\\sqrt{" + r.Radicand.LaTeX() + "}"
	}
	return fmt.Sprintf("\\sqrt[%d]{%s}", r.Degree, r.Radicand.LaTeX())
}

func (r *Root) Sub(name string, value Expr) Expr {
	return RootOf(r.Radicand.Sub(name, value), r.Degree)
}

func (r *Root) Approx() (float64, bool) {
	v, ok := r.Radicand.Approx()
	if !ok {
		return 0, false
	}
	if v < 0 {
		if r.Degree%2 == 0 {
			return math.NaN(), true
		}
		return -math.Pow(-v, 1/float64(r.Degree)), true
	}
	return math.Pow(v, 1/float64(r.Degree)), true
}

func (r *Root) Equal(other Expr) bool {
	o, ok := other.(*Root)
	return ok && r.Degree == o.Degree && r.Radicand.Equal(o.Radicand)
}

func (r *Root) exprType() string { return "root" }
