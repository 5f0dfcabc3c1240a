package expr

import (
	"math/big"
)

// ============================================================
// Div — quotient kept structural when not a plain rational
// ============================================================

// Div is the quotient form used when the operands are not both plain
// rationals. A zero denominator is kept; it approximates to ±Inf (or
// NaN for 0/0) instead of raising an error.
type Div struct{ Num, Den Expr }

// DivOf builds and canonicalizes a quotient.
func DivOf(num, den Expr) Expr { return (&Div{Num: num, Den: den}).Simplify() }

func (d *Div) Simplify() Expr {
	num := d.Num.Simplify()
	den := d.Den.Simplify()

	if nr, ok := RatOf(num); ok {
		if dr, ok2 := RatOf(den); ok2 {
			if dr.Sign() == 0 {
				return &Div{Num: num, Den: den}
			}
			return FromRat(new(big.Rat).Quo(nr, dr))
		}
	}
	if IsOne(den) {
		return num
	}
	if IsMinusOne(den) {
		return Neg(num)
	}
	if IsZero(num) {
		if dr, ok := RatOf(den); !ok || dr.Sign() != 0 {
			return N(0)
		}
	}
	// Dividing by an exact rational is multiplication by its
	// reciprocal; the radical denominator case is handled by Root.
	if dr, ok := RatOf(den); ok && dr.Sign() != 0 {
		return ProdOf(FromRat(new(big.Rat).Inv(dr)), num)
	}
	if num.Equal(den) {
		return N(1)
	}
	return &Div{Num: num, Den: den}
}

func (d *Div) String() string {
	return parenthesize(d.Num) + "/" + parenthesize(d.Den)
}

func (d *Div) LaTeX() string {
	return "\\frac{" + d.Num.LaTeX() + "}{" + d.Den.LaTeX() + "}"
}

func (d *Div) Sub(name string, value Expr) Expr {
	return DivOf(d.Num.Sub(name, value), d.Den.Sub(name, value))
}

func (d *Div) Approx() (float64, bool) {
	n, ok1 := d.Num.Approx()
	v, ok2 := d.Den.Approx()
	if !ok1 || !ok2 {
		return 0, false
	}
	// x/0 yields ±Inf, 0/0 yields NaN; both propagate.
	return n / v, true
}

func (d *Div) Equal(other Expr) bool {
	o, ok := other.(*Div)
	return ok && d.Num.Equal(o.Num) && d.Den.Equal(o.Den)
}

func (d *Div) exprType() string { return "div" }
