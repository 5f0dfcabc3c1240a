// Package expr provides the exact symbolic expression model for the
// calculator's exact-result mode.
//
// Design goals:
//   - Exact arithmetic (math/big), no floating-point drift
//   - Deterministic, idempotent simplification
//   - Closed variant set with structural equality
//
// Every variant is immutable once constructed; Simplify always returns
// a new canonical value and never mutates its receiver.
package expr

import "math/big"

// Expr is the closed interface over all expression variants. The
// unexported marker method seals the set: adding a variant means
// touching every traversal in this package, which is intentional.
type Expr interface {
	// Simplify returns the canonical form. It is pure, total for
	// well-formed trees, and idempotent.
	Simplify() Expr

	// String renders a deterministic canonical key. It doubles as the
	// structural signature used for like-term grouping.
	String() string

	// LaTeX renders the expression for typeset display.
	LaTeX() string

	// Sub replaces every occurrence of the named variable.
	Sub(name string, value Expr) Expr

	// Approx returns the decimal approximation. Infinite and NaN
	// values propagate with ok=true; ok=false means the expression
	// still contains unresolved symbols.
	Approx() (float64, bool)

	// Equal reports structural equality: same variant, same
	// canonicalized children in the same order.
	Equal(other Expr) bool

	exprType() string
}

// Rational access shared by the numeric variants.

// RatOf extracts an exact rational value from Integer or Fraction
// variants. ok=false for every other variant.
func RatOf(e Expr) (*big.Rat, bool) {
	switch v := e.(type) {
	case *Integer:
		return new(big.Rat).SetInt(v.Val), true
	case *Fraction:
		return new(big.Rat).SetFrac(v.Num, v.Den), true
	}
	return nil, false
}

// FromRat converts an exact rational into the canonical numeric
// variant: Integer when the denominator is one, reduced Fraction
// otherwise.
func FromRat(r *big.Rat) Expr {
	if r.IsInt() {
		return &Integer{Val: new(big.Int).Set(r.Num())}
	}
	return &Fraction{Num: new(big.Int).Set(r.Num()), Den: new(big.Int).Set(r.Denom())}
}

// IsZero reports whether e is the numeric value 0.
func IsZero(e Expr) bool {
	r, ok := RatOf(e)
	return ok && r.Sign() == 0
}

// IsOne reports whether e is the numeric value 1.
func IsOne(e Expr) bool {
	r, ok := RatOf(e)
	return ok && r.Cmp(ratOne) == 0
}

// IsMinusOne reports whether e is the numeric value -1.
func IsMinusOne(e Expr) bool {
	r, ok := RatOf(e)
	return ok && r.Cmp(ratMinusOne) == 0
}

// IsInteger reports whether e is an Integer and returns its value.
func IsInteger(e Expr) (*big.Int, bool) {
	if v, ok := e.(*Integer); ok {
		return v.Val, true
	}
	return nil, false
}

var (
	ratOne      = big.NewRat(1, 1)
	ratMinusOne = big.NewRat(-1, 1)
)

// FreeVars returns the set of variable names appearing in e.
func FreeVars(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	collectVars(e, out)
	return out
}

func collectVars(e Expr, out map[string]struct{}) {
	switch v := e.(type) {
	case *Variable:
		out[v.Name] = struct{}{}
	case *Sum:
		for _, t := range v.Terms {
			collectVars(t, out)
		}
	case *Product:
		for _, f := range v.Factors {
			collectVars(f, out)
		}
	case *Power:
		collectVars(v.Base, out)
		collectVars(v.Exp, out)
	case *Root:
		collectVars(v.Radicand, out)
	case *Log:
		collectVars(v.Base, out)
		collectVars(v.Arg, out)
	case *Trig:
		collectVars(v.Arg, out)
	case *Abs:
		collectVars(v.Inner, out)
	case *Div:
		collectVars(v.Num, out)
		collectVars(v.Den, out)
	case *Perm:
		collectVars(v.N, out)
		collectVars(v.R, out)
	case *Comb:
		collectVars(v.N, out)
		collectVars(v.R, out)
	}
}

// ContainsVar reports whether the named variable occurs in e.
func ContainsVar(e Expr, name string) bool {
	_, ok := FreeVars(e)[name]
	return ok
}

// SplitCoeff splits one numeric leading coefficient off a term: for a
// Product with a numeric factor it returns (coefficient, remaining
// factors); for a plain number (value, 1); otherwise (1, e). The
// remaining part is the term's structural signature for like-term
// grouping.
func SplitCoeff(e Expr) (*big.Rat, Expr) {
	if r, ok := RatOf(e); ok {
		return r, one
	}
	if p, ok := e.(*Product); ok {
		co := big.NewRat(1, 1)
		rest := make([]Expr, 0, len(p.Factors))
		for _, f := range p.Factors {
			if r, ok := RatOf(f); ok {
				co.Mul(co, r)
				continue
			}
			rest = append(rest, f)
		}
		switch len(rest) {
		case 0:
			return co, one
		case 1:
			return co, rest[0]
		}
		return co, &Product{Factors: rest}
	}
	return big.NewRat(1, 1), e
}

var (
	zero = &Integer{Val: big.NewInt(0)}
	one  = &Integer{Val: big.NewInt(1)}
)
