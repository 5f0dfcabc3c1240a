package expr

import (
	"math/big"
	"strings"
)

// ============================================================
// Sum — ordered list of terms
// ============================================================

type Sum struct{ Terms []Expr }

// SumOf builds and canonicalizes a sum.
func SumOf(terms ...Expr) Expr { return (&Sum{Terms: terms}).Simplify() }

// Neg returns -e.
func Neg(e Expr) Expr { return ProdOf(N(-1), e) }

// SubOf returns a - b.
func SubOf(a, b Expr) Expr { return SumOf(a, Neg(b)) }

func (a *Sum) Simplify() Expr {
	flat := make([]Expr, 0, len(a.Terms))
	for _, t := range a.Terms {
		s := t.Simplify()
		if inner, ok := s.(*Sum); ok {
			flat = append(flat, inner.Terms...)
		} else {
			flat = append(flat, s)
		}
	}

	// Group like terms by structural signature, ignoring each term's
	// numeric coefficient. The first occurrence of a signature fixes
	// its position; later occurrences fold into it.
	numAccum := new(big.Rat)
	coeffs := map[string]*big.Rat{}
	sigExpr := map[string]Expr{}
	order := []string{}
	for _, t := range flat {
		if r, ok := RatOf(t); ok {
			numAccum.Add(numAccum, r)
			continue
		}
		co, sig := SplitCoeff(t)
		key := sig.String()
		if _, seen := coeffs[key]; !seen {
			order = append(order, key)
			coeffs[key] = new(big.Rat)
			sigExpr[key] = sig
		}
		coeffs[key].Add(coeffs[key], co)
	}

	result := make([]Expr, 0, len(order)+1)
	for _, key := range order {
		co := coeffs[key]
		switch {
		case co.Sign() == 0:
			continue
		case co.Cmp(ratOne) == 0:
			result = append(result, sigExpr[key])
		default:
			result = append(result, ProdOf(FromRat(co), sigExpr[key]))
		}
	}
	if numAccum.Sign() != 0 {
		result = append(result, FromRat(numAccum))
	}

	switch len(result) {
	case 0:
		return N(0)
	case 1:
		return result[0]
	}
	return &Sum{Terms: result}
}

func (a *Sum) String() string {
	if len(a.Terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Sum) LaTeX() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

func (a *Sum) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.Terms))
	for i, t := range a.Terms {
		terms[i] = t.Sub(name, value)
	}
	return SumOf(terms...)
}

func (a *Sum) Approx() (float64, bool) {
	acc := 0.0
	for _, t := range a.Terms {
		v, ok := t.Approx()
		if !ok {
			return 0, false
		}
		acc += v
	}
	return acc, true
}

func (a *Sum) Equal(other Expr) bool {
	o, ok := other.(*Sum)
	if !ok || len(a.Terms) != len(o.Terms) {
		return false
	}
	for i := range a.Terms {
		if !a.Terms[i].Equal(o.Terms[i]) {
			return false
		}
	}
	return true
}

func (a *Sum) exprType() string { return "sum" }
