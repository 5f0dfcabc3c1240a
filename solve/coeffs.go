package solve

import (
	"math/big"

	"github.com/njchilds90/exactcalc/expr"
)

// polyCoeffs extracts rational coefficients by degree from a
// single-variable polynomial expression. It fails on anything that is
// not a finite combination of rationals, the variable, sums, products,
// and non-negative integer powers.
func polyCoeffs(e expr.Expr, name string) (map[int]*big.Rat, bool) {
	if r, ok := expr.RatOf(e); ok {
		return map[int]*big.Rat{0: r}, true
	}

	switch v := e.(type) {
	case *expr.Variable:
		if v.Name != name {
			return nil, false
		}
		return map[int]*big.Rat{1: big.NewRat(1, 1)}, true

	case *expr.Sum:
		acc := map[int]*big.Rat{}
		for _, t := range v.Terms {
			part, ok := polyCoeffs(t, name)
			if !ok {
				return nil, false
			}
			addInto(acc, part)
		}
		return acc, true

	case *expr.Product:
		acc := map[int]*big.Rat{0: big.NewRat(1, 1)}
		for _, f := range v.Factors {
			part, ok := polyCoeffs(f, name)
			if !ok {
				return nil, false
			}
			acc = convolve(acc, part)
		}
		return acc, true

	case *expr.Power:
		k, ok := expr.IsInteger(v.Exp)
		if !ok || k.Sign() < 0 || !k.IsInt64() || k.Int64() > 64 {
			return nil, false
		}
		base, ok := polyCoeffs(v.Base, name)
		if !ok {
			return nil, false
		}
		acc := map[int]*big.Rat{0: big.NewRat(1, 1)}
		for i := int64(0); i < k.Int64(); i++ {
			acc = convolve(acc, base)
		}
		return acc, true

	case *expr.Div:
		den, ok := expr.RatOf(v.Den)
		if !ok || den.Sign() == 0 {
			return nil, false
		}
		num, ok := polyCoeffs(v.Num, name)
		if !ok {
			return nil, false
		}
		inv := new(big.Rat).Inv(den)
		for deg := range num {
			num[deg].Mul(num[deg], inv)
		}
		return num, true
	}
	return nil, false
}

// linearCoeffs splits a residual into per-variable rational
// coefficients plus a constant term. Any nonlinear or non-rational
// structure fails.
func linearCoeffs(e expr.Expr) (map[string]*big.Rat, *big.Rat, bool) {
	if r, ok := expr.RatOf(e); ok {
		return map[string]*big.Rat{}, r, true
	}

	switch v := e.(type) {
	case *expr.Variable:
		return map[string]*big.Rat{v.Name: big.NewRat(1, 1)}, new(big.Rat), true

	case *expr.Sum:
		coeffs := map[string]*big.Rat{}
		konst := new(big.Rat)
		for _, t := range v.Terms {
			part, c, ok := linearCoeffs(t)
			if !ok {
				return nil, nil, false
			}
			for name, co := range part {
				addCoeff(coeffs, name, co)
			}
			konst.Add(konst, c)
		}
		return coeffs, konst, true

	case *expr.Product:
		co, sig := expr.SplitCoeff(v)
		if name, ok := sig.(*expr.Variable); ok {
			return map[string]*big.Rat{name.Name: co}, new(big.Rat), true
		}
		return nil, nil, false

	case *expr.Div:
		den, ok := expr.RatOf(v.Den)
		if !ok || den.Sign() == 0 {
			return nil, nil, false
		}
		coeffs, konst, ok := linearCoeffs(v.Num)
		if !ok {
			return nil, nil, false
		}
		inv := new(big.Rat).Inv(den)
		for name := range coeffs {
			coeffs[name].Mul(coeffs[name], inv)
		}
		konst.Mul(konst, inv)
		return coeffs, konst, true
	}
	return nil, nil, false
}

func addInto(acc, part map[int]*big.Rat) {
	for deg, co := range part {
		if cur, ok := acc[deg]; ok {
			cur.Add(cur, co)
		} else {
			acc[deg] = new(big.Rat).Set(co)
		}
	}
}

func convolve(a, b map[int]*big.Rat) map[int]*big.Rat {
	out := map[int]*big.Rat{}
	for da, ca := range a {
		for db, cb := range b {
			p := new(big.Rat).Mul(ca, cb)
			if cur, ok := out[da+db]; ok {
				cur.Add(cur, p)
			} else {
				out[da+db] = p
			}
		}
	}
	return out
}

func addCoeff(acc map[string]*big.Rat, name string, co *big.Rat) {
	if cur, ok := acc[name]; ok {
		cur.Add(cur, co)
	} else {
		acc[name] = new(big.Rat).Set(co)
	}
}
