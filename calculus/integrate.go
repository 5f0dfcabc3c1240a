package calculus

import (
	"fmt"

	"github.com/njchilds90/exactcalc/expr"
)

// ConstAlloc hands out integration-constant variables c0, c1, ... in
// order. A fresh allocator is created for each top-level evaluation so
// constant numbering restarts at c0 every time.
type ConstAlloc struct {
	next int
}

// Fresh returns the next unused integration constant.
func (a *ConstAlloc) Fresh() expr.Expr {
	v := expr.Sym(fmt.Sprintf("c%d", a.next))
	a.next++
	return v
}

// Integrate returns the simplified indefinite integral of e with
// respect to name, plus a fresh integration constant from alloc. The
// second result is false when some term falls outside the supported
// antiderivative rules.
func Integrate(e expr.Expr, name string, alloc *ConstAlloc) (expr.Expr, bool) {
	anti, ok := antiderive(e.Simplify(), name)
	if !ok {
		return nil, false
	}
	return expr.SumOf(anti, alloc.Fresh()).Simplify(), true
}

// IntegrateBetween evaluates the definite integral over [lower, upper]
// as F(upper) − F(lower). Reversed bounds negate the result.
func IntegrateBetween(e expr.Expr, name string, lower, upper expr.Expr) (expr.Expr, bool) {
	anti, ok := antiderive(e.Simplify(), name)
	if !ok {
		return nil, false
	}
	hi := anti.Sub(name, upper).Simplify()
	lo := anti.Sub(name, lower).Simplify()
	return expr.SubOf(hi, lo), true
}

// antiderive applies term-wise linearity and the power rule. It
// covers rational powers of the variable (including x^−1 → ln|x|),
// constants, and sin/cos of the bare variable.
func antiderive(e expr.Expr, name string) (expr.Expr, bool) {
	if !expr.ContainsVar(e, name) {
		return expr.ProdOf(e, expr.Sym(name)), true
	}

	switch v := e.(type) {
	case *expr.Variable:
		// x → x²/2
		return expr.ProdOf(expr.F(1, 2), expr.PowOf(v, expr.N(2))), true

	case *expr.Sum:
		terms := make([]expr.Expr, len(v.Terms))
		for i, t := range v.Terms {
			anti, ok := antiderive(t, name)
			if !ok {
				return nil, false
			}
			terms[i] = anti
		}
		return expr.SumOf(terms...), true

	case *expr.Product:
		// Split the constant part off and integrate the rest; more
		// than one variable-dependent factor is out of scope.
		var konst []expr.Expr
		var dep expr.Expr
		for _, f := range v.Factors {
			if expr.ContainsVar(f, name) {
				if dep != nil {
					return nil, false
				}
				dep = f
				continue
			}
			konst = append(konst, f)
		}
		anti, ok := antiderive(dep, name)
		if !ok {
			return nil, false
		}
		return expr.ProdOf(append(konst, anti)...), true

	case *expr.Power:
		return antiderivePower(v.Base, v.Exp, name)

	case *expr.Root:
		return antiderivePower(v.Radicand, expr.F(1, int64(v.Degree)), name)

	case *expr.Trig:
		arg, ok := v.Arg.(*expr.Variable)
		if !ok || arg.Name != name {
			return nil, false
		}
		switch v.Fn {
		case expr.Sin:
			return expr.Neg(expr.TrigOf(expr.Cos, arg)), true
		case expr.Cos:
			return expr.TrigOf(expr.Sin, arg), true
		}
		return nil, false

	case *expr.Div:
		if expr.ContainsVar(v.Den, name) {
			// 1/x and its constant multiples.
			den, isVar := v.Den.(*expr.Variable)
			if !isVar || den.Name != name || expr.ContainsVar(v.Num, name) {
				return nil, false
			}
			return expr.ProdOf(v.Num, expr.Ln(expr.AbsOf(den))), true
		}
		anti, ok := antiderive(v.Num, name)
		if !ok {
			return nil, false
		}
		return expr.DivOf(anti, v.Den), true
	}
	return nil, false
}

// antiderivePower integrates x^r for rational r. The exponent −1 maps
// to ln|x|; anything with a non-rational exponent or a non-variable
// base is unsupported.
func antiderivePower(base, exp expr.Expr, name string) (expr.Expr, bool) {
	b, isVar := base.(*expr.Variable)
	if !isVar || b.Name != name || expr.ContainsVar(exp, name) {
		return nil, false
	}
	if _, ok := expr.RatOf(exp); !ok {
		return nil, false
	}
	if expr.IsMinusOne(exp) {
		return expr.Ln(expr.AbsOf(b)), true
	}
	// x^r → x^(r+1)/(r+1)
	rp1 := expr.SumOf(exp, expr.N(1))
	return expr.ProdOf(expr.DivOf(expr.N(1), rp1), expr.PowOf(b, rp1)), true
}
