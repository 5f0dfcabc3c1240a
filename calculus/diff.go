// Package calculus implements symbolic differentiation, polynomial
// integration, and bounded summation/product evaluation over the expr
// model.
package calculus

import (
	"github.com/njchilds90/exactcalc/expr"
)

// Diff returns the simplified derivative of e with respect to name.
// Other variable names are independent symbolic constants; they never
// implicitly depend on the differentiation variable.
func Diff(e expr.Expr, name string) expr.Expr {
	return diff(e.Simplify(), name).Simplify()
}

// DiffAt differentiates and evaluates at the given point.
func DiffAt(e expr.Expr, name string, at expr.Expr) expr.Expr {
	return Diff(e, name).Sub(name, at).Simplify()
}

func diff(e expr.Expr, name string) expr.Expr {
	switch v := e.(type) {
	case *expr.Integer, *expr.Fraction, *expr.Constant:
		return expr.N(0)

	case *expr.Variable:
		if v.Name == name {
			return expr.N(1)
		}
		return expr.N(0)

	case *expr.Sum:
		terms := make([]expr.Expr, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = diff(t, name)
		}
		return expr.SumOf(terms...)

	case *expr.Product:
		// n-ary product rule: sum over each factor's derivative times
		// the product of all the others.
		terms := make([]expr.Expr, len(v.Factors))
		for i, fi := range v.Factors {
			parts := make([]expr.Expr, 0, len(v.Factors))
			parts = append(parts, diff(fi, name))
			for j, fj := range v.Factors {
				if j != i {
					parts = append(parts, fj)
				}
			}
			terms[i] = expr.ProdOf(parts...)
		}
		return expr.SumOf(terms...)

	case *expr.Power:
		return diffPower(v.Base, v.Exp, name)

	case *expr.Root:
		// root[n](u) = u^(1/n)
		return diffPower(v.Radicand, expr.F(1, int64(v.Degree)), name)

	case *expr.Log:
		// d log_b(u) = u' / (u · ln b); the base may itself depend on
		// the variable, in which case the quotient-of-logs form
		// applies.
		if expr.ContainsVar(v.Base, name) {
			return diff(expr.DivOf(expr.Ln(v.Arg), expr.Ln(v.Base)), name)
		}
		du := diff(v.Arg, name)
		return expr.DivOf(du, expr.ProdOf(v.Arg, expr.Ln(v.Base)))

	case *expr.Trig:
		du := diff(v.Arg, name)
		return expr.ProdOf(trigDerivative(v.Fn, v.Arg), du)

	case *expr.Abs:
		// d|u| = u/|u| · u'
		du := diff(v.Inner, name)
		return expr.ProdOf(expr.DivOf(v.Inner, expr.AbsOf(v.Inner)), du)

	case *expr.Div:
		// (u/v)' = (u'v − uv')/v²
		du := diff(v.Num, name)
		dv := diff(v.Den, name)
		num := expr.SubOf(expr.ProdOf(du, v.Den), expr.ProdOf(v.Num, dv))
		return expr.DivOf(num, expr.PowOf(v.Den, expr.N(2)))

	case *expr.Perm, *expr.Comb:
		// Counting operands are discrete; treated as constant.
		return expr.N(0)
	}
	return expr.N(0)
}

// diffPower dispatches the generalized power rule: plain power rule
// for a constant exponent, exponential rule for a constant base, and
// logarithmic differentiation when both depend on the variable.
func diffPower(base, exp expr.Expr, name string) expr.Expr {
	baseDep := expr.ContainsVar(base, name)
	expDep := expr.ContainsVar(exp, name)

	switch {
	case !baseDep && !expDep:
		return expr.N(0)

	case baseDep && !expDep:
		// n·u^(n−1)·u'
		du := diff(base, name)
		return expr.ProdOf(exp, expr.PowOf(base, expr.SubOf(exp, expr.N(1))), du)

	case !baseDep && expDep:
		// a^v · ln a · v'
		dv := diff(exp, name)
		return expr.ProdOf(expr.PowOf(base, exp), expr.Ln(base), dv)
	}

	// u^v · (v'·ln u + v·u'/u)
	du := diff(base, name)
	dv := diff(exp, name)
	inner := expr.SumOf(
		expr.ProdOf(dv, expr.Ln(base)),
		expr.ProdOf(exp, expr.DivOf(du, base)),
	)
	return expr.ProdOf(expr.PowOf(base, exp), inner)
}

// trigDerivative is the fixed chain-rule table for the outer factor of
// each trig/hyperbolic derivative.
func trigDerivative(fn expr.TrigFn, u expr.Expr) expr.Expr {
	switch fn {
	case expr.Sin:
		return expr.TrigOf(expr.Cos, u)
	case expr.Cos:
		return expr.Neg(expr.TrigOf(expr.Sin, u))
	case expr.Tan:
		return expr.SumOf(expr.N(1), expr.PowOf(expr.TrigOf(expr.Tan, u), expr.N(2)))
	case expr.Asin:
		return expr.PowOf(expr.SubOf(expr.N(1), expr.PowOf(u, expr.N(2))), expr.F(-1, 2))
	case expr.Acos:
		return expr.Neg(expr.PowOf(expr.SubOf(expr.N(1), expr.PowOf(u, expr.N(2))), expr.F(-1, 2)))
	case expr.Atan:
		return expr.PowOf(expr.SumOf(expr.N(1), expr.PowOf(u, expr.N(2))), expr.N(-1))
	case expr.Sinh:
		return expr.TrigOf(expr.Cosh, u)
	case expr.Cosh:
		return expr.TrigOf(expr.Sinh, u)
	case expr.Tanh:
		return expr.SubOf(expr.N(1), expr.PowOf(expr.TrigOf(expr.Tanh, u), expr.N(2)))
	}
	return expr.N(0)
}
