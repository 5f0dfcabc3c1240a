package calculus

import (
	"math/big"

	"github.com/njchilds90/exactcalc/expr"
)

// maxIterations caps bounded summation and product enumeration.
// Ranges wider than this collapse to the identity element rather than
// stalling the evaluator.
const maxIterations = 1_000_000

// SumRange evaluates Σ body for the bound variable running over the
// integer range [lower, upper]. An empty range (upper < lower) and
// non-integer bounds both yield the additive identity 0.
func SumRange(body expr.Expr, name string, lower, upper expr.Expr) expr.Expr {
	out, _ := EnumerateRange(lower, upper, expr.N(0), expr.SumOf, func(i *big.Int) (expr.Expr, error) {
		return body.Sub(name, expr.NBig(i)).Simplify(), nil
	})
	return out
}

// ProdRange evaluates Π body over [lower, upper]; degenerate ranges
// yield the multiplicative identity 1.
func ProdRange(body expr.Expr, name string, lower, upper expr.Expr) expr.Expr {
	out, _ := EnumerateRange(lower, upper, expr.N(1), expr.ProdOf, func(i *big.Int) (expr.Expr, error) {
		return body.Sub(name, expr.NBig(i)).Simplify(), nil
	})
	return out
}

// EnumerateRange calls eval once per integer in [lower, upper] and
// combines the results. Non-integer bounds, empty ranges, and spans
// past the iteration cap yield the identity without calling eval. The
// big.Int handed to eval is reused across iterations; copy it to keep
// it.
func EnumerateRange(lower, upper expr.Expr, identity expr.Expr, combine func(...expr.Expr) expr.Expr, eval func(i *big.Int) (expr.Expr, error)) (expr.Expr, error) {
	lo, okLo := expr.IsInteger(lower.Simplify())
	hi, okHi := expr.IsInteger(upper.Simplify())
	if !okLo || !okHi {
		return identity, nil
	}
	if hi.Cmp(lo) < 0 {
		return identity, nil
	}

	span := new(big.Int).Sub(hi, lo)
	if !span.IsInt64() || span.Int64()+1 > maxIterations {
		return identity, nil
	}

	terms := make([]expr.Expr, 0, span.Int64()+1)
	for i := new(big.Int).Set(lo); i.Cmp(hi) <= 0; i.Add(i, big.NewInt(1)) {
		term, err := eval(i)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
	}
	return combine(terms...), nil
}
