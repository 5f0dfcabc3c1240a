// Package solve finds exact solutions for single polynomial equations
// up to degree two and for square systems of linear equations.
package solve

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/njchilds90/exactcalc/expr"
)

// Equation is one lhs = rhs pair.
type Equation struct {
	LHS expr.Expr
	RHS expr.Expr
}

// residual is lhs − rhs, simplified; solving drives it to zero.
func (q Equation) residual() expr.Expr {
	return expr.SubOf(q.LHS, q.RHS)
}

// Solve returns "name = value" strings for the given equations. A nil
// result means no solution exists, either because the system is
// inconsistent or because it falls outside the supported forms.
func Solve(eqs []Equation) []string {
	if len(eqs) == 0 {
		return nil
	}

	residuals := make([]expr.Expr, len(eqs))
	varSet := map[string]struct{}{}
	for i, q := range eqs {
		residuals[i] = q.residual()
		for name := range expr.FreeVars(residuals[i]) {
			varSet[name] = struct{}{}
		}
	}
	if len(varSet) == 0 {
		return nil
	}

	vars := make([]string, 0, len(varSet))
	for name := range varSet {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	if len(eqs) == 1 && len(vars) == 1 {
		return solveSingle(residuals[0], vars[0])
	}
	if len(eqs) == len(vars) {
		return solveLinearSystem(residuals, vars)
	}
	return nil
}

// solveSingle handles one polynomial residual in one variable, degree
// two at most.
func solveSingle(residual expr.Expr, name string) []string {
	coeffs, ok := polyCoeffs(residual, name)
	if !ok {
		return solveSymbolicLinear(residual, name)
	}

	a := coeffAt(coeffs, 2)
	b := coeffAt(coeffs, 1)
	c := coeffAt(coeffs, 0)
	for deg := range coeffs {
		if deg > 2 && coeffs[deg].Sign() != 0 {
			return nil
		}
	}

	switch {
	case a.Sign() != 0:
		return quadraticRoots(name, a, b, c)
	case b.Sign() != 0:
		// bx + c = 0
		x := new(big.Rat).Neg(new(big.Rat).Quo(c, b))
		return []string{solution(name, expr.FromRat(x))}
	case c.Sign() != 0:
		// Contradiction such as 0 = 5.
		return nil
	}
	// 0 = 0 holds for every value; nothing to report.
	return nil
}

// solveSymbolicLinear isolates the variable when the residual is linear
// with symbolic constant coefficients, such as πx − 1. The slope and
// intercept are probed by substitution and confirmed by rebuilding the
// residual from them; anything that fails the round trip is not linear.
func solveSymbolicLinear(residual expr.Expr, name string) []string {
	intercept := residual.Sub(name, expr.N(0)).Simplify()
	slope := expr.SubOf(residual.Sub(name, expr.N(1)).Simplify(), intercept)
	if expr.IsZero(slope) || expr.ContainsVar(slope, name) || expr.ContainsVar(intercept, name) {
		return nil
	}
	rebuilt := expr.SumOf(expr.ProdOf(slope, expr.Sym(name)), intercept)
	if !rebuilt.Equal(residual.Simplify()) {
		return nil
	}
	return []string{solution(name, expr.DivOf(expr.Neg(intercept), slope))}
}

// quadraticRoots builds the exact roots of ax² + bx + c = 0 from the
// discriminant, keeping surds symbolic and using the imaginary unit
// when the discriminant is negative.
func quadraticRoots(name string, a, b, c *big.Rat) []string {
	// D = b² − 4ac
	d := new(big.Rat).Mul(b, b)
	d.Sub(d, new(big.Rat).Mul(big.NewRat(4, 1), new(big.Rat).Mul(a, c)))

	negB := expr.FromRat(new(big.Rat).Neg(b))
	twoA := expr.FromRat(new(big.Rat).Mul(big.NewRat(2, 1), a))

	if d.Sign() == 0 {
		return []string{solution(name, expr.DivOf(negB, twoA))}
	}

	var sqrtD expr.Expr
	if d.Sign() > 0 {
		sqrtD = expr.Sqrt(expr.FromRat(d))
	} else {
		sqrtD = expr.ProdOf(expr.Imaginary(), expr.Sqrt(expr.FromRat(new(big.Rat).Neg(d))))
	}

	lo := expr.DivOf(expr.SubOf(negB, sqrtD), twoA)
	hi := expr.DivOf(expr.SumOf(negB, sqrtD), twoA)
	if lo.Equal(hi) {
		return []string{solution(name, lo)}
	}
	return []string{solution(name, lo), solution(name, hi)}
}

// solveLinearSystem runs exact Gaussian elimination with partial
// pivoting over the rationals. Singular and inconsistent systems both
// come back nil.
func solveLinearSystem(residuals []expr.Expr, vars []string) []string {
	n := len(vars)
	index := make(map[string]int, n)
	for i, name := range vars {
		index[name] = i
	}

	// Augmented matrix rows: n coefficients plus the constant moved to
	// the right-hand side.
	rows := make([][]*big.Rat, n)
	for i, residual := range residuals {
		coeffs, konst, ok := linearCoeffs(residual)
		if !ok {
			return nil
		}
		row := make([]*big.Rat, n+1)
		for j := range row {
			row[j] = new(big.Rat)
		}
		for name, co := range coeffs {
			row[index[name]].Set(co)
		}
		row[n].Neg(konst)
		rows[i] = row
	}

	for col := 0; col < n; col++ {
		pivot := -1
		var best *big.Rat
		for r := col; r < n; r++ {
			v := new(big.Rat).Abs(rows[r][col])
			if v.Sign() != 0 && (pivot < 0 || v.Cmp(best) > 0) {
				pivot, best = r, v
			}
		}
		if pivot < 0 {
			return nil
		}
		rows[col], rows[pivot] = rows[pivot], rows[col]

		inv := new(big.Rat).Inv(rows[col][col])
		for j := col; j <= n; j++ {
			rows[col][j].Mul(rows[col][j], inv)
		}
		for r := 0; r < n; r++ {
			if r == col || rows[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(rows[r][col])
			for j := col; j <= n; j++ {
				rows[r][j].Sub(rows[r][j], new(big.Rat).Mul(factor, rows[col][j]))
			}
		}
	}

	out := make([]string, n)
	for i, name := range vars {
		out[i] = solution(name, expr.FromRat(rows[i][n]))
	}
	return out
}

func solution(name string, value expr.Expr) string {
	return fmt.Sprintf("%s = %s", name, value.Simplify().String())
}

func coeffAt(coeffs map[int]*big.Rat, deg int) *big.Rat {
	if co, ok := coeffs[deg]; ok {
		return co
	}
	return new(big.Rat)
}
