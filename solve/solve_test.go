package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/solve"
)

func eq(lhs, rhs expr.Expr) solve.Equation {
	return solve.Equation{LHS: lhs, RHS: rhs}
}

func TestSolve_SimpleLinear(t *testing.T) {
	// x + 5 = 10
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(expr.Sym("x"), expr.N(5)), expr.N(10)),
	})
	assert.Equal(t, []string{"x = 5"}, got)
}

func TestSolve_LinearBothSides(t *testing.T) {
	// 2x + 3 = x + 7
	got := solve.Solve([]solve.Equation{
		eq(
			expr.SumOf(expr.ProdOf(expr.N(2), expr.Sym("x")), expr.N(3)),
			expr.SumOf(expr.Sym("x"), expr.N(7)),
		),
	})
	assert.Equal(t, []string{"x = 4"}, got)
}

func TestSolve_LinearFractionResult(t *testing.T) {
	// 3x = 2
	got := solve.Solve([]solve.Equation{
		eq(expr.ProdOf(expr.N(3), expr.Sym("x")), expr.N(2)),
	})
	assert.Equal(t, []string{"x = 2/3"}, got)
}

func TestSolve_LinearSymbolicCoefficient(t *testing.T) {
	// πx = 1 isolates exactly
	got := solve.Solve([]solve.Equation{
		eq(expr.ProdOf(expr.Pi(), expr.Sym("x")), expr.N(1)),
	})
	assert.Equal(t, []string{"x = 1/π"}, got)
}

func TestSolve_LinearSymbolicIntercept(t *testing.T) {
	// 2x + π = 0
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(expr.ProdOf(expr.N(2), expr.Sym("x")), expr.Pi()), expr.N(0)),
	})
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "π")
}

func TestSolve_NonLinearSymbolicUnsupported(t *testing.T) {
	// sin(x) = 1 stays out of reach
	got := solve.Solve([]solve.Equation{
		eq(expr.TrigOf(expr.Sin, expr.Sym("x")), expr.N(1)),
	})
	assert.Nil(t, got)
}

func TestSolve_QuadraticRationalRoots(t *testing.T) {
	// x² − 5x + 6 = 0
	x := expr.Sym("x")
	lhs := expr.SumOf(
		expr.PowOf(x, expr.N(2)),
		expr.ProdOf(expr.N(-5), x),
		expr.N(6),
	)
	got := solve.Solve([]solve.Equation{eq(lhs, expr.N(0))})
	assert.Equal(t, []string{"x = 2", "x = 3"}, got)
}

func TestSolve_QuadraticDoubleRoot(t *testing.T) {
	// x² − 2x + 1 = 0
	x := expr.Sym("x")
	lhs := expr.SumOf(
		expr.PowOf(x, expr.N(2)),
		expr.ProdOf(expr.N(-2), x),
		expr.N(1),
	)
	got := solve.Solve([]solve.Equation{eq(lhs, expr.N(0))})
	assert.Equal(t, []string{"x = 1"}, got)
}

func TestSolve_QuadraticSurdRoots(t *testing.T) {
	// x² = 2 keeps its roots as surds
	x := expr.Sym("x")
	got := solve.Solve([]solve.Equation{eq(expr.PowOf(x, expr.N(2)), expr.N(2))})
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "√(2)")
	assert.Contains(t, got[1], "√(2)")
}

func TestSolve_QuadraticImaginaryRoots(t *testing.T) {
	// x² + 1 = 0
	x := expr.Sym("x")
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(expr.PowOf(x, expr.N(2)), expr.N(1)), expr.N(0)),
	})
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "i")
	assert.Contains(t, got[1], "i")
}

func TestSolve_TwoByTwoSystem(t *testing.T) {
	// x + y = 5, x − y = 1
	x, y := expr.Sym("x"), expr.Sym("y")
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(x, y), expr.N(5)),
		eq(expr.SubOf(x, y), expr.N(1)),
	})
	assert.Equal(t, []string{"x = 3", "y = 2"}, got)
}

func TestSolve_ThreeByThreeSystem(t *testing.T) {
	x, y, z := expr.Sym("x"), expr.Sym("y"), expr.Sym("z")
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(x, y, z), expr.N(6)),
		eq(expr.SumOf(x, expr.Neg(y)), expr.N(0)),
		eq(expr.SumOf(y, expr.Neg(z)), expr.N(-1)),
	})
	assert.Equal(t, []string{"x = 5/3", "y = 5/3", "z = 8/3"}, got)
}

func TestSolve_SingularSystem(t *testing.T) {
	// x + y = 1 twice is singular
	x, y := expr.Sym("x"), expr.Sym("y")
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(x, y), expr.N(1)),
		eq(expr.SumOf(x, y), expr.N(2)),
	})
	assert.Nil(t, got)
}

func TestSolve_Underdetermined(t *testing.T) {
	got := solve.Solve([]solve.Equation{
		eq(expr.SumOf(expr.Sym("x"), expr.Sym("y")), expr.N(5)),
	})
	assert.Nil(t, got)
}

func TestSolve_Contradiction(t *testing.T) {
	// x = x + 1
	x := expr.Sym("x")
	got := solve.Solve([]solve.Equation{
		eq(x, expr.SumOf(x, expr.N(1))),
	})
	assert.Nil(t, got)
}

func TestSolve_NoVariables(t *testing.T) {
	got := solve.Solve([]solve.Equation{eq(expr.N(5), expr.N(5))})
	assert.Nil(t, got)
}

func TestSolve_CubicUnsupported(t *testing.T) {
	x := expr.Sym("x")
	got := solve.Solve([]solve.Equation{
		eq(expr.PowOf(x, expr.N(3)), expr.N(8)),
	})
	assert.Nil(t, got)
}
