package calculus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/exactcalc/calculus"
	"github.com/njchilds90/exactcalc/expr"
)

func x() expr.Expr { return expr.Sym("x") }

func TestDiff_PowerRule(t *testing.T) {
	// d/dx 3x² = 6x
	e := expr.ProdOf(expr.N(3), expr.PowOf(x(), expr.N(2)))
	got := calculus.Diff(e, "x")
	want := expr.ProdOf(expr.N(6), x())
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestDiff_AtPoint(t *testing.T) {
	// d/dx x² at x=2 is 4
	got := calculus.DiffAt(expr.PowOf(x(), expr.N(2)), "x", expr.N(2))
	assert.Equal(t, "4", got.String())
}

func TestDiff_SumRule(t *testing.T) {
	e := expr.SumOf(expr.PowOf(x(), expr.N(2)), expr.ProdOf(expr.N(5), x()), expr.N(7))
	got := calculus.Diff(e, "x")
	want := expr.SumOf(expr.ProdOf(expr.N(2), x()), expr.N(5))
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestDiff_ProductRule(t *testing.T) {
	// d/dx (x·y) = y when y is independent
	got := calculus.Diff(expr.ProdOf(x(), expr.Sym("y")), "x")
	assert.True(t, got.Equal(expr.Sym("y")), "got %s", got.String())
}

func TestDiff_ChainRule(t *testing.T) {
	// d/dx sin(x²) = 2x·cos(x²)
	inner := expr.PowOf(x(), expr.N(2))
	got := calculus.Diff(expr.TrigOf(expr.Sin, inner), "x")
	want := expr.ProdOf(expr.N(2), x(), expr.TrigOf(expr.Cos, expr.PowOf(x(), expr.N(2))))
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestDiff_ConstantBase(t *testing.T) {
	// d/dx 2^x = 2^x·ln 2
	got := calculus.Diff(expr.PowOf(expr.N(2), x()), "x")
	want := expr.ProdOf(expr.PowOf(expr.N(2), x()), expr.Ln(expr.N(2)))
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestDiff_OtherVariableIsConstant(t *testing.T) {
	got := calculus.Diff(expr.PowOf(expr.Sym("y"), expr.N(2)), "x")
	assert.Equal(t, "0", got.String())
}

func TestDiff_Log(t *testing.T) {
	// d/dx ln(x) = 1/x
	got := calculus.Diff(expr.Ln(x()), "x")
	v := got.Sub("x", expr.N(4)).Simplify()
	assert.Equal(t, "1/4", v.String())
}

func TestIntegrate_PowerRule(t *testing.T) {
	alloc := &calculus.ConstAlloc{}
	got, ok := calculus.Integrate(x(), "x", alloc)
	require.True(t, ok)
	want := expr.SumOf(expr.ProdOf(expr.F(1, 2), expr.PowOf(x(), expr.N(2))), expr.Sym("c0"))
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestIntegrate_ConstantNumbering(t *testing.T) {
	alloc := &calculus.ConstAlloc{}
	first, ok := calculus.Integrate(x(), "x", alloc)
	require.True(t, ok)
	second, ok := calculus.Integrate(x(), "x", alloc)
	require.True(t, ok)

	assert.True(t, expr.ContainsVar(first, "c0"))
	assert.True(t, expr.ContainsVar(second, "c1"))

	// A fresh allocator restarts at c0.
	fresh, ok := calculus.Integrate(x(), "x", &calculus.ConstAlloc{})
	require.True(t, ok)
	assert.True(t, expr.ContainsVar(fresh, "c0"))
}

func TestIntegrate_ReciprocalIsLogAbs(t *testing.T) {
	alloc := &calculus.ConstAlloc{}
	got, ok := calculus.Integrate(expr.PowOf(x(), expr.N(-1)), "x", alloc)
	require.True(t, ok)
	assert.True(t, expr.ContainsVar(got, "x"), "got %s", got.String())
	assert.Contains(t, got.String(), "ln(|x|)")
}

func TestIntegrate_UnsupportedIntegrand(t *testing.T) {
	alloc := &calculus.ConstAlloc{}
	_, ok := calculus.Integrate(expr.Ln(x()), "x", alloc)
	assert.False(t, ok)
}

func TestIntegrateBetween_Bounds(t *testing.T) {
	got, ok := calculus.IntegrateBetween(x(), "x", expr.N(0), expr.N(1))
	require.True(t, ok)
	assert.Equal(t, "1/2", got.String())

	reversed, ok := calculus.IntegrateBetween(x(), "x", expr.N(1), expr.N(0))
	require.True(t, ok)
	assert.Equal(t, "-1/2", reversed.String())
}

func TestSumRange_Arithmetic(t *testing.T) {
	got := calculus.SumRange(expr.Sym("k"), "k", expr.N(1), expr.N(5))
	assert.Equal(t, "15", got.String())
}

func TestSumRange_EmptyRangeIsZero(t *testing.T) {
	got := calculus.SumRange(expr.Sym("k"), "k", expr.N(5), expr.N(1))
	assert.Equal(t, "0", got.String())
}

func TestSumRange_NonIntegerBoundIsZero(t *testing.T) {
	got := calculus.SumRange(expr.Sym("k"), "k", expr.F(1, 2), expr.N(3))
	assert.Equal(t, "0", got.String())
}

func TestSumRange_SymbolicBody(t *testing.T) {
	// Σ_{k=1..3} k·x = 6x
	body := expr.ProdOf(expr.Sym("k"), x())
	got := calculus.SumRange(body, "k", expr.N(1), expr.N(3))
	want := expr.ProdOf(expr.N(6), x())
	assert.True(t, got.Equal(want), "got %s", got.String())
}

func TestProdRange_Factorial(t *testing.T) {
	got := calculus.ProdRange(expr.Sym("k"), "k", expr.N(1), expr.N(5))
	assert.Equal(t, "120", got.String())
}

func TestProdRange_EmptyRangeIsOne(t *testing.T) {
	got := calculus.ProdRange(expr.Sym("k"), "k", expr.N(2), expr.N(1))
	assert.Equal(t, "1", got.String())
}
