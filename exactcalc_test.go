package exactcalc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/exactcalc"
	"github.com/njchilds90/exactcalc/cli"
	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/format"
	"github.com/njchilds90/exactcalc/node"
)

func engine() *exactcalc.Engine {
	return exactcalc.New(format.DefaultConfig(), nil)
}

func eval(t *testing.T, input string) format.ExactResult {
	t.Helper()
	nodes, err := cli.Parse(input)
	require.NoError(t, err, input)
	return engine().Evaluate(nodes, map[int]expr.Expr{})
}

func TestEvaluate_ExactFraction(t *testing.T) {
	res := eval(t, "1/2 + 1/3")
	require.NotNil(t, res.Value)
	assert.Equal(t, "5/6", res.Value.String())
	assert.NotEmpty(t, res.Approx)
}

func TestEvaluate_RadicalStaysExact(t *testing.T) {
	res := eval(t, "sqrt(8)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "2*√(2)", res.Value.String())
}

func TestEvaluate_SymbolicHasNoApprox(t *testing.T) {
	res := eval(t, "x + x")
	require.NotNil(t, res.Value)
	assert.Equal(t, "2*x", res.Value.String())
	assert.Empty(t, res.Approx)
}

func TestEvaluate_LinearEquation(t *testing.T) {
	res := eval(t, "x + 5 = 10")
	assert.True(t, res.Solved)
	assert.Equal(t, []string{"x = 5"}, res.Solutions)
}

func TestEvaluate_EquationBothSides(t *testing.T) {
	res := eval(t, "2x + 3 = x + 7")
	assert.Equal(t, []string{"x = 4"}, res.Solutions)
}

func TestEvaluate_Quadratic(t *testing.T) {
	res := eval(t, "x^2 - 5x + 6 = 0")
	assert.Equal(t, []string{"x = 2", "x = 3"}, res.Solutions)
}

func TestEvaluate_SystemOfEquations(t *testing.T) {
	res := eval(t, "x + y = 5; x - y = 1")
	assert.True(t, res.Solved)
	assert.Equal(t, []string{"x = 3", "y = 2"}, res.Solutions)
}

func TestEvaluate_NoSolutionIsNilNotEmpty(t *testing.T) {
	res := eval(t, "x = x + 1")
	assert.True(t, res.Solved)
	assert.Nil(t, res.Solutions)
	assert.False(t, res.Empty)
}

func TestEvaluate_MalformedIsEmpty(t *testing.T) {
	nodes, err := cli.Parse("2 +")
	require.NoError(t, err)
	res := engine().Evaluate(nodes, map[int]expr.Expr{})
	assert.True(t, res.Empty)
	assert.Nil(t, res.Value)
}

func TestEvaluate_BlankIsEmpty(t *testing.T) {
	res := engine().Evaluate([]node.Node{}, map[int]expr.Expr{})
	assert.True(t, res.Empty)
}

func TestEvaluate_Derivative(t *testing.T) {
	res := eval(t, "diff(x, 3x^2)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "6*x", res.Value.String())
}

func TestEvaluate_DerivativeAtPoint(t *testing.T) {
	res := eval(t, "diff(x, 2, x^2)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "4", res.Value.String())
}

func TestEvaluate_DefiniteIntegral(t *testing.T) {
	res := eval(t, "int(x, 0, 1, x)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "1/2", res.Value.String())

	reversed := eval(t, "int(x, 1, 0, x)")
	assert.Equal(t, "-1/2", reversed.Value.String())
}

func TestEvaluate_IndefiniteIntegralConstantResets(t *testing.T) {
	first := eval(t, "int(x, x)")
	require.NotNil(t, first.Value)
	assert.True(t, expr.ContainsVar(first.Value, "c0"))

	// Constant numbering restarts on every Evaluate call.
	second := eval(t, "int(x, x)")
	assert.True(t, expr.ContainsVar(second.Value, "c0"))
	assert.False(t, expr.ContainsVar(second.Value, "c1"))
}

func TestEvaluate_AnsBinding(t *testing.T) {
	nodes, err := cli.Parse("ans0 * 4")
	require.NoError(t, err)
	res := engine().Evaluate(nodes, map[int]expr.Expr{0: expr.N(3)})
	require.NotNil(t, res.Value)
	assert.Equal(t, "12", res.Value.String())
}

func TestEvaluate_AnsUnboundStaysOpaque(t *testing.T) {
	nodes, err := cli.Parse("ans5")
	require.NoError(t, err)
	res := engine().Evaluate(nodes, map[int]expr.Expr{})
	require.NotNil(t, res.Value)
	assert.True(t, res.Value.Equal(expr.Sym("ans5")))
	assert.Empty(t, res.Approx)
}

func TestEvaluate_Degrees(t *testing.T) {
	res := eval(t, "sin(180 deg)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "0", res.Value.String())
}

func TestEvaluate_Summation(t *testing.T) {
	res := eval(t, "sum(k, 1, 100, k)")
	require.NotNil(t, res.Value)
	assert.Equal(t, "5050", res.Value.String())
}

func TestEvaluate_RendersNodes(t *testing.T) {
	res := eval(t, "1/2 + 1/3")
	require.Len(t, res.Nodes, 1)
	_, ok := res.Nodes[0].(*node.Fraction)
	assert.True(t, ok)
}

func TestEvaluate_LaTeX(t *testing.T) {
	res := eval(t, "1/2")
	assert.Equal(t, `\frac{1}{2}`, res.LaTeX)
}
