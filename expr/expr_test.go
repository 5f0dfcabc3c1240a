package expr_test

import (
	"math"
	"testing"

	"github.com/njchilds90/exactcalc/expr"
)

// ============================================================
// Number tests
// ============================================================

func TestInteger_String(t *testing.T) {
	n := expr.N(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestFraction_Reduces(t *testing.T) {
	f := expr.F(2, 4)
	if f.String() != "1/2" {
		t.Errorf("want 1/2, got %s", f.String())
	}
}

func TestFraction_DenominatorPositive(t *testing.T) {
	f := expr.F(1, -2)
	if f.String() != "-1/2" {
		t.Errorf("want -1/2, got %s", f.String())
	}
}

func TestFraction_WholeCollapsesToInteger(t *testing.T) {
	f := expr.F(4, 2)
	if _, ok := f.(*expr.Integer); !ok {
		t.Errorf("4/2 should be an Integer, got %T", f)
	}
	if f.String() != "2" {
		t.Errorf("want 2, got %s", f.String())
	}
}

func TestFraction_LaTeX(t *testing.T) {
	f := expr.F(2, 5)
	if f.LaTeX() != `\frac{2}{5}` {
		t.Errorf("want \\frac{2}{5}, got %s", f.LaTeX())
	}
}

func TestFraction_Arithmetic(t *testing.T) {
	got := expr.SumOf(expr.F(1, 2), expr.F(1, 3))
	if got.String() != "5/6" {
		t.Errorf("1/2 + 1/3 should be 5/6, got %s", got.String())
	}
}

// ============================================================
// Sum tests
// ============================================================

func TestSum_LikeTermsGroup(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(x, x)
	want := expr.ProdOf(expr.N(2), expr.Sym("x"))
	if !got.Equal(want) {
		t.Errorf("x + x should equal 2*x, got %s", got.String())
	}
}

func TestSum_FirstOccurrenceOrder(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	got := expr.SumOf(y, x, y)
	if got.String() != "2*y + x" {
		t.Errorf("want 2*y + x, got %s", got.String())
	}
}

func TestSum_NumericTermLast(t *testing.T) {
	got := expr.SumOf(expr.N(3), expr.Sym("x"), expr.N(4))
	if got.String() != "x + 7" {
		t.Errorf("want x + 7, got %s", got.String())
	}
}

func TestSum_CancellationDropsTerm(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(x, expr.Neg(x))
	if got.String() != "0" {
		t.Errorf("x - x should be 0, got %s", got.String())
	}
}

func TestSum_CoefficientMerge(t *testing.T) {
	x := expr.Sym("x")
	got := expr.SumOf(expr.ProdOf(expr.N(3), x), expr.ProdOf(expr.N(2), x))
	want := expr.ProdOf(expr.N(5), expr.Sym("x"))
	if !got.Equal(want) {
		t.Errorf("3x + 2x should be 5x, got %s", got.String())
	}
}

// ============================================================
// Product tests
// ============================================================

func TestProduct_FactorOrderCanonical(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	a := expr.ProdOf(x, y)
	b := expr.ProdOf(y, x)
	if !a.Equal(b) {
		t.Errorf("x*y and y*x should be equal, got %s vs %s", a.String(), b.String())
	}
}

func TestProduct_ZeroAnnihilates(t *testing.T) {
	got := expr.ProdOf(expr.N(0), expr.Sym("x"))
	if got.String() != "0" {
		t.Errorf("0*x should be 0, got %s", got.String())
	}
}

func TestProduct_MergesExponents(t *testing.T) {
	x := expr.Sym("x")
	got := expr.ProdOf(x, x)
	want := expr.PowOf(expr.Sym("x"), expr.N(2))
	if !got.Equal(want) {
		t.Errorf("x*x should be x^2, got %s", got.String())
	}
}

// ============================================================
// Power tests
// ============================================================

func TestPower_FoldsRationalBase(t *testing.T) {
	got := expr.PowOf(expr.N(2), expr.N(10))
	if got.String() != "1024" {
		t.Errorf("2^10 should be 1024, got %s", got.String())
	}
}

func TestPower_NegativeExponent(t *testing.T) {
	got := expr.PowOf(expr.N(2), expr.N(-2))
	if got.String() != "1/4" {
		t.Errorf("2^-2 should be 1/4, got %s", got.String())
	}
}

func TestPower_ExponentOneCollapses(t *testing.T) {
	got := expr.PowOf(expr.Sym("x"), expr.N(1))
	if got.String() != "x" {
		t.Errorf("x^1 should be x, got %s", got.String())
	}
}

func TestPower_ZeroToZeroApproximatesNaN(t *testing.T) {
	got := expr.PowOf(expr.N(0), expr.N(0))
	v, ok := got.Approx()
	if !ok || !math.IsNaN(v) {
		t.Errorf("0^0 should approximate as NaN, got %v ok=%v", v, ok)
	}
}

func TestPower_OfPowerMultiplies(t *testing.T) {
	got := expr.PowOf(expr.PowOf(expr.Sym("x"), expr.N(2)), expr.N(3))
	want := expr.PowOf(expr.Sym("x"), expr.N(6))
	if !got.Equal(want) {
		t.Errorf("(x^2)^3 should be x^6, got %s", got.String())
	}
}

// ============================================================
// Root tests
// ============================================================

func TestRoot_ExtractsSquareFactor(t *testing.T) {
	got := expr.Sqrt(expr.N(8))
	want := expr.ProdOf(expr.N(2), expr.Sqrt(expr.N(2)))
	if !got.Equal(want) {
		t.Errorf("√8 should be 2*√2, got %s", got.String())
	}
}

func TestRoot_PerfectSquare(t *testing.T) {
	got := expr.Sqrt(expr.N(9))
	if got.String() != "3" {
		t.Errorf("√9 should be 3, got %s", got.String())
	}
}

func TestRoot_TimesItselfRestoresRadicand(t *testing.T) {
	a := expr.Sym("a")
	got := expr.ProdOf(expr.Sqrt(a), expr.Sqrt(a))
	if !got.Equal(expr.Sym("a")) {
		t.Errorf("√a * √a should be a, got %s", got.String())
	}
}

func TestRoot_FractionRationalizes(t *testing.T) {
	got := expr.Sqrt(expr.F(1, 2))
	want := expr.ProdOf(expr.F(1, 2), expr.Sqrt(expr.N(2)))
	if !got.Equal(want) {
		t.Errorf("√(1/2) should be (1/2)*√2, got %s", got.String())
	}
}

func TestRoot_CubeRoot(t *testing.T) {
	got := expr.RootOf(expr.N(27), 3)
	if got.String() != "3" {
		t.Errorf("cuberoot(27) should be 3, got %s", got.String())
	}
}

func TestRoot_NegativeEvenDegreeStaysSymbolic(t *testing.T) {
	got := expr.Sqrt(expr.N(-4))
	v, ok := got.Approx()
	if !ok || !math.IsNaN(v) {
		t.Errorf("√-4 should approximate as NaN, got %v ok=%v", v, ok)
	}
}

func TestRoot_NegativeRadicandsDoNotMerge(t *testing.T) {
	// √(−2)·√(−2) must not fold to 2; neither factor has a real value.
	got := expr.ProdOf(expr.Sqrt(expr.N(-2)), expr.Sqrt(expr.N(-2)))
	if got.Equal(expr.N(2)) {
		t.Fatalf("√(-2) * √(-2) folded to 2")
	}
	v, ok := got.Approx()
	if !ok || !math.IsNaN(v) {
		t.Errorf("√(-2) * √(-2) should approximate as NaN, got %v ok=%v", v, ok)
	}
}

func TestRoot_NegativeOddDegreeStillMerges(t *testing.T) {
	got := expr.ProdOf(expr.RootOf(expr.N(-2), 3), expr.RootOf(expr.N(4), 3))
	if got.String() != "-2" {
		t.Errorf("cuberoot(-2) * cuberoot(4) should be -2, got %s", got.String())
	}
}

// ============================================================
// Simplify invariants
// ============================================================

func TestSimplify_Idempotent(t *testing.T) {
	exprs := []expr.Expr{
		expr.SumOf(expr.Sym("x"), expr.Sym("x"), expr.N(1)),
		expr.ProdOf(expr.N(3), expr.Sym("y"), expr.Sym("x")),
		expr.Sqrt(expr.N(18)),
		expr.PowOf(expr.Sym("x"), expr.F(3, 2)),
		expr.DivOf(expr.Sym("x"), expr.Sym("y")),
	}
	for _, e := range exprs {
		once := e.Simplify()
		twice := once.Simplify()
		if !once.Equal(twice) {
			t.Errorf("simplify not idempotent for %s: %s vs %s",
				e.String(), once.String(), twice.String())
		}
	}
}

func TestSimplify_Deterministic(t *testing.T) {
	build := func() expr.Expr {
		return expr.SumOf(
			expr.ProdOf(expr.Sym("b"), expr.Sym("a")),
			expr.ProdOf(expr.Sym("a"), expr.Sym("b")),
			expr.N(2),
		)
	}
	first := build().String()
	for i := 0; i < 20; i++ {
		if got := build().String(); got != first {
			t.Fatalf("non-deterministic simplify: %s vs %s", first, got)
		}
	}
}

// ============================================================
// Div and Approx tests
// ============================================================

func TestDiv_RationalQuotient(t *testing.T) {
	got := expr.DivOf(expr.N(1), expr.N(3))
	if got.String() != "1/3" {
		t.Errorf("1 div 3 should be 1/3, got %s", got.String())
	}
}

func TestDiv_ByZeroApproximatesInf(t *testing.T) {
	got := expr.DivOf(expr.N(1), expr.N(0))
	v, ok := got.Approx()
	if !ok || !math.IsInf(v, 1) {
		t.Errorf("1/0 should approximate as +Inf, got %v ok=%v", v, ok)
	}
}

func TestApprox_UnboundSymbolFails(t *testing.T) {
	if _, ok := expr.Sym("x").Approx(); ok {
		t.Error("free variable should not approximate")
	}
}

func TestApprox_Pi(t *testing.T) {
	v, ok := expr.Pi().Approx()
	if !ok || math.Abs(v-math.Pi) > 1e-15 {
		t.Errorf("π approximation off: %v", v)
	}
}

func TestSub_ReplacesVariable(t *testing.T) {
	e := expr.SumOf(expr.PowOf(expr.Sym("x"), expr.N(2)), expr.N(1))
	got := e.Sub("x", expr.N(3)).Simplify()
	if got.String() != "10" {
		t.Errorf("x^2+1 at x=3 should be 10, got %s", got.String())
	}
}

// ============================================================
// Function tests
// ============================================================

func TestLog_PerfectPowerFolds(t *testing.T) {
	got := expr.LogOf(expr.N(2), expr.N(8))
	if got.String() != "3" {
		t.Errorf("log2(8) should be 3, got %s", got.String())
	}
}

func TestLog_OfOneIsZero(t *testing.T) {
	got := expr.Ln(expr.N(1))
	if got.String() != "0" {
		t.Errorf("ln(1) should be 0, got %s", got.String())
	}
}

func TestTrig_SinZero(t *testing.T) {
	got := expr.TrigOf(expr.Sin, expr.N(0))
	if got.String() != "0" {
		t.Errorf("sin(0) should be 0, got %s", got.String())
	}
}

func TestTrig_CosPi(t *testing.T) {
	got := expr.TrigOf(expr.Cos, expr.Pi())
	if got.String() != "-1" {
		t.Errorf("cos(π) should be -1, got %s", got.String())
	}
}

func TestAbs_NegativeRational(t *testing.T) {
	got := expr.AbsOf(expr.F(-3, 2))
	if got.String() != "3/2" {
		t.Errorf("|-3/2| should be 3/2, got %s", got.String())
	}
}

func TestAbs_PullsNegativeCoefficient(t *testing.T) {
	got := expr.AbsOf(expr.ProdOf(expr.N(-2), expr.Sym("x")))
	want := expr.ProdOf(expr.N(2), expr.AbsOf(expr.Sym("x")))
	if !got.Equal(want) {
		t.Errorf("|-2x| should be 2*|x|, got %s", got.String())
	}
}

// ============================================================
// Combinatorics tests
// ============================================================

func TestPerm_Counts(t *testing.T) {
	got := expr.PermOf(expr.N(5), expr.N(2))
	if got.String() != "20" {
		t.Errorf("P(5,2) should be 20, got %s", got.String())
	}
}

func TestComb_Counts(t *testing.T) {
	got := expr.CombOf(expr.N(5), expr.N(2))
	if got.String() != "10" {
		t.Errorf("C(5,2) should be 10, got %s", got.String())
	}
}

func TestComb_SymbolicStaysPut(t *testing.T) {
	got := expr.CombOf(expr.Sym("n"), expr.N(2))
	if got.String() != "C(n, 2)" {
		t.Errorf("want C(n, 2), got %s", got.String())
	}
}
