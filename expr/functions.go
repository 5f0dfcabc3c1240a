package expr

import (
	"math"
	"math/big"
)

// ============================================================
// Log — logarithm to an arbitrary base
// ============================================================

type Log struct{ Base, Arg Expr }

// LogOf builds and canonicalizes a logarithm.
func LogOf(base, arg Expr) Expr { return (&Log{Base: base, Arg: arg}).Simplify() }

// Ln is the natural logarithm.
func Ln(arg Expr) Expr { return LogOf(E(), arg) }

func (l *Log) Simplify() Expr {
	base := l.Base.Simplify()
	arg := l.Arg.Simplify()

	if IsOne(arg) {
		return N(0)
	}
	if arg.Equal(base) {
		return N(1)
	}
	// log_b(b^k) for an exact integer power folds to k.
	if p, ok := arg.(*Power); ok && p.Base.Equal(base) {
		return p.Exp
	}
	if bi, ok := IsInteger(base); ok && bi.Cmp(big.NewInt(1)) > 0 {
		if ai, ok2 := IsInteger(arg); ok2 && ai.Sign() > 0 {
			if k, exact := intLog(ai, bi); exact {
				return N(k)
			}
		}
	}
	return &Log{Base: base, Arg: arg}
}

// intLog returns k with base^k == arg when one exists.
func intLog(arg, base *big.Int) (int64, bool) {
	cur := big.NewInt(1)
	for k := int64(0); k <= 4096; k++ {
		switch cur.Cmp(arg) {
		case 0:
			return k, true
		case 1:
			return 0, false
		}
		cur = new(big.Int).Mul(cur, base)
	}
	return 0, false
}

func (l *Log) String() string {
	if c, ok := l.Base.(*Constant); ok && c.Tag == ConstE {
		return "ln(" + l.Arg.String() + ")"
	}
	return "log(" + l.Base.String() + ", " + l.Arg.String() + ")"
}

func (l *Log) LaTeX() string {
	if c, ok := l.Base.(*Constant); ok && c.Tag == ConstE {
		return "\\ln\\left(" + l.Arg.LaTeX() + "\\right)"
	}
	return "\\log_{" + l.Base.LaTeX() + "}\\left(" + l.Arg.LaTeX() + "\\right)"
}

func (l *Log) Sub(name string, value Expr) Expr {
	return LogOf(l.Base.Sub(name, value), l.Arg.Sub(name, value))
}

func (l *Log) Approx() (float64, bool) {
	b, ok1 := l.Base.Approx()
	a, ok2 := l.Arg.Approx()
	if !ok1 || !ok2 {
		return 0, false
	}
	return math.Log(a) / math.Log(b), true
}

func (l *Log) Equal(other Expr) bool {
	o, ok := other.(*Log)
	return ok && l.Base.Equal(o.Base) && l.Arg.Equal(o.Arg)
}

func (l *Log) exprType() string { return "log" }

// ============================================================
// Trig — trigonometric and hyperbolic functions
// ============================================================

type TrigFn string

const (
	Sin  TrigFn = "sin"
	Cos  TrigFn = "cos"
	Tan  TrigFn = "tan"
	Asin TrigFn = "asin"
	Acos TrigFn = "acos"
	Atan TrigFn = "atan"
	Sinh TrigFn = "sinh"
	Cosh TrigFn = "cosh"
	Tanh TrigFn = "tanh"
)

// trigFns maps function names accepted by the node bridge.
var trigFns = map[string]TrigFn{
	"sin": Sin, "cos": Cos, "tan": Tan,
	"asin": Asin, "acos": Acos, "atan": Atan,
	"sinh": Sinh, "cosh": Cosh, "tanh": Tanh,
}

// TrigByName resolves a function tag. ok=false for unknown names.
func TrigByName(name string) (TrigFn, bool) {
	fn, ok := trigFns[name]
	return fn, ok
}

type Trig struct {
	Fn  TrigFn
	Arg Expr
}

// TrigOf builds and canonicalizes a trig application.
func TrigOf(fn TrigFn, arg Expr) Expr { return (&Trig{Fn: fn, Arg: arg}).Simplify() }

func (t *Trig) Simplify() Expr {
	arg := t.Arg.Simplify()

	// Exact special values stay exact; everything else remains
	// symbolic until the result layer asks for a decimal.
	if IsZero(arg) {
		switch t.Fn {
		case Sin, Tan, Asin, Atan, Sinh, Tanh:
			return N(0)
		case Cos, Cosh:
			return N(1)
		}
	}
	if c, ok := arg.(*Constant); ok && c.Tag == ConstPi {
		switch t.Fn {
		case Sin, Tan:
			return N(0)
		case Cos:
			return N(-1)
		}
	}
	return &Trig{Fn: t.Fn, Arg: arg}
}

func (t *Trig) String() string { return string(t.Fn) + "(" + t.Arg.String() + ")" }

func (t *Trig) LaTeX() string {
	switch t.Fn {
	case Asin:
		return "\\arcsin\\left(" + t.Arg.LaTeX() + "\\right)"
	case Acos:
		return "\\arccos\\left(" + t.Arg.LaTeX() + "\\right)"
	case Atan:
		return "\\arctan\\left(" + t.Arg.LaTeX() + "\\right)"
	}
	return "\\" + string(t.Fn) + "\\left(" + t.Arg.LaTeX() + "\\right)"
}

func (t *Trig) Sub(name string, value Expr) Expr {
	return TrigOf(t.Fn, t.Arg.Sub(name, value))
}

func (t *Trig) Approx() (float64, bool) {
	v, ok := t.Arg.Approx()
	if !ok {
		return 0, false
	}
	switch t.Fn {
	case Sin:
		return math.Sin(v), true
	case Cos:
		return math.Cos(v), true
	case Tan:
		return math.Tan(v), true
	case Asin:
		return math.Asin(v), true
	case Acos:
		return math.Acos(v), true
	case Atan:
		return math.Atan(v), true
	case Sinh:
		return math.Sinh(v), true
	case Cosh:
		return math.Cosh(v), true
	case Tanh:
		return math.Tanh(v), true
	}
	return 0, false
}

func (t *Trig) Equal(other Expr) bool {
	o, ok := other.(*Trig)
	return ok && t.Fn == o.Fn && t.Arg.Equal(o.Arg)
}

func (t *Trig) exprType() string { return "trig" }

// ============================================================
// Abs
// ============================================================

type Abs struct{ Inner Expr }

// AbsOf builds and canonicalizes an absolute value.
func AbsOf(inner Expr) Expr { return (&Abs{Inner: inner}).Simplify() }

func (a *Abs) Simplify() Expr {
	inner := a.Inner.Simplify()

	if r, ok := RatOf(inner); ok {
		return FromRat(new(big.Rat).Abs(r))
	}
	if nested, ok := inner.(*Abs); ok {
		return nested
	}
	// A negative leading coefficient is dropped: |−3x| → |3x| → 3|x|.
	if m, ok := inner.(*Product); ok && len(m.Factors) >= 1 {
		if r, ok2 := RatOf(m.Factors[0]); ok2 && r.Sign() < 0 {
			rest := make([]Expr, 0, len(m.Factors))
			rest = append(rest, FromRat(new(big.Rat).Abs(r)))
			rest = append(rest, m.Factors[1:]...)
			return AbsOf(ProdOf(rest...))
		}
		if r, ok2 := RatOf(m.Factors[0]); ok2 && r.Sign() > 0 {
			return ProdOf(m.Factors[0], AbsOf(ProdOf(m.Factors[1:]...)))
		}
	}
	return &Abs{Inner: inner}
}

func (a *Abs) String() string { return "|" + a.Inner.String() + "|" }
func (a *Abs) LaTeX() string  { return "\\left|" + a.Inner.LaTeX() + "\\right|" }

func (a *Abs) Sub(name string, value Expr) Expr {
	return AbsOf(a.Inner.Sub(name, value))
}

func (a *Abs) Approx() (float64, bool) {
	v, ok := a.Inner.Approx()
	if !ok {
		return 0, false
	}
	return math.Abs(v), true
}

func (a *Abs) Equal(other Expr) bool {
	o, ok := other.(*Abs)
	return ok && a.Inner.Equal(o.Inner)
}

func (a *Abs) exprType() string { return "abs" }
