package expr

import (
	"math"
	"math/big"
)

// ============================================================
// Integer — exact arbitrary-precision integer
// ============================================================

type Integer struct{ Val *big.Int }

// N constructs an Integer from an int64.
func N(v int64) *Integer { return &Integer{Val: big.NewInt(v)} }

// NBig constructs an Integer from a big.Int (copied).
func NBig(v *big.Int) *Integer { return &Integer{Val: new(big.Int).Set(v)} }

func (n *Integer) Simplify() Expr        { return n }
func (n *Integer) String() string        { return n.Val.String() }
func (n *Integer) LaTeX() string         { return n.Val.String() }
func (n *Integer) Sub(string, Expr) Expr { return n }
func (n *Integer) Approx() (float64, bool) {
	f, _ := new(big.Float).SetInt(n.Val).Float64()
	return f, true
}
func (n *Integer) Equal(other Expr) bool {
	o, ok := other.(*Integer)
	return ok && n.Val.Cmp(o.Val) == 0
}
func (n *Integer) exprType() string { return "int" }

// ============================================================
// Fraction — reduced rational, denominator > 0
// ============================================================

type Fraction struct{ Num, Den *big.Int }

// F constructs a reduced Fraction (or Integer when it reduces to one).
// A zero denominator is a programmer error.
func F(p, q int64) Expr {
	if q == 0 {
		panic("expr: fraction denominator is zero")
	}
	return FromRat(big.NewRat(p, q))
}

func (f *Fraction) Simplify() Expr {
	// Constructors keep fractions reduced; re-normalize anyway so a
	// hand-built literal still canonicalizes.
	return FromRat(new(big.Rat).SetFrac(f.Num, f.Den))
}

func (f *Fraction) String() string { return f.Num.String() + "/" + f.Den.String() }

func (f *Fraction) LaTeX() string {
	sign := ""
	num := new(big.Int).Set(f.Num)
	if num.Sign() < 0 {
		sign = "-"
		num.Neg(num)
	}
	return sign + "\\frac{" + num.String() + "}{" + f.Den.String() + "}"
}

func (f *Fraction) Sub(string, Expr) Expr { return f }

func (f *Fraction) Approx() (float64, bool) {
	v, _ := new(big.Rat).SetFrac(f.Num, f.Den).Float64()
	return v, true
}

func (f *Fraction) Equal(other Expr) bool {
	o, ok := other.(*Fraction)
	return ok && f.Num.Cmp(o.Num) == 0 && f.Den.Cmp(o.Den) == 0
}

func (f *Fraction) exprType() string { return "frac" }

// ============================================================
// Constant — symbolic named constant
// ============================================================

type ConstTag string

const (
	ConstPi   ConstTag = "π"
	ConstE    ConstTag = "e"
	ConstPhi  ConstTag = "φ"
	ConstEps0 ConstTag = "ε0"
	ConstMu0  ConstTag = "μ0"
	ConstC0   ConstTag = "c0"
	// ConstI is the imaginary unit introduced by the quadratic solver
	// for negative discriminants. It has no decimal approximation.
	ConstI ConstTag = "i"
)

type Constant struct{ Tag ConstTag }

func Pi() *Constant       { return &Constant{Tag: ConstPi} }
func E() *Constant        { return &Constant{Tag: ConstE} }
func Imaginary() *Constant { return &Constant{Tag: ConstI} }

func (c *Constant) Simplify() Expr        { return c }
func (c *Constant) String() string        { return string(c.Tag) }
func (c *Constant) Sub(string, Expr) Expr { return c }

func (c *Constant) LaTeX() string {
	switch c.Tag {
	case ConstPi:
		return "\\pi"
	case ConstPhi:
		return "\\varphi"
	case ConstEps0:
		return "\\varepsilon_0"
	case ConstMu0:
		return "\\mu_0"
	case ConstC0:
		return "c_0"
	}
	return string(c.Tag)
}

func (c *Constant) Approx() (float64, bool) {
	switch c.Tag {
	case ConstPi:
		return math.Pi, true
	case ConstE:
		return math.E, true
	case ConstPhi:
		return math.Phi, true
	case ConstEps0:
		return 8.8541878128e-12, true
	case ConstMu0:
		return 1.25663706212e-6, true
	case ConstC0:
		return 299792458, true
	}
	return 0, false
}

func (c *Constant) Equal(other Expr) bool {
	o, ok := other.(*Constant)
	return ok && c.Tag == o.Tag
}

func (c *Constant) exprType() string { return "const" }

// ============================================================
// Variable
// ============================================================

// Variable names cover user variables, ans{N} fallbacks for unresolved
// answer references, and fresh integration constants c0, c1, ….
type Variable struct{ Name string }

func Sym(name string) *Variable { return &Variable{Name: name} }

func (s *Variable) Simplify() Expr          { return s }
func (s *Variable) String() string          { return s.Name }
func (s *Variable) LaTeX() string           { return s.Name }
func (s *Variable) Approx() (float64, bool) { return 0, false }

func (s *Variable) Sub(name string, value Expr) Expr {
	if s.Name == name {
		return value
	}
	return s
}

func (s *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && s.Name == o.Name
}

func (s *Variable) exprType() string { return "var" }
