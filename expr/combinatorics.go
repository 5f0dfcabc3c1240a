package expr

import (
	"math/big"
)

// ============================================================
// Perm / Comb — nPr and nCr
// ============================================================

type Perm struct{ N, R Expr }

// PermOf builds and canonicalizes a permutation count.
func PermOf(n, r Expr) Expr { return (&Perm{N: n, R: r}).Simplify() }

func (p *Perm) Simplify() Expr {
	n := p.N.Simplify()
	r := p.R.Simplify()
	if v, ok := permCount(n, r); ok {
		return NBig(v)
	}
	return &Perm{N: n, R: r}
}

// permCount computes n!/(n−r)! exactly for integer operands with
// 0 ≤ r ≤ n.
func permCount(n, r Expr) (*big.Int, bool) {
	ni, ok1 := IsInteger(n)
	ri, ok2 := IsInteger(r)
	if !ok1 || !ok2 || ni.Sign() < 0 || ri.Sign() < 0 || ri.Cmp(ni) > 0 || !ri.IsInt64() {
		return nil, false
	}
	out := big.NewInt(1)
	term := new(big.Int).Set(ni)
	for k := int64(0); k < ri.Int64(); k++ {
		out.Mul(out, term)
		term = new(big.Int).Sub(term, big.NewInt(1))
	}
	return out, true
}

func (p *Perm) String() string { return "P(" + p.N.String() + ", " + p.R.String() + ")" }
func (p *Perm) LaTeX() string {
	return "{}_{" + p.N.LaTeX() + "}P_{" + p.R.LaTeX() + "}"
}

func (p *Perm) Sub(name string, value Expr) Expr {
	return PermOf(p.N.Sub(name, value), p.R.Sub(name, value))
}

func (p *Perm) Approx() (float64, bool) {
	n := p.N.Simplify()
	r := p.R.Simplify()
	if v, ok := permCount(n, r); ok {
		f, _ := new(big.Float).SetInt(v).Float64()
		return f, true
	}
	return 0, false
}

func (p *Perm) Equal(other Expr) bool {
	o, ok := other.(*Perm)
	return ok && p.N.Equal(o.N) && p.R.Equal(o.R)
}

func (p *Perm) exprType() string { return "perm" }

type Comb struct{ N, R Expr }

// CombOf builds and canonicalizes a combination count.
func CombOf(n, r Expr) Expr { return (&Comb{N: n, R: r}).Simplify() }

func (c *Comb) Simplify() Expr {
	n := c.N.Simplify()
	r := c.R.Simplify()
	ni, ok1 := IsInteger(n)
	ri, ok2 := IsInteger(r)
	if ok1 && ok2 && ni.Sign() >= 0 && ri.Sign() >= 0 && ri.Cmp(ni) <= 0 && ri.IsInt64() && ni.IsInt64() {
		return NBig(new(big.Int).Binomial(ni.Int64(), ri.Int64()))
	}
	return &Comb{N: n, R: r}
}

func (c *Comb) String() string { return "C(" + c.N.String() + ", " + c.R.String() + ")" }
func (c *Comb) LaTeX() string {
	return "\\binom{" + c.N.LaTeX() + "}{" + c.R.LaTeX() + "}"
}

func (c *Comb) Sub(name string, value Expr) Expr {
	return CombOf(c.N.Sub(name, value), c.R.Sub(name, value))
}

func (c *Comb) Approx() (float64, bool) {
	if v, ok := c.Simplify().(*Integer); ok {
		return v.Approx()
	}
	return 0, false
}

func (c *Comb) Equal(other Expr) bool {
	o, ok := other.(*Comb)
	return ok && c.N.Equal(o.N) && c.R.Equal(o.R)
}

func (c *Comb) exprType() string { return "comb" }
