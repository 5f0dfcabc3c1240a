package expr

import (
	"math/big"
	"sort"
	"strings"
)

// ============================================================
// Product — ordered list of factors
// ============================================================

type Product struct{ Factors []Expr }

// ProdOf builds and canonicalizes a product.
func ProdOf(factors ...Expr) Expr { return (&Product{Factors: factors}).Simplify() }

func (m *Product) Simplify() Expr {
	flat := make([]Expr, 0, len(m.Factors))
	for _, f := range m.Factors {
		s := f.Simplify()
		if inner, ok := s.(*Product); ok {
			flat = append(flat, inner.Factors...)
		} else {
			flat = append(flat, s)
		}
	}

	coeff := big.NewRat(1, 1)
	others := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if r, ok := RatOf(f); ok {
			coeff.Mul(coeff, r)
		} else {
			others = append(others, f)
		}
	}
	if coeff.Sign() == 0 {
		return N(0)
	}

	others = mergeRoots(others, coeff)
	others = mergeBases(others, coeff)

	// Canonical factor order: deterministic sort by rendered key, so
	// x*y and y*x share one signature.
	sort.Slice(others, func(i, j int) bool { return others[i].String() < others[j].String() })

	if len(others) == 0 {
		return FromRat(coeff)
	}
	if coeff.Cmp(ratOne) == 0 {
		if len(others) == 1 {
			return others[0]
		}
		return &Product{Factors: others}
	}
	return &Product{Factors: append([]Expr{FromRat(coeff)}, others...)}
}

// mergeRoots combines equal-degree radicals by multiplying their
// radicands and re-extracting perfect powers: √a·√a → a.
func mergeRoots(factors []Expr, coeff *big.Rat) []Expr {
	byDeg := map[int][]Expr{}
	degOrder := []int{}
	out := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if rt, ok := f.(*Root); ok {
			// Even roots of negative numbers have no real value;
			// multiplying radicands would invent one (√(−2)·√(−2) is
			// not 2), so they never join a merge group.
			if r, isRat := RatOf(rt.Radicand); isRat && r.Sign() < 0 && rt.Degree%2 == 0 {
				out = append(out, f)
				continue
			}
			if _, seen := byDeg[rt.Degree]; !seen {
				degOrder = append(degOrder, rt.Degree)
			}
			byDeg[rt.Degree] = append(byDeg[rt.Degree], rt.Radicand)
			continue
		}
		out = append(out, f)
	}
	for _, deg := range degOrder {
		rads := byDeg[deg]
		var merged Expr
		if len(rads) == 1 {
			merged = (&Root{Radicand: rads[0], Degree: deg}).Simplify()
		} else {
			merged = RootOf(ProdOf(rads...), deg)
		}
		out = foldFactor(out, merged, coeff)
	}
	return out
}

// mergeBases folds repeated bases into one Power: x·x² → x³.
func mergeBases(factors []Expr, coeff *big.Rat) []Expr {
	type entry struct {
		base Expr
		exps []Expr
	}
	order := []string{}
	entries := map[string]*entry{}
	passthrough := []Expr{}
	for _, f := range factors {
		base, exp := f, Expr(one)
		if p, ok := f.(*Power); ok {
			base, exp = p.Base, p.Exp
		}
		// Sums and roots keep their own canonical shapes.
		if _, isRoot := base.(*Root); isRoot {
			passthrough = append(passthrough, f)
			continue
		}
		key := base.String()
		en, seen := entries[key]
		if !seen {
			en = &entry{base: base}
			entries[key] = en
			order = append(order, key)
		}
		en.exps = append(en.exps, exp)
	}

	out := passthrough
	for _, key := range order {
		en := entries[key]
		var rebuilt Expr
		if len(en.exps) == 1 && IsOne(en.exps[0]) {
			rebuilt = en.base
		} else {
			rebuilt = PowOf(en.base, SumOf(en.exps...))
		}
		out = foldFactor(out, rebuilt, coeff)
	}
	return out
}

// foldFactor appends a rebuilt factor, folding plain numbers into the
// running coefficient and flattening nested products.
func foldFactor(out []Expr, f Expr, coeff *big.Rat) []Expr {
	if r, ok := RatOf(f); ok {
		coeff.Mul(coeff, r)
		return out
	}
	if p, ok := f.(*Product); ok {
		for _, inner := range p.Factors {
			out = foldFactor(out, inner, coeff)
		}
		return out
	}
	return append(out, f)
}

func (m *Product) String() string {
	if len(m.Factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.Factors))
	for i, f := range m.Factors {
		if _, isSum := f.(*Sum); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Product) LaTeX() string {
	parts := make([]string, len(m.Factors))
	for i, f := range m.Factors {
		if _, isSum := f.(*Sum); isSum {
			parts[i] = "\\left(" + f.LaTeX() + "\\right)"
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

func (m *Product) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.Factors))
	for i, f := range m.Factors {
		factors[i] = f.Sub(name, value)
	}
	return ProdOf(factors...)
}

func (m *Product) Approx() (float64, bool) {
	acc := 1.0
	for _, f := range m.Factors {
		v, ok := f.Approx()
		if !ok {
			return 0, false
		}
		acc *= v
	}
	return acc, true
}

func (m *Product) Equal(other Expr) bool {
	o, ok := other.(*Product)
	if !ok || len(m.Factors) != len(o.Factors) {
		return false
	}
	for i := range m.Factors {
		if !m.Factors[i].Equal(o.Factors[i]) {
			return false
		}
	}
	return true
}

func (m *Product) exprType() string { return "product" }
