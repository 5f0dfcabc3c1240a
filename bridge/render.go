package bridge

import (
	"math/big"
	"regexp"
	"strconv"

	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/format"
	"github.com/njchilds90/exactcalc/node"
)

var ansVarPattern = regexp.MustCompile(`^ans(\d+)$`)

// Render turns a simplified expression back into editor nodes.
// Integer digits follow the display config; structure (fractions,
// radicals, exponents) always renders structurally.
func Render(e expr.Expr, cfg format.Config) []node.Node {
	return renderExpr(e, cfg)
}

func renderExpr(e expr.Expr, cfg format.Config) []node.Node {
	switch v := e.(type) {
	case *expr.Integer:
		return renderInt(v.Val, cfg)

	case *expr.Fraction:
		if v.Num.Sign() < 0 {
			pos := &node.Fraction{
				Num: renderInt(new(big.Int).Neg(v.Num), cfg),
				Den: renderInt(v.Den, cfg),
			}
			return []node.Node{&node.Token{Text: "−"}, pos}
		}
		return []node.Node{&node.Fraction{
			Num: renderInt(v.Num, cfg),
			Den: renderInt(v.Den, cfg),
		}}

	case *expr.Constant:
		return []node.Node{&node.Constant{Symbol: string(v.Tag)}}

	case *expr.Variable:
		if m := ansVarPattern.FindStringSubmatch(v.Name); m != nil {
			idx, err := strconv.Atoi(m[1])
			if err == nil {
				return []node.Node{&node.Ans{Index: idx}}
			}
		}
		return []node.Node{&node.Token{Text: v.Name}}

	case *expr.Sum:
		return renderSum(v, cfg)

	case *expr.Product:
		return renderProduct(v, cfg)

	case *expr.Power:
		return []node.Node{&node.Exponent{
			Base:  renderBase(v.Base, cfg),
			Power: renderExpr(v.Exp, cfg),
		}}

	case *expr.Root:
		out := &node.Root{Radicand: renderExpr(v.Radicand, cfg)}
		if v.Degree != 2 {
			out.Index = []node.Node{&node.Token{Text: strconv.Itoa(v.Degree)}}
		}
		return []node.Node{out}

	case *expr.Log:
		out := &node.Log{Arg: renderExpr(v.Arg, cfg)}
		if !v.Base.Equal(expr.N(10)) {
			out.Base = renderExpr(v.Base, cfg)
		}
		return []node.Node{out}

	case *expr.Trig:
		return []node.Node{&node.Trig{Fn: string(v.Fn), Arg: renderExpr(v.Arg, cfg)}}

	case *expr.Abs:
		return []node.Node{&node.Abs{Content: renderExpr(v.Inner, cfg)}}

	case *expr.Div:
		return []node.Node{&node.Fraction{
			Num: renderExpr(v.Num, cfg),
			Den: renderExpr(v.Den, cfg),
		}}

	case *expr.Perm:
		return []node.Node{&node.Permutation{
			N: renderExpr(v.N, cfg),
			R: renderExpr(v.R, cfg),
		}}

	case *expr.Comb:
		return []node.Node{&node.Combination{
			N: renderExpr(v.N, cfg),
			R: renderExpr(v.R, cfg),
		}}
	}
	return nil
}

func renderInt(v *big.Int, cfg format.Config) []node.Node {
	s := format.Int(v, cfg)
	if len(s) > 0 && s[0] == '-' {
		return []node.Node{&node.Token{Text: "−"}, &node.Token{Text: s[1:]}}
	}
	return []node.Node{&node.Token{Text: s}}
}

// renderSum joins terms with + and − tokens, folding each term's sign
// into the joining operator.
func renderSum(v *expr.Sum, cfg format.Config) []node.Node {
	var out []node.Node
	for i, term := range v.Terms {
		co, _ := expr.SplitCoeff(term)
		negative := co.Sign() < 0
		if negative {
			term = expr.Neg(term)
		}
		switch {
		case i == 0 && negative:
			out = append(out, &node.Token{Text: "−"})
		case i > 0 && negative:
			out = append(out, &node.Token{Text: "−"})
		case i > 0:
			out = append(out, &node.Token{Text: "+"})
		}
		out = append(out, renderExpr(term, cfg)...)
	}
	return out
}

// renderProduct lays factors side by side, leaning on implicit
// multiplication. An explicit × appears only where juxtaposition
// would merge into one lexeme, such as two adjacent digit runs.
func renderProduct(v *expr.Product, cfg format.Config) []node.Node {
	co, rest := expr.SplitCoeff(v)

	var out []node.Node
	if co.Sign() < 0 {
		out = append(out, &node.Token{Text: "−"})
		co = new(big.Rat).Neg(co)
	}
	if co.Cmp(big.NewRat(1, 1)) != 0 {
		out = append(out, renderExpr(expr.FromRat(co), cfg)...)
	}

	factors := []expr.Expr{rest}
	if p, ok := rest.(*expr.Product); ok {
		factors = p.Factors
	}
	for _, f := range factors {
		if expr.IsOne(f) {
			continue
		}
		piece := renderFactor(f, cfg)
		if needsTimes(out, piece) {
			out = append(out, &node.Token{Text: "×"})
		}
		out = append(out, piece...)
	}
	if len(out) == 0 {
		return renderExpr(expr.N(1), cfg)
	}
	return out
}

// renderFactor wraps sums in parentheses so the product grouping
// survives a round trip.
func renderFactor(f expr.Expr, cfg format.Config) []node.Node {
	if _, ok := f.(*expr.Sum); ok {
		return []node.Node{&node.Parenthesis{Content: renderExpr(f, cfg)}}
	}
	return renderExpr(f, cfg)
}

// renderBase parenthesizes compound exponent bases.
func renderBase(b expr.Expr, cfg format.Config) []node.Node {
	switch b.(type) {
	case *expr.Sum, *expr.Product, *expr.Fraction, *expr.Div:
		return []node.Node{&node.Parenthesis{Content: renderExpr(b, cfg)}}
	}
	if n, ok := b.(*expr.Integer); ok && n.Val.Sign() < 0 {
		return []node.Node{&node.Parenthesis{Content: renderExpr(b, cfg)}}
	}
	return renderExpr(b, cfg)
}

// needsTimes reports whether dropping the × between the rendered runs
// would read ambiguously: two digit runs gluing into one lexeme, or
// two function-call forms sitting flush against each other.
func needsTimes(prev, next []node.Node) bool {
	if len(prev) == 0 || len(next) == 0 {
		return false
	}
	last, first := prev[len(prev)-1], next[0]
	if isCallNode(last) && isCallNode(first) {
		return true
	}
	lt, ok1 := last.(*node.Token)
	ft, ok2 := first.(*node.Token)
	if !ok1 || !ok2 {
		return false
	}
	return isDigitToken(lt.Text) && isDigitToken(ft.Text)
}

func isCallNode(n node.Node) bool {
	switch n.(type) {
	case *node.Trig, *node.Log, *node.Permutation, *node.Combination:
		return true
	}
	return false
}

func isDigitToken(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c >= '0' && c <= '9'
}
