// Package bridge translates between the editor's structural node tree
// and the exact expression model.
package bridge

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/njchilds90/exactcalc/calculus"
	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/node"
)

// ErrMalformed marks input the converter cannot give a meaning:
// empty slots, dangling or doubled operators, unknown tokens, or
// nesting past the depth limit. Callers surface it as an empty result.
var ErrMalformed = errors.New("bridge: malformed input")

// maxNodeDepth bounds structural nesting before conversion recurses.
const maxNodeDepth = 512

// Converter turns node lines into expressions. Ans references resolve
// through the bindings map; missing indices become opaque variables so
// a later binding can still substitute them. binds carries loop
// variables during Σ/Π enumeration so an inner loop bound such as
// Σ_{x=1..y} sees the outer value of y.
type Converter struct {
	ans    map[int]expr.Expr
	consts *calculus.ConstAlloc
	binds  map[string]expr.Expr
}

// NewConverter builds a converter over the given answer bindings. The
// allocator scopes integration-constant numbering to one evaluation.
func NewConverter(ans map[int]expr.Expr, consts *calculus.ConstAlloc) *Converter {
	return &Converter{ans: ans, consts: consts, binds: map[string]expr.Expr{}}
}

// Convert parses one editor line into a simplified expression.
func (c *Converter) Convert(line []node.Node) (expr.Expr, error) {
	if node.Depth(line) > maxNodeDepth {
		return nil, ErrMalformed
	}
	return c.parse(line)
}

// SplitEquals cuts a line at top-level "=" tokens. A line without any
// comes back as a single segment.
func SplitEquals(line []node.Node) [][]node.Node {
	var segs [][]node.Node
	cur := []node.Node{}
	for _, n := range line {
		if t, ok := n.(*node.Token); ok && t.Text == "=" {
			segs = append(segs, cur)
			cur = []node.Node{}
			continue
		}
		cur = append(cur, n)
	}
	return append(segs, cur)
}

// parse lexes a node list into operand/operator items and runs the
// precedence parser over them.
func (c *Converter) parse(nodes []node.Node) (expr.Expr, error) {
	items, err := c.lex(nodes)
	if err != nil {
		return nil, err
	}
	p := &parser{items: items}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.items) {
		return nil, ErrMalformed
	}
	return e.Simplify(), nil
}

type item struct {
	op string // operator glyph; empty for an operand
	ex expr.Expr
}

func (c *Converter) lex(nodes []node.Node) ([]item, error) {
	var items []item
	for _, n := range nodes {
		t, ok := n.(*node.Token)
		if !ok {
			e, err := c.convertNode(n)
			if err != nil {
				return nil, err
			}
			items = append(items, item{ex: e})
			continue
		}

		switch t.Text {
		case "+":
			items = append(items, item{op: "+"})
		case "-", "−":
			items = append(items, item{op: "-"})
		case "*", "×", "·":
			items = append(items, item{op: "*"})
		case "/", "÷":
			items = append(items, item{op: "/"})
		case "^":
			items = append(items, item{op: "^"})
		case "°":
			items = append(items, item{op: "°"})
		case "rad":
			items = append(items, item{op: "rad"})
		case "=":
			return nil, ErrMalformed
		default:
			lexed, err := c.lexWord(t.Text)
			if err != nil {
				return nil, err
			}
			items = append(items, lexed...)
		}
	}
	return items, nil
}

// lexWord handles number literals and letter runs. Adjacent letters
// are independent variables, so "xy" multiplies x by y. A letter bound
// by an enclosing Σ/Π lexes as its current value.
func (c *Converter) lexWord(text string) ([]item, error) {
	if text == "" {
		return nil, ErrMalformed
	}
	first := rune(text[0])
	if first >= '0' && first <= '9' || first == '.' {
		r, ok := new(big.Rat).SetString(text)
		if !ok || strings.ContainsAny(text, "eE/") {
			return nil, ErrMalformed
		}
		return []item{{ex: expr.FromRat(r)}}, nil
	}

	var items []item
	for _, r := range text {
		if !unicode.IsLetter(r) {
			return nil, ErrMalformed
		}
		name := string(r)
		if bound, ok := c.binds[name]; ok {
			items = append(items, item{ex: bound})
			continue
		}
		items = append(items, item{ex: expr.Sym(name)})
	}
	return items, nil
}

func (c *Converter) convertNode(n node.Node) (expr.Expr, error) {
	switch v := n.(type) {
	case *node.Fraction:
		num, err := c.parse(v.Num)
		if err != nil {
			return nil, err
		}
		den, err := c.parse(v.Den)
		if err != nil {
			return nil, err
		}
		return expr.DivOf(num, den), nil

	case *node.Exponent:
		base, err := c.parse(v.Base)
		if err != nil {
			return nil, err
		}
		pow, err := c.parse(v.Power)
		if err != nil {
			return nil, err
		}
		return expr.PowOf(base, pow), nil

	case *node.Parenthesis:
		return c.parse(v.Content)

	case *node.Trig:
		arg, err := c.parse(v.Arg)
		if err != nil {
			return nil, err
		}
		if v.Fn == "abs" {
			return expr.AbsOf(arg), nil
		}
		fn, ok := expr.TrigByName(v.Fn)
		if !ok {
			return nil, ErrMalformed
		}
		return expr.TrigOf(fn, arg), nil

	case *node.Root:
		return c.convertRoot(v)

	case *node.Log:
		return c.convertLog(v)

	case *node.Permutation:
		return c.convertCounting(v.N, v.R, expr.PermOf)

	case *node.Combination:
		return c.convertCounting(v.N, v.R, expr.CombOf)

	case *node.Derivative:
		return c.convertDerivative(v)

	case *node.Integral:
		return c.convertIntegral(v)

	case *node.Summation:
		return c.convertLoop(v.Variable, v.Lower, v.Upper, v.Body, expr.N(0), expr.SumOf)

	case *node.Product:
		return c.convertLoop(v.Variable, v.Lower, v.Upper, v.Body, expr.N(1), expr.ProdOf)

	case *node.Abs:
		inner, err := c.parse(v.Content)
		if err != nil {
			return nil, err
		}
		return expr.AbsOf(inner), nil

	case *node.Ans:
		if bound, ok := c.ans[v.Index]; ok {
			return bound, nil
		}
		return expr.Sym(fmt.Sprintf("ans%d", v.Index)), nil

	case *node.Constant:
		return constBySymbol(v.Symbol)
	}
	return nil, ErrMalformed
}

func (c *Converter) convertRoot(v *node.Root) (expr.Expr, error) {
	rad, err := c.parse(v.Radicand)
	if err != nil {
		return nil, err
	}
	degree := 2
	if len(v.Index) > 0 {
		idx, err := c.parse(v.Index)
		if err != nil {
			return nil, err
		}
		k, ok := expr.IsInteger(idx)
		if !ok || !k.IsInt64() || k.Int64() < 1 || k.Int64() > 64 {
			return nil, ErrMalformed
		}
		degree = int(k.Int64())
	}
	return expr.RootOf(rad, degree), nil
}

func (c *Converter) convertLog(v *node.Log) (expr.Expr, error) {
	arg, err := c.parse(v.Arg)
	if err != nil {
		return nil, err
	}
	var base expr.Expr = expr.N(10)
	if len(v.Base) > 0 {
		if base, err = c.parse(v.Base); err != nil {
			return nil, err
		}
	}
	return expr.LogOf(base, arg), nil
}

func (c *Converter) convertCounting(nSlot, rSlot []node.Node, build func(n, r expr.Expr) expr.Expr) (expr.Expr, error) {
	n, err := c.parse(nSlot)
	if err != nil {
		return nil, err
	}
	r, err := c.parse(rSlot)
	if err != nil {
		return nil, err
	}
	return build(n, r), nil
}

func (c *Converter) convertDerivative(v *node.Derivative) (expr.Expr, error) {
	name, err := c.boundVar(v.Variable)
	if err != nil {
		return nil, err
	}
	body, err := c.parse(v.Body)
	if err != nil {
		return nil, err
	}
	if len(v.At) == 0 {
		return calculus.Diff(body, name), nil
	}
	at, err := c.parse(v.At)
	if err != nil {
		return nil, err
	}
	return calculus.DiffAt(body, name, at), nil
}

func (c *Converter) convertIntegral(v *node.Integral) (expr.Expr, error) {
	name, err := c.boundVar(v.Variable)
	if err != nil {
		return nil, err
	}
	body, err := c.parse(v.Body)
	if err != nil {
		return nil, err
	}

	if len(v.Lower) == 0 && len(v.Upper) == 0 {
		anti, ok := calculus.Integrate(body, name, c.consts)
		if !ok {
			return nil, ErrMalformed
		}
		return anti, nil
	}
	if len(v.Lower) == 0 || len(v.Upper) == 0 {
		return nil, ErrMalformed
	}

	lower, err := c.parse(v.Lower)
	if err != nil {
		return nil, err
	}
	upper, err := c.parse(v.Upper)
	if err != nil {
		return nil, err
	}
	out, ok := calculus.IntegrateBetween(body, name, lower, upper)
	if !ok {
		return nil, ErrMalformed
	}
	return out, nil
}

// convertLoop enumerates a Σ/Π at the node level, re-converting the
// body once per iteration with the loop variable bound to its current
// value. Converting the body lazily lets a nested loop's bound refer
// to the outer variable. The eager first parse only validates the
// body; its result is discarded.
func (c *Converter) convertLoop(varSlot, lowerSlot, upperSlot, bodySlot []node.Node, identity expr.Expr, combine func(...expr.Expr) expr.Expr) (expr.Expr, error) {
	name, err := c.boundVar(varSlot)
	if err != nil {
		return nil, err
	}
	lower, err := c.parse(lowerSlot)
	if err != nil {
		return nil, err
	}
	upper, err := c.parse(upperSlot)
	if err != nil {
		return nil, err
	}
	if _, err := c.parse(bodySlot); err != nil {
		return nil, err
	}

	prev, had := c.binds[name]
	defer func() {
		if had {
			c.binds[name] = prev
		} else {
			delete(c.binds, name)
		}
	}()
	return calculus.EnumerateRange(lower, upper, identity, combine, func(i *big.Int) (expr.Expr, error) {
		c.binds[name] = expr.NBig(i)
		return c.parse(bodySlot)
	})
}

// boundVar requires a slot to hold exactly one variable name.
func (c *Converter) boundVar(slot []node.Node) (string, error) {
	e, err := c.parse(slot)
	if err != nil {
		return "", err
	}
	v, ok := e.(*expr.Variable)
	if !ok {
		return "", ErrMalformed
	}
	return v.Name, nil
}

func constBySymbol(symbol string) (expr.Expr, error) {
	switch symbol {
	case "π", "pi":
		return expr.Pi(), nil
	case "e":
		return expr.E(), nil
	case "φ", "phi":
		return &expr.Constant{Tag: expr.ConstPhi}, nil
	case "ε0", "eps0":
		return &expr.Constant{Tag: expr.ConstEps0}, nil
	case "μ0", "mu0":
		return &expr.Constant{Tag: expr.ConstMu0}, nil
	case "c0":
		return &expr.Constant{Tag: expr.ConstC0}, nil
	case "i":
		return expr.Imaginary(), nil
	}
	return nil, ErrMalformed
}
