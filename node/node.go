// Package node defines the structural tree exchanged with the
// expression editor. Nodes own lists of child nodes rather than raw
// text; inline token runs (digits, letters, operator glyphs, °/rad
// suffixes) appear as adjacent Token leaves inside a line, and Newline
// separates independent equation lines.
package node

// Node is the closed interface over editor node variants.
type Node interface {
	nodeType() string
}

// Token is an inline leaf: a number literal, a run of variable
// letters, an operator glyph (+ − × ÷ ^ =), or an angle suffix
// (° or rad).
type Token struct{ Text string }

// Fraction is a two-slot vertical fraction.
type Fraction struct{ Num, Den []Node }

// Exponent attaches a superscript power to a base.
type Exponent struct{ Base, Power []Node }

// Parenthesis wraps grouped content.
type Parenthesis struct{ Content []Node }

// Trig applies a named trig/hyperbolic function (plus abs, which the
// editor renders with the same one-argument shape).
type Trig struct {
	Fn  string
	Arg []Node
}

// Root is a radical; an empty Index means a square root.
type Root struct{ Index, Radicand []Node }

// Log is a logarithm; an empty Base means base 10.
type Log struct{ Base, Arg []Node }

// Permutation is nPr.
type Permutation struct{ N, R []Node }

// Combination is nCr.
type Combination struct{ N, R []Node }

// Derivative is d/d(variable) of body, optionally evaluated at a
// point.
type Derivative struct {
	Variable []Node
	At       []Node // empty for the symbolic derivative
	Body     []Node
}

// Integral integrates body with respect to variable; empty bounds mean
// an indefinite integral.
type Integral struct {
	Variable     []Node
	Lower, Upper []Node
	Body         []Node
}

// Summation is Σ over an integer bound range.
type Summation struct {
	Variable     []Node
	Lower, Upper []Node
	Body         []Node
}

// Product is Π over an integer bound range.
type Product struct {
	Variable     []Node
	Lower, Upper []Node
	Body         []Node
}

// Abs is |content|.
type Abs struct{ Content []Node }

// Ans references a previously computed result cell.
type Ans struct{ Index int }

// Constant is a named symbolic constant (π, e, φ, ε0, μ0, c0).
type Constant struct{ Symbol string }

// Newline separates equation lines.
type Newline struct{}

func (*Token) nodeType() string       { return "token" }
func (*Fraction) nodeType() string    { return "fraction" }
func (*Exponent) nodeType() string    { return "exponent" }
func (*Parenthesis) nodeType() string { return "parenthesis" }
func (*Trig) nodeType() string        { return "trig" }
func (*Root) nodeType() string        { return "root" }
func (*Log) nodeType() string         { return "log" }
func (*Permutation) nodeType() string { return "permutation" }
func (*Combination) nodeType() string { return "combination" }
func (*Derivative) nodeType() string  { return "derivative" }
func (*Integral) nodeType() string    { return "integral" }
func (*Summation) nodeType() string   { return "summation" }
func (*Product) nodeType() string     { return "product" }
func (*Abs) nodeType() string         { return "abs" }
func (*Ans) nodeType() string         { return "ans" }
func (*Constant) nodeType() string    { return "constant" }
func (*Newline) nodeType() string     { return "newline" }

// SplitLines cuts a node list at Newline markers, dropping empty
// segments produced by trailing newlines.
func SplitLines(nodes []Node) [][]Node {
	var lines [][]Node
	cur := []Node{}
	for _, n := range nodes {
		if _, ok := n.(*Newline); ok {
			lines = append(lines, cur)
			cur = []Node{}
			continue
		}
		cur = append(cur, n)
	}
	lines = append(lines, cur)
	// Trim trailing empties but keep at least one line.
	for len(lines) > 1 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Depth returns the maximum structural nesting depth of a node list.
func Depth(nodes []Node) int {
	max := 0
	for _, n := range nodes {
		d := 0
		switch v := n.(type) {
		case *Fraction:
			d = maxDepth(v.Num, v.Den)
		case *Exponent:
			d = maxDepth(v.Base, v.Power)
		case *Parenthesis:
			d = Depth(v.Content)
		case *Trig:
			d = Depth(v.Arg)
		case *Root:
			d = maxDepth(v.Index, v.Radicand)
		case *Log:
			d = maxDepth(v.Base, v.Arg)
		case *Permutation:
			d = maxDepth(v.N, v.R)
		case *Combination:
			d = maxDepth(v.N, v.R)
		case *Derivative:
			d = maxDepth(v.Variable, v.At, v.Body)
		case *Integral:
			d = maxDepth(v.Variable, v.Lower, v.Upper, v.Body)
		case *Summation:
			d = maxDepth(v.Variable, v.Lower, v.Upper, v.Body)
		case *Product:
			d = maxDepth(v.Variable, v.Lower, v.Upper, v.Body)
		case *Abs:
			d = Depth(v.Content)
		}
		if d+1 > max {
			max = d + 1
		}
	}
	return max
}

func maxDepth(lists ...[]Node) int {
	max := 0
	for _, l := range lists {
		if d := Depth(l); d > max {
			max = d
		}
	}
	return max
}
