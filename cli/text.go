// Package cli implements the exactcalc command surface: one-shot
// evaluation, an interactive session, and history inspection.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/njchilds90/exactcalc/node"
)

// Parse turns plain calculator text into the structural node tree the
// engine evaluates. Function words take parenthesized comma-separated
// arguments; ";" and newlines separate equation lines. The text form
// is a convenience shim over the node model, so anything expressible
// here is a strict subset of what the editor tree can carry.
func Parse(text string) ([]node.Node, error) {
	s := &scanner{src: []rune(text)}
	nodes, err := s.parseNodes(0)
	if err != nil {
		return nil, err
	}
	if !s.done() {
		return nil, fmt.Errorf("cli: unexpected %q at offset %d", s.peek(), s.pos)
	}
	return nodes, nil
}

type scanner struct {
	src []rune
	pos int
}

func (s *scanner) done() bool   { return s.pos >= len(s.src) }
func (s *scanner) peek() rune   { return s.src[s.pos] }
func (s *scanner) advance() rune {
	r := s.src[s.pos]
	s.pos++
	return r
}

// parseNodes consumes nodes until end of input or, when depth > 0, an
// unmatched ")" or "," that closes the current slot.
func (s *scanner) parseNodes(depth int) ([]node.Node, error) {
	nodes := []node.Node{}
	for !s.done() {
		r := s.peek()
		switch {
		case r == ')' || r == ',':
			if depth == 0 {
				return nil, fmt.Errorf("cli: unexpected %q at offset %d", r, s.pos)
			}
			return nodes, nil

		case r == '\n' || r == ';':
			s.advance()
			if depth > 0 {
				return nil, fmt.Errorf("cli: line break inside arguments at offset %d", s.pos-1)
			}
			nodes = append(nodes, &node.Newline{})

		case r == ' ' || r == '\t' || r == '\r':
			s.advance()

		case r == '(':
			s.advance()
			inner, err := s.parseNodes(depth + 1)
			if err != nil {
				return nil, err
			}
			if err := s.expect(')'); err != nil {
				return nil, err
			}
			nodes = append(nodes, &node.Parenthesis{Content: inner})

		case r == '|':
			s.advance()
			inner, err := s.parseUntilBar()
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, &node.Abs{Content: inner})

		case strings.ContainsRune("+-−*×·/÷^=°", r):
			s.advance()
			nodes = append(nodes, &node.Token{Text: string(r)})

		case r >= '0' && r <= '9' || r == '.':
			nodes = append(nodes, &node.Token{Text: s.number()})

		case r == 'π':
			s.advance()
			nodes = append(nodes, &node.Constant{Symbol: "π"})

		case unicode.IsLetter(r):
			n, err := s.word(depth)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n...)

		default:
			return nil, fmt.Errorf("cli: unexpected %q at offset %d", r, s.pos)
		}
	}
	if depth > 0 {
		return nil, fmt.Errorf("cli: unterminated group")
	}
	return nodes, nil
}

// parseUntilBar reads an absolute-value body up to the closing "|".
// Nested bars are not supported in text form; the editor tree handles
// those directly.
func (s *scanner) parseUntilBar() ([]node.Node, error) {
	start := s.pos
	for !s.done() {
		if s.peek() == '|' {
			inner := &scanner{src: s.src[start:s.pos]}
			nodes, err := inner.parseNodes(0)
			if err != nil {
				return nil, err
			}
			s.advance()
			return nodes, nil
		}
		s.advance()
	}
	return nil, fmt.Errorf("cli: unterminated |")
}

func (s *scanner) number() string {
	start := s.pos
	for !s.done() {
		r := s.peek()
		if r >= '0' && r <= '9' || r == '.' {
			s.advance()
			continue
		}
		break
	}
	return string(s.src[start:s.pos])
}

func (s *scanner) ident() string {
	start := s.pos
	for !s.done() {
		r := s.peek()
		if unicode.IsLetter(r) || r >= '0' && r <= '9' {
			s.advance()
			continue
		}
		break
	}
	return string(s.src[start:s.pos])
}

// word resolves an identifier: a function call, a named constant, an
// answer reference, an angle suffix, or a plain variable run.
func (s *scanner) word(depth int) ([]node.Node, error) {
	name := s.ident()

	if !s.done() && s.peek() == '(' {
		return s.call(name, depth)
	}

	switch name {
	case "pi":
		return []node.Node{&node.Constant{Symbol: "π"}}, nil
	case "e":
		return []node.Node{&node.Constant{Symbol: "e"}}, nil
	case "phi":
		return []node.Node{&node.Constant{Symbol: "φ"}}, nil
	case "eps0":
		return []node.Node{&node.Constant{Symbol: "ε0"}}, nil
	case "mu0":
		return []node.Node{&node.Constant{Symbol: "μ0"}}, nil
	case "deg":
		return []node.Node{&node.Token{Text: "°"}}, nil
	case "rad":
		return []node.Node{&node.Token{Text: "rad"}}, nil
	}

	if idx, ok := strings.CutPrefix(name, "ans"); ok && idx != "" {
		n, err := strconv.Atoi(idx)
		if err == nil {
			return []node.Node{&node.Ans{Index: n}}, nil
		}
	}

	// A bare letter run; digits may not ride along with it.
	for _, r := range name {
		if r >= '0' && r <= '9' {
			return nil, fmt.Errorf("cli: bad identifier %q", name)
		}
	}
	return []node.Node{&node.Token{Text: name}}, nil
}

// call maps a function word plus its argument slots onto a structural
// node. Arities follow the editor shapes: log takes an optional base,
// diff an optional evaluation point, int optional bounds.
func (s *scanner) call(name string, depth int) ([]node.Node, error) {
	args, err := s.args(depth)
	if err != nil {
		return nil, err
	}

	one := func() ([]node.Node, bool) {
		if len(args) == 1 {
			return args[0], true
		}
		return nil, false
	}

	switch name {
	case "sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "tanh":
		if arg, ok := one(); ok {
			return []node.Node{&node.Trig{Fn: name, Arg: arg}}, nil
		}
	case "abs":
		if arg, ok := one(); ok {
			return []node.Node{&node.Abs{Content: arg}}, nil
		}
	case "sqrt":
		if arg, ok := one(); ok {
			return []node.Node{&node.Root{Radicand: arg}}, nil
		}
	case "root":
		if len(args) == 2 {
			return []node.Node{&node.Root{Index: args[0], Radicand: args[1]}}, nil
		}
	case "ln":
		if arg, ok := one(); ok {
			return []node.Node{&node.Log{Base: []node.Node{&node.Constant{Symbol: "e"}}, Arg: arg}}, nil
		}
	case "log":
		switch len(args) {
		case 1:
			return []node.Node{&node.Log{Arg: args[0]}}, nil
		case 2:
			return []node.Node{&node.Log{Base: args[0], Arg: args[1]}}, nil
		}
	case "perm":
		if len(args) == 2 {
			return []node.Node{&node.Permutation{N: args[0], R: args[1]}}, nil
		}
	case "comb":
		if len(args) == 2 {
			return []node.Node{&node.Combination{N: args[0], R: args[1]}}, nil
		}
	case "diff":
		switch len(args) {
		case 2:
			return []node.Node{&node.Derivative{Variable: args[0], Body: args[1]}}, nil
		case 3:
			return []node.Node{&node.Derivative{Variable: args[0], At: args[1], Body: args[2]}}, nil
		}
	case "int":
		switch len(args) {
		case 2:
			return []node.Node{&node.Integral{Variable: args[0], Body: args[1]}}, nil
		case 4:
			return []node.Node{&node.Integral{Variable: args[0], Lower: args[1], Upper: args[2], Body: args[3]}}, nil
		}
	case "sum":
		if len(args) == 4 {
			return []node.Node{&node.Summation{Variable: args[0], Lower: args[1], Upper: args[2], Body: args[3]}}, nil
		}
	case "prod":
		if len(args) == 4 {
			return []node.Node{&node.Product{Variable: args[0], Lower: args[1], Upper: args[2], Body: args[3]}}, nil
		}
	default:
		return nil, fmt.Errorf("cli: unknown function %q", name)
	}
	return nil, fmt.Errorf("cli: wrong arguments for %s", name)
}

func (s *scanner) args(depth int) ([][]node.Node, error) {
	if err := s.expect('('); err != nil {
		return nil, err
	}
	var args [][]node.Node
	for {
		arg, err := s.parseNodes(depth + 1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if s.done() {
			return nil, fmt.Errorf("cli: unterminated call")
		}
		if s.peek() == ',' {
			s.advance()
			continue
		}
		break
	}
	if err := s.expect(')'); err != nil {
		return nil, err
	}
	return args, nil
}

func (s *scanner) expect(r rune) error {
	if s.done() || s.peek() != r {
		return fmt.Errorf("cli: expected %q at offset %d", r, s.pos)
	}
	s.advance()
	return nil
}
