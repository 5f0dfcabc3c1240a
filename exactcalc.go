// Package exactcalc evaluates structured calculator input exactly:
// expression lines simplify to canonical symbolic values with a
// numeric approximation, and lines joined by "=" solve as equations.
package exactcalc

import (
	"io"
	"log/slog"

	"github.com/njchilds90/exactcalc/bridge"
	"github.com/njchilds90/exactcalc/calculus"
	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/format"
	"github.com/njchilds90/exactcalc/node"
	"github.com/njchilds90/exactcalc/solve"
)

// Engine evaluates editor input under a fixed display configuration.
// It holds no per-call state; answer bindings travel with each call.
type Engine struct {
	cfg format.Config
	log *slog.Logger
}

// New builds an engine. A nil logger discards evaluation traces.
func New(cfg format.Config, log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(127)}))
	}
	return &Engine{cfg: cfg, log: log}
}

// Config returns the engine's display configuration.
func (g *Engine) Config() format.Config { return g.cfg }

// Evaluate processes one editor buffer. When any line carries an "="
// the whole buffer is treated as a simultaneous system; otherwise the
// buffer must be a single expression line. Malformed input of either
// shape yields an Empty result, never an error or panic.
//
// Integration-constant numbering restarts at c0 on every call.
func (g *Engine) Evaluate(input []node.Node, ans map[int]expr.Expr) format.ExactResult {
	consts := &calculus.ConstAlloc{}
	conv := bridge.NewConverter(ans, consts)
	lines := node.SplitLines(input)

	if hasEquation(lines) {
		return g.solveSystem(conv, lines)
	}
	if len(lines) != 1 || len(lines[0]) == 0 {
		return format.ExactResult{Empty: true}
	}

	value, err := conv.Convert(lines[0])
	if err != nil {
		g.log.Debug("discarding malformed input", "error", err)
		return format.ExactResult{Empty: true}
	}

	out := format.ExactResult{
		Value: value,
		Nodes: bridge.Render(value, g.cfg),
		LaTeX: value.LaTeX(),
	}
	if v, ok := value.Approx(); ok {
		out.Approx = format.Float(v, g.cfg)
	}
	g.log.Debug("evaluated expression", "value", value.String(), "approx", out.Approx)
	return out
}

// solveSystem converts every line into an equation and hands the set
// to the solver. A nil solution list with Solved set distinguishes
// "no solution" from malformed input.
func (g *Engine) solveSystem(conv *bridge.Converter, lines [][]node.Node) format.ExactResult {
	eqs := make([]solve.Equation, 0, len(lines))
	for _, line := range lines {
		segs := bridge.SplitEquals(line)
		if len(segs) != 2 {
			return format.ExactResult{Empty: true}
		}
		lhs, err := conv.Convert(segs[0])
		if err != nil {
			return format.ExactResult{Empty: true}
		}
		rhs, err := conv.Convert(segs[1])
		if err != nil {
			return format.ExactResult{Empty: true}
		}
		eqs = append(eqs, solve.Equation{LHS: lhs, RHS: rhs})
	}

	sols := solve.Solve(eqs)
	g.log.Debug("solved system", "equations", len(eqs), "solutions", len(sols))
	return format.ExactResult{Solved: true, Solutions: sols}
}

func hasEquation(lines [][]node.Node) bool {
	for _, line := range lines {
		if len(bridge.SplitEquals(line)) > 1 {
			return true
		}
	}
	return false
}
