package format

import (
	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/node"
)

// ExactResult is the outcome of evaluating one input line.
//
// Exactly one shape applies: Empty for malformed or blank input, a
// Solutions slice (possibly nil for "no solution") for equation input,
// or a Value with its rendered Nodes and Approx string for expression
// input.
type ExactResult struct {
	// Value is the simplified exact expression, nil for equation and
	// empty results.
	Value expr.Expr
	// Nodes is the structured rendering of Value for the editor.
	Nodes []node.Node
	// Approx is Value's numeric display string, empty when the value
	// contains unresolved symbols.
	Approx string
	// LaTeX is Value rendered for typeset output.
	LaTeX string
	// Solutions holds "name = value" strings for equation input. A nil
	// slice with Solved set means the system has no solution.
	Solutions []string
	// Solved reports that the input was treated as an equation.
	Solved bool
	// Empty reports blank or malformed input.
	Empty bool
}
