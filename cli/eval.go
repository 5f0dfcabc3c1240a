package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/exactcalc/format"
	"github.com/njchilds90/exactcalc/history"
)

// NewEvalCmd creates the "eval" subcommand.
func NewEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate one expression or equation system exactly",
		Long: "Evaluate calculator text exactly. Lines separated by \";\" that " +
			"contain \"=\" are solved as a simultaneous system.",
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
	cmd.Flags().Bool("no-save", false, "Do not record the result in history")
	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	noSave, _ := cmd.Flags().GetBool("no-save")

	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	ctx := cmd.Context()
	ans, err := a.bindings(ctx, store)
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	nodes, err := Parse(input)
	if err != nil {
		a.log.Debug("parse failed", "input", input, "error", err)
		return exitError(exitMalformed, "malformed input")
	}

	res := a.engine.Evaluate(nodes, ans)
	if err := printResult(cmd.OutOrStdout(), res); err != nil {
		return err
	}

	if store != nil && !noSave && res.Value != nil {
		_, err := store.Append(ctx, history.Entry{
			Input:  input,
			Value:  res.Value.String(),
			Approx: res.Approx,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// printResult writes one evaluation outcome. Malformed and no-solution
// results become distinct exit codes so scripts can tell them apart.
func printResult(out io.Writer, res format.ExactResult) error {
	switch {
	case res.Empty:
		return exitError(exitMalformed, "malformed input")

	case res.Solved:
		if res.Solutions == nil {
			return exitError(exitNoSolution, "no solution")
		}
		for _, s := range res.Solutions {
			fmt.Fprintln(out, s)
		}
		return nil
	}

	fmt.Fprintln(out, res.Value.String())
	if res.Approx != "" && res.Approx != res.Value.String() {
		fmt.Fprintf(out, "≈ %s\n", res.Approx)
	}
	return nil
}
