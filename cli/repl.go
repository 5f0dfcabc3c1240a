package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/exactcalc/history"
)

// NewReplCmd creates the interactive "repl" subcommand.
func NewReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive session",
		Long: "Read expressions line by line. Each result is bound to the next " +
			"ans index; \"exit\" or end of input leaves the session.",
		Args: cobra.NoArgs,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

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
	next := 0
	for seq := range ans {
		if seq >= next {
			next = seq + 1
		}
	}

	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "» ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		nodes, err := Parse(line)
		if err != nil {
			fmt.Fprintln(out, "malformed input")
			continue
		}

		res := a.engine.Evaluate(nodes, ans)
		switch {
		case res.Empty:
			fmt.Fprintln(out, "malformed input")
			continue
		case res.Solved:
			if res.Solutions == nil {
				fmt.Fprintln(out, "no solution")
			}
			for _, s := range res.Solutions {
				fmt.Fprintln(out, s)
			}
			continue
		}

		fmt.Fprintf(out, "ans%d = %s\n", next, res.Value.String())
		if res.Approx != "" && res.Approx != res.Value.String() {
			fmt.Fprintf(out, "     ≈ %s\n", res.Approx)
		}
		ans[next] = res.Value
		next++

		if store != nil {
			if _, err := store.Append(ctx, history.Entry{
				Input:  line,
				Value:  res.Value.String(),
				Approx: res.Approx,
			}); err != nil {
				a.log.Warn("history append failed", "error", err)
			}
		}
	}
}
