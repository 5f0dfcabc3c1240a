package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the "history" subcommand with its "clear"
// child.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded results",
		Args:  cobra.NoArgs,
		RunE:  runHistoryList,
	}
	cmd.Flags().Int("limit", 0, "Show only the most recent entries")

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded result",
		Args:  cobra.NoArgs,
		RunE:  runHistoryClear,
	})
	return cmd
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "history is disabled")
		return nil
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	for _, e := range entries {
		approx := e.Approx
		if approx == "" {
			approx = "-"
		}
		fmt.Fprintf(w, "ans%d\t%s\t%s\t%s\n", e.Seq, e.Input, e.Value, approx)
	}
	return w.Flush()
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	store, err := a.openHistory()
	if err != nil {
		return err
	}
	if store == nil {
		return nil
	}
	defer store.Close()
	return store.Clear(cmd.Context())
}
