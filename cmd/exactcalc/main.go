package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/njchilds90/exactcalc/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "exactcalc",
	Short: "Exact symbolic calculator",
	Long: "exactcalc evaluates calculator input exactly: fractions stay fractions, " +
		"radicals stay radicals, and equations solve to closed forms.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.exactcalc.yaml)")
	rootCmd.PersistentFlags().Int("precision", 10, "Significant digits for approximations")
	rootCmd.PersistentFlags().String("format", "automatic", "Display mode: plain | automatic | scientific")
	rootCmd.PersistentFlags().String("history", "", "History database path (\"off\" disables)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("exactcalc version %s\n", version))

	rootCmd.AddCommand(cli.NewEvalCmd())
	rootCmd.AddCommand(cli.NewReplCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())
}
