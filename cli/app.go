package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/njchilds90/exactcalc"
	"github.com/njchilds90/exactcalc/expr"
	"github.com/njchilds90/exactcalc/format"
	"github.com/njchilds90/exactcalc/history"
)

// app bundles the resolved configuration, logger, and engine shared by
// every command. Flag values override the config file.
type app struct {
	cfg    Config
	engine *exactcalc.Engine
	log    *slog.Logger
}

func newApp(cmd *cobra.Command) (*app, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("precision") {
		cfg.Precision, _ = cmd.Flags().GetInt("precision")
	}
	if cmd.Flags().Changed("format") {
		raw, _ := cmd.Flags().GetString("format")
		mode, err := format.ParseMode(raw)
		if err != nil {
			return nil, err
		}
		cfg.Format = mode
	}
	if cmd.Flags().Changed("history") {
		cfg.History, _ = cmd.Flags().GetString("history")
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &app{
		cfg:    cfg,
		engine: exactcalc.New(cfg.Display(), log),
		log:    log,
	}, nil
}

// openHistory opens the configured history store; "off" disables
// persistence and both results come back nil.
func (a *app) openHistory() (*history.Store, error) {
	if a.cfg.History == "off" || a.cfg.History == "" {
		return nil, nil
	}
	store, err := history.Open(a.cfg.History)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// bindings rebuilds the ans map by re-evaluating stored inputs in
// order, so ans references inside later entries resolve the same way
// they did originally.
func (a *app) bindings(ctx context.Context, store *history.Store) (map[int]expr.Expr, error) {
	if store == nil {
		return map[int]expr.Expr{}, nil
	}
	entries, err := store.List(ctx, 0)
	if err != nil {
		return nil, err
	}

	ans := make(map[int]expr.Expr, len(entries))
	for _, e := range entries {
		nodes, err := Parse(e.Input)
		if err != nil {
			a.log.Warn("skipping unreadable history entry", "seq", e.Seq, "error", err)
			continue
		}
		res := a.engine.Evaluate(nodes, ans)
		if res.Value != nil {
			ans[e.Seq] = res.Value
		}
	}
	return ans, nil
}
