package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/preflop-equity/internal/config"
	"github.com/lox/preflop-equity/internal/equity"
	"github.com/lox/preflop-equity/internal/fileutil"
	"github.com/lox/preflop-equity/internal/progress"
	"github.com/lox/preflop-equity/internal/report"
	"github.com/lox/preflop-equity/internal/tui"
)

// RunCmd simulates equities. Flags that are set override the config file.
type RunCmd struct {
	Seats     *int    `short:"s" help:"Players dealt in per trial (1-23)"`
	Trials    *int    `short:"n" help:"Number of trials to simulate"`
	Workers   *int    `short:"w" help:"Worker goroutines (0 = one per CPU)"`
	Seed      *int64  `help:"RNG seed (0 for random)"`
	Evaluator *string `short:"e" help:"Showdown evaluator: hankin, native"`
	Format    *string `short:"f" help:"Report format: csv, go, grid, json, list"`
	Output    *string `short:"o" help:"Write the report to a file instead of stdout"`
	Precision *int    `help:"Digits after the decimal point"`

	Limit   int    `help:"Rows shown by the list format (0 = all)"`
	Package string `default:"preflop" help:"Package name for the go format"`
	TUI     bool   `name:"tui" help:"Show a live progress bar"`
	Verbose bool   `help:"Log progress while simulating"`
}

func (cmd *RunCmd) apply(cfg *config.Config) {
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&cfg.Simulation.Seats, cmd.Seats)
	set(&cfg.Simulation.Trials, cmd.Trials)
	set(&cfg.Simulation.Workers, cmd.Workers)
	set(&cfg.Output.Precision, cmd.Precision)
	if cmd.Seed != nil {
		cfg.Simulation.Seed = *cmd.Seed
	}
	if cmd.Evaluator != nil {
		cfg.Simulation.Evaluator = *cmd.Evaluator
	}
	if cmd.Format != nil {
		cfg.Output.Format = *cmd.Format
	}
	if cmd.Output != nil {
		cfg.Output.File = *cmd.Output
	}
}

func (cmd *RunCmd) Run(g *Globals, env *Env) error {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cmd.apply(cfg)
	if g.NoColor {
		cfg.Output.Color = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := log.ParseLevel(cfg.Output.LogLevel)
	logger := newLogger(env.Stderr, level, g.Debug)

	ec := cfg.Equity()
	ec.Logger = logger.WithPrefix("equity")
	tracker := progress.NewTracker(int64(ec.Trials))
	ec.Progress = tracker

	var table *equity.Table
	simulate := func(ctx context.Context) error {
		var err error
		table, err = equity.Aggregate(ctx, ec)
		return err
	}

	logger.Info("Simulating",
		"seats", ec.Seats,
		"trials", ec.Trials,
		"evaluator", ec.EvaluatorName)

	switch {
	case cmd.TUI:
		title := fmt.Sprintf("Simulating %d-player hands", ec.Seats)
		err = tui.Run(env.Context, env.Stderr, title, tracker, simulate)
	case cmd.Verbose:
		interval, _ := cfg.ProgressInterval()
		reporter := progress.NewReporter(tracker, logger.WithPrefix("progress"), env.Clock, interval)
		ctx, stop := context.WithCancel(env.Context)
		go reporter.Run(ctx)
		err = simulate(env.Context)
		stop()
	default:
		err = simulate(env.Context)
	}

	if table == nil {
		return err
	}
	if err != nil {
		logger.Warn("Workers failed, writing partial results", "error", err)
	}

	opts := report.Options{
		Format:    cfg.Output.Format,
		Precision: cfg.Output.Precision,
		Limit:     cmd.Limit,
		Package:   cmd.Package,
	}
	if werr := cmd.writeReport(cfg, table, opts, env.Stdout); werr != nil {
		return errors.Join(err, werr)
	}

	logger.Info("Simulation complete",
		"trials", table.Trials,
		"seed", table.Seed,
		"coverage", table.Coverage(),
		"elapsed", table.Elapsed)
	return err
}

func (cmd *RunCmd) writeReport(cfg *config.Config, table *equity.Table, opts report.Options, stdout io.Writer) error {
	if cfg.Output.File == "" {
		opts.Profile = colorProfile(cfg.Output.Color, stdout)
		return report.Write(stdout, table, opts)
	}

	opts.Profile = termenv.Ascii
	if cfg.Output.Color == config.ColorAlways {
		opts.Profile = termenv.ANSI256
	}
	err := fileutil.WriteAtomic(cfg.Output.File, 0o644, func(w io.Writer) error {
		return report.Write(w, table, opts)
	})
	if err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.File, err)
	}
	return nil
}

// colorProfile picks the profile for w: auto follows the terminal and the
// NO_COLOR/CLICOLOR_FORCE environment.
func colorProfile(mode string, w io.Writer) termenv.Profile {
	switch mode {
	case config.ColorNever:
		return termenv.Ascii
	case config.ColorAlways:
		return termenv.ANSI256
	default:
		return termenv.NewOutput(w).EnvColorProfile()
	}
}
