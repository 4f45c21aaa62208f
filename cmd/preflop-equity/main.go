package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string `short:"c" type:"path" default:"preflop-equity.hcl" help:"HCL config file (a missing file uses defaults)"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `name:"no-color" help:"Disable coloured output"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Run      RunCmd           `cmd:"" help:"Simulate win probabilities for every starting hand"`
	Classes  ClassesCmd       `cmd:"" help:"List the 169 starting-hand classes"`
	Classify ClassifyCmd      `cmd:"" help:"Print the class of two hole cards"`
}

// Env carries the process environment into commands.
type Env struct {
	Context context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Clock   quartz.Clock
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("preflop-equity"),
		kong.Description("Monte Carlo win probabilities for the 169 Texas Hold'em starting hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := newLogger(os.Stderr, log.InfoLevel, cli.Debug)
	env := &Env{
		Context: setupSignalHandler(logger),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Clock:   quartz.NewReal(),
	}
	err := ctx.Run(&cli.Globals, env)
	ctx.FatalIfErrorf(err)
}

func newLogger(w io.Writer, level log.Level, debug bool) *log.Logger {
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}
