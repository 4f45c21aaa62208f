// Package config loads simulation settings from an HCL file.
//
//	simulation {
//	  seats     = 6
//	  trials    = 1000000
//	  workers   = 8
//	  seed      = 42
//	  evaluator = "native"
//	}
//
//	output {
//	  format    = "grid"
//	  file      = "equity.txt"
//	  precision = 3
//	  color     = "auto"
//	  log_level = "info"
//	  progress_interval = "2s"
//	}
//
// Both blocks are optional and every attribute has a default.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/preflop-equity/internal/equity"
	"github.com/lox/preflop-equity/internal/report"
	"github.com/lox/preflop-equity/internal/showdown"
)

// Defaults.
const (
	DefaultSeats            = 2
	DefaultTrials           = 100000
	DefaultEvaluator        = showdown.Native
	DefaultFormat           = report.FormatGrid
	DefaultPrecision        = 3
	DefaultColor            = ColorAuto
	DefaultLogLevel         = "info"
	DefaultProgressInterval = "2s"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the complete simulation configuration.
type Config struct {
	Simulation SimulationSettings
	Output     OutputSettings
}

// SimulationSettings controls the Monte Carlo run.
type SimulationSettings struct {
	Seats     int    `hcl:"seats,optional"`
	Trials    int    `hcl:"trials,optional"`
	Workers   int    `hcl:"workers,optional"` // 0 uses every CPU
	Seed      int64  `hcl:"seed,optional"`    // 0 picks a random seed
	Evaluator string `hcl:"evaluator,optional"`
	BatchSize int    `hcl:"batch_size,optional"`
}

// OutputSettings controls how results and logs are written.
type OutputSettings struct {
	Format           string `hcl:"format,optional"`
	File             string `hcl:"file,optional"`
	Precision        int    `hcl:"precision,optional"`
	Color            string `hcl:"color,optional"`
	LogLevel         string `hcl:"log_level,optional"`
	ProgressInterval string `hcl:"progress_interval,optional"`
}

// fileConfig mirrors Config with optional blocks.
type fileConfig struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Output     *OutputSettings     `hcl:"output,block"`
}

// Default returns the default configuration.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse reads configuration from HCL source. filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var fc fileConfig
	if diags := gohcl.DecodeBody(body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := &Config{}
	if fc.Simulation != nil {
		config.Simulation = *fc.Simulation
	}
	if fc.Output != nil {
		config.Output = *fc.Output
	}
	config.ApplyDefaults()
	return config, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Simulation.Seats == 0 {
		c.Simulation.Seats = DefaultSeats
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = DefaultTrials
	}
	if c.Simulation.Evaluator == "" {
		c.Simulation.Evaluator = DefaultEvaluator
	}
	if c.Simulation.BatchSize == 0 {
		c.Simulation.BatchSize = equity.DefaultBatchSize
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Precision == 0 {
		c.Output.Precision = DefaultPrecision
	}
	if c.Output.Color == "" {
		c.Output.Color = DefaultColor
	}
	if c.Output.LogLevel == "" {
		c.Output.LogLevel = DefaultLogLevel
	}
	if c.Output.ProgressInterval == "" {
		c.Output.ProgressInterval = DefaultProgressInterval
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	s := c.Simulation
	if s.Seats < equity.MinSeats || s.Seats > equity.MaxSeats {
		return fmt.Errorf("seats must be between %d and %d, got %d", equity.MinSeats, equity.MaxSeats, s.Seats)
	}
	if s.Trials < 1 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	}
	if s.BatchSize < 1 {
		return fmt.Errorf("batch_size must be positive, got %d", s.BatchSize)
	}
	if !slices.Contains(showdown.Names(), strings.ToLower(s.Evaluator)) {
		return fmt.Errorf("unknown evaluator %q (available: %s)", s.Evaluator, strings.Join(showdown.Names(), ", "))
	}

	o := c.Output
	if !slices.Contains(report.Formats(), o.Format) {
		return fmt.Errorf("unknown output format %q (available: %s)", o.Format, strings.Join(report.Formats(), ", "))
	}
	if o.Precision < 1 || o.Precision > 6 {
		return fmt.Errorf("precision must be between 1 and 6, got %d", o.Precision)
	}
	switch o.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %q, %q or %q, got %q", ColorAuto, ColorAlways, ColorNever, o.Color)
	}
	if _, err := log.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if _, err := c.ProgressInterval(); err != nil {
		return err
	}
	return nil
}

// ProgressInterval returns the parsed progress_interval.
func (c *Config) ProgressInterval() (time.Duration, error) {
	d, err := time.ParseDuration(c.Output.ProgressInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid progress_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("progress_interval must be positive, got %s", d)
	}
	return d, nil
}

// Equity returns the simulation settings as an equity run configuration.
// Logger and Progress are left for the caller.
func (c *Config) Equity() equity.Config {
	return equity.Config{
		Seats:         c.Simulation.Seats,
		Trials:        c.Simulation.Trials,
		Workers:       c.Simulation.Workers,
		Seed:          c.Simulation.Seed,
		EvaluatorName: strings.ToLower(c.Simulation.Evaluator),
		BatchSize:     c.Simulation.BatchSize,
	}
}
