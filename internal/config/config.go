package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file looked up in the working directory
const DefaultFile = "equity.hcl"

// Config represents the complete equity configuration
type Config struct {
	Simulation SimulationSettings
	Log        LogSettings
	Output     OutputSettings
}

// fileConfig mirrors Config with every block optional
type fileConfig struct {
	Simulation *fileSimulation `hcl:"simulation,block"`
	Log        *LogSettings    `hcl:"log,block"`
	Output     *OutputSettings `hcl:"output,block"`
}

// SimulationSettings controls the Monte Carlo run
type SimulationSettings struct {
	Hand1   string `hcl:"hand1,optional"`
	Hand2   string `hcl:"hand2,optional"`
	Trials  int    `hcl:"trials,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// fileSimulation keeps trials nil when the attribute is absent so an explicit 0 is rejected
type fileSimulation struct {
	Hand1   string `hcl:"hand1,optional"`
	Hand2   string `hcl:"hand2,optional"`
	Trials  *int   `hcl:"trials,optional"`
	Workers int    `hcl:"workers,optional"`
	Seed    int64  `hcl:"seed,optional"`
}

// LogSettings contains logging configuration
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// OutputSettings controls where results go
type OutputSettings struct {
	JSON    bool   `hcl:"json,optional"`
	File    string `hcl:"file,optional"`
	History string `hcl:"history,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Simulation: SimulationSettings{
			Hand1:  "ASAD",
			Hand2:  "2H7S",
			Trials: 100000,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if sim := raw.Simulation; sim != nil {
		config.Simulation.Hand1 = sim.Hand1
		config.Simulation.Hand2 = sim.Hand2
		config.Simulation.Workers = sim.Workers
		config.Simulation.Seed = sim.Seed
		if sim.Trials != nil {
			config.Simulation.Trials = *sim.Trials
		}
	}
	if raw.Log != nil {
		config.Log = *raw.Log
	}
	if raw.Output != nil {
		config.Output = *raw.Output
	}
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Simulation.Hand1 == "" {
		c.Simulation.Hand1 = def.Simulation.Hand1
	}
	if c.Simulation.Hand2 == "" {
		c.Simulation.Hand2 = def.Simulation.Hand2
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("invalid trials: %d", c.Simulation.Trials)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Simulation.Workers)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log format: %s", c.Log.Format)
	}

	return nil
}
