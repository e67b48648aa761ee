package main

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/lox/headsup-equity/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Config    string           `short:"c" default:"equity.hcl" env:"EQUITY_CONFIG" help:"HCL config file (optional)"`
	Debug     bool             `env:"EQUITY_DEBUG" help:"Enable debug logging"`
	LogFormat string           `env:"EQUITY_LOG_FORMAT" help:"Log format: text, json or logfmt"`
	NoColor   bool             `env:"EQUITY_NO_COLOR" help:"Disable colored output"`
	Version   kong.VersionFlag `short:"v" help:"Show version"`

	Run      RunCmd      `cmd:"" default:"withargs" help:"Estimate heads-up equity between two hole hands"`
	Showdown ShowdownCmd `cmd:"" help:"Compare two hole hands on a fixed board"`
	History  HistoryCmd  `cmd:"" help:"List saved equity runs"`
}

// App carries what every command needs once flags and config are resolved
type App struct {
	Config *config.Config
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
	Styles Styles
	Color  bool
}

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("equity"),
		kong.Description("Monte Carlo equity for heads-up Texas Hold'em"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	app, err := cli.newApp(os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)

	runCtx := setupSignalHandler(context.Background(), app.Logger)
	ctx.BindTo(runCtx, (*context.Context)(nil))
	ctx.FatalIfErrorf(ctx.Run(app))
}

// newApp loads the config file and applies global flag overrides
func (cli *CLI) newApp(out, errOut io.Writer) (*App, error) {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return nil, err
	}
	if cli.Debug {
		cfg.Log.Level = "debug"
	}
	if cli.LogFormat != "" {
		cfg.Log.Format = cli.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(errOut, cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config", "file", cli.Config, "trials", cfg.Simulation.Trials, "workers", cfg.Simulation.Workers)

	return &App{
		Config: cfg,
		Logger: logger,
		Out:    out,
		Err:    errOut,
		Styles: newStyles(out, !cli.NoColor),
		Color:  !cli.NoColor,
	}, nil
}
