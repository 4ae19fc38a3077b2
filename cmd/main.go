package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/tkahng/chopsticks"
	"github.com/tkahng/chopsticks/sticks"
)

// version is set by ldflags during build
var version = "dev"

type Globals struct {
	Config   string `short:"c" default:"chopsticks.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" default:"info" help:"Log level (debug|info|warn|error)"`
	Hands    int    `help:"Hands per player (overrides config)"`
	Modulus  int    `help:"Finger-count modulus (overrides config)"`
	Start    string `help:"Starting player, A or B (overrides config)"`
	Position string `short:"p" help:"Start from this position instead, e.g. '1,1/2,1 B 5'"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Show     ShowCmd          `cmd:"" help:"Print a position and its legal moves"`
	Replay   ReplayCmd        `cmd:"" help:"Apply moves in order and print every position"`
	Simulate SimulateCmd      `cmd:"" help:"Play agent-vs-agent matches"`
	Perft    PerftCmd         `cmd:"" help:"Count move sequences up to a depth"`
}

// env is what every command runs against.
type env struct {
	out    io.Writer
	logger *log.Logger
	config *chopsticks.Config
	start  sticks.Position
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chopsticks"),
		kong.Description("Chopsticks position engine tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	e, err := newEnv(cli.Globals, os.Stdout, newLogger(cli.LogLevel))
	ctx.FatalIfErrorf(err)

	err = ctx.Run(e)
	ctx.FatalIfErrorf(err)
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
	})
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// newEnv loads the config file, applies flag overrides and builds the start position.
func newEnv(g Globals, out io.Writer, logger *log.Logger) (*env, error) {
	cfg, err := chopsticks.LoadConfig(g.Config)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if g.Hands != 0 {
		cfg.Rules.Hands = g.Hands
	}
	if g.Modulus != 0 {
		cfg.Rules.Modulus = g.Modulus
	}
	if g.Start != "" {
		cfg.Rules.StartingPlayer = g.Start
	}

	var start sticks.Position
	if g.Position != "" {
		start, err = sticks.ParseNotation(g.Position)
	} else {
		var rules sticks.Config
		if rules, err = cfg.GameRules(); err == nil {
			start, err = rules.Initial()
		}
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", "file", g.Config, "start", start,
		"max_plies", cfg.Match.MaxPlies, "concurrency", cfg.Match.Concurrency)

	return &env{
		out:    out,
		logger: logger,
		config: cfg,
		start:  start,
	}, nil
}
