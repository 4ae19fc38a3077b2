package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tkahng/chopsticks"
)

type SimulateCmd struct {
	Games       int    `short:"n" default:"100" help:"Number of games to play"`
	Seed        int64  `default:"1" help:"Base random seed"`
	AgentA      string `default:"random" enum:"first,random" help:"Agent for side A (first|random)"`
	AgentB      string `default:"random" enum:"first,random" help:"Agent for side B (first|random)"`
	MaxPlies    int    `help:"Ply limit per game (overrides config)"`
	Concurrency int    `help:"Games played at once (overrides config)"`
}

func (c *SimulateCmd) Run(e *env) error {
	maxPlies := e.config.Match.MaxPlies
	if c.MaxPlies > 0 {
		maxPlies = c.MaxPlies
	}
	concurrency := e.config.Match.Concurrency
	if c.Concurrency > 0 {
		concurrency = c.Concurrency
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := chopsticks.NewRunner(concurrency, e.logger)
	results, err := runner.RunMatches(ctx, c.Games, func(i int) (*chopsticks.Game, error) {
		a, err := chopsticks.NewAgent(c.AgentA, c.Seed+int64(2*i))
		if err != nil {
			return nil, err
		}
		b, err := chopsticks.NewAgent(c.AgentB, c.Seed+int64(2*i+1))
		if err != nil {
			return nil, err
		}
		return chopsticks.NewGame(e.start, maxPlies,
			chopsticks.NewPlayer(fmt.Sprintf("%s-a-%d", c.AgentA, i), c.AgentA, a),
			chopsticks.NewPlayer(fmt.Sprintf("%s-b-%d", c.AgentB, i), c.AgentB, b),
		)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(e.out, chopsticks.Summarize(results))
	return nil
}
