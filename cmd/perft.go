package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tkahng/chopsticks/sticks"
)

type PerftCmd struct {
	Depth   int `short:"d" default:"6" help:"Maximum depth in plies"`
	Workers int `short:"w" help:"Root moves counted at once (defaults to the number of CPUs)"`
}

func (c *PerftCmd) Run(e *env) error {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for depth := 1; depth <= c.Depth; depth++ {
		started := time.Now()
		nodes, err := sticks.ParallelPerft(ctx, e.start, depth, workers)
		if err != nil {
			return err
		}
		e.logger.Debug("perft", "depth", depth, "nodes", nodes, "elapsed", time.Since(started))
		fmt.Fprintf(e.out, "depth %d: %d\n", depth, nodes)
	}
	return nil
}
