package sticks

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Perft counts the move sequences of exactly depth plies starting at p.
// Lines that reach a terminal position early are not counted.
func Perft(p Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := p.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		next, err := p.Apply(m)
		if err != nil {
			continue
		}
		nodes += Perft(next, depth-1)
	}
	return nodes
}

// ParallelPerft computes Perft with each root move's subtree counted on its own
// goroutine, at most workers at a time (no limit when workers <= 0).
func ParallelPerft(ctx context.Context, p Position, depth, workers int) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth <= 1 {
		return Perft(p, depth), nil
	}

	moves := p.LegalMoves()
	counts := make([]uint64, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, err := p.Apply(m)
			if err != nil {
				return err
			}
			counts[i] = Perft(next, depth-1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var nodes uint64
	for _, n := range counts {
		nodes += n
	}
	return nodes, nil
}
