package main

import (
	"fmt"

	"github.com/tkahng/chopsticks"
	"github.com/tkahng/chopsticks/sticks"
)

type ReplayCmd struct {
	Moves []string `arg:"" optional:"" help:"Moves as from:to using hand labels or indices, e.g. L:R or 0:1"`
}

func (c *ReplayCmd) Run(e *env) error {
	game, err := chopsticks.NewGame(e.start, 0,
		chopsticks.NewPlayer("A", "A", nil),
		chopsticks.NewPlayer("B", "B", nil),
	)
	if err != nil {
		return err
	}

	fmt.Fprint(e.out, sticks.Format(game.Position()))
	for i, raw := range c.Moves {
		pos := game.Position()
		move, err := pos.ParseMove(raw)
		if err == nil {
			err = game.Play(move)
		}
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, raw, err)
		}

		e.logger.Debug("applied move", "ply", i+1, "move", pos.MoveLabel(move), "position", game.Position())
		fmt.Fprintf(e.out, "\n%s plays %s\n", pos.ToMove(), pos.MoveLabel(move))
		fmt.Fprint(e.out, sticks.Format(game.Position()))
	}

	if winner := game.Winner(); winner != nil {
		fmt.Fprintf(e.out, "\nresult: %s wins after %d plies\n", winner.ID, game.Plies())
	} else {
		fmt.Fprintf(e.out, "\nresult: in progress after %d plies\n", game.Plies())
	}
	return nil
}
