package main

import (
	"fmt"

	"github.com/tkahng/chopsticks/sticks"
)

type ShowCmd struct{}

func (c *ShowCmd) Run(e *env) error {
	fmt.Fprintf(e.out, "position: %s\n", e.start.Notation())
	fmt.Fprint(e.out, sticks.Format(e.start))
	return nil
}
