package sticks

import (
	"fmt"
	"strings"
)

// Format renders p for a console:
//
//	A: L=1 R=1
//	B: L=2 R=1
//	to move: B
//	moves (from_my:to_opponent): L:L L:R R:L R:R
func Format(p Position) string {
	var b strings.Builder
	for side := A; side <= B; side++ {
		fmt.Fprintf(&b, "%s:", side)
		n := p.NumHands(side)
		for i, h := range p.row(side) {
			fmt.Fprintf(&b, " %s=%d", HandLabel(i, n), h)
		}
		b.WriteByte('\n')
	}

	if winner, ok := p.Winner(); ok {
		fmt.Fprintf(&b, "winner: %s\n", winner)
		return b.String()
	}

	fmt.Fprintf(&b, "to move: %s\n", p.toMove)
	b.WriteString("moves (from_my:to_opponent):")
	moves := p.LegalMoves()
	if len(moves) == 0 {
		b.WriteString(" none")
	}
	for _, m := range moves {
		b.WriteByte(' ')
		b.WriteString(p.MoveLabel(m))
	}
	b.WriteByte('\n')
	return b.String()
}
