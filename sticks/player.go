package sticks

import (
	"fmt"
	"strings"
)

// Player identifies one of the two sides of a game.
type Player uint8

const (
	A Player = iota
	B
)

// Other returns the opposing side.
func (p Player) Other() Player {
	return p ^ 1
}

func (p Player) Valid() bool {
	return p == A || p == B
}

func (p Player) String() string {
	switch p {
	case A:
		return "A"
	case B:
		return "B"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

// ParsePlayer accepts "A" or "B" in either case.
func ParsePlayer(s string) (Player, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return A, nil
	case "B":
		return B, nil
	}
	return 0, fmt.Errorf("%w: unknown player %q", ErrInvalidConfiguration, s)
}
