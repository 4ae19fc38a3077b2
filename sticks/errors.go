package sticks

import "errors"

var (
	// ErrInvalidMove is returned when a move is not legal in the position it is applied to.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidConfiguration is returned when a position or rule set cannot be built.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
