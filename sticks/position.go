package sticks

import (
	"fmt"
)

const (
	// MaxHands bounds the number of hands a single side can hold.
	MaxHands = 8
	// MaxModulus bounds the finger-count wraparound limit.
	MaxModulus = 255

	DefaultHands   = 2
	DefaultModulus = 5
)

// Config describes the rules a game starts from.
type Config struct {
	NumHands int
	Modulus  int
	Start    Player
}

// DefaultConfig is standard play: two hands each, five fingers, A moves first.
func DefaultConfig() Config {
	return Config{
		NumHands: DefaultHands,
		Modulus:  DefaultModulus,
		Start:    A,
	}
}

func (c Config) Validate() error {
	if c.NumHands <= 0 || c.NumHands > MaxHands {
		return fmt.Errorf("%w: hands must be between 1 and %d, got %d", ErrInvalidConfiguration, MaxHands, c.NumHands)
	}
	if err := validateModulus(c.Modulus); err != nil {
		return err
	}
	if !c.Start.Valid() {
		return fmt.Errorf("%w: unknown starting player %s", ErrInvalidConfiguration, c.Start)
	}
	return nil
}

// Initial builds the starting position for c.
func (c Config) Initial() (Position, error) {
	return InitialPosition(c.NumHands, c.Modulus, c.Start)
}

func validateModulus(modulus int) error {
	if modulus <= 1 || modulus > MaxModulus {
		return fmt.Errorf("%w: modulus must be between 2 and %d, got %d", ErrInvalidConfiguration, MaxModulus, modulus)
	}
	return nil
}

// Position is an immutable snapshot of both sides' hands and the side to move.
// Positions are plain values: they compare with == and can key a map.
type Position struct {
	hands   [2][MaxHands]Hand
	size    [2]uint8
	modulus uint8
	toMove  Player
}

// InitialPosition returns the canonical start with every hand at 1.
func InitialPosition(numHands, modulus int, start Player) (Position, error) {
	cfg := Config{NumHands: numHands, Modulus: modulus, Start: start}
	if err := cfg.Validate(); err != nil {
		return Position{}, err
	}

	p := Position{
		modulus: uint8(modulus),
		toMove:  start,
	}
	for side := range p.hands {
		p.size[side] = uint8(numHands)
		for i := 0; i < numHands; i++ {
			p.hands[side][i] = 1
		}
	}
	return p, nil
}

// NewPosition builds an arbitrary position from the finger counts of each side.
// The two sides may hold a different number of hands.
func NewPosition(a, b []int, modulus int, toMove Player) (Position, error) {
	if err := validateModulus(modulus); err != nil {
		return Position{}, err
	}
	if !toMove.Valid() {
		return Position{}, fmt.Errorf("%w: unknown player to move %s", ErrInvalidConfiguration, toMove)
	}

	p := Position{
		modulus: uint8(modulus),
		toMove:  toMove,
	}
	for side, counts := range [2][]int{a, b} {
		if len(counts) == 0 || len(counts) > MaxHands {
			return Position{}, fmt.Errorf("%w: %s must hold between 1 and %d hands, got %d",
				ErrInvalidConfiguration, Player(side), MaxHands, len(counts))
		}
		for i, n := range counts {
			if n < 0 || n >= modulus {
				return Position{}, fmt.Errorf("%w: %s hand %d holds %d, want [0, %d]",
					ErrInvalidConfiguration, Player(side), i, n, modulus-1)
			}
			p.hands[side][i] = Hand(n)
		}
		p.size[side] = uint8(len(counts))
	}
	return p, nil
}

func (p Position) ToMove() Player {
	return p.toMove
}

func (p Position) Modulus() int {
	return int(p.modulus)
}

func (p Position) NumHands(side Player) int {
	return int(p.size[side])
}

// Hand returns the count held by hand i of side. i must be below NumHands(side).
func (p Position) Hand(side Player, i int) int {
	return int(p.row(side)[i])
}

// Hands returns a copy of the counts held by side, in hand order.
func (p Position) Hands(side Player) []int {
	row := p.row(side)
	out := make([]int, len(row))
	for i, h := range row {
		out[i] = int(h)
	}
	return out
}

func (p Position) Sum(side Player) int {
	sum := 0
	for _, h := range p.row(side) {
		sum += int(h)
	}
	return sum
}

// Alive reports whether side still has at least one hand in play.
func (p Position) Alive(side Player) bool {
	return p.Sum(side) > 0
}

func (p Position) row(side Player) []Hand {
	return p.hands[side][:p.size[side]]
}
