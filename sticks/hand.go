package sticks

import (
	"fmt"
)

// Hand is the finger count held by a single hand. A hand at 0 is out.
type Hand uint8

func (h Hand) Alive() bool {
	return h != 0
}

// Attack returns the count target ends up with after being struck by h.
// Counts wrap around at modulus, so a hand that reaches exactly modulus is out.
func (h Hand) Attack(target Hand, modulus int) (Hand, error) {
	if !h.Alive() {
		return 0, fmt.Errorf("%w: attacking hand is out", ErrInvalidMove)
	}
	if !target.Alive() {
		return 0, fmt.Errorf("%w: target hand is out", ErrInvalidMove)
	}
	return Hand((int(target) + int(h)) % modulus), nil
}
