package sticks

import (
	"fmt"
)

// Move transfers the fingers of the mover's hand From onto the opponent's hand To.
type Move struct {
	From int
	To   int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.From, m.To)
}

// LegalMoves lists every move from a live hand onto a live opponent hand,
// ordered by source hand and then by target hand.
func (p Position) LegalMoves() []Move {
	mover, opp := p.toMove, p.toMove.Other()

	var moves []Move
	for from, h := range p.row(mover) {
		if !h.Alive() {
			continue
		}
		for to, t := range p.row(opp) {
			if t.Alive() {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}
	return moves
}

func (p Position) IsLegal(m Move) bool {
	mover, opp := p.toMove, p.toMove.Other()
	if m.From < 0 || m.From >= p.NumHands(mover) || m.To < 0 || m.To >= p.NumHands(opp) {
		return false
	}
	return p.hands[mover][m.From].Alive() && p.hands[opp][m.To].Alive()
}

// Apply returns the position reached by playing m. The receiver is left untouched.
// Moves that are not in LegalMoves fail with ErrInvalidMove.
func (p Position) Apply(m Move) (Position, error) {
	mover, opp := p.toMove, p.toMove.Other()

	if m.From < 0 || m.From >= p.NumHands(mover) {
		return Position{}, fmt.Errorf("move %v by %s: %w: no source hand %d", m, mover, ErrInvalidMove, m.From)
	}
	if m.To < 0 || m.To >= p.NumHands(opp) {
		return Position{}, fmt.Errorf("move %v by %s: %w: no target hand %d", m, mover, ErrInvalidMove, m.To)
	}

	hit, err := p.hands[mover][m.From].Attack(p.hands[opp][m.To], p.Modulus())
	if err != nil {
		return Position{}, fmt.Errorf("move %v by %s: %w", m, mover, err)
	}

	next := p
	next.hands[opp][m.To] = hit
	next.toMove = opp
	return next, nil
}

// IsTerminal reports whether either side has every hand out.
func (p Position) IsTerminal() bool {
	return !p.Alive(A) || !p.Alive(B)
}

// Utility scores the position from side's point of view: 1 when only the
// opponent is out, -1 when only side is out, 0 otherwise. A zero score does not
// mean the game is over; check IsTerminal.
func (p Position) Utility(side Player) int {
	mine, theirs := p.Alive(side), p.Alive(side.Other())
	switch {
	case mine && !theirs:
		return 1
	case !mine && theirs:
		return -1
	default:
		return 0
	}
}

// Winner returns the side that knocked out every opposing hand, if any.
func (p Position) Winner() (Player, bool) {
	switch {
	case p.Utility(A) > 0:
		return A, true
	case p.Utility(B) > 0:
		return B, true
	}
	return 0, false
}
