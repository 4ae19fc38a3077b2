package sticks

import (
	"fmt"
	"strconv"
	"strings"
)

// Notation encodes the position as "<A hands>/<B hands> <to move> <modulus>",
// with each side's counts separated by commas. The start of standard play is:
//
//	1,1/1,1 A 5
func (p Position) Notation() string {
	var b strings.Builder
	for side := A; side <= B; side++ {
		if side == B {
			b.WriteByte('/')
		}
		for i, h := range p.row(side) {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(int(h)))
		}
	}
	fmt.Fprintf(&b, " %s %d", p.toMove, p.modulus)
	return b.String()
}

func (p Position) String() string {
	return p.Notation()
}

// ParseNotation reads a position written by Notation. The modulus field is
// optional and defaults to DefaultModulus.
func ParseNotation(s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return Position{}, fmt.Errorf("%w: notation %q needs board, player and optional modulus", ErrInvalidConfiguration, s)
	}

	sides := strings.Split(fields[0], "/")
	if len(sides) != 2 {
		return Position{}, fmt.Errorf("%w: board %q must hold two sides separated by '/'", ErrInvalidConfiguration, fields[0])
	}
	var counts [2][]int
	for side, raw := range sides {
		for _, part := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(part)
			if err != nil {
				return Position{}, fmt.Errorf("%w: bad hand count %q: %v", ErrInvalidConfiguration, part, err)
			}
			counts[side] = append(counts[side], n)
		}
	}

	toMove, err := ParsePlayer(fields[1])
	if err != nil {
		return Position{}, err
	}

	modulus := DefaultModulus
	if len(fields) == 3 {
		if modulus, err = strconv.Atoi(fields[2]); err != nil {
			return Position{}, fmt.Errorf("%w: bad modulus %q: %v", ErrInvalidConfiguration, fields[2], err)
		}
	}

	return NewPosition(counts[0], counts[1], modulus, toMove)
}

// HandLabel names hand i of a side holding n hands: L and R for two-handed
// play, H1..Hn otherwise.
func HandLabel(i, n int) string {
	if n == 2 {
		if i == 0 {
			return "L"
		}
		return "R"
	}
	return fmt.Sprintf("H%d", i+1)
}

// ParseHand reads a hand label or a zero-based index for a side holding n hands.
func ParseHand(s string, n int) (int, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	idx := -1
	switch {
	case n == 2 && s == "L":
		idx = 0
	case n == 2 && s == "R":
		idx = 1
	case strings.HasPrefix(s, "H"):
		if v, err := strconv.Atoi(s[1:]); err == nil {
			idx = v - 1
		}
	default:
		if v, err := strconv.Atoi(s); err == nil {
			idx = v
		}
	}

	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("%w: no hand %q among %d", ErrInvalidMove, s, n)
	}
	return idx, nil
}

// Label renders the move with hand labels, e.g. "L:R".
func (m Move) Label(nFrom, nTo int) string {
	return HandLabel(m.From, nFrom) + ":" + HandLabel(m.To, nTo)
}

// ParseMove reads "from:to" (or "from,to") where each side is a hand label or index.
func ParseMove(s string, nFrom, nTo int) (Move, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == ','
	})
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: %q is not of the form from:to", ErrInvalidMove, s)
	}

	from, err := ParseHand(parts[0], nFrom)
	if err != nil {
		return Move{}, err
	}
	to, err := ParseHand(parts[1], nTo)
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

// ParseMove reads a move for the side to move in p.
func (p Position) ParseMove(s string) (Move, error) {
	return ParseMove(s, p.NumHands(p.toMove), p.NumHands(p.toMove.Other()))
}

// MoveLabel renders m with the hand labels of the side to move in p.
func (p Position) MoveLabel(m Move) string {
	return m.Label(p.NumHands(p.toMove), p.NumHands(p.toMove.Other()))
}
