package chopsticks

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/tkahng/chopsticks/sticks"
)

var ErrScriptExhausted = errors.New("script has no moves left")

// Agent picks the next move for the side to move in a position.
type Agent interface {
	ChooseMove(ctx context.Context, pos sticks.Position) (sticks.Move, error)
}

// AgentFunc adapts a function to the Agent interface.
type AgentFunc func(ctx context.Context, pos sticks.Position) (sticks.Move, error)

func (f AgentFunc) ChooseMove(ctx context.Context, pos sticks.Position) (sticks.Move, error) {
	return f(ctx, pos)
}

// FirstMoveAgent always plays the first legal move.
type FirstMoveAgent struct{}

func (FirstMoveAgent) ChooseMove(ctx context.Context, pos sticks.Position) (sticks.Move, error) {
	if err := ctx.Err(); err != nil {
		return sticks.Move{}, err
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return sticks.Move{}, fmt.Errorf("%w: no legal moves in %s", sticks.ErrInvalidMove, pos)
	}
	return moves[0], nil
}

// RandomAgent plays a uniformly random legal move. Each agent owns its source,
// so a seeded agent replays the same choices.
type RandomAgent struct {
	mutex sync.Mutex
	rng   *rand.Rand
}

func NewRandomAgent(seed int64) *RandomAgent {
	return &RandomAgent{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (a *RandomAgent) ChooseMove(ctx context.Context, pos sticks.Position) (sticks.Move, error) {
	if err := ctx.Err(); err != nil {
		return sticks.Move{}, err
	}
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return sticks.Move{}, fmt.Errorf("%w: no legal moves in %s", sticks.ErrInvalidMove, pos)
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()
	return moves[a.rng.Intn(len(moves))], nil
}

// ScriptedAgent replays a fixed list of moves in order.
type ScriptedAgent struct {
	mutex sync.Mutex
	moves []sticks.Move
	next  int
}

func NewScriptedAgent(moves ...sticks.Move) *ScriptedAgent {
	return &ScriptedAgent{
		moves: moves,
	}
}

func (a *ScriptedAgent) ChooseMove(ctx context.Context, _ sticks.Position) (sticks.Move, error) {
	if err := ctx.Err(); err != nil {
		return sticks.Move{}, err
	}

	a.mutex.Lock()
	defer a.mutex.Unlock()
	if a.next >= len(a.moves) {
		return sticks.Move{}, ErrScriptExhausted
	}
	m := a.moves[a.next]
	a.next++
	return m, nil
}

// NewAgent builds an agent by name: "first" or "random".
func NewAgent(kind string, seed int64) (Agent, error) {
	switch kind {
	case "first":
		return FirstMoveAgent{}, nil
	case "random":
		return NewRandomAgent(seed), nil
	}
	return nil, fmt.Errorf("unknown agent: %s (available: first, random)", kind)
}
