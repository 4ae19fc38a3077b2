package chopsticks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkahng/chopsticks/sticks"
)

func TestFirstMoveAgent(t *testing.T) {
	ctx := context.Background()

	m, err := FirstMoveAgent{}.ChooseMove(ctx, standardStart(t))
	require.NoError(t, err)
	assert.Equal(t, sticks.Move{From: 0, To: 0}, m)

	won, err := sticks.NewPosition([]int{0, 0}, []int{3, 1}, 5, sticks.B)
	require.NoError(t, err)
	_, err = FirstMoveAgent{}.ChooseMove(ctx, won)
	assert.ErrorIs(t, err, sticks.ErrInvalidMove)
}

func TestRandomAgent(t *testing.T) {
	ctx := context.Background()
	pos := standardStart(t)

	a, b := NewRandomAgent(42), NewRandomAgent(42)
	for i := 0; i < 50; i++ {
		ma, err := a.ChooseMove(ctx, pos)
		require.NoError(t, err)
		mb, err := b.ChooseMove(ctx, pos)
		require.NoError(t, err)

		assert.Equal(t, ma, mb)
		assert.True(t, pos.IsLegal(ma))
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err := a.ChooseMove(cancelled, pos)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScriptedAgent(t *testing.T) {
	ctx := context.Background()
	pos := standardStart(t)
	agent := NewScriptedAgent(sticks.Move{From: 1, To: 0}, sticks.Move{From: 0, To: 1})

	m, err := agent.ChooseMove(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, sticks.Move{From: 1, To: 0}, m)

	m, err = agent.ChooseMove(ctx, pos)
	require.NoError(t, err)
	assert.Equal(t, sticks.Move{From: 0, To: 1}, m)

	_, err = agent.ChooseMove(ctx, pos)
	assert.ErrorIs(t, err, ErrScriptExhausted)
}

func TestAgentFunc(t *testing.T) {
	var agent Agent = AgentFunc(func(_ context.Context, pos sticks.Position) (sticks.Move, error) {
		moves := pos.LegalMoves()
		return moves[len(moves)-1], nil
	})

	m, err := agent.ChooseMove(context.Background(), standardStart(t))
	require.NoError(t, err)
	assert.Equal(t, sticks.Move{From: 1, To: 1}, m)
}

func TestNewAgent(t *testing.T) {
	agent, err := NewAgent("first", 0)
	require.NoError(t, err)
	assert.IsType(t, FirstMoveAgent{}, agent)

	agent, err = NewAgent("random", 3)
	require.NoError(t, err)
	assert.IsType(t, &RandomAgent{}, agent)

	_, err = NewAgent("minimax", 0)
	assert.Error(t, err)
}
