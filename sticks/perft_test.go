package sticks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerft(t *testing.T) {
	start, err := InitialPosition(2, 5, A)
	require.NoError(t, err)

	tests := []struct {
		depth int
		want  uint64
	}{
		{depth: 0, want: 1},
		{depth: 1, want: 4},
		{depth: 2, want: 16},
		{depth: 3, want: 64},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Perft(start, tt.depth), "depth %d", tt.depth)
	}

	won := mustPosition(t, []int{0, 0}, []int{3, 1}, 5, B)
	assert.Equal(t, uint64(1), Perft(won, 0))
	assert.Equal(t, uint64(0), Perft(won, 3))
}

func TestParallelPerft(t *testing.T) {
	start, err := InitialPosition(2, 5, A)
	require.NoError(t, err)

	for _, depth := range []int{0, 1, 2, 5, 7} {
		for _, workers := range []int{0, 1, 3} {
			got, err := ParallelPerft(context.Background(), start, depth, workers)
			require.NoError(t, err)
			assert.Equal(t, Perft(start, depth), got, "depth %d workers %d", depth, workers)
		}
	}
}

func TestParallelPerft_Cancelled(t *testing.T) {
	start, err := InitialPosition(2, 5, A)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ParallelPerft(ctx, start, 6, 2)
	assert.ErrorIs(t, err, context.Canceled)
}
