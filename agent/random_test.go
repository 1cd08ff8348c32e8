package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gamekit/game"
)

func TestRandomChooseMove(t *testing.T) {
	t.Run("always returns a legal move", func(t *testing.T) {
		agent := NewRandom(42)
		state := game.State(game.NewNim(1, 3, 5))

		for i := 0; i < 20 && !state.Terminal(); i++ {
			move, err := agent.ChooseMove(state)
			require.NoError(t, err)
			require.Contains(t, state.LegalMoves(), move, "Move %d should be legal", i)

			next, err := state.Play(move)
			require.NoError(t, err)
			state = next
		}
	})

	t.Run("identical seeds reproduce the same choices", func(t *testing.T) {
		state := game.NewTicTacToe()
		a := NewRandom(7)
		b := NewRandom(7)

		for i := 0; i < 5; i++ {
			wantMove, err := a.ChooseMove(state)
			require.NoError(t, err)
			gotMove, err := b.ChooseMove(state)
			require.NoError(t, err)

			require.Equal(t, wantMove, gotMove, "Draw %d should match across equal seeds", i)
		}
	})

	t.Run("errors on a terminal state", func(t *testing.T) {
		_, err := NewRandom(1).ChooseMove(game.NewHalving(0))

		require.ErrorIs(t, err, ErrTerminalState)
	})
}
