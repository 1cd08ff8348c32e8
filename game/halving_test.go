package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHalvingLegalMoves(t *testing.T) {
	t.Run("both moves available on a running game", func(t *testing.T) {
		state := NewHalving(6)

		got := state.LegalMoves()

		require.Equal(t, []Move{Subtract, Halve}, got,
			"Subtract and halve should both be legal while the number is positive")
	})

	t.Run("no moves on a terminal state", func(t *testing.T) {
		state := NewHalving(0)

		require.True(t, state.Terminal(), "Number 0 should be terminal")
		require.Empty(t, state.LegalMoves(), "Terminal states should have no legal moves")
	})
}

func TestHalvingPlay(t *testing.T) {
	t.Run("subtract decrements the number", func(t *testing.T) {
		state := NewHalving(6)

		next, err := state.Play(Subtract)

		require.NoError(t, err)
		require.Equal(t, 5, next.(HalvingState).Number())
		require.Equal(t, Player2, next.Player(), "Turn should alternate on every play")
	})

	t.Run("halve floor-divides the number", func(t *testing.T) {
		state := NewHalving(7)

		next, err := state.Play(Halve)

		require.NoError(t, err)
		require.Equal(t, 3, next.(HalvingState).Number())
	})

	t.Run("rejects a move from another game", func(t *testing.T) {
		state := NewHalving(6)

		_, err := state.Play(CellMove{Row: 0, Col: 0})

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("rejects a move on a terminal state", func(t *testing.T) {
		state := NewHalving(0)

		_, err := state.Play(Subtract)

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("never mutates the source state", func(t *testing.T) {
		state := NewHalving(6)

		first, err := state.Play(Subtract)
		require.NoError(t, err)
		second, err := state.Play(Subtract)
		require.NoError(t, err)

		require.Equal(t, 6, state.Number(), "Source state should be unchanged")
		require.Equal(t, first, second, "Equal inputs should produce equal successors")
	})
}

func TestHalvingOutcome(t *testing.T) {
	t.Run("player who reaches zero wins", func(t *testing.T) {
		state := NewHalving(1)
		next, err := state.Play(Subtract)
		require.NoError(t, err)

		require.True(t, next.Terminal())

		got, err := next.Outcome(Player1)
		require.NoError(t, err)
		require.Equal(t, Win, got, "Player 1 moved to 0 and should win")

		got, err = next.Outcome(Player2)
		require.NoError(t, err)
		require.Equal(t, Loss, got)
	})

	t.Run("errors on a running game", func(t *testing.T) {
		state := NewHalving(6)

		_, err := state.Outcome(Player1)

		require.ErrorIs(t, err, ErrNotTerminal)
	})
}

func TestHalvingHash(t *testing.T) {
	t.Run("transpositions hash equally", func(t *testing.T) {
		// 6 -subtract-> 5 -halve-> 2 and 6 -halve-> 3 -subtract-> 2 meet at
		// the same position with the same player to move.
		a, err := NewHalving(6).Play(Subtract)
		require.NoError(t, err)
		a, err = a.Play(Halve)
		require.NoError(t, err)

		b, err := NewHalving(6).Play(Halve)
		require.NoError(t, err)
		b, err = b.Play(Subtract)
		require.NoError(t, err)

		require.Equal(t, a, b, "Transposed states should be equal")
		require.Equal(t, a.Hash(), b.Hash(), "Transposed states should share a hash")
	})

	t.Run("player to move distinguishes positions", func(t *testing.T) {
		a := NewHalving(5)
		b, err := NewHalving(6).Play(Subtract)
		require.NoError(t, err)

		require.NotEqual(t, a.Hash(), b.Hash(),
			"Same number with a different player to move should hash differently")
	})
}
