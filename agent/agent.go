package agent

import (
	"errors"

	"gamekit/game"
)

// ErrTerminalState reports ChooseMove called on a state with no legal moves.
var ErrTerminalState = errors.New("no legal moves: state is terminal")

// Agent picks one legal move for the player to move. Implementations must
// return a member of state.LegalMoves() and must not mutate the state.
type Agent interface {
	Name() string
	ChooseMove(state game.State) (game.Move, error)
}
