package agent

import (
	"fmt"

	"gamekit/game"
)

// Selector asks an external source - a terminal, a web request - to pick one
// of the listed moves and returns the chosen index.
type Selector func(state game.State, moves []game.Move) (int, error)

// Human delegates the choice to a Selector and asks again until the answer
// names a legal move. Validation happens here so no input source can slip an
// illegal move past the contract.
type Human struct {
	name string
	sel  Selector
}

func NewHuman(name string, sel Selector) *Human {
	if name == "" {
		name = "Human"
	}
	return &Human{name: name, sel: sel}
}

func (h *Human) Name() string { return h.name }

func (h *Human) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrTerminalState
	}
	for {
		i, err := h.sel(state, moves)
		if err != nil {
			return nil, fmt.Errorf("selecting move: %w", err)
		}
		if i >= 0 && i < len(moves) {
			return moves[i], nil
		}
	}
}
