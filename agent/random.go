package agent

import (
	"golang.org/x/exp/rand"

	"gamekit/game"
)

// Random picks uniformly among the legal moves. A fixed seed gives a
// reproducible move sequence, which the simulation harness relies on.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{name: "Random AI", rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return r.name }

func (r *Random) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrTerminalState
	}
	return moves[r.rng.Intn(len(moves))], nil
}
