package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// PlayerID identifies one of the two players. The identities are symmetric:
// negating a PlayerID yields the opponent.
type PlayerID int

const (
	Player1 PlayerID = 1
	Player2 PlayerID = -1
)

// Opponent returns the other player.
func (p PlayerID) Opponent() PlayerID { return -p }

func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "player 1"
	case Player2:
		return "player 2"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Outcome is the result of a finished game from one player's perspective.
type Outcome int

const (
	Loss Outcome = -1
	Draw Outcome = 0
	Win  Outcome = 1
)

// Invert flips the perspective: a win for one player is a loss for the other.
func (o Outcome) Invert() Outcome { return -o }

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Loss:
		return "loss"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// StateHash is a canonical key for a state, derived from the board
// representation and the player to move. Distinct move orders that transpose
// into the same position hash equally.
type StateHash uint64

// Move is a game-specific action. A Move is only meaningful for the state
// whose LegalMoves returned it.
type Move interface {
	String() string
}

// State is an immutable snapshot of a game in progress. Operations on a
// State always return a new copy - a State is never mutated in place.
type State interface {
	// Player returns the player to move.
	Player() PlayerID
	// LegalMoves returns every move applicable to this state. A terminal
	// state has no legal moves and returns an empty slice.
	LegalMoves() []Move
	// Play returns the successor state reached by m, or ErrIllegalMove if m
	// is not one of LegalMoves.
	Play(m Move) (State, error)
	// Terminal reports whether the game is over.
	Terminal() bool
	// Outcome returns the result from p's perspective, or ErrNotTerminal if
	// the game is not over.
	Outcome(p PlayerID) (Outcome, error)
	// Hash returns a transposition key for this state.
	Hash() StateHash
}

// Winner returns the winning player of a terminal state, or 0 for a draw.
func Winner(s State) (PlayerID, error) {
	for _, p := range []PlayerID{Player1, Player2} {
		o, err := s.Outcome(p)
		if err != nil {
			return 0, err
		}
		if o == Win {
			return p, nil
		}
	}
	return 0, nil
}

// hashState folds the player to move and the board cells into an FNV-1a sum.
func hashState(player PlayerID, cells ...int) StateHash {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(int64(player)))
	h.Write(buf[:])
	for _, c := range cells {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(c)))
		h.Write(buf[:])
	}
	return StateHash(h.Sum64())
}
