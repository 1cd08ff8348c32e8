package game

import "fmt"

// HalvingMove is one of the two moves in the halving game.
type HalvingMove string

const (
	Subtract HalvingMove = "subtract" // subtract 1 from the number
	Halve    HalvingMove = "halve"    // floor-divide the number by 2
)

func (m HalvingMove) String() string { return string(m) }

// HalvingState is a position in the halving game. Players take turns either
// subtracting 1 from the number or halving it with floor division; whoever
// reaches 0 wins.
type HalvingState struct {
	number int
	player PlayerID
}

// NewHalving returns the initial state with the given starting number.
func NewHalving(number int) HalvingState {
	return HalvingState{number: number, player: Player1}
}

// Number returns the current number.
func (s HalvingState) Number() int { return s.number }

func (s HalvingState) Player() PlayerID { return s.player }

func (s HalvingState) LegalMoves() []Move {
	if s.Terminal() {
		return nil
	}
	return []Move{Subtract, Halve}
}

func (s HalvingState) Play(m Move) (State, error) {
	if s.Terminal() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	next := HalvingState{player: s.player.Opponent()}
	switch m {
	case Subtract:
		next.number = s.number - 1
	case Halve:
		next.number = s.number / 2
	default:
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	return next, nil
}

func (s HalvingState) Terminal() bool { return s.number == 0 }

func (s HalvingState) Outcome(p PlayerID) (Outcome, error) {
	if !s.Terminal() {
		return 0, ErrNotTerminal
	}
	// The player who reached 0 moved last, so the player to move lost.
	if p == s.player {
		return Loss, nil
	}
	return Win, nil
}

func (s HalvingState) Hash() StateHash { return hashState(s.player, s.number) }

func (s HalvingState) String() string {
	if s.Terminal() {
		return fmt.Sprintf("number: 0, %v wins", s.player.Opponent())
	}
	return fmt.Sprintf("number: %d, %v to move", s.number, s.player)
}
