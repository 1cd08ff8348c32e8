package game

import (
	"fmt"
	"strings"
)

// NimMove removes Take objects from pile Pile.
type NimMove struct {
	Pile int
	Take int
}

func (m NimMove) String() string { return fmt.Sprintf("take %d from pile %d", m.Take, m.Pile+1) }

// NimState is a normal-play Nim position: players take turns removing any
// number of objects from a single pile, and whoever takes the last object
// wins.
type NimState struct {
	piles  []int
	player PlayerID
}

// NewNim returns the initial state with the given pile sizes. With no
// arguments it uses the classic 1, 3, 5, 7 setup.
func NewNim(piles ...int) NimState {
	if len(piles) == 0 {
		piles = []int{1, 3, 5, 7}
	}
	return NimState{piles: append([]int(nil), piles...), player: Player1}
}

// Piles returns a copy of the current pile sizes.
func (s NimState) Piles() []int { return append([]int(nil), s.piles...) }

// NimSum is the XOR of all pile sizes. A zero nim-sum means the player to
// move loses under perfect play.
func (s NimState) NimSum() int {
	sum := 0
	for _, pile := range s.piles {
		sum ^= pile
	}
	return sum
}

func (s NimState) Player() PlayerID { return s.player }

func (s NimState) LegalMoves() []Move {
	var moves []Move
	for i, pile := range s.piles {
		for take := 1; take <= pile; take++ {
			moves = append(moves, NimMove{Pile: i, Take: take})
		}
	}
	return moves
}

func (s NimState) Play(m Move) (State, error) {
	nm, ok := m.(NimMove)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	if nm.Pile < 0 || nm.Pile >= len(s.piles) {
		return nil, fmt.Errorf("%w: no pile %d", ErrIllegalMove, nm.Pile)
	}
	if nm.Take < 1 || nm.Take > s.piles[nm.Pile] {
		return nil, fmt.Errorf("%w: cannot take %d from pile of %d", ErrIllegalMove, nm.Take, s.piles[nm.Pile])
	}
	piles := append([]int(nil), s.piles...)
	piles[nm.Pile] -= nm.Take
	return NimState{piles: piles, player: s.player.Opponent()}, nil
}

func (s NimState) Terminal() bool {
	for _, pile := range s.piles {
		if pile > 0 {
			return false
		}
	}
	return true
}

func (s NimState) Outcome(p PlayerID) (Outcome, error) {
	if !s.Terminal() {
		return 0, ErrNotTerminal
	}
	// The player who took the last object moved last and wins.
	if p == s.player {
		return Loss, nil
	}
	return Win, nil
}

func (s NimState) Hash() StateHash {
	cells := make([]int, 0, len(s.piles)+1)
	cells = append(cells, len(s.piles))
	cells = append(cells, s.piles...)
	return hashState(s.player, cells...)
}

func (s NimState) String() string {
	var sb strings.Builder
	for i, pile := range s.piles {
		fmt.Fprintf(&sb, "pile %d: %s (%d)\n", i+1, strings.Repeat("*", pile), pile)
	}
	if s.Terminal() {
		fmt.Fprintf(&sb, "%v wins", s.player.Opponent())
	} else {
		fmt.Fprintf(&sb, "%v to move", s.player)
	}
	return sb.String()
}
