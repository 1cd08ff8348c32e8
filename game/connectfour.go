package game

import (
	"fmt"
	"strings"
)

// DropMove drops a piece into a column; it falls to the lowest empty cell.
type DropMove int

func (m DropMove) String() string { return fmt.Sprintf("column %d", int(m)) }

// ConnectFourState is a small square Connect Four position (4x4 or 5x5).
// Four in a row horizontally, vertically or diagonally wins.
type ConnectFourState struct {
	size   int
	cells  []PlayerID // row-major, row 0 on top; 0 = empty
	player PlayerID
}

// NewConnectFour returns an empty board of the given size (4 or 5).
func NewConnectFour(size int) (ConnectFourState, error) {
	if size != 4 && size != 5 {
		return ConnectFourState{}, fmt.Errorf("board size must be 4 or 5, got %d", size)
	}
	return ConnectFourState{
		size:   size,
		cells:  make([]PlayerID, size*size),
		player: Player1,
	}, nil
}

// Size returns the board dimension.
func (s ConnectFourState) Size() int { return s.size }

// Cell returns the piece at a position, or 0 for an empty cell.
func (s ConnectFourState) Cell(row, col int) PlayerID { return s.cells[row*s.size+col] }

func (s ConnectFourState) Player() PlayerID { return s.player }

func (s ConnectFourState) LegalMoves() []Move {
	if s.Terminal() {
		return nil
	}
	var moves []Move
	for col := 0; col < s.size; col++ {
		if s.Cell(0, col) == 0 {
			moves = append(moves, DropMove(col))
		}
	}
	return moves
}

func (s ConnectFourState) Play(m Move) (State, error) {
	drop, ok := m.(DropMove)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	col := int(drop)
	if s.Terminal() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if col < 0 || col >= s.size {
		return nil, fmt.Errorf("%w: no column %d", ErrIllegalMove, col)
	}
	if s.Cell(0, col) != 0 {
		return nil, fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}
	cells := append([]PlayerID(nil), s.cells...)
	for row := s.size - 1; row >= 0; row-- {
		if cells[row*s.size+col] == 0 {
			cells[row*s.size+col] = s.player
			break
		}
	}
	return ConnectFourState{size: s.size, cells: cells, player: s.player.Opponent()}, nil
}

func (s ConnectFourState) Terminal() bool {
	if s.winner() != 0 {
		return true
	}
	for _, cell := range s.cells {
		if cell == 0 {
			return false
		}
	}
	return true
}

func (s ConnectFourState) Outcome(p PlayerID) (Outcome, error) {
	if !s.Terminal() {
		return 0, ErrNotTerminal
	}
	switch w := s.winner(); w {
	case 0:
		return Draw, nil
	case p:
		return Win, nil
	default:
		return Loss, nil
	}
}

func (s ConnectFourState) winner() PlayerID {
	dirs := [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			p := s.Cell(row, col)
			if p == 0 {
				continue
			}
			for _, d := range dirs {
				endRow, endCol := row+3*d[0], col+3*d[1]
				if endRow < 0 || endRow >= s.size || endCol < 0 || endCol >= s.size {
					continue
				}
				if s.Cell(row+d[0], col+d[1]) == p &&
					s.Cell(row+2*d[0], col+2*d[1]) == p &&
					s.Cell(endRow, endCol) == p {
					return p
				}
			}
		}
	}
	return 0
}

func (s ConnectFourState) Hash() StateHash {
	cells := make([]int, 0, len(s.cells)+1)
	cells = append(cells, s.size)
	for _, cell := range s.cells {
		cells = append(cells, int(cell))
	}
	return hashState(s.player, cells...)
}

func (s ConnectFourState) String() string {
	marks := map[PlayerID]string{0: ".", Player1: "X", Player2: "O"}
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < s.size; col++ {
		fmt.Fprintf(&sb, "%d ", col)
	}
	sb.WriteString("\n")
	for row := 0; row < s.size; row++ {
		sb.WriteString("|")
		for col := 0; col < s.size; col++ {
			sb.WriteString(marks[s.Cell(row, col)])
			sb.WriteString("|")
		}
		sb.WriteString("\n")
	}
	if s.Terminal() {
		if w := s.winner(); w != 0 {
			fmt.Fprintf(&sb, "%v (%s) wins", w, marks[w])
		} else {
			sb.WriteString("draw")
		}
	} else {
		fmt.Fprintf(&sb, "%v (%s) to move", s.player, marks[s.player])
	}
	return sb.String()
}
