package game

import (
	"fmt"
	"strings"
)

// CellMove places the mover's mark at a row and column.
type CellMove struct {
	Row int
	Col int
}

func (m CellMove) String() string { return fmt.Sprintf("row %d, col %d", m.Row, m.Col) }

// TicTacToeState is a 3x3 tic-tac-toe position. Player 1 marks X, player 2
// marks O; three in a row wins and a full board without a winner is a draw.
type TicTacToeState struct {
	board  [3][3]PlayerID // 0 = empty cell
	player PlayerID
}

// NewTicTacToe returns an empty board with player 1 to move.
func NewTicTacToe() TicTacToeState {
	return TicTacToeState{player: Player1}
}

// Cell returns the mark at a position, or 0 for an empty cell.
func (s TicTacToeState) Cell(row, col int) PlayerID { return s.board[row][col] }

func (s TicTacToeState) Player() PlayerID { return s.player }

func (s TicTacToeState) LegalMoves() []Move {
	if s.Terminal() {
		return nil
	}
	var moves []Move
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.board[r][c] == 0 {
				moves = append(moves, CellMove{Row: r, Col: c})
			}
		}
	}
	return moves
}

func (s TicTacToeState) Play(m Move) (State, error) {
	cell, ok := m.(CellMove)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, m)
	}
	if s.Terminal() {
		return nil, fmt.Errorf("%w: game is over", ErrIllegalMove)
	}
	if cell.Row < 0 || cell.Row > 2 || cell.Col < 0 || cell.Col > 2 {
		return nil, fmt.Errorf("%w: %v is off the board", ErrIllegalMove, cell)
	}
	if s.board[cell.Row][cell.Col] != 0 {
		return nil, fmt.Errorf("%w: %v is occupied", ErrIllegalMove, cell)
	}
	next := s // array board copies by value
	next.board[cell.Row][cell.Col] = s.player
	next.player = s.player.Opponent()
	return next, nil
}

func (s TicTacToeState) Terminal() bool {
	if s.winner() != 0 {
		return true
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if s.board[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

func (s TicTacToeState) Outcome(p PlayerID) (Outcome, error) {
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

func (s TicTacToeState) winner() PlayerID {
	b := &s.board
	for i := 0; i < 3; i++ {
		if b[i][0] != 0 && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != 0 && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[1][1] != 0 {
		if b[0][0] == b[1][1] && b[1][1] == b[2][2] {
			return b[1][1]
		}
		if b[0][2] == b[1][1] && b[1][1] == b[2][0] {
			return b[1][1]
		}
	}
	return 0
}

func (s TicTacToeState) Hash() StateHash {
	cells := make([]int, 0, 9)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cells = append(cells, int(s.board[r][c]))
		}
	}
	return hashState(s.player, cells...)
}

func (s TicTacToeState) String() string {
	marks := map[PlayerID]string{0: " ", Player1: "X", Player2: "O"}
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			fmt.Fprintf(&sb, " %s ", marks[s.board[r][c]])
			if c < 2 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
		if r < 2 {
			sb.WriteString("-----------\n")
		}
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
