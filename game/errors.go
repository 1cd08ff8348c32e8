package game

import "errors"

var (
	// ErrIllegalMove reports a move that is not legal for the state it was
	// played on.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNotTerminal reports an outcome query on a game that is not over.
	ErrNotTerminal = errors.New("state is not terminal")
)
