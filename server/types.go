package server

// Request types

type CreateGameRequest struct {
	Game    string `json:"game" validate:"required,oneof=halving tictactoe nim connectfour"`
	Player1 string `json:"player1" validate:"required,oneof=human random minimax"`
	Player2 string `json:"player2" validate:"required,oneof=human random minimax"`

	// Game-specific setup, each optional with a sensible default.
	StartingNumber int   `json:"startingNumber,omitempty" validate:"omitempty,min=1"` // halving, default 15
	Piles          []int `json:"piles,omitempty" validate:"omitempty,dive,min=1"`     // nim, default 1,3,5,7
	BoardSize      int   `json:"boardSize,omitempty" validate:"omitempty,oneof=4 5"`  // connectfour, default 4
}

// MoveRequest plays a human move by its index in the moves list of the last
// GameResponse. Move enumeration order is deterministic, so the index is
// stable between the read and the play.
type MoveRequest struct {
	Move int `json:"move" validate:"min=0"`
}

// Response types

type GameResponse struct {
	SessionID string   `json:"sessionId"`
	Game      string   `json:"game"`
	Board     string   `json:"board"`
	Player    int      `json:"player"`
	Moves     []string `json:"moves"`
	Over      bool     `json:"over"`
	Winner    *int     `json:"winner,omitempty"` // 0 for a draw, absent while running
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
