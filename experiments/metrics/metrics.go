package metrics

import (
	"time"

	"gamekit/game"
)

// AgentConfig describes one agent participating in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // "random" or "minimax"
	MaxDepth int    // minimax only; 0 means full depth
}

// MoveMetric records a single move of a game.
type MoveMetric struct {
	Step     int
	Player   game.PlayerID
	Move     string
	Duration time.Duration
}

// GameMetric records one complete game.
type GameMetric struct {
	StartingPlayer game.PlayerID
	Winner         game.PlayerID // 0 for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// GameRecord ties a game's metrics to the matchup that produced it.
type GameRecord struct {
	ID      int
	Game    string // game name, e.g. "halving"
	Initial string // game-specific initial setup, e.g. starting number
	Agent1  int    // AgentConfig.ID
	Agent2  int    // AgentConfig.ID
	GameMetric
}

// MoveRecord ties a move's metrics to its game.
type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}
