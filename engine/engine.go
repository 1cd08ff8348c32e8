package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"gamekit/agent"
	"gamekit/experiments/metrics"
	"gamekit/game"
	"gamekit/utils"
)

// MaxMoves caps a run so a misbehaving game cannot loop forever.
const MaxMoves = 10000

// Engine alternates two agents on a game until it reaches a terminal state.
type Engine struct {
	state  game.State
	agents map[game.PlayerID]agent.Agent
}

// New returns an engine for a game starting at state, with first playing as
// player 1 and second as player 2.
func New(state game.State, first, second agent.Agent) *Engine {
	return &Engine{
		state: state,
		agents: map[game.PlayerID]agent.Agent{
			game.Player1: first,
			game.Player2: second,
		},
	}
}

// State returns the current state.
func (e *Engine) State() game.State { return e.state }

// Run plays the game to completion and returns the winner (0 for a draw)
// together with per-game and per-move metrics. The engine re-checks every
// agent's move against the legal-move list before applying it.
func (e *Engine) Run() (game.PlayerID, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.state.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Stringer("player", e.state.Player()).Msg("game starting")

	for step := 1; !e.state.Terminal(); step++ {
		if step > MaxMoves {
			return 0, gameMetric, moveMetrics, fmt.Errorf("no terminal state after %d moves", MaxMoves)
		}

		player := e.state.Player()
		current := e.agents[player]

		start := time.Now()
		move, err := current.ChooseMove(e.state)
		elapsed := time.Since(start)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("agent %s: %w", current.Name(), err)
		}
		if utils.FindIndex(e.state.LegalMoves(), move) < 0 {
			return 0, gameMetric, moveMetrics,
				fmt.Errorf("agent %s returned an illegal move %v: %w", current.Name(), move, game.ErrIllegalMove)
		}

		next, err := e.state.Play(move)
		if err != nil {
			return 0, gameMetric, moveMetrics, fmt.Errorf("agent %s move %v: %w", current.Name(), move, err)
		}
		e.state = next

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:     step,
			Player:   player,
			Move:     move.String(),
			Duration: elapsed,
		})
		log.Debug().Int("step", step).Stringer("player", player).Stringer("move", move).Msg("move played")
	}

	winner, err := game.Winner(e.state)
	if err != nil {
		return 0, gameMetric, moveMetrics, err
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Winner = winner

	log.Debug().Stringer("winner", winner).Int("moves", gameMetric.TotalMoves).Msg("game over")
	return winner, gameMetric, moveMetrics, nil
}
