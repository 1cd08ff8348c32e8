// Package experiments runs batches of agent-vs-agent games and stores the
// results as CSV for statistical analysis.
package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"gamekit/agent"
	"gamekit/engine"
	"gamekit/experiments/metrics"
	"gamekit/game"
)

// Config controls a simulation run.
type Config struct {
	GamesPerMatchup int
	Workers         int
	OutDir          string
	Seed            uint64
}

const (
	defaultGames   = 200
	defaultWorkers = 8

	// Randomized starting numbers for the halving game.
	minInitial = 10
	maxInitial = 20
)

var agentConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: "random"},
	{ID: 2, Kind: "minimax"},
}

// matchups crosses the agent kinds both ways plus the mirror matches, the
// same grid for every game type.
var matchups = [][2]metrics.AgentConfig{
	{agentConfigs[0], agentConfigs[1]},
	{agentConfigs[1], agentConfigs[1]},
	{agentConfigs[1], agentConfigs[0]},
	{agentConfigs[0], agentConfigs[0]},
}

type task struct {
	game    string
	config1 metrics.AgentConfig
	config2 metrics.AgentConfig
	seed    uint64
}

type result struct {
	gameName   string
	initial    string
	config1    metrics.AgentConfig
	config2    metrics.AgentConfig
	gameMetric metrics.GameMetric
	moves      []metrics.MoveMetric
}

// Run executes every matchup for the halving game (randomized starting
// numbers) and tic-tac-toe, then writes agent configs, game records and move
// records as CSV.
func Run(cfg Config) error {
	if cfg.GamesPerMatchup <= 0 {
		cfg.GamesPerMatchup = defaultGames
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkers
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "results"
	}

	seeder := rand.New(rand.NewSource(cfg.Seed))
	var tasks []task
	for _, gameName := range []string{"halving", "tictactoe"} {
		for _, matchup := range matchups {
			for i := 0; i < cfg.GamesPerMatchup; i++ {
				tasks = append(tasks, task{
					game:    gameName,
					config1: matchup[0],
					config2: matchup[1],
					seed:    seeder.Uint64(),
				})
			}
		}
	}

	log.Info().Int("games", len(tasks)).Int("workers", cfg.Workers).Msg("starting simulations")

	results, err := runPool(tasks, cfg.Workers)
	if err != nil {
		return err
	}

	return write(cfg.OutDir, results)
}

// runPool fans the tasks out to a fixed set of worker goroutines and
// collects results under a lock.
func runPool(tasks []task, workers int) ([]result, error) {
	queue := make(chan task, len(tasks))
	for _, t := range tasks {
		queue <- t
	}
	close(queue)

	var (
		mu       sync.Mutex
		results  []result
		firstErr error
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range queue {
				r, err := playTask(t)
				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					results = append(results, r)
					if len(results)%25 == 0 {
						log.Info().Int("completed", len(results)).Msg("simulation progress")
					}
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return results, firstErr
}

func playTask(t task) (result, error) {
	rng := rand.New(rand.NewSource(t.seed))

	var (
		state   game.State
		initial string
	)
	switch t.game {
	case "halving":
		n := minInitial + rng.Intn(maxInitial-minInitial+1)
		state = game.NewHalving(n)
		initial = fmt.Sprintf("%d", n)
	case "tictactoe":
		state = game.NewTicTacToe()
	default:
		return result{}, fmt.Errorf("unknown game %q", t.game)
	}

	first := buildAgent(t.config1, rng.Uint64())
	second := buildAgent(t.config2, rng.Uint64())

	_, gameMetric, moves, err := engine.New(state, first, second).Run()
	if err != nil {
		return result{}, fmt.Errorf("%s game: %w", t.game, err)
	}

	return result{
		gameName:   t.game,
		initial:    initial,
		config1:    t.config1,
		config2:    t.config2,
		gameMetric: gameMetric,
		moves:      moves,
	}, nil
}

func buildAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case "minimax":
		options := []agent.MinimaxOption{agent.WithTable()}
		if config.MaxDepth > 0 {
			options = append(options, agent.WithMaxDepth(config.MaxDepth))
		}
		return agent.NewMinimax(options...)
	default:
		return agent.NewRandom(seed)
	}
}

func write(outDir string, results []result) error {
	writer, err := metrics.NewWriter(outDir, "simulation")
	if err != nil {
		return fmt.Errorf("failed to create results writer: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	for i, r := range results {
		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Game:       r.gameName,
			Initial:    r.initial,
			Agent1:     r.config1.ID,
			Agent2:     r.config2.ID,
			GameMetric: r.gameMetric,
		})
		for _, m := range r.moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: m})
		}
	}

	if err := writer.WriteAgentConfigs(agentConfigs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Str("dir", writer.Dir()).Int("games", len(gameRecords)).Msg("results stored")
	return nil
}
