package agent

import (
	"fmt"
	"sync"

	"gamekit/game"
)

// Minimax chooses moves by exhaustive adversarial search. Each state's value
// is the negation of the best value among its children, so a single
// maximization per ply plays both sides optimally. Among equally good moves
// it keeps the first in enumeration order.
type Minimax struct {
	name     string
	maxDepth int

	mu    sync.RWMutex
	table map[game.StateHash]game.Outcome
}

type MinimaxOption func(*Minimax)

// WithName overrides the default display name.
func WithName(name string) MinimaxOption {
	return func(m *Minimax) {
		if name != "" {
			m.name = name
		}
	}
}

// WithMaxDepth bounds the search depth. A state at the cutoff scores as a
// draw, the convention for an unfinished game.
func WithMaxDepth(depth int) MinimaxOption {
	return func(m *Minimax) {
		if depth > 0 {
			m.maxDepth = depth
		}
	}
}

// WithTable enables a transposition table shared across calls. The table is
// only consulted for full-depth searches, so every cached value is exact.
// Reads and writes are mutex-guarded; the agent is safe to share between
// concurrent games.
func WithTable() MinimaxOption {
	return func(m *Minimax) {
		m.table = make(map[game.StateHash]game.Outcome)
	}
}

func NewMinimax(options ...MinimaxOption) *Minimax {
	m := &Minimax{name: "Minimax AI"}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Name() string { return m.name }

// ChooseMove returns a legal move whose searched value is best for the
// player to move at state. The call never mutates state; repeated calls on
// the same state return moves of equal value.
func (m *Minimax) ChooseMove(state game.State) (game.Move, error) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrTerminalState
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	best := moves[0]
	bestValue := game.Loss - 1 // below every real outcome
	for _, move := range moves {
		child, err := state.Play(move)
		if err != nil {
			return nil, fmt.Errorf("searching %v: %w", move, err)
		}
		childValue, err := m.value(child, 1)
		if err != nil {
			return nil, err
		}
		if v := childValue.Invert(); v > bestValue {
			bestValue = v
			best = move
		}
		if bestValue == game.Win {
			break // no move can do better
		}
	}
	return best, nil
}

// Value computes the searched value of state from the perspective of the
// player to move. Terminal states report their own outcome.
func (m *Minimax) Value(state game.State) (game.Outcome, error) {
	return m.value(state, 0)
}

func (m *Minimax) value(state game.State, depth int) (game.Outcome, error) {
	if state.Terminal() {
		return state.Outcome(state.Player())
	}
	if m.maxDepth > 0 && depth >= m.maxDepth {
		return game.Draw, nil
	}

	// Depth-limited values depend on the remaining budget, so only
	// full-depth searches may use the table.
	exact := m.maxDepth == 0
	hash := state.Hash()
	if exact {
		if v, ok := m.lookup(hash); ok {
			return v, nil
		}
	}

	best := game.Loss
	for _, move := range state.LegalMoves() {
		child, err := state.Play(move)
		if err != nil {
			return 0, fmt.Errorf("searching %v: %w", move, err)
		}
		childValue, err := m.value(child, depth+1)
		if err != nil {
			return 0, err
		}
		if v := childValue.Invert(); v > best {
			best = v
		}
		if best == game.Win {
			break
		}
	}

	if exact {
		m.store(hash, best)
	}
	return best, nil
}

func (m *Minimax) lookup(h game.StateHash) (game.Outcome, bool) {
	if m.table == nil {
		return 0, false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.table[h]
	return v, ok
}

func (m *Minimax) store(h game.StateHash, v game.Outcome) {
	if m.table == nil {
		return
	}
	m.mu.Lock()
	m.table[h] = v
	m.mu.Unlock()
}
