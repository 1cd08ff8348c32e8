package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"gamekit/agent"
	"gamekit/game"
)

// session is one running game. A nil agent entry means that seat is played
// by a human through the API.
type session struct {
	mu     sync.Mutex
	id     string
	game   string
	state  game.State
	agents map[game.PlayerID]agent.Agent
}

// advance plays AI moves until a human is to move or the game ends.
func (s *session) advance() error {
	for !s.state.Terminal() {
		current := s.agents[s.state.Player()]
		if current == nil {
			return nil
		}
		move, err := current.ChooseMove(s.state)
		if err != nil {
			return fmt.Errorf("agent %s: %w", current.Name(), err)
		}
		next, err := s.state.Play(move)
		if err != nil {
			return fmt.Errorf("agent %s move %v: %w", current.Name(), move, err)
		}
		s.state = next
	}
	return nil
}

type store struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

func newStore() *store {
	return &store{sessions: make(map[string]*session)}
}

func (st *store) add(s *session) {
	st.mu.Lock()
	st.sessions[s.id] = s
	st.mu.Unlock()
}

func (st *store) get(id string) (*session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func newSession(req CreateGameRequest) (*session, error) {
	state, err := newState(req)
	if err != nil {
		return nil, err
	}
	return &session{
		id:    uuid.New().String(),
		game:  req.Game,
		state: state,
		agents: map[game.PlayerID]agent.Agent{
			game.Player1: newAgent(req.Player1),
			game.Player2: newAgent(req.Player2),
		},
	}, nil
}

func newState(req CreateGameRequest) (game.State, error) {
	switch req.Game {
	case "halving":
		n := req.StartingNumber
		if n == 0 {
			n = 15
		}
		return game.NewHalving(n), nil
	case "tictactoe":
		return game.NewTicTacToe(), nil
	case "nim":
		return game.NewNim(req.Piles...), nil
	case "connectfour":
		size := req.BoardSize
		if size == 0 {
			size = 4
		}
		return game.NewConnectFour(size)
	default:
		return nil, fmt.Errorf("unknown game %q", req.Game)
	}
}

// newAgent returns nil for a human seat; the API supplies those moves.
func newAgent(kind string) agent.Agent {
	switch kind {
	case "random":
		return agent.NewRandom(uint64(time.Now().UnixNano()))
	case "minimax":
		return agent.NewMinimax(agent.WithTable())
	default:
		return nil
	}
}
