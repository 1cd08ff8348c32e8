// Package cli is the interactive terminal front end: pick a game, pick the
// agents, play to the end.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"gamekit/agent"
	"gamekit/engine"
	"gamekit/game"
)

type CLI struct {
	rl  *readline.Instance
	out io.Writer
}

func New() (*CLI, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return &CLI{rl: rl, out: os.Stdout}, nil
}

// Run loops over the game menu until the user quits.
func (c *CLI) Run() error {
	defer c.rl.Close()

	fmt.Fprintln(c.out, "Welcome to gamekit!")
	for {
		fmt.Fprintln(c.out, "\nChoose a game:")
		fmt.Fprintln(c.out, "1. Halving game")
		fmt.Fprintln(c.out, "2. Tic-tac-toe")
		fmt.Fprintln(c.out, "3. Nim")
		fmt.Fprintln(c.out, "4. Connect Four")
		fmt.Fprintln(c.out, "5. Quit")

		choice, err := c.prompt("choice (1-5)> ")
		if err != nil {
			return nil
		}

		var state game.State
		switch choice {
		case "1":
			state, err = c.setupHalving()
		case "2":
			state = game.NewTicTacToe()
		case "3":
			state, err = c.setupNim()
		case "4":
			state, err = c.setupConnectFour()
		case "5", "q", "quit":
			fmt.Fprintln(c.out, "Thanks for playing!")
			return nil
		default:
			fmt.Fprintln(c.out, "please enter a number between 1 and 5")
			continue
		}
		if err != nil {
			if abandoned(err) {
				return nil
			}
			fmt.Fprintf(c.out, "error: %v\n", err)
			continue
		}

		if err := c.play(state); err != nil {
			if abandoned(err) {
				fmt.Fprintln(c.out, "\ngame abandoned")
				continue
			}
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

func (c *CLI) play(state game.State) error {
	first, err := c.chooseAgent(game.Player1)
	if err != nil {
		return err
	}
	second, err := c.chooseAgent(game.Player2)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "\n%s vs %s\n", first.Name(), second.Name())
	fmt.Fprintln(c.out, strings.Repeat("=", 40))

	eng := engine.New(state, first, second)
	winner, metric, _, err := eng.Run()
	if err != nil {
		return err
	}

	if str, ok := eng.State().(fmt.Stringer); ok {
		fmt.Fprintf(c.out, "\n%s\n", str)
	}
	if winner == 0 {
		fmt.Fprintf(c.out, "draw after %d moves\n", metric.TotalMoves)
	} else {
		fmt.Fprintf(c.out, "%v wins after %d moves\n", winner, metric.TotalMoves)
	}
	return nil
}

func (c *CLI) chooseAgent(p game.PlayerID) (agent.Agent, error) {
	fmt.Fprintf(c.out, "\nChoose agent for %v:\n", p)
	fmt.Fprintln(c.out, "1. Human")
	fmt.Fprintln(c.out, "2. Random AI")
	fmt.Fprintln(c.out, "3. Minimax AI")

	for {
		choice, err := c.prompt("choice (1-3)> ")
		if err != nil {
			return nil, err
		}
		switch choice {
		case "1":
			return agent.NewHuman("", c.selector()), nil
		case "2":
			return agent.NewRandom(randomSeed()), nil
		case "3":
			return agent.NewMinimax(agent.WithTable()), nil
		default:
			fmt.Fprintln(c.out, "please enter 1, 2 or 3")
		}
	}
}

// selector renders the position and the numbered move list, then reads a
// choice. Out-of-range answers return an out-of-range index so the human
// agent asks again.
func (c *CLI) selector() agent.Selector {
	return func(state game.State, moves []game.Move) (int, error) {
		if str, ok := state.(fmt.Stringer); ok {
			fmt.Fprintf(c.out, "\n%s\n", str)
		}
		fmt.Fprintln(c.out, "available moves:")
		for i, m := range moves {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, m)
		}

		line, err := c.prompt(fmt.Sprintf("move (1-%d)> ", len(moves)))
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "please enter a valid number")
			return -1, nil
		}
		return choice - 1, nil
	}
}

func (c *CLI) setupHalving() (game.State, error) {
	line, err := c.prompt("starting number (default 15)> ")
	if err != nil {
		return nil, err
	}
	n := 15
	if line != "" {
		parsed, err := strconv.Atoi(line)
		if err != nil || parsed < 1 {
			fmt.Fprintln(c.out, "invalid number, using 15")
		} else {
			n = parsed
		}
	}
	return game.NewHalving(n), nil
}

func (c *CLI) setupNim() (game.State, error) {
	line, err := c.prompt("pile sizes, comma separated (default 1,3,5,7)> ")
	if err != nil {
		return nil, err
	}
	piles := parsePiles(line)
	if line != "" && piles == nil {
		fmt.Fprintln(c.out, "invalid piles, using default")
	}
	return game.NewNim(piles...), nil
}

func (c *CLI) setupConnectFour() (game.State, error) {
	line, err := c.prompt("board size, 4 or 5 (default 4)> ")
	if err != nil {
		return nil, err
	}
	size := 4
	if line == "5" {
		size = 5
	}
	return game.NewConnectFour(size)
}

func (c *CLI) prompt(label string) (string, error) {
	c.rl.SetPrompt(label)
	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parsePiles parses a comma-separated list of positive pile sizes. It
// returns nil if the input is empty or malformed.
func parsePiles(input string) []int {
	var piles []int
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil
		}
		if n > 0 {
			piles = append(piles, n)
		}
	}
	return piles
}

func randomSeed() uint64 { return uint64(time.Now().UnixNano()) }

func abandoned(err error) bool {
	return errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF)
}
