package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func createGame(t *testing.T, app *fiber.App, body CreateGameRequest) GameResponse {
	t.Helper()
	status, raw := request(t, app, http.MethodPost, "/api/v1/games", body)
	require.Equal(t, http.StatusCreated, status, "Create should succeed: %s", raw)

	var game GameResponse
	require.NoError(t, json.Unmarshal(raw, &game))
	return game
}

func TestHealth(t *testing.T) {
	app := New()

	status, raw := request(t, app, http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestCreateGame(t *testing.T) {
	t.Run("human versus human starts without any auto-play", func(t *testing.T) {
		app := New()

		game := createGame(t, app, CreateGameRequest{
			Game: "halving", Player1: "human", Player2: "human", StartingNumber: 10,
		})

		require.NotEmpty(t, game.SessionID)
		require.Equal(t, "halving", game.Game)
		require.Equal(t, 1, game.Player, "Player 1 should be to move on a fresh game")
		require.Equal(t, []string{"subtract", "halve"}, game.Moves)
		require.False(t, game.Over)
		require.Nil(t, game.Winner)
	})

	t.Run("an AI first player moves before the response", func(t *testing.T) {
		app := New()

		game := createGame(t, app, CreateGameRequest{
			Game: "tictactoe", Player1: "minimax", Player2: "human",
		})

		require.Equal(t, -1, game.Player, "The AI move should already be played")
		require.Len(t, game.Moves, 8)
		require.False(t, game.Over)
	})

	t.Run("AI versus AI plays out to a tic-tac-toe draw", func(t *testing.T) {
		app := New()

		game := createGame(t, app, CreateGameRequest{
			Game: "tictactoe", Player1: "minimax", Player2: "minimax",
		})

		require.True(t, game.Over)
		require.Empty(t, game.Moves)
		require.NotNil(t, game.Winner)
		require.Equal(t, 0, *game.Winner, "Perfect play should draw")
	})

	t.Run("rejects an unknown game", func(t *testing.T) {
		app := New()

		status, _ := request(t, app, http.MethodPost, "/api/v1/games", CreateGameRequest{
			Game: "chess", Player1: "human", Player2: "human",
		})

		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rejects an invalid board size", func(t *testing.T) {
		app := New()

		status, _ := request(t, app, http.MethodPost, "/api/v1/games", CreateGameRequest{
			Game: "connectfour", Player1: "human", Player2: "human", BoardSize: 7,
		})

		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestMakeMove(t *testing.T) {
	t.Run("plays the indexed move and hands the turn over", func(t *testing.T) {
		app := New()
		created := createGame(t, app, CreateGameRequest{
			Game: "halving", Player1: "human", Player2: "human", StartingNumber: 10,
		})

		status, raw := request(t, app,
			http.MethodPost, "/api/v1/games/"+created.SessionID+"/moves", MoveRequest{Move: 1})

		require.Equal(t, http.StatusOK, status)
		var game GameResponse
		require.NoError(t, json.Unmarshal(raw, &game))
		require.Equal(t, -1, game.Player, "Turn should pass to player 2")
		require.False(t, game.Over)
	})

	t.Run("human move triggers the AI reply", func(t *testing.T) {
		app := New()
		created := createGame(t, app, CreateGameRequest{
			Game: "tictactoe", Player1: "human", Player2: "minimax",
		})

		status, raw := request(t, app,
			http.MethodPost, "/api/v1/games/"+created.SessionID+"/moves", MoveRequest{Move: 0})

		require.Equal(t, http.StatusOK, status)
		var game GameResponse
		require.NoError(t, json.Unmarshal(raw, &game))
		require.Equal(t, 1, game.Player, "The AI should answer and return the turn")
		require.Len(t, game.Moves, 7, "Two marks should be on the board")
	})

	t.Run("rejects an out-of-range move index", func(t *testing.T) {
		app := New()
		created := createGame(t, app, CreateGameRequest{
			Game: "halving", Player1: "human", Player2: "human", StartingNumber: 10,
		})

		status, _ := request(t, app,
			http.MethodPost, "/api/v1/games/"+created.SessionID+"/moves", MoveRequest{Move: 99})

		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("rejects moves once the game is over", func(t *testing.T) {
		app := New()
		created := createGame(t, app, CreateGameRequest{
			Game: "tictactoe", Player1: "minimax", Player2: "minimax",
		})
		require.True(t, created.Over)

		status, _ := request(t, app,
			http.MethodPost, "/api/v1/games/"+created.SessionID+"/moves", MoveRequest{Move: 0})

		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("unknown sessions return not found", func(t *testing.T) {
		app := New()

		status, _ := request(t, app,
			http.MethodPost, "/api/v1/games/nope/moves", MoveRequest{Move: 0})

		require.Equal(t, http.StatusNotFound, status)
	})
}

func TestGetGame(t *testing.T) {
	t.Run("returns the current state of a session", func(t *testing.T) {
		app := New()
		created := createGame(t, app, CreateGameRequest{
			Game: "nim", Player1: "human", Player2: "human", Piles: []int{1, 3},
		})

		status, raw := request(t, app, http.MethodGet, "/api/v1/games/"+created.SessionID, nil)

		require.Equal(t, http.StatusOK, status)
		var game GameResponse
		require.NoError(t, json.Unmarshal(raw, &game))
		require.Equal(t, created.SessionID, game.SessionID)
		require.Len(t, game.Moves, 4)
	})

	t.Run("unknown sessions return not found", func(t *testing.T) {
		app := New()

		status, _ := request(t, app, http.MethodGet, "/api/v1/games/missing", nil)

		require.Equal(t, http.StatusNotFound, status)
	})
}
