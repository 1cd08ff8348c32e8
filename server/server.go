// Package server exposes the games over a small JSON API. Serializing
// states to user-facing representations happens here, never in the core.
package server

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"gamekit/game"
)

var validate = validator.New()

type handler struct {
	store *store
}

// New builds the fiber application with all routes registered.
func New() *fiber.App {
	h := &handler{store: newStore()}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} ${method} ${path} ${latency}\n",
	}))

	app.Get("/health", h.Health)

	api := app.Group("/api/v1")
	api.Post("/games", h.CreateGame)
	api.Get("/games/:sessionId", h.GetGame)
	api.Post("/games/:sessionId/moves", h.MakeMove)

	return app
}

func (h *handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *handler) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
	}

	s, err := newSession(req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "failed to create game",
			Details: err.Error(),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.advance(); err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("agent move failed")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "agent move failed",
		})
	}
	h.store.add(s)

	return c.Status(fiber.StatusCreated).JSON(h.buildResponse(s))
}

func (h *handler) GetGame(c *fiber.Ctx) error {
	s, ok := h.store.get(c.Params("sessionId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "game not found"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(h.buildResponse(s))
}

func (h *handler) MakeMove(c *fiber.Ctx) error {
	s, ok := h.store.get(c.Params("sessionId"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "game not found"})
	}

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request body",
			Details: err.Error(),
		})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Terminal() {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "game is already over"})
	}
	if s.agents[s.state.Player()] != nil {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: "not a human player's turn"})
	}

	moves := s.state.LegalMoves()
	if req.Move >= len(moves) {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "illegal move",
			Details: fmt.Sprintf("move index %d out of %d legal moves", req.Move, len(moves)),
		})
	}

	next, err := s.state.Play(moves[req.Move])
	if err != nil {
		status := fiber.StatusInternalServerError
		if errors.Is(err, game.ErrIllegalMove) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(ErrorResponse{Error: "illegal move", Details: err.Error()})
	}
	s.state = next

	if err := s.advance(); err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("agent move failed")
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "agent move failed",
		})
	}

	return c.JSON(h.buildResponse(s))
}

// buildResponse renders a session; callers hold the session lock.
func (h *handler) buildResponse(s *session) GameResponse {
	moves := s.state.LegalMoves()
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}

	resp := GameResponse{
		SessionID: s.id,
		Game:      s.game,
		Player:    int(s.state.Player()),
		Moves:     names,
		Over:      s.state.Terminal(),
	}
	if str, ok := s.state.(fmt.Stringer); ok {
		resp.Board = str.String()
	}
	if resp.Over {
		if winner, err := game.Winner(s.state); err == nil {
			w := int(winner)
			resp.Winner = &w
		}
	}
	return resp
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
}
