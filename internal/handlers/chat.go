package handlers

import (
	"context"
	"log"
	"strconv"

	"dincharya/internal/logging"
	"dincharya/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ChatOrchestrator runs one chat turn end to end.
type ChatOrchestrator interface {
	Chat(ctx context.Context, message, userID string, loc *models.Location) (*models.ChatMessage, error)
}

// ChatHistorian lists past exchanges for a user.
type ChatHistorian interface {
	History(ctx context.Context, userID string, limit int64) []models.ChatMessage
}

// ChatHandler handles HTTP requests for chat operations
type ChatHandler struct {
	orchestrator ChatOrchestrator
	history      ChatHistorian
}

// NewChatHandler creates a new chat handler
func NewChatHandler(orchestrator ChatOrchestrator, history ChatHistorian) *ChatHandler {
	return &ChatHandler{
		orchestrator: orchestrator,
		history:      history,
	}
}

// Chat runs a chat exchange and returns the stored record
// POST /api/chat
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
		})
	}
	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "message is required",
		})
	}
	if req.UserID == "" {
		req.UserID = models.DefaultUserID
	}

	record, err := h.orchestrator.Chat(c.Context(), req.Message, req.UserID, req.Location)
	if err != nil {
		log.Printf("❌ Chat error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "AI service error: " + err.Error(),
		})
	}

	logging.WithRequest("/api/chat", req.UserID).Info("chat exchange stored", "chat_id", record.ID)
	return c.JSON(record)
}

// History returns the user's most recent exchanges, newest first. The listing
// fails open: any internal error yields an empty list with HTTP 200.
// GET /api/chat/history/:user_id?limit=10
func (h *ChatHandler) History(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return c.JSON(h.history.History(c.Context(), userID, limit))
}
