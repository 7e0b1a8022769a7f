package handlers

import (
	"context"
	"log"
	"strconv"

	"dincharya/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RoutineKeeper persists and lists daily routine entries.
type RoutineKeeper interface {
	Save(ctx context.Context, req *models.RoutineRequest) (*models.RoutineEntry, error)
	History(ctx context.Context, userID string, limit int64) ([]models.RoutineEntry, error)
}

// RoutineHandler handles HTTP requests for routine tracking
type RoutineHandler struct {
	store RoutineKeeper
}

// NewRoutineHandler creates a new routine handler
func NewRoutineHandler(store RoutineKeeper) *RoutineHandler {
	return &RoutineHandler{store: store}
}

// Save stores a daily routine entry and returns it
// POST /api/routine
func (h *RoutineHandler) Save(c *fiber.Ctx) error {
	var req models.RoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "Invalid request body",
		})
	}
	if req.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "date is required",
		})
	}

	entry, err := h.store.Save(c.Context(), &req)
	if err != nil {
		log.Printf("❌ Routine save error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to save routine: " + err.Error(),
		})
	}

	return c.JSON(entry)
}

// History returns the user's routine entries, newest first
// GET /api/routine/:user_id?limit=7
func (h *RoutineHandler) History(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	limit, err := strconv.ParseInt(c.Query("limit", "7"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 7
	}

	entries, err := h.store.History(c.Context(), userID, limit)
	if err != nil {
		log.Printf("❌ Routine history error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"detail": "Failed to load routine history: " + err.Error(),
		})
	}

	return c.JSON(entries)
}
