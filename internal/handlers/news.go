package handlers

import (
	"dincharya/internal/models"

	"github.com/gofiber/fiber/v2"
)

// NewsHandler serves the mock news feed
type NewsHandler struct{}

// NewNewsHandler creates a new news handler
func NewNewsHandler() *NewsHandler {
	return &NewsHandler{}
}

// mockNews is the fixed feed. Same three items on every call.
var mockNews = []models.NewsItem{
	{Title: "Tech Innovation Trends 2025", Source: "TechNews", Time: "2 hours ago"},
	{Title: "Health & Wellness Tips", Source: "HealthToday", Time: "4 hours ago"},
	{Title: "Latest Economic Updates", Source: "BusinessDaily", Time: "6 hours ago"},
}

// List returns the mock news feed
// GET /api/news
func (h *NewsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"news": mockNews})
}
