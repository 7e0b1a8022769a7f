package handlers

import (
	"strconv"

	"dincharya/internal/models"
	"dincharya/internal/services"

	"github.com/gofiber/fiber/v2"
)

// WeatherHandler handles weather lookup requests
type WeatherHandler struct {
	weather *services.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weather *services.WeatherService) *WeatherHandler {
	return &WeatherHandler{weather: weather}
}

// Get returns current conditions for the requested coordinate. Missing or
// unparsable coordinates fall back to the default per axis, and the adapter
// itself never fails, so this endpoint always answers 200.
// GET /api/weather?lat=&lon=
func (h *WeatherHandler) Get(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		lat = services.DefaultLat
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		lon = services.DefaultLon
	}

	reading := h.weather.Current(c.Context(), &models.Location{Lat: lat, Lon: lon})
	return c.JSON(reading)
}
