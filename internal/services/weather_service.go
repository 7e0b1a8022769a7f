package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"dincharya/internal/models"

	cache "github.com/patrickmn/go-cache"
)

// Default lookup coordinate (New Delhi), used whenever the caller supplies
// no location.
const (
	DefaultLat = 28.6139
	DefaultLon = 77.2090
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// WeatherService wraps the OpenWeatherMap current-conditions endpoint.
// Its contract is "always succeeds": any failure (network, non-200 status,
// bad payload) yields a fixed fallback reading instead of an error, so a
// degraded reading never fails the enclosing request.
type WeatherService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	cache   *cache.Cache // short TTL cache keyed by coordinate
}

// NewWeatherService creates a weather service against the real provider.
func NewWeatherService(apiKey string) *WeatherService {
	return NewWeatherServiceWithBaseURL(apiKey, openWeatherBaseURL)
}

// NewWeatherServiceWithBaseURL creates a weather service against a custom
// endpoint. Used by tests.
func NewWeatherServiceWithBaseURL(apiKey, baseURL string) *WeatherService {
	return &WeatherService{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(5*time.Minute, 10*time.Minute),
	}
}

// openWeatherResponse is the slice of the provider payload we care about.
type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
}

// Current returns the current conditions at the given location, or at the
// default coordinate when loc is nil. It never returns an error.
func (s *WeatherService) Current(ctx context.Context, loc *models.Location) models.WeatherReading {
	lat, lon := DefaultLat, DefaultLon
	if loc != nil {
		lat, lon = loc.Lat, loc.Lon
	}

	cacheKey := fmt.Sprintf("%.4f,%.4f", lat, lon)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(models.WeatherReading)
	}

	reading, err := s.fetch(ctx, lat, lon)
	if err != nil {
		log.Printf("❌ Weather API error: %v", err)
		return fallbackReading()
	}

	s.cache.Set(cacheKey, reading, cache.DefaultExpiration)
	return reading
}

func (s *WeatherService) fetch(ctx context.Context, lat, lon float64) (models.WeatherReading, error) {
	url := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=metric", s.baseURL, lat, lon, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherReading{}, fmt.Errorf("HTTP %d from weather provider", resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.WeatherReading{}, fmt.Errorf("parse response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return models.WeatherReading{}, fmt.Errorf("empty weather conditions in response")
	}

	humidity := payload.Main.Humidity
	feelsLike := payload.Main.FeelsLike
	return models.WeatherReading{
		Temperature: payload.Main.Temp,
		Condition:   payload.Weather[0].Description,
		Location:    payload.Name,
		Humidity:    &humidity,
		FeelsLike:   &feelsLike,
	}, nil
}

func fallbackReading() models.WeatherReading {
	humidity := 60
	feelsLike := 26.0
	return models.WeatherReading{
		Temperature: 25.0,
		Condition:   "partly cloudy",
		Location:    "Delhi",
		Humidity:    &humidity,
		FeelsLike:   &feelsLike,
	}
}
