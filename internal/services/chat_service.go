package services

import (
	"context"
	"fmt"
	"time"

	"dincharya/internal/models"

	"github.com/google/uuid"
)

// RoutineReader is the slice of the routine store the orchestrator needs.
type RoutineReader interface {
	MostRecent(ctx context.Context, userID string) (*models.RoutineEntry, error)
}

// ChatRecorder is the slice of the chat store the orchestrator needs.
type ChatRecorder interface {
	Save(ctx context.Context, userID string, msg *models.ChatMessage) error
}

// ChatService orchestrates a chat turn: weather + most recent routine +
// clock context are assembled into a prompt, sent to the LLM with the fixed
// persona, and the exchange is persisted and returned. Any failure along the
// way aborts the turn without storing a partial record.
type ChatService struct {
	weather  *WeatherService
	llm      Completer
	routines RoutineReader
	chats    ChatRecorder
}

// NewChatService creates a new chat orchestrator
func NewChatService(weather *WeatherService, llm Completer, routines RoutineReader, chats ChatRecorder) *ChatService {
	return &ChatService{
		weather:  weather,
		llm:      llm,
		routines: routines,
		chats:    chats,
	}
}

// Chat handles one exchange for the given user. loc may be nil, in which
// case the weather lookup uses the default coordinate. There is no retry and
// no idempotency key: a client retry after a timeout may store a duplicate
// exchange under a different id.
func (s *ChatService) Chat(ctx context.Context, message, userID string, loc *models.Location) (*models.ChatMessage, error) {
	weather := s.weather.Current(ctx, loc)

	recent, err := s.routines.MostRecent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch recent routine: %w", err)
	}

	now := time.Now().UTC()
	timeOfDay := now.Format("15:04")
	date := now.Format("2006-01-02")

	chatContext := map[string]interface{}{
		"weather":        weatherContext(weather),
		"recent_routine": routineContext(recent),
		"time":           timeOfDay,
		"date":           date,
	}

	prompt := fmt.Sprintf(`Current context:
Weather: %.1f°C, %s in %s
Time: %s
Date: %s

User question: %s

Please provide a helpful recommendation considering the weather and time.`,
		weather.Temperature, weather.Condition, weather.Location, timeOfDay, date, message)

	sessionID := "dincharya_" + userID
	response, err := s.llm.Complete(ctx, sessionID, prompt)
	if err != nil {
		return nil, fmt.Errorf("llm completion: %w", err)
	}

	record := &models.ChatMessage{
		ID:        uuid.NewString(),
		Message:   message,
		Response:  response,
		Context:   chatContext,
		Timestamp: now,
	}

	if err := s.chats.Save(ctx, userID, record); err != nil {
		return nil, fmt.Errorf("persist chat: %w", err)
	}
	return record, nil
}

// weatherContext flattens a reading into the stored context shape.
func weatherContext(w models.WeatherReading) map[string]interface{} {
	m := map[string]interface{}{
		"temperature": w.Temperature,
		"condition":   w.Condition,
		"location":    w.Location,
	}
	if w.Humidity != nil {
		m["humidity"] = *w.Humidity
	}
	if w.FeelsLike != nil {
		m["feels_like"] = *w.FeelsLike
	}
	return m
}

// routineContext flattens the recent entry, or returns nil when the user has
// no routine history yet.
func routineContext(entry *models.RoutineEntry) interface{} {
	if entry == nil {
		return nil
	}
	return map[string]interface{}(routineToDocument(entry))
}
