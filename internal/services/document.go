package services

import (
	"fmt"
	"time"

	"dincharya/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stored documents keep their timestamp as RFC3339 text rather than a BSON
// date. Reads must therefore parse the text back, and must tolerate legacy or
// partially written records: a missing or unparsable timestamp becomes "now",
// and chat records get empty strings / a fresh id for missing fields instead
// of being rejected.

func chatToDocument(msg *models.ChatMessage) bson.M {
	doc := bson.M{
		"id":        msg.ID,
		"message":   msg.Message,
		"response":  msg.Response,
		"timestamp": msg.Timestamp.UTC().Format(time.RFC3339),
	}
	if msg.Context != nil {
		doc["context"] = msg.Context
	}
	return doc
}

// chatFromDocument rebuilds a ChatMessage from a raw stored document. Missing
// fields are defaulted; a field of the wrong type marks the record malformed.
func chatFromDocument(doc bson.M) (*models.ChatMessage, error) {
	id, err := optionalString(doc, "id")
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	message, err := optionalString(doc, "message")
	if err != nil {
		return nil, err
	}
	response, err := optionalString(doc, "response")
	if err != nil {
		return nil, err
	}

	var context map[string]interface{}
	if raw, ok := doc["context"]; ok && raw != nil {
		m, ok := raw.(bson.M)
		if !ok {
			plain, isMap := raw.(map[string]interface{})
			if !isMap {
				return nil, fmt.Errorf("context is not a document: %T", raw)
			}
			m = bson.M(plain)
		}
		context = map[string]interface{}(m)
	}

	return &models.ChatMessage{
		ID:        id,
		Message:   message,
		Response:  response,
		Context:   context,
		Timestamp: parseTimestamp(doc["timestamp"]),
	}, nil
}

func routineToDocument(entry *models.RoutineEntry) bson.M {
	doc := bson.M{
		"id":        entry.ID,
		"user_id":   entry.UserID,
		"date":      entry.Date,
		"timestamp": entry.Timestamp.UTC().Format(time.RFC3339),
	}
	if entry.SleepHours != nil {
		doc["sleep_hours"] = *entry.SleepHours
	}
	if entry.WaterGlasses != nil {
		doc["water_glasses"] = *entry.WaterGlasses
	}
	if entry.ExerciseMinutes != nil {
		doc["exercise_minutes"] = *entry.ExerciseMinutes
	}
	if entry.Mood != nil {
		doc["mood"] = *entry.Mood
	}
	return doc
}

func routineFromDocument(doc bson.M) (*models.RoutineEntry, error) {
	id, err := optionalString(doc, "id")
	if err != nil {
		return nil, err
	}
	if id == "" {
		id = uuid.NewString()
	}

	userID, err := optionalString(doc, "user_id")
	if err != nil {
		return nil, err
	}
	if userID == "" {
		userID = models.DefaultUserID
	}

	date, err := optionalString(doc, "date")
	if err != nil {
		return nil, err
	}

	sleepHours, err := optionalFloat(doc, "sleep_hours")
	if err != nil {
		return nil, err
	}
	waterGlasses, err := optionalInt(doc, "water_glasses")
	if err != nil {
		return nil, err
	}
	exerciseMinutes, err := optionalInt(doc, "exercise_minutes")
	if err != nil {
		return nil, err
	}

	var mood *string
	if raw, ok := doc["mood"]; ok && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("mood is not a string: %T", raw)
		}
		mood = &s
	}

	return &models.RoutineEntry{
		ID:              id,
		UserID:          userID,
		Date:            date,
		SleepHours:      sleepHours,
		WaterGlasses:    waterGlasses,
		ExerciseMinutes: exerciseMinutes,
		Mood:            mood,
		Timestamp:       parseTimestamp(doc["timestamp"]),
	}, nil
}

// parseTimestamp turns a stored timestamp value back into an instant.
// Text is parsed as RFC3339 (a trailing "Z" reads as UTC); records written
// before the normalizer existed may hold a BSON date. Anything else, or a
// missing value, is treated as "now" rather than rejected.
func parseTimestamp(raw interface{}) time.Time {
	switch v := raw.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, v); err == nil {
			return ts
		}
		// Offset-less text from older writers.
		if ts, err := time.Parse("2006-01-02T15:04:05", v); err == nil {
			return ts.UTC()
		}
	case primitive.DateTime:
		return v.Time().UTC()
	case time.Time:
		return v.UTC()
	}
	return time.Now().UTC()
}

func optionalString(doc bson.M, key string) (string, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s is not a string: %T", key, raw)
	}
	return s, nil
}

func optionalFloat(doc bson.M, key string) (*float64, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case float64:
		return &v, nil
	case int32:
		f := float64(v)
		return &f, nil
	case int64:
		f := float64(v)
		return &f, nil
	}
	return nil, fmt.Errorf("%s is not numeric: %T", key, raw)
}

func optionalInt(doc bson.M, key string) (*int, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	switch v := raw.(type) {
	case int32:
		n := int(v)
		return &n, nil
	case int64:
		n := int(v)
		return &n, nil
	case float64:
		n := int(v)
		return &n, nil
	}
	return nil, fmt.Errorf("%s is not numeric: %T", key, raw)
}
