package services

import (
	"reflect"
	"testing"
	"time"

	"dincharya/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestChatDocumentRoundtrip(t *testing.T) {
	original := &models.ChatMessage{
		ID:       "chat-1",
		Message:  "What should I eat?",
		Response: "Something warm.",
		Context: map[string]interface{}{
			"time": "12:30",
			"date": "2025-03-14",
		},
		Timestamp: time.Date(2025, 3, 14, 12, 30, 45, 123456789, time.UTC),
	}

	doc := chatToDocument(original)

	ts, ok := doc["timestamp"].(string)
	if !ok {
		t.Fatalf("Expected timestamp to be stored as text, got %T", doc["timestamp"])
	}
	if ts != "2025-03-14T12:30:45Z" {
		t.Errorf("Expected RFC3339 timestamp, got %q", ts)
	}

	got, err := chatFromDocument(doc)
	if err != nil {
		t.Fatalf("Roundtrip failed: %v", err)
	}

	if got.ID != original.ID || got.Message != original.Message || got.Response != original.Response {
		t.Errorf("Fields changed in roundtrip: got %+v", got)
	}
	if !reflect.DeepEqual(got.Context, original.Context) {
		t.Errorf("Context changed in roundtrip: got %v, want %v", got.Context, original.Context)
	}
	// Sub-second precision is lost in the text representation.
	if !got.Timestamp.Equal(original.Timestamp.Truncate(time.Second)) {
		t.Errorf("Expected timestamp %v, got %v", original.Timestamp.Truncate(time.Second), got.Timestamp)
	}
}

func TestChatFromDocumentFillsDefaults(t *testing.T) {
	before := time.Now().UTC()
	got, err := chatFromDocument(bson.M{})
	if err != nil {
		t.Fatalf("Empty document should be tolerated: %v", err)
	}

	if got.ID == "" {
		t.Error("Expected a fresh id for a record without one")
	}
	if got.Message != "" || got.Response != "" {
		t.Errorf("Expected empty message/response, got %q/%q", got.Message, got.Response)
	}
	if got.Context != nil {
		t.Errorf("Expected nil context, got %v", got.Context)
	}
	if got.Timestamp.Before(before) {
		t.Errorf("Expected missing timestamp to become now, got %v", got.Timestamp)
	}
}

func TestChatFromDocumentRejectsWrongTypes(t *testing.T) {
	cases := []struct {
		name string
		doc  bson.M
	}{
		{"message not text", bson.M{"message": 42}},
		{"response not text", bson.M{"response": true}},
		{"context not document", bson.M{"context": "nope"}},
		{"id not text", bson.M{"id": 7}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := chatFromDocument(tc.doc); err == nil {
				t.Errorf("Expected error for %v", tc.doc)
			}
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2025, 3, 14, 12, 30, 45, 0, time.UTC)

	if got := parseTimestamp("2025-03-14T12:30:45Z"); !got.Equal(want) {
		t.Errorf("Trailing Z: got %v, want %v", got, want)
	}
	if got := parseTimestamp("2025-03-14T12:30:45+00:00"); !got.Equal(want) {
		t.Errorf("Explicit offset: got %v, want %v", got, want)
	}
	if got := parseTimestamp("2025-03-14T12:30:45"); !got.Equal(want) {
		t.Errorf("Offset-less text: got %v, want %v", got, want)
	}

	before := time.Now().UTC()
	for _, raw := range []interface{}{nil, "garbage", 12345} {
		if got := parseTimestamp(raw); got.Before(before) {
			t.Errorf("Expected %v to parse as now, got %v", raw, got)
		}
	}
}

func TestRoutineDocumentRoundtrip(t *testing.T) {
	sleep := 7.5
	water := 8
	exercise := 30
	mood := "good"
	original := &models.RoutineEntry{
		ID:              "routine-1",
		UserID:          "alice",
		Date:            "2025-03-14",
		SleepHours:      &sleep,
		WaterGlasses:    &water,
		ExerciseMinutes: &exercise,
		Mood:            &mood,
		Timestamp:       time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC),
	}

	got, err := routineFromDocument(routineToDocument(original))
	if err != nil {
		t.Fatalf("Roundtrip failed: %v", err)
	}
	if !reflect.DeepEqual(got, original) {
		t.Errorf("Roundtrip changed entry: got %+v, want %+v", got, original)
	}
}

func TestRoutineDocumentOptionalFieldsAbsent(t *testing.T) {
	original := &models.RoutineEntry{
		ID:        "routine-2",
		UserID:    "bob",
		Date:      "2025-03-15",
		Timestamp: time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC),
	}

	doc := routineToDocument(original)
	for _, key := range []string{"sleep_hours", "water_glasses", "exercise_minutes", "mood"} {
		if _, ok := doc[key]; ok {
			t.Errorf("Expected %s to be omitted from document", key)
		}
	}

	got, err := routineFromDocument(doc)
	if err != nil {
		t.Fatalf("Roundtrip failed: %v", err)
	}
	if got.SleepHours != nil || got.WaterGlasses != nil || got.ExerciseMinutes != nil || got.Mood != nil {
		t.Errorf("Expected optional fields to stay nil, got %+v", got)
	}
}

func TestRoutineFromDocumentCoercesBSONNumbers(t *testing.T) {
	// The driver decodes stored integers as int32/int64.
	doc := bson.M{
		"id":               "routine-3",
		"user_id":          "carol",
		"date":             "2025-03-16",
		"sleep_hours":      int32(8),
		"water_glasses":    int64(6),
		"exercise_minutes": float64(45),
		"timestamp":        "2025-03-16T07:00:00Z",
	}

	got, err := routineFromDocument(doc)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.SleepHours == nil || *got.SleepHours != 8 {
		t.Errorf("Expected sleep_hours 8, got %v", got.SleepHours)
	}
	if got.WaterGlasses == nil || *got.WaterGlasses != 6 {
		t.Errorf("Expected water_glasses 6, got %v", got.WaterGlasses)
	}
	if got.ExerciseMinutes == nil || *got.ExerciseMinutes != 45 {
		t.Errorf("Expected exercise_minutes 45, got %v", got.ExerciseMinutes)
	}
}

func TestDecodeChatHistorySkipsMalformedRecords(t *testing.T) {
	docs := []bson.M{
		{"id": "good", "message": "hi", "response": "hello", "timestamp": "2025-03-14T10:00:00Z"},
		{"id": "bad", "message": 42, "timestamp": "2025-03-14T09:00:00Z"},
	}

	got := decodeChatHistory(docs)
	if len(got) != 1 {
		t.Fatalf("Expected exactly the valid record, got %d records", len(got))
	}
	if got[0].ID != "good" {
		t.Errorf("Expected record 'good', got %q", got[0].ID)
	}
}

func TestDecodeRoutineHistorySkipsMalformedRecords(t *testing.T) {
	docs := []bson.M{
		{"id": "good", "user_id": "alice", "date": "2025-03-14", "timestamp": "2025-03-14T10:00:00Z"},
		{"id": "bad", "user_id": "alice", "date": "2025-03-13", "mood": 3},
	}

	got := decodeRoutineHistory(docs)
	if len(got) != 1 {
		t.Fatalf("Expected exactly the valid record, got %d records", len(got))
	}
	if got[0].ID != "good" {
		t.Errorf("Expected record 'good', got %q", got[0].ID)
	}
}
