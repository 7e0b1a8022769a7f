package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"dincharya/internal/database"
	"dincharya/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RoutineStore handles MongoDB persistence for daily routine entries
type RoutineStore struct {
	collection *mongo.Collection
}

// NewRoutineStore creates a new routine store
func NewRoutineStore(mongodb *database.MongoDB) *RoutineStore {
	return &RoutineStore{
		collection: mongodb.Collection(database.CollectionRoutines),
	}
}

// Save assigns an id and timestamp to the entry, inserts it, and returns the
// entry as constructed (not re-read from storage).
func (s *RoutineStore) Save(ctx context.Context, req *models.RoutineRequest) (*models.RoutineEntry, error) {
	userID := req.UserID
	if userID == "" {
		userID = models.DefaultUserID
	}

	entry := &models.RoutineEntry{
		ID:              uuid.NewString(),
		UserID:          userID,
		Date:            req.Date,
		SleepHours:      req.SleepHours,
		WaterGlasses:    req.WaterGlasses,
		ExerciseMinutes: req.ExerciseMinutes,
		Mood:            req.Mood,
		Timestamp:       time.Now().UTC(),
	}

	if _, err := s.collection.InsertOne(ctx, routineToDocument(entry)); err != nil {
		return nil, fmt.Errorf("failed to save routine entry: %w", err)
	}
	return entry, nil
}

// MostRecent returns the user's latest entry, or nil when the user has none.
func (s *RoutineStore) MostRecent(ctx context.Context, userID string) (*models.RoutineEntry, error) {
	opts := options.FindOne().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetProjection(bson.M{"_id": 0})

	var doc bson.M
	err := s.collection.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query recent routine: %w", err)
	}

	entry, err := routineFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode recent routine: %w", err)
	}
	return entry, nil
}

// History returns the user's entries newest first, capped at limit. A store
// failure propagates to the caller; individual records that cannot be rebuilt
// are dropped, matching the chat-history tolerance.
func (s *RoutineStore) History(ctx context.Context, userID string, limit int64) ([]models.RoutineEntry, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query routine history: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode routine history: %w", err)
	}

	return decodeRoutineHistory(docs), nil
}

func decodeRoutineHistory(docs []bson.M) []models.RoutineEntry {
	entries := make([]models.RoutineEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := routineFromDocument(doc)
		if err != nil {
			log.Printf("⚠️ Skipping malformed routine record: %v", err)
			continue
		}
		entries = append(entries, *entry)
	}
	return entries
}
