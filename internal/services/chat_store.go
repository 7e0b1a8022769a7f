package services

import (
	"context"
	"fmt"
	"log"

	"dincharya/internal/database"
	"dincharya/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatStore handles MongoDB persistence for chat exchanges
type ChatStore struct {
	collection *mongo.Collection
}

// NewChatStore creates a new chat store
func NewChatStore(mongodb *database.MongoDB) *ChatStore {
	return &ChatStore{
		collection: mongodb.Collection(database.CollectionChats),
	}
}

// Save inserts a chat exchange. Records are immutable once stored. The
// user_id lives on the document only, not on the wire shape, so history
// lookups can filter by user.
func (s *ChatStore) Save(ctx context.Context, userID string, msg *models.ChatMessage) error {
	doc := chatToDocument(msg)
	doc["user_id"] = userID
	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}
	return nil
}

// History returns the user's most recent exchanges, newest first, capped at
// limit. The listing fails open: a store error yields an empty slice, and a
// record that cannot be rebuilt is skipped instead of failing the request.
func (s *ChatStore) History(ctx context.Context, userID string, limit int64) []models.ChatMessage {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit).
		SetProjection(bson.M{"_id": 0})

	cursor, err := s.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		log.Printf("❌ Chat history query failed: %v", err)
		return []models.ChatMessage{}
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		log.Printf("❌ Chat history decode failed: %v", err)
		return []models.ChatMessage{}
	}

	return decodeChatHistory(docs)
}

// decodeChatHistory rebuilds each record independently, dropping the ones
// that fail to parse.
func decodeChatHistory(docs []bson.M) []models.ChatMessage {
	messages := make([]models.ChatMessage, 0, len(docs))
	for _, doc := range docs {
		msg, err := chatFromDocument(doc)
		if err != nil {
			log.Printf("⚠️ Skipping malformed chat record: %v", err)
			continue
		}
		messages = append(messages, *msg)
	}
	return messages
}
