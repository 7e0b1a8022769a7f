package models

import "time"

// DefaultUserID is the grouping key used when a request carries no user_id.
// user_id is an opaque grouping key; there is no user table behind it.
const DefaultUserID = "default_user"

// ChatMessage is a single stored chat exchange. Records are immutable once
// persisted; the context snapshot is stored inline with the record.
type ChatMessage struct {
	ID        string                 `json:"id"`
	Message   string                 `json:"message"`
	Response  string                 `json:"response"`
	Context   map[string]interface{} `json:"context,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message  string    `json:"message"`
	UserID   string    `json:"user_id"`
	Location *Location `json:"location,omitempty"`
}

// Location is an optional coordinate pair supplied by the client.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
