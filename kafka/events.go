package kafka

import "time"

// UserRegisteredEvent is emitted after a signup insert commits.
type UserRegisteredEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}

// UserDeletedEvent is emitted after a user row is removed.
type UserDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeUserRegistered = "user.registered"
	EventTypeUserDeleted    = "user.deleted"
)

// Kafka topics
const (
	TopicUserEvents = "user-events"
)
