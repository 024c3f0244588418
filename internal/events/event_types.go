package events

import (
	"time"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventFeedbackCreated      EventType = "feedback_created"
	EventFeedbackUpdated      EventType = "feedback_updated"
	EventFeedbackAcknowledged EventType = "feedback_acknowledged"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	FeedbackID string      `json:"feedback_id"`
	ActorID    string      `json:"actor_id"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// FeedbackCreatedPayload payload.
type FeedbackCreatedPayload struct {
	FromUserID string           `json:"from_user_id"`
	ToUserID   string           `json:"to_user_id"`
	Sentiment  domain.Sentiment `json:"sentiment"`
}

// FeedbackUpdatedPayload payload.
type FeedbackUpdatedPayload struct {
	Sentiment     domain.Sentiment `json:"sentiment"`
	ChangedFields []string         `json:"changed_fields"`
}

// FeedbackAcknowledgedPayload payload.
type FeedbackAcknowledgedPayload struct {
	ToUserID       string    `json:"to_user_id"`
	AcknowledgedAt time.Time `json:"acknowledged_at"`
}
