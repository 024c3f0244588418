package domain

import "time"

// Sentiment enumerates the categorical tone of a feedback record.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Valid reports whether the sentiment is a known variant.
func (s Sentiment) Valid() bool {
	switch s {
	case SentimentPositive, SentimentNeutral, SentimentNegative:
		return true
	}
	return false
}

// Feedback is the aggregate for structured manager-to-employee feedback.
// CreatedAt is stamped once at creation; UpdatedAt moves on content
// edits only. Acknowledgment is a one-way transition: IsAcknowledged
// flips to true exactly once and AcknowledgedAt is set at that moment,
// without touching UpdatedAt.
type Feedback struct {
	ID             string
	FromUserID     string
	ToUserID       string
	Strengths      string
	AreasToImprove string
	Sentiment      Sentiment
	Tags           []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	IsAcknowledged bool
	AcknowledgedAt *time.Time
}
