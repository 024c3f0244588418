package dto

import (
	"time"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// CreateFeedbackRequest payload.
type CreateFeedbackRequest struct {
	ToUserID       string           `json:"to_user_id"`
	Strengths      string           `json:"strengths"`
	AreasToImprove string           `json:"areas_to_improve"`
	Sentiment      domain.Sentiment `json:"sentiment"`
	Tags           []string         `json:"tags"`
}

// UpdateFeedbackRequest payload; absent fields stay untouched.
type UpdateFeedbackRequest struct {
	Strengths      *string           `json:"strengths"`
	AreasToImprove *string           `json:"areas_to_improve"`
	Sentiment      *domain.Sentiment `json:"sentiment"`
}

// FeedbackResponse is the public shape of a feedback record.
type FeedbackResponse struct {
	ID             string           `json:"id"`
	FromUserID     string           `json:"from_user_id"`
	ToUserID       string           `json:"to_user_id"`
	Strengths      string           `json:"strengths"`
	AreasToImprove string           `json:"areas_to_improve"`
	Sentiment      domain.Sentiment `json:"sentiment"`
	Tags           []string         `json:"tags,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	IsAcknowledged bool             `json:"is_acknowledged"`
	AcknowledgedAt *time.Time       `json:"acknowledged_at,omitempty"`
}

// FeedbackDetailResponse adds resolved author/recipient info.
type FeedbackDetailResponse struct {
	FeedbackResponse
	FromUser UserResponse `json:"from_user"`
	ToUser   UserResponse `json:"to_user"`
}

// NewFeedbackResponse maps a domain record.
func NewFeedbackResponse(feedback *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:             feedback.ID,
		FromUserID:     feedback.FromUserID,
		ToUserID:       feedback.ToUserID,
		Strengths:      feedback.Strengths,
		AreasToImprove: feedback.AreasToImprove,
		Sentiment:      feedback.Sentiment,
		Tags:           feedback.Tags,
		CreatedAt:      feedback.CreatedAt,
		UpdatedAt:      feedback.UpdatedAt,
		IsAcknowledged: feedback.IsAcknowledged,
		AcknowledgedAt: feedback.AcknowledgedAt,
	}
}

// NewFeedbackResponses maps a slice preserving order.
func NewFeedbackResponses(feedbacks []domain.Feedback) []FeedbackResponse {
	result := make([]FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		result = append(result, NewFeedbackResponse(&feedbacks[i]))
	}
	return result
}
