package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/events"
	"github.com/spec-kit/feedback-service/internal/repository"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// FeedbackService owns the authoritative feedback collection. It
// trusts callers to have authorized the action (author-only edits and
// recipient-only acknowledgment live at the transport layer) but
// defensively re-checks the manager/report relationship on create
// since that guards a core invariant.
type FeedbackService struct {
	feedbacks  repository.FeedbackRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher

	now func() time.Time

	// serializes creation so CreatedAt is monotonically non-decreasing
	// with insertion order.
	mu          sync.Mutex
	lastCreated time.Time
}

// FeedbackDependencies bundles requirements for the feedback service.
type FeedbackDependencies struct {
	FeedbackRepo repository.FeedbackRepository
	UserRepo     repository.UserRepository
	Dispatcher   events.Dispatcher
}

// NewFeedbackService constructs the service.
func NewFeedbackService(deps FeedbackDependencies) *FeedbackService {
	return &FeedbackService{
		feedbacks:  deps.FeedbackRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// CreateInput describes feedback creation payload.
type CreateInput struct {
	FromUserID     string
	ToUserID       string
	Strengths      string
	AreasToImprove string
	Sentiment      domain.Sentiment
	Tags           []string
}

// UpdateInput carries the subset of content fields to change. Nil
// fields are left untouched.
type UpdateInput struct {
	Strengths      *string
	AreasToImprove *string
	Sentiment      *domain.Sentiment
}

// Create validates the input, stamps timestamps and stores the record.
// CreatedAt equals UpdatedAt at birth and the record starts
// unacknowledged.
func (s *FeedbackService) Create(ctx context.Context, input CreateInput) (*domain.Feedback, error) {
	strengths := strings.TrimSpace(input.Strengths)
	areas := strings.TrimSpace(input.AreasToImprove)
	if strengths == "" || areas == "" {
		return nil, apperrors.NewValidationError("strengths and areas to improve are required", nil)
	}
	if !input.Sentiment.Valid() {
		return nil, apperrors.NewValidationError("sentiment must be positive, neutral or negative", map[string]any{
			"sentiment": string(input.Sentiment),
		})
	}

	from, err := s.users.GetByID(ctx, input.FromUserID)
	if err != nil {
		return nil, s.mapUserLookup(err, input.FromUserID)
	}
	if from.Role != domain.RoleManager {
		return nil, apperrors.NewValidationError("feedback author must be a manager", nil)
	}

	to, err := s.users.GetByID(ctx, input.ToUserID)
	if err != nil {
		return nil, s.mapUserLookup(err, input.ToUserID)
	}
	if !to.ReportsTo(from.ID) {
		return nil, apperrors.NewValidationError("managers can only give feedback to their own reports", map[string]any{
			"from_user_id": input.FromUserID,
			"to_user_id":   input.ToUserID,
		})
	}

	feedback := &domain.Feedback{
		ID:             uuid.NewString(),
		FromUserID:     from.ID,
		ToUserID:       to.ID,
		Strengths:      strengths,
		AreasToImprove: areas,
		Sentiment:      input.Sentiment,
		Tags:           input.Tags,
	}

	createdAt := s.stampCreation()
	feedback.CreatedAt = createdAt
	feedback.UpdatedAt = createdAt

	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventFeedbackCreated,
		FeedbackID: feedback.ID,
		ActorID:    from.ID,
		Payload: events.FeedbackCreatedPayload{
			FromUserID: feedback.FromUserID,
			ToUserID:   feedback.ToUserID,
			Sentiment:  feedback.Sentiment,
		},
	})
	return feedback, nil
}

// Update applies the provided content fields and moves UpdatedAt.
// FromUserID, ToUserID, CreatedAt and the acknowledgment state are not
// reachable through this path.
func (s *FeedbackService) Update(ctx context.Context, id string, patch UpdateInput) (*domain.Feedback, error) {
	feedback, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	if patch.Strengths != nil {
		trimmed := strings.TrimSpace(*patch.Strengths)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("strengths cannot be empty", nil)
		}
		feedback.Strengths = trimmed
		changed = append(changed, "strengths")
	}
	if patch.AreasToImprove != nil {
		trimmed := strings.TrimSpace(*patch.AreasToImprove)
		if trimmed == "" {
			return nil, apperrors.NewValidationError("areas to improve cannot be empty", nil)
		}
		feedback.AreasToImprove = trimmed
		changed = append(changed, "areas_to_improve")
	}
	if patch.Sentiment != nil {
		if !patch.Sentiment.Valid() {
			return nil, apperrors.NewValidationError("sentiment must be positive, neutral or negative", nil)
		}
		feedback.Sentiment = *patch.Sentiment
		changed = append(changed, "sentiment")
	}

	feedback.UpdatedAt = s.now()

	if err := s.feedbacks.Update(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("feedback", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageUnavailable(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventFeedbackUpdated,
		FeedbackID: feedback.ID,
		ActorID:    feedback.FromUserID,
		Payload: events.FeedbackUpdatedPayload{
			Sentiment:     feedback.Sentiment,
			ChangedFields: changed,
		},
	})
	return feedback, nil
}

// Acknowledge marks the record as seen by its recipient. Already
// acknowledged records are returned unchanged; the transition happens
// at most once and never touches UpdatedAt.
func (s *FeedbackService) Acknowledge(ctx context.Context, id string) (*domain.Feedback, error) {
	feedback, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if feedback.IsAcknowledged {
		return feedback, nil
	}

	ackAt := s.now()
	feedback.IsAcknowledged = true
	feedback.AcknowledgedAt = &ackAt

	if err := s.feedbacks.Update(ctx, feedback); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("feedback", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageUnavailable(err)
	}

	s.publishEvent(ctx, events.Event{
		Type:       events.EventFeedbackAcknowledged,
		FeedbackID: feedback.ID,
		ActorID:    feedback.ToUserID,
		Payload: events.FeedbackAcknowledgedPayload{
			ToUserID:       feedback.ToUserID,
			AcknowledgedAt: ackAt,
		},
	})
	return feedback, nil
}

// GetByID fetches a single record.
func (s *FeedbackService) GetByID(ctx context.Context, id string) (*domain.Feedback, error) {
	feedback, err := s.feedbacks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("feedback", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return feedback, nil
}

// ListForRecipient returns feedback addressed to the user, in creation order.
func (s *FeedbackService) ListForRecipient(ctx context.Context, userID string) ([]domain.Feedback, error) {
	result, err := s.feedbacks.ListByRecipient(ctx, userID)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return result, nil
}

// ListForManager returns feedback authored by the manager, in creation order.
func (s *FeedbackService) ListForManager(ctx context.Context, managerID string) ([]domain.Feedback, error) {
	result, err := s.feedbacks.ListByAuthor(ctx, managerID)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return result, nil
}

func (s *FeedbackService) stampCreation() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Before(s.lastCreated) {
		now = s.lastCreated
	}
	s.lastCreated = now
	return now
}

func (s *FeedbackService) mapUserLookup(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewValidationError("referenced user does not exist", map[string]any{"user_id": id})
	}
	return apperrors.NewStorageUnavailable(err)
}

func (s *FeedbackService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
