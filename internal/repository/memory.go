package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/spec-kit/feedback-service/internal/domain"
)

// In-memory implementations back DSN-less runs and the test suite.
// They hold the authoritative records; every read hands out a copy so
// callers can never mutate the store through a returned value.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

// NewMemoryUserRepository returns a map-backed UserRepository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.ID]; exists {
		return nil
	}
	r.users[user.ID] = cloneUser(*user)
	r.order = append(r.order, user.ID)
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneUser(user)
	return &copied, nil
}

func (r *memoryUserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if strings.EqualFold(r.users[id].Email, email) {
			copied := cloneUser(r.users[id])
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) ListByManager(_ context.Context, managerID string) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.User
	for _, id := range r.order {
		user := r.users[id]
		if user.ReportsTo(managerID) {
			result = append(result, cloneUser(user))
		}
	}
	return result, nil
}

func cloneUser(user domain.User) domain.User {
	if user.ManagerID != nil {
		managerID := *user.ManagerID
		user.ManagerID = &managerID
	}
	return user
}

type memoryCredentialRepository struct {
	mu    sync.RWMutex
	creds map[string]domain.Credential
}

// NewMemoryCredentialRepository returns a map-backed CredentialRepository.
func NewMemoryCredentialRepository() CredentialRepository {
	return &memoryCredentialRepository{creds: make(map[string]domain.Credential)}
}

func (r *memoryCredentialRepository) Upsert(_ context.Context, cred *domain.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.creds[strings.ToLower(cred.Email)] = *cred
	return nil
}

func (r *memoryCredentialRepository) GetByEmail(_ context.Context, email string) (*domain.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cred, ok := r.creds[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &cred, nil
}

type memoryFeedbackRepository struct {
	mu      sync.RWMutex
	records map[string]domain.Feedback
	order   []string
}

// NewMemoryFeedbackRepository returns a map-backed FeedbackRepository
// that preserves insertion order on listing.
func NewMemoryFeedbackRepository() FeedbackRepository {
	return &memoryFeedbackRepository{records: make(map[string]domain.Feedback)}
}

func (r *memoryFeedbackRepository) Create(_ context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[feedback.ID] = cloneFeedback(*feedback)
	r.order = append(r.order, feedback.ID)
	return nil
}

func (r *memoryFeedbackRepository) Update(_ context.Context, feedback *domain.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[feedback.ID]; !ok {
		return ErrNotFound
	}
	r.records[feedback.ID] = cloneFeedback(*feedback)
	return nil
}

func (r *memoryFeedbackRepository) GetByID(_ context.Context, id string) (*domain.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneFeedback(record)
	return &copied, nil
}

func (r *memoryFeedbackRepository) ListByRecipient(_ context.Context, userID string) ([]domain.Feedback, error) {
	return r.listWhere(func(f domain.Feedback) bool { return f.ToUserID == userID }), nil
}

func (r *memoryFeedbackRepository) ListByAuthor(_ context.Context, managerID string) ([]domain.Feedback, error) {
	return r.listWhere(func(f domain.Feedback) bool { return f.FromUserID == managerID }), nil
}

func (r *memoryFeedbackRepository) listWhere(matches func(domain.Feedback) bool) []domain.Feedback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Feedback
	for _, id := range r.order {
		if record := r.records[id]; matches(record) {
			result = append(result, cloneFeedback(record))
		}
	}
	return result
}

func cloneFeedback(feedback domain.Feedback) domain.Feedback {
	if feedback.AcknowledgedAt != nil {
		at := *feedback.AcknowledgedAt
		feedback.AcknowledgedAt = &at
	}
	if feedback.Tags != nil {
		feedback.Tags = append([]string(nil), feedback.Tags...)
	}
	return feedback
}
