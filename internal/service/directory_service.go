package service

import (
	"context"
	"errors"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// DirectoryService answers read-only questions about the user
// directory. Team membership is computed from each employee's
// ManagerID; nothing is stored on the manager side.
type DirectoryService struct {
	users repository.UserRepository
}

// NewDirectoryService builds the service.
func NewDirectoryService(users repository.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

// FindUserByID looks up a user by exact id.
func (s *DirectoryService) FindUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return user, nil
}

// TeamMembersOf returns the employees reporting to the given manager,
// in insertion order, which is stable across calls.
func (s *DirectoryService) TeamMembersOf(ctx context.Context, managerID string) ([]domain.User, error) {
	members, err := s.users.ListByManager(ctx, managerID)
	if err != nil {
		return nil, apperrors.NewStorageUnavailable(err)
	}
	return members, nil
}
