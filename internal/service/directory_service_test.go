package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

func newTestDirectory(t *testing.T) *DirectoryService {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	managerID := "m1"
	require.NoError(t, users.Create(ctx, &domain.User{ID: managerID, Name: "Sarah Johnson", Email: "sarah@x.com", Role: domain.RoleManager}))
	require.NoError(t, users.Create(ctx, &domain.User{ID: "e1", Name: "Mike Chen", Email: "mike@x.com", Role: domain.RoleEmployee, ManagerID: &managerID}))
	require.NoError(t, users.Create(ctx, &domain.User{ID: "e2", Name: "Emily Rodriguez", Email: "emily@x.com", Role: domain.RoleEmployee, ManagerID: &managerID}))

	return NewDirectoryService(users)
}

func TestDirectoryService_FindUserByID(t *testing.T) {
	directory := newTestDirectory(t)

	user, err := directory.FindUserByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Mike Chen", user.Name)
}

func TestDirectoryService_FindUserByID_NotFound(t *testing.T) {
	directory := newTestDirectory(t)

	_, err := directory.FindUserByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "NOT_FOUND"))
}

func TestDirectoryService_TeamMembersOf(t *testing.T) {
	directory := newTestDirectory(t)

	members, err := directory.TeamMembersOf(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "e1", members[0].ID, "insertion order is stable")
	assert.Equal(t, "e2", members[1].ID)

	again, err := directory.TeamMembersOf(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, members, again)
}

func TestDirectoryService_TeamMembersOf_EmptyForEmployee(t *testing.T) {
	directory := newTestDirectory(t)

	members, err := directory.TeamMembersOf(context.Background(), "e1")
	require.NoError(t, err)
	assert.Empty(t, members)
}
