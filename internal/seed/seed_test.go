package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
)

func TestApply_SeedsDirectoryAndCredentials(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	creds := repository.NewMemoryCredentialRepository()

	require.NoError(t, Apply(ctx, DefaultAccounts(), users, creds, bcrypt.MinCost))

	manager, err := users.GetByEmail(ctx, "sarah.johnson@company.com")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleManager, manager.Role)

	members, err := users.ListByManager(ctx, manager.ID)
	require.NoError(t, err)
	assert.Len(t, members, 3)
	for _, member := range members {
		assert.Equal(t, domain.RoleEmployee, member.Role)
		require.NotNil(t, member.ManagerID)
		assert.Equal(t, manager.ID, *member.ManagerID)
	}

	cred, err := creds.GetByEmail(ctx, "mike.chen@company.com")
	require.NoError(t, err)
	assert.NoError(t, auth.ComparePassword(cred.PasswordHash, "employee123"))
}

func TestApply_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	users := repository.NewMemoryUserRepository()
	creds := repository.NewMemoryCredentialRepository()

	require.NoError(t, Apply(ctx, DefaultAccounts(), users, creds, bcrypt.MinCost))

	before, err := creds.GetByEmail(ctx, "sarah.johnson@company.com")
	require.NoError(t, err)

	require.NoError(t, Apply(ctx, DefaultAccounts(), users, creds, bcrypt.MinCost))

	after, err := creds.GetByEmail(ctx, "sarah.johnson@company.com")
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "re-seeding must not rotate hashes")

	manager, err := users.GetByEmail(ctx, "sarah.johnson@company.com")
	require.NoError(t, err)
	members, err := users.ListByManager(ctx, manager.ID)
	require.NoError(t, err)
	assert.Len(t, members, 3, "re-seeding must not duplicate users")
}
