package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-service/internal/domain"
)

func TestMemoryUserRepository_Lookups(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	managerID := "m1"
	require.NoError(t, repo.Create(ctx, &domain.User{ID: managerID, Name: "Sarah", Email: "Sarah@Company.com", Role: domain.RoleManager}))
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "e1", Name: "Mike", Email: "mike@company.com", Role: domain.RoleEmployee, ManagerID: &managerID}))

	byID, err := repo.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, "Mike", byID.Name)

	byEmail, err := repo.GetByEmail(ctx, "sarah@company.com")
	require.NoError(t, err)
	assert.Equal(t, "m1", byEmail.ID, "email lookup is case-insensitive")

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepository_CreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "m1", Name: "Sarah", Email: "s@x.com", Role: domain.RoleManager}))
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "m1", Name: "Impostor", Email: "i@x.com", Role: domain.RoleManager}))

	user, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", user.Name, "existing record wins")
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()
	require.NoError(t, repo.Create(ctx, &domain.User{ID: "m1", Name: "Sarah", Email: "s@x.com", Role: domain.RoleManager}))

	first, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", second.Name)
}

func TestMemoryFeedbackRepository_ListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryFeedbackRepository()

	now := time.Now()
	for _, id := range []string{"f1", "f2", "f3"} {
		require.NoError(t, repo.Create(ctx, &domain.Feedback{
			ID:         id,
			FromUserID: "m1",
			ToUserID:   "e1",
			Sentiment:  domain.SentimentPositive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}))
	}

	byRecipient, err := repo.ListByRecipient(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, byRecipient, 3)
	assert.Equal(t, "f1", byRecipient[0].ID)
	assert.Equal(t, "f3", byRecipient[2].ID)

	byAuthor, err := repo.ListByAuthor(ctx, "m1")
	require.NoError(t, err)
	assert.Len(t, byAuthor, 3)
}

func TestMemoryFeedbackRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryFeedbackRepository()

	err := repo.Update(context.Background(), &domain.Feedback{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryCredentialRepository_UpsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryCredentialRepository()

	require.NoError(t, repo.Upsert(ctx, &domain.Credential{Email: "Sarah@Company.com", PasswordHash: "h1", UserID: "m1"}))
	require.NoError(t, repo.Upsert(ctx, &domain.Credential{Email: "sarah@company.com", PasswordHash: "h2", UserID: "m1"}))

	cred, err := repo.GetByEmail(ctx, "SARAH@COMPANY.COM")
	require.NoError(t, err)
	assert.Equal(t, "h2", cred.PasswordHash, "upsert replaces on same email")

	_, err = repo.GetByEmail(ctx, "nobody@company.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
