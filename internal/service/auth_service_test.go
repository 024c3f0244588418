package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/config"
	"github.com/spec-kit/feedback-service/internal/domain"
	"github.com/spec-kit/feedback-service/internal/repository"
	"github.com/spec-kit/feedback-service/internal/session"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	ctx := context.Background()

	users := repository.NewMemoryUserRepository()
	require.NoError(t, users.Create(ctx, &domain.User{ID: "m1", Name: "Sarah Johnson", Email: "sarah.johnson@company.com", Role: domain.RoleManager}))

	creds := repository.NewMemoryCredentialRepository()
	hash, err := auth.HashPassword("manager123", bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, creds.Upsert(ctx, &domain.Credential{Email: "sarah.johnson@company.com", PasswordHash: hash, UserID: "m1"}))

	return NewAuthService(config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 5}, AuthDependencies{
		UserRepo:       users,
		CredentialRepo: creds,
		SessionStore:   session.NewMemoryStore(),
	})
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user, token, exp, err := svc.Authenticate(ctx, "sarah.johnson@company.com", "manager123")
	require.NoError(t, err)
	assert.Equal(t, "m1", user.ID)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "m1", current.ID)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Authenticate(ctx, "sarah.johnson@company.com", "bad")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "AUTHENTICATION_FAILED"))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current, "failed login must not open a session")
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	svc := newTestAuthService(t)

	_, _, _, err := svc.Authenticate(context.Background(), "wrong@x.com", "bad")
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, "AUTHENTICATION_FAILED"))
}

func TestAuthService_ClearSession(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	_, _, _, err := svc.Authenticate(ctx, "sarah.johnson@company.com", "manager123")
	require.NoError(t, err)

	require.NoError(t, svc.ClearSession(ctx))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, current)
}

func TestAuthService_SetCurrentUser(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.SetCurrentUser(ctx, &domain.User{ID: "m1"}))

	current, err := svc.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "m1", current.ID)
}
