package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/feedback-service/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)

	token, exp, err := tm.GenerateToken("m1", domain.RoleManager)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "m1", claims.UserID)
	assert.Equal(t, domain.RoleManager, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 5).GenerateToken("e1", domain.RoleEmployee)
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 5).ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("secret", 5).ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("employee123", 4)
	require.NoError(t, err)

	assert.NoError(t, ComparePassword(hash, "employee123"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
