package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	userID, err := store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, userID, "fresh store has no session")

	require.NoError(t, store.SetCurrentUser(ctx, "m1"))

	userID, err = store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "m1", userID)

	require.NoError(t, store.SetCurrentUser(ctx, "e1"))
	userID, err = store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e1", userID, "at most one session per process")

	require.NoError(t, store.Clear(ctx))
	userID, err = store.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestMemoryStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Clear(ctx))
	require.NoError(t, store.Clear(ctx))
}
