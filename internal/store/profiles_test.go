package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_UpsertProfile(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	annID, err := store.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, store.UpsertProfile(ctx, annID, "hello", "Bohol"))

	profile, err := store.GetProfile(ctx, annID)
	require.NoError(t, err)
	assert.Equal(t, annID, profile.AccountID)
	assert.Equal(t, "hello", profile.Bio)
	assert.Equal(t, "Bohol", profile.Address)
}

func TestStore_UpsertProfile_SecondWriteWins(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	annID, err := store.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, store.UpsertProfile(ctx, annID, "old bio", "old address"))
	require.NoError(t, store.UpsertProfile(ctx, annID, "new bio", "new address"))

	// Exactly one row per account
	var count int
	err = store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles WHERE account_id = ?", annID).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	profile, err := store.GetProfile(ctx, annID)
	require.NoError(t, err)
	assert.Equal(t, "new bio", profile.Bio)
	assert.Equal(t, "new address", profile.Address)
}

func TestStore_GetProfile_NotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	annID, err := store.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	_, err = store.GetProfile(ctx, annID)
	assert.ErrorIs(t, err, ErrNotFound)
}
