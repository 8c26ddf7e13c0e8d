package profile

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketchat/pocketchat/internal/store"
)

func setupService(t *testing.T) (*Service, *store.SQLiteStore) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	st, err := store.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, logger), st
}

func TestService_SaveAndLoad(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	annID, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, svc.Save(ctx, annID, "hi, I'm Ann", "Guindulman, Bohol"))

	p, err := svc.Load(ctx, annID)
	require.NoError(t, err)
	assert.Equal(t, "hi, I'm Ann", p.Bio)
	assert.Equal(t, "Guindulman, Bohol", p.Address)
}

func TestService_Save_Twice(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	annID, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, svc.Save(ctx, annID, "first", "here"))
	require.NoError(t, svc.Save(ctx, annID, "second", "there"))

	p, err := svc.Load(ctx, annID)
	require.NoError(t, err)
	assert.Equal(t, "second", p.Bio)
	assert.Equal(t, "there", p.Address)
}

func TestService_Load_Absent(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	annID, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	_, err = svc.Load(ctx, annID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
