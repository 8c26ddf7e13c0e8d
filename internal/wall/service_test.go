package wall

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

func TestService_PostAndList(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	_, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, svc.Post(ctx, "Ann", "hello wall"))

	comments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Ann", comments[0].Author)
	assert.Equal(t, "hello wall", comments[0].Body)
}

func TestService_Post_WhitespaceOnly(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	_, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, svc.Post(ctx, "Ann", "keep me"))

	var verr *store.ValidationError
	require.ErrorAs(t, svc.Post(ctx, "Ann", "   "), &verr)
	require.ErrorAs(t, svc.Post(ctx, "Ann", ""), &verr)

	// Rejected posts don't change the wall length
	comments, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestService_Post_UnknownAuthor(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	err := svc.Post(ctx, "Ghost", "boo")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestService_List_InsertionOrder(t *testing.T) {
	svc, st := setupService(t)
	ctx := context.Background()

	_, err := st.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)
	_, err = st.CreateAccount(ctx, "Bo", "bo@x.com", "abcdef")
	require.NoError(t, err)

	require.NoError(t, svc.Post(ctx, "Ann", "one"))
	require.NoError(t, svc.Post(ctx, "Bo", "two"))
	require.NoError(t, svc.Post(ctx, "Ann", "three"))

	comments, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "one", comments[0].Body)
	assert.Equal(t, "two", comments[1].Body)
	assert.Equal(t, "three", comments[2].Body)
}
