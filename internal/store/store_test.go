package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestStore_SchemaIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	first, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	id, err := first.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Reopening must rerun schema creation without error and keep data
	second, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()

	account, err := second.GetAccountByCredentials(ctx, "ann@x.com", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, id, account.ID)
	assert.Equal(t, "Ann", account.Name)
}

func TestStore_MigrationKeepsImageRef(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	ctx := context.Background()
	id, err := store.CreateAccount(ctx, "Ann", "ann@x.com", "abcdef")
	require.NoError(t, err)
	require.NoError(t, store.SetAccountImage(ctx, id, "/tmp/ann.png"))
	require.NoError(t, store.Close())

	// The guarded migration must not clobber the column on reopen
	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	account, err := reopened.GetAccountByCredentials(ctx, "ann@x.com", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ann.png", account.ImageRef)
}
