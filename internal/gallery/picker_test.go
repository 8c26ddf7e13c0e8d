package gallery

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPicker(t *testing.T) (*FilePicker, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "media")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFilePicker(dir, logger), dir
}

func TestFilePicker_Pick(t *testing.T) {
	picker, dir := newTestPicker(t)

	source := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(source, []byte("not really a png"), 0644))

	ref, err := picker.Pick(context.Background(), source)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(ref))
	assert.Equal(t, ".png", filepath.Ext(ref))

	copied, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, []byte("not really a png"), copied)
}

func TestFilePicker_Pick_Cancelled(t *testing.T) {
	picker, _ := newTestPicker(t)

	_, err := picker.Pick(context.Background(), "")
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestFilePicker_Pick_MissingSource(t *testing.T) {
	picker, _ := newTestPicker(t)

	_, err := picker.Pick(context.Background(), "/nope/missing.png")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCancelled)
}

func TestFilePicker_Pick_UniqueRefs(t *testing.T) {
	picker, _ := newTestPicker(t)

	source := filepath.Join(t.TempDir(), "avatar.png")
	require.NoError(t, os.WriteFile(source, []byte("x"), 0644))

	first, err := picker.Pick(context.Background(), source)
	require.NoError(t, err)
	second, err := picker.Pick(context.Background(), source)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
