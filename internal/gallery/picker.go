// ABOUTME: Image picker capability for avatar selection
// ABOUTME: Copies a chosen file into the app data directory and returns an opaque reference

package gallery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrCancelled is returned when the user backs out without choosing an
// image.
var ErrCancelled = errors.New("image selection cancelled")

// Picker returns a local file reference for a chosen image, or
// ErrCancelled. Callers store the reference string and never interpret
// the file bytes.
type Picker interface {
	Pick(ctx context.Context, source string) (string, error)
}

// FilePicker copies the chosen file into a managed directory so the
// stored reference stays valid even if the source moves. Copies are
// named by UUID to avoid collisions between accounts picking files with
// the same name.
type FilePicker struct {
	dir    string
	logger *slog.Logger
}

// NewFilePicker creates a picker that stores copies under dir.
func NewFilePicker(dir string, logger *slog.Logger) *FilePicker {
	if logger == nil {
		logger = slog.Default()
	}
	return &FilePicker{
		dir:    dir,
		logger: logger.With("component", "gallery"),
	}
}

// Pick copies the image at source into the managed directory and
// returns the new path. An empty source is a cancellation.
func (p *FilePicker) Pick(ctx context.Context, source string) (string, error) {
	if source == "" {
		return "", ErrCancelled
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	in, err := os.Open(source)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(p.dir, 0755); err != nil {
		return "", fmt.Errorf("creating media directory: %w", err)
	}

	ref := filepath.Join(p.dir, uuid.New().String()+filepath.Ext(source))
	out, err := os.Create(ref)
	if err != nil {
		return "", fmt.Errorf("creating image copy: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(ref)
		return "", fmt.Errorf("copying image: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("closing image copy: %w", err)
	}

	p.logger.Debug("image picked", "source", source, "ref", ref)
	return ref, nil
}

var _ Picker = (*FilePicker)(nil)
