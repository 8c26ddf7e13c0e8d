// ABOUTME: Public comment wall service
// ABOUTME: Posts are keyed by author account id; listing preserves insertion order

package wall

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pocketchat/pocketchat/internal/store"
)

// WallStore defines what the service needs from storage.
type WallStore interface {
	GetAccountByName(ctx context.Context, name string) (*store.Account, error)
	CreateComment(ctx context.Context, authorID int64, body string) (int64, error)
	ListComments(ctx context.Context) ([]*store.Comment, error)
}

// Service exposes the comment wall.
type Service struct {
	store  WallStore
	logger *slog.Logger
}

// New creates a new wall service.
func New(st WallStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger.With("component", "wall"),
	}
}

// Post adds a comment under the given user's name. Empty or
// whitespace-only bodies are rejected before any store call.
func (s *Service) Post(ctx context.Context, userName, body string) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return &store.ValidationError{Field: "comment", Reason: "must not be empty"}
	}

	author, err := s.store.GetAccountByName(ctx, userName)
	if err != nil {
		return fmt.Errorf("resolving author %q: %w", userName, err)
	}

	id, err := s.store.CreateComment(ctx, author.ID, trimmed)
	if err != nil {
		return err
	}

	s.logger.Debug("comment posted", "id", id, "author", userName)
	return nil
}

// List returns every comment in insertion (id) order. The wall scrolls
// by appending at the end, so id order is the contract even though a
// timestamp column exists.
func (s *Service) List(ctx context.Context) ([]*store.Comment, error) {
	return s.store.ListComments(ctx)
}
