// ABOUTME: Profile service for the about screen's bio and address fields
// ABOUTME: Save is a single atomic upsert keyed by the account reference

package profile

import (
	"context"
	"log/slog"

	"github.com/pocketchat/pocketchat/internal/store"
)

// Service exposes profile load/save over the injected store.
type Service struct {
	store  store.ProfileStore
	logger *slog.Logger
}

// New creates a new profile service.
func New(st store.ProfileStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger.With("component", "profile"),
	}
}

// Save writes the bio and address for an account. Saving twice leaves
// exactly one row with the later values.
func (s *Service) Save(ctx context.Context, accountID int64, bio, address string) error {
	if err := s.store.UpsertProfile(ctx, accountID, bio, address); err != nil {
		return err
	}
	s.logger.Debug("profile saved", "account_id", accountID)
	return nil
}

// Load returns the profile for an account, or store.ErrNotFound when
// none has been saved yet.
func (s *Service) Load(ctx context.Context, accountID int64) (*store.Profile, error) {
	return s.store.GetProfile(ctx, accountID)
}
