// ABOUTME: Profile persistence methods on SQLiteStore
// ABOUTME: Atomic upsert keyed by the unique account reference

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// UpsertProfile inserts or updates the profile row for an account in a
// single statement. The unique constraint on account_id guarantees one
// row per account even under concurrent writers; the later write wins.
func (s *SQLiteStore) UpsertProfile(ctx context.Context, accountID int64, bio, address string) error {
	query := `
		INSERT INTO profiles (account_id, bio, address)
		VALUES (?, ?, ?)
		ON CONFLICT(account_id) DO UPDATE SET
			bio = excluded.bio,
			address = excluded.address
	`

	if _, err := s.db.ExecContext(ctx, query, accountID, bio, address); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	s.logger.Debug("saved profile", "account_id", accountID)
	return nil
}

// GetProfile retrieves the profile for an account.
// Returns ErrNotFound when the account has no profile row.
func (s *SQLiteStore) GetProfile(ctx context.Context, accountID int64) (*Profile, error) {
	query := `
		SELECT id, account_id, bio, address
		FROM profiles
		WHERE account_id = ?
	`

	var profile Profile
	var bio, address sql.NullString

	err := s.db.QueryRowContext(ctx, query, accountID).Scan(
		&profile.ID,
		&profile.AccountID,
		&bio,
		&address,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying profile: %w", err)
	}

	profile.Bio = bio.String
	profile.Address = address.String
	return &profile, nil
}
