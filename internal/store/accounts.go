// ABOUTME: Account persistence methods on SQLiteStore
// ABOUTME: Registration, credential lookup, listing and the avatar reference update

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// CreateAccount inserts a new account and returns its assigned id.
// Returns ErrDuplicateEmail if the email is already registered.
func (s *SQLiteStore) CreateAccount(ctx context.Context, name, email, password string) (int64, error) {
	query := `
		INSERT INTO accounts (name, email, password)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, name, email, password)
	if err != nil {
		if isUniqueConstraintError(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("inserting account: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting account id: %w", err)
	}

	s.logger.Debug("created account", "id", id, "email", email)
	return id, nil
}

// GetAccountByCredentials retrieves the account matching both email and
// password exactly (case-sensitive, no hashing by contract).
// Returns ErrNotFound when no account matches.
func (s *SQLiteStore) GetAccountByCredentials(ctx context.Context, email, password string) (*Account, error) {
	query := `
		SELECT id, name, email, password, image_ref
		FROM accounts
		WHERE email = ? AND password = ?
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, email, password))
}

// GetAccountByName retrieves an account by display name. Display names
// are not unique; when several accounts share a name the lowest id wins.
// Returns ErrNotFound when no account has the given name.
func (s *SQLiteStore) GetAccountByName(ctx context.Context, name string) (*Account, error) {
	query := `
		SELECT id, name, email, password, image_ref
		FROM accounts
		WHERE name = ?
		ORDER BY id ASC
		LIMIT 1
	`

	return s.scanAccount(s.db.QueryRowContext(ctx, query, name))
}

func (s *SQLiteStore) scanAccount(row *sql.Row) (*Account, error) {
	var account Account
	var imageRef sql.NullString

	err := row.Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.Password,
		&imageRef,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning account: %w", err)
	}

	account.ImageRef = imageRef.String
	return &account, nil
}

// ListAccounts returns all accounts in natural (id) order.
func (s *SQLiteStore) ListAccounts(ctx context.Context) ([]*Account, error) {
	query := `
		SELECT id, name, email, password, image_ref
		FROM accounts
		ORDER BY id ASC
	`

	return s.queryAccounts(ctx, query)
}

// ListOtherAccounts returns every account whose id differs from
// excludeID, in natural order.
func (s *SQLiteStore) ListOtherAccounts(ctx context.Context, excludeID int64) ([]*Account, error) {
	query := `
		SELECT id, name, email, password, image_ref
		FROM accounts
		WHERE id != ?
		ORDER BY id ASC
	`

	return s.queryAccounts(ctx, query, excludeID)
}

func (s *SQLiteStore) queryAccounts(ctx context.Context, query string, args ...any) ([]*Account, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var accounts []*Account
	for rows.Next() {
		var account Account
		var imageRef sql.NullString

		if err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.Password, &imageRef); err != nil {
			return nil, fmt.Errorf("scanning account row: %w", err)
		}

		account.ImageRef = imageRef.String
		accounts = append(accounts, &account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating account rows: %w", err)
	}

	return accounts, nil
}

// SetAccountImage stores the avatar file reference for an account.
// Unconditional update: a missing account id affects zero rows and is
// not an error.
func (s *SQLiteStore) SetAccountImage(ctx context.Context, id int64, ref string) error {
	query := `UPDATE accounts SET image_ref = ? WHERE id = ?`

	if _, err := s.db.ExecContext(ctx, query, ref, id); err != nil {
		return fmt.Errorf("updating account image: %w", err)
	}

	s.logger.Debug("set account image", "id", id, "ref", ref)
	return nil
}

// CountAccounts returns the number of registered accounts.
func (s *SQLiteStore) CountAccounts(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM accounts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}
	return count, nil
}
