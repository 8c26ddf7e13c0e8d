// ABOUTME: Store interfaces and data types for pocketchat persistence
// ABOUTME: Defines Account, Message, Comment, Profile and the per-table store interfaces

package store

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when registering with an email that is
// already taken (unique constraint on accounts.email).
var ErrDuplicateEmail = errors.New("email already registered")

// ValidationError describes input rejected before any SQL is issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Account represents a registered user identity.
// Password is stored and compared as plaintext by contract; this demo
// makes no security claims.
type Account struct {
	ID       int64
	Name     string
	Email    string
	Password string
	ImageRef string // local file reference, empty until set
}

// Message is a direct message between two accounts. Sender and Receiver
// are display names resolved from the accounts table; the rows
// themselves are keyed by account id.
type Message struct {
	ID        int64
	Sender    string
	Receiver  string
	Body      string
	CreatedAt time.Time
}

// Comment is a public wall post.
type Comment struct {
	ID        int64
	Author    string
	Body      string
	CreatedAt time.Time
}

// Profile holds the optional bio/address extension for an account.
// One row per account, enforced by a unique constraint on account_id.
type Profile struct {
	ID        int64
	AccountID int64
	Bio       string
	Address   string
}

// AccountStore defines account persistence operations.
type AccountStore interface {
	CreateAccount(ctx context.Context, name, email, password string) (int64, error)
	GetAccountByCredentials(ctx context.Context, email, password string) (*Account, error)
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	ListOtherAccounts(ctx context.Context, excludeID int64) ([]*Account, error)
	SetAccountImage(ctx context.Context, id int64, ref string) error
	CountAccounts(ctx context.Context) (int, error)
}

// MessageStore defines direct-message persistence operations.
type MessageStore interface {
	SaveMessage(ctx context.Context, senderID, receiverID int64, body string) (int64, error)
	GetConversation(ctx context.Context, accountA, accountB int64) ([]*Message, error)
}

// CommentStore defines comment-wall persistence operations.
type CommentStore interface {
	CreateComment(ctx context.Context, authorID int64, body string) (int64, error)
	ListComments(ctx context.Context) ([]*Comment, error)
}

// ProfileStore defines profile persistence operations.
type ProfileStore interface {
	UpsertProfile(ctx context.Context, accountID int64, bio, address string) error
	GetProfile(ctx context.Context, accountID int64) (*Profile, error)
}

// Store is the full persistence surface backed by the single shared
// database handle.
type Store interface {
	AccountStore
	MessageStore
	CommentStore
	ProfileStore

	// Close releases the database handle.
	Close() error
}
