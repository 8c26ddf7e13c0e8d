// Package store provides persistent storage for pocketchat using SQLite.
//
// # Architecture
//
// The package splits the persistence surface into small interfaces:
//
//   - AccountStore: registration, credential lookup, listing, avatar reference
//   - MessageStore: direct messages between two accounts
//   - CommentStore: the public comment wall
//   - ProfileStore: per-account bio/address extension
//
// SQLiteStore implements all of them in a single struct over one shared
// database handle. The handle is opened once at process start and
// injected into every service; nothing in this package holds global
// state.
//
// # Identity
//
// Messages and comments are keyed by accounts.id foreign keys rather
// than free-text name copies, so conversation rows always reference a
// real account. Reads join the accounts table to return display names.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// Timestamps are stored as RFC3339 UTC text and parsed on scan.
//
// # Error Handling
//
// Common errors:
//
//   - ErrNotFound: Requested entity does not exist
//   - ErrDuplicateEmail: accounts.email unique constraint violated
//   - *ValidationError: input rejected before any SQL is issued
//
// All methods accept context.Context for cancellation support.
package store
