// ABOUTME: Comment-wall persistence methods on SQLiteStore
// ABOUTME: Listing is ordered by id, not timestamp, to preserve append-at-end display

package store

import (
	"context"
	"fmt"
	"time"
)

// CreateComment inserts a wall comment and returns its id.
func (s *SQLiteStore) CreateComment(ctx context.Context, authorID int64, body string) (int64, error) {
	query := `
		INSERT INTO comments (author_id, body, created_at)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		authorID,
		body,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting comment id: %w", err)
	}

	s.logger.Debug("created comment", "id", id, "author_id", authorID)
	return id, nil
}

// ListComments returns all comments ordered by id ascending. Insertion
// order is the display contract; the timestamp column exists but does
// not drive ordering.
func (s *SQLiteStore) ListComments(ctx context.Context) ([]*Comment, error) {
	query := `
		SELECT c.id, a.name, c.body, c.created_at
		FROM comments c
		JOIN accounts a ON a.id = c.author_id
		ORDER BY c.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var comments []*Comment
	for rows.Next() {
		var c Comment
		var createdAtStr string

		if err := rows.Scan(&c.ID, &c.Author, &c.Body, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning comment row: %w", err)
		}

		c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing comment created_at: %w", err)
		}

		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating comment rows: %w", err)
	}

	return comments, nil
}
