// ABOUTME: Direct-message persistence methods on SQLiteStore
// ABOUTME: Inserts are keyed by account id; reads join accounts for display names

package store

import (
	"context"
	"fmt"
	"time"
)

// SaveMessage inserts a message with a store-assigned timestamp and
// returns its id. Participants are account ids; the foreign keys keep
// conversation rows tied to real accounts.
func (s *SQLiteStore) SaveMessage(ctx context.Context, senderID, receiverID int64, body string) (int64, error) {
	query := `
		INSERT INTO messages (sender_id, receiver_id, body, created_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		senderID,
		receiverID,
		body,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting message id: %w", err)
	}

	s.logger.Debug("saved message", "id", id, "sender_id", senderID, "receiver_id", receiverID)
	return id, nil
}

// GetConversation retrieves all messages between two accounts in either
// direction, in creation order (same-second ties broken by id). The full
// history is loaded every call; there is no pagination.
func (s *SQLiteStore) GetConversation(ctx context.Context, accountA, accountB int64) ([]*Message, error) {
	query := `
		SELECT m.id, sa.name, ra.name, m.body, m.created_at
		FROM messages m
		JOIN accounts sa ON sa.id = m.sender_id
		JOIN accounts ra ON ra.id = m.receiver_id
		WHERE (m.sender_id = ? AND m.receiver_id = ?)
		   OR (m.sender_id = ? AND m.receiver_id = ?)
		ORDER BY m.created_at ASC, m.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, accountA, accountB, accountB, accountA)
	if err != nil {
		return nil, fmt.Errorf("querying conversation: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var messages []*Message
	for rows.Next() {
		var msg Message
		var createdAtStr string

		if err := rows.Scan(&msg.ID, &msg.Sender, &msg.Receiver, &msg.Body, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}

		msg.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing message created_at: %w", err)
		}

		messages = append(messages, &msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}

	return messages, nil
}
