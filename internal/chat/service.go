// ABOUTME: Conversation service for one-to-one direct messages
// ABOUTME: Accepts display names at the edge, resolves them to account ids before any write

package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pocketchat/pocketchat/internal/store"
)

// ConversationStore defines what the service needs from storage.
type ConversationStore interface {
	GetAccountByName(ctx context.Context, name string) (*store.Account, error)
	SaveMessage(ctx context.Context, senderID, receiverID int64, body string) (int64, error)
	GetConversation(ctx context.Context, accountA, accountB int64) ([]*store.Message, error)
}

// Service is the conversation layer. Callers pass the display names the
// screens hold; internally every row is keyed by account id so a
// message can never reference a participant that doesn't exist.
type Service struct {
	store  ConversationStore
	logger *slog.Logger
}

// New creates a new conversation service.
func New(st ConversationStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:  st,
		logger: logger.With("component", "chat"),
	}
}

// Send records a message from sender to receiver. The body is trimmed;
// an empty or whitespace-only body is a *store.ValidationError. Unknown
// participant names are store.ErrNotFound. The timestamp is assigned by
// the store at insert time.
func (s *Service) Send(ctx context.Context, senderName, receiverName, body string) error {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return &store.ValidationError{Field: "body", Reason: "must not be empty"}
	}

	sender, err := s.store.GetAccountByName(ctx, senderName)
	if err != nil {
		return fmt.Errorf("resolving sender %q: %w", senderName, err)
	}
	receiver, err := s.store.GetAccountByName(ctx, receiverName)
	if err != nil {
		return fmt.Errorf("resolving receiver %q: %w", receiverName, err)
	}

	id, err := s.store.SaveMessage(ctx, sender.ID, receiver.ID, trimmed)
	if err != nil {
		return err
	}

	s.logger.Debug("message sent", "id", id, "sender", senderName, "receiver", receiverName)
	return nil
}

// History returns the full conversation between two users in creation
// order. Both directions are included regardless of argument order.
func (s *Service) History(ctx context.Context, userA, userB string) ([]*store.Message, error) {
	a, err := s.store.GetAccountByName(ctx, userA)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", userA, err)
	}
	b, err := s.store.GetAccountByName(ctx, userB)
	if err != nil {
		return nil, fmt.Errorf("resolving %q: %w", userB, err)
	}

	return s.store.GetConversation(ctx, a.ID, b.ID)
}
