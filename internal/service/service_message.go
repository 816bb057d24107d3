package service

import (
	"context"
	"fmt"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/models"
)

// messageService is the concrete implementation of MessageService.
//
// It merges two one-shot message sources: per-user queues persisted in the
// MessageRepository and per-session queues held in the SessionStore. Both
// follow the same get-and-delete protocol, so every message is delivered
// at most once.
type messageService struct {
	messageRepository store.MessageRepository
	sessionStore      store.SessionStore
	logger            *logger.Logger
}

// NewMessageService constructs a MessageService over the given repositories.
func NewMessageService(messageRepository store.MessageRepository, sessionStore store.SessionStore, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		sessionStore:      sessionStore,
		logger:            logger,
	}
}

// MessagesFor drains both queues addressed to the current request: the
// user's queue first (skipped for anonymous users), then the session's
// queue (skipped when sessionKey is empty).
//
// Drained messages are deleted as part of retrieval. When one source fails
// after the other has already been drained, the drained messages are
// returned alongside the error so the caller can still deliver them.
func (m *messageService) MessagesFor(ctx context.Context, user models.User, sessionKey string) ([]models.Message, error) {
	var messages []models.Message

	if !user.IsAnonymous() {
		userMessages, err := m.messageRepository.GetAndDeleteMessages(ctx, user.UserID)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Int64("id", user.UserID).
				Msg("draining user messages failed")
			return messages, fmt.Errorf("draining user messages failed: %w", err)
		}
		messages = append(messages, userMessages...)
	}

	if sessionKey != "" {
		sessionMessages, err := m.sessionStore.GetAndDeleteMessages(ctx, sessionKey)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("session", sessionKey).
				Msg("draining session messages failed")
			return messages, fmt.Errorf("draining session messages failed: %w", err)
		}
		messages = append(messages, sessionMessages...)
	}

	return messages, nil
}

// QueueUserMessage stores a message for later delivery to the given user.
func (m *messageService) QueueUserMessage(ctx context.Context, userID int64, text string) error {
	if text == "" {
		return ErrInvalidDataProvided
	}

	if _, err := m.messageRepository.AddMessage(ctx, userID, text); err != nil {
		return fmt.Errorf("queueing user message failed: %w", err)
	}
	return nil
}

// QueueSessionMessage stores a message for later delivery to the given session.
func (m *messageService) QueueSessionMessage(ctx context.Context, sessionKey string, text string) error {
	if sessionKey == "" || text == "" {
		return ErrInvalidDataProvided
	}

	if _, err := m.sessionStore.AddMessage(ctx, sessionKey, text); err != nil {
		return fmt.Errorf("queueing session message failed: %w", err)
	}
	return nil
}
