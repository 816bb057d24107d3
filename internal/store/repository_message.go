package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/models"
)

// messageRepository is the PostgreSQL-backed implementation of
// [MessageRepository]. The user_messages table acts as a one-shot queue:
// GetAndDeleteMessages consumes it atomically with a single
// DELETE ... RETURNING statement.
type messageRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// AddMessage queues a message for the given user.
func (r *messageRepository) AddMessage(ctx context.Context, userID int64, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	msg := models.Message{Source: models.MessageSourceUser}
	row := r.db.QueryRowContext(ctx, addUserMessage, userID, text)
	if err := row.Scan(&msg.MessageID, &msg.Text, &msg.CreatedAt); err != nil {
		log.Err(err).Str("func", "*messageRepository.AddMessage").Msg("error queuing user message")
		return models.Message{}, fmt.Errorf("error queuing user message: %w", err)
	}

	return msg, nil
}

// GetAndDeleteMessages drains the user's message queue and returns the
// consumed messages in queue order. An empty queue yields an empty slice.
func (r *messageRepository) GetAndDeleteMessages(ctx context.Context, userID int64) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAndDeleteUserMessages, userID)
	if err != nil {
		log.Err(err).Str("func", "*messageRepository.GetAndDeleteMessages").Msg("error draining user messages")
		return nil, fmt.Errorf("error draining user messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		msg := models.Message{Source: models.MessageSourceUser}
		if err := rows.Scan(&msg.MessageID, &msg.Text, &msg.CreatedAt); err != nil {
			log.Err(err).Str("func", "*messageRepository.GetAndDeleteMessages").Msg("error scanning user message")
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// DELETE ... RETURNING carries no ordering guarantee
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].MessageID < messages[j].MessageID
	})

	return messages, nil
}
