package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/models"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    session_key TEXT PRIMARY KEY,
    user_id     INTEGER NOT NULL DEFAULT 0,
    created_at  TIMESTAMP NOT NULL,
    expires_at  TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS session_messages (
    message_id  INTEGER PRIMARY KEY AUTOINCREMENT,
    session_key TEXT NOT NULL REFERENCES sessions(session_key) ON DELETE CASCADE,
    message     TEXT NOT NULL,
    created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
CREATE INDEX IF NOT EXISTS idx_session_messages_key ON session_messages(session_key);`

// sessionStore is the SQLite-backed implementation of [SessionStore].
// Session keys are opaque UUIDs; each session carries its own one-shot
// message queue.
type sessionStore struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionStore constructs a [SessionStore] on top of the given SQLite
// connection, creating the schema when missing.
func NewSessionStore(ctx context.Context, db *DB, logger *logger.Logger) (SessionStore, error) {
	logger.Debug().Msg("creating session store")

	if _, err := db.ExecContext(ctx, sessionSchema); err != nil {
		logger.Err(err).Str("func", "NewSessionStore").Msg("error creating session schema")
		return nil, fmt.Errorf("error creating session schema: %w", err)
	}

	return &sessionStore{
		db:     db,
		logger: logger,
	}, nil
}

// CreateSession inserts a new session with a fresh opaque key.
// A zero userID creates an anonymous session.
func (s *sessionStore) CreateSession(ctx context.Context, userID int64, lifetime time.Duration) (models.Session, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	session := models.Session{
		Key:       uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(lifetime),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_key, user_id, created_at, expires_at) VALUES (?, ?, ?, ?);`,
		session.Key, session.UserID, session.CreatedAt, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.CreateSession").Msg("error creating session")
		return models.Session{}, fmt.Errorf("error creating session: %w", err)
	}

	return session, nil
}

// FindSession loads the session with the given key. Expired sessions that
// have not been swept yet are reported as [ErrNoSessionWasFound].
func (s *sessionStore) FindSession(ctx context.Context, key string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := s.db.QueryRowContext(ctx,
		`SELECT session_key, user_id, created_at, expires_at FROM sessions WHERE session_key = ?;`, key)
	if err := row.Scan(&session.Key, &session.UserID, &session.CreatedAt, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionStore.FindSession").Msg("error loading session")
		return models.Session{}, err
	}

	if session.Expired(time.Now().UTC()) {
		return models.Session{}, ErrNoSessionWasFound
	}

	return session, nil
}

// AddMessage queues a message on the session.
func (s *sessionStore) AddMessage(ctx context.Context, key string, text string) (models.Message, error) {
	log := logger.FromContext(ctx)

	msg := models.Message{Source: models.MessageSourceSession}
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO session_messages (session_key, message) VALUES (?, ?) RETURNING message_id, message, created_at;`,
		key, text)
	if err := row.Scan(&msg.MessageID, &msg.Text, &msg.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionStore.AddMessage").Msg("error queuing session message")
		return models.Message{}, fmt.Errorf("error queuing session message: %w", err)
	}

	return msg, nil
}

// GetAndDeleteMessages drains the session's message queue inside one
// transaction and returns the consumed messages in queue order.
func (s *sessionStore) GetAndDeleteMessages(ctx context.Context, key string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.GetAndDeleteMessages").Msg("error starting transaction")
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT message_id, message, created_at FROM session_messages WHERE session_key = ? ORDER BY message_id;`, key)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.GetAndDeleteMessages").Msg("error reading session messages")
		return nil, err
	}

	var messages []models.Message
	for rows.Next() {
		msg := models.Message{Source: models.MessageSourceSession}
		if err := rows.Scan(&msg.MessageID, &msg.Text, &msg.CreatedAt); err != nil {
			rows.Close()
			return nil, err
		}
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session_messages WHERE session_key = ?;`, key); err != nil {
		log.Err(err).Str("func", "*sessionStore.GetAndDeleteMessages").Msg("error deleting session messages")
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing message drain: %w", err)
	}

	return messages, nil
}

// DeleteExpired removes sessions that expired before the given moment,
// along with their queued messages, and reports how many sessions were
// removed.
func (s *sessionStore) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	// Timestamps are stored in UTC; sqlite binds time.Time with its zone
	// offset and compares the text, so a local-time bound would shift the
	// cutoff by the zone offset.
	before = before.UTC()

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM session_messages WHERE session_key IN (SELECT session_key FROM sessions WHERE expires_at <= ?);`,
		before); err != nil {
		log.Err(err).Str("func", "*sessionStore.DeleteExpired").Msg("error deleting expired session messages")
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= ?;`, before)
	if err != nil {
		log.Err(err).Str("func", "*sessionStore.DeleteExpired").Msg("error deleting expired sessions")
		return 0, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
