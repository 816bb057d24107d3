// Package store implements the persistence layer: user accounts,
// permissions, and user messages live in PostgreSQL; sessions and their
// message queues live in a local SQLite database. The package also provides
// the per-request SQL query log consumed by the debug context processor.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

import (
	"context"
	"time"

	"github.com/thirstydigital/django/models"
)

// UserRepository manages persisted user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// PermissionRepository resolves the permission set of a user, including
// permissions granted through group membership.
type PermissionRepository interface {
	// UserPermissions returns all permission names held by the user in
	// "module.codename" form, deduplicated and sorted.
	UserPermissions(ctx context.Context, userID int64) ([]string, error)
}

// MessageRepository manages the per-user message queue. Messages follow a
// get-and-delete protocol: reading consumes the queue.
type MessageRepository interface {
	AddMessage(ctx context.Context, userID int64, text string) (models.Message, error)
	GetAndDeleteMessages(ctx context.Context, userID int64) ([]models.Message, error)
}

// SessionStore manages server-side sessions and their message queues.
type SessionStore interface {
	CreateSession(ctx context.Context, userID int64, lifetime time.Duration) (models.Session, error)
	FindSession(ctx context.Context, key string) (models.Session, error)
	AddMessage(ctx context.Context, key string, text string) (models.Message, error)
	GetAndDeleteMessages(ctx context.Context, key string) ([]models.Message, error)
	// DeleteExpired removes sessions (and their queued messages) that
	// expired before the given moment and reports how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
