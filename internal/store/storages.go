package store

import (
	"context"
	"fmt"

	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
)

// Storages aggregates every repository and store the service layer needs.
type Storages struct {
	UserRepository       UserRepository
	PermissionRepository PermissionRepository
	MessageRepository    MessageRepository
	SessionStore         SessionStore
}

// NewStorages connects both persistence backends, applies migrations to the
// relational database, and wires all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	sessionsDB, err := NewConnectSQLite(ctx, cfg.Sessions, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to session store: %w", err)
	}

	sessions, err := NewSessionStore(ctx, sessionsDB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating session store: %w", err)
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		PermissionRepository: NewPermissionRepository(db, log),
		MessageRepository:    NewMessageRepository(db, log),
		SessionStore:         sessions,
	}, nil
}
