// Package service implements the application's business logic on top of the
// store layer: account registration and login, JWT token lifecycle,
// permission checks, and the one-shot user/session message protocol
// consumed by the template-context processors.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

import (
	"context"

	"github.com/thirstydigital/django/models"
)

// AuthService handles user registration, credential verification, and JWT
// token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// UserByID resolves the account behind a parsed token. Inactive
	// accounts resolve like missing ones.
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

// PermService answers permission queries for request users. All methods
// treat anonymous and inactive users as holding no permissions, and active
// superusers as holding every permission.
type PermService interface {
	// HasPerm reports whether the user holds the permission named in
	// "module.codename" form. Lookup failures degrade to false.
	HasPerm(ctx context.Context, user models.User, perm string) bool

	// HasModulePerms reports whether the user holds any permission in the
	// given module.
	HasModulePerms(ctx context.Context, user models.User, module string) bool

	// AllPermissions returns the user's full permission set, sorted.
	AllPermissions(ctx context.Context, user models.User) ([]string, error)
}

// MessageService implements the get-and-delete message protocol over both
// message sources.
type MessageService interface {
	// MessagesFor drains the user's queue (when authenticated) and then
	// the session's queue (when a session key is given), returning the
	// combined messages in that order. On a partial failure the messages
	// collected so far are returned alongside the error.
	MessagesFor(ctx context.Context, user models.User, sessionKey string) ([]models.Message, error)

	QueueUserMessage(ctx context.Context, userID int64, text string) error
	QueueSessionMessage(ctx context.Context, sessionKey string, text string) error
}
