package store

import "errors"

// Sentinel errors returned by the repositories. Callers match against them
// with [errors.Is].
var (
	// ErrLoginAlreadyExists is returned by CreateUser when the login is
	// already taken (unique constraint violation).
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned by the user lookups when no row
	// matches the given login or ID.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned by FindSession when the key is
	// unknown or the session has already been swept.
	ErrNoSessionWasFound = errors.New("no session was found")
)
