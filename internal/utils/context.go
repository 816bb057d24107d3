// Package utils provides general-purpose helper utilities used across
// different parts of the application. Includes tools for working with
// context and type-safe keys, HTTP response writing, and JWT token
// generation and validation.
package utils

import (
	"context"

	"github.com/thirstydigital/django/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// Context keys under which the request-enrichment middleware stores the
// values later consumed by handlers and the template-context processors.
var (
	// UserCtxKey holds the authenticated [models.User] of the request.
	// Absent for anonymous requests.
	UserCtxKey = contextKey("user")

	// SessionKeyCtxKey holds the opaque session key of the request, as
	// established by the session middleware.
	SessionKeyCtxKey = contextKey("sessionKey")

	// LanguageCtxKey holds the negotiated language tag of the request.
	LanguageCtxKey = contextKey("language")
)

// UserFromContext retrieves the request user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — an authenticated user was attached by the middleware
//   - ok == false — the request is anonymous
//
// Callers wanting a usable value in both cases should fall back to
// [models.AnonymousUser] when ok is false.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// SessionKeyFromContext retrieves the session key from the context.
// The ok flag is false when the request carries no session.
func SessionKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(SessionKeyCtxKey).(string)
	return key, ok && key != ""
}

// LanguageFromContext retrieves the negotiated language tag from the
// context. The ok flag is false when no language middleware ran for the
// request; callers fall back to the configured default.
func LanguageFromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(LanguageCtxKey).(string)
	return lang, ok && lang != ""
}
