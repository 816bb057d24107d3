package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/utils"
)

// withUser resolves the request user and attaches it to the context under
// [utils.UserCtxKey].
//
// Two credentials are consulted, in order: a bearer token in the
// Authorization header, then the user bound to the request's session. On
// any failure — missing header, malformed token, expired token, unknown or
// deactivated account — the request simply continues anonymously. Rejecting
// is left to handlers that require authentication.
func (h *Handler) withUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// One permission cache per request: however many permission checks
		// a page makes, each user's set is resolved once.
		ctx := service.WithPermCache(r.Context())
		r = r.WithContext(ctx)
		log := logger.FromRequest(r)

		userID, ok := h.userIDFromBearer(r)
		if !ok {
			userID, ok = h.userIDFromSession(r)
		}
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.AuthService.UserByID(ctx, userID)
		if err != nil {
			log.Debug().Err(err).Int64("id", userID).Msg("request user could not be loaded, continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) userIDFromBearer(r *http.Request) (int64, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return 0, false
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return 0, false
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return 0, false
	}

	userID, err := token.GetUserID()
	if err != nil {
		return 0, false
	}
	return userID, true
}

func (h *Handler) userIDFromSession(r *http.Request) (int64, bool) {
	key, ok := utils.SessionKeyFromContext(r.Context())
	if !ok {
		return 0, false
	}

	session, err := h.sessions.FindSession(r.Context(), key)
	if err != nil || session.UserID == 0 {
		return 0, false
	}
	return session.UserID, true
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: Bearer <token>
//
// It returns [ErrInvalidAuthorizationHeader] when the header has fewer than
// two space-separated parts and [ErrEmptyToken] when the token part is an
// empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
