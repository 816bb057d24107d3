package http

import (
	"context"
	"net/http"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/utils"
)

// withSession ensures every request carries a server-side session and
// attaches its key to the context under [utils.SessionKeyCtxKey].
//
// A valid session cookie reuses the existing session. A missing, unknown,
// or expired cookie gets a fresh anonymous session and a replacement
// cookie. When even creating a session fails the request continues without
// one; the message and auth processors tolerate its absence.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		if cookie, err := r.Cookie(h.settings.Auth.SessionCookieName); err == nil && cookie.Value != "" {
			if session, err := h.sessions.FindSession(ctx, cookie.Value); err == nil {
				ctx = context.WithValue(ctx, utils.SessionKeyCtxKey, session.Key)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
		}

		session, err := h.sessions.CreateSession(ctx, 0, h.settings.Auth.SessionDuration)
		if err != nil {
			log.Err(err).Msg("session creation failed, continuing without a session")
			next.ServeHTTP(w, r)
			return
		}

		h.setSessionCookie(w, session.Key)
		ctx = context.WithValue(ctx, utils.SessionKeyCtxKey, session.Key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, key string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.Auth.SessionCookieName,
		Value:    key,
		Path:     "/",
		MaxAge:   int(h.settings.Auth.SessionDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
