package http

import (
	"net/http"

	"github.com/thirstydigital/django/internal/store"
)

// withQueryLog installs a per-request SQL query log into the context. The
// store layer records every executed statement into it, and the debug
// template-context processor exposes the entries to internal requests.
//
// The log is only installed in debug mode; in production the store layer
// finds no log in the context and records nothing.
func (h *Handler) withQueryLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.settings.App.Debug {
			r = r.WithContext(store.WithQueryLog(r.Context(), store.NewQueryLog()))
		}
		next.ServeHTTP(w, r)
	})
}
