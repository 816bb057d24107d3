package http

import (
	"context"
	"net/http"

	"golang.org/x/text/language"

	"github.com/thirstydigital/django/internal/utils"
)

// withLanguage negotiates the request language and attaches the matched
// tag to the context under [utils.LanguageCtxKey].
//
// An explicit language cookie wins over Accept-Language negotiation. Both
// are matched against the configured language list; when nothing matches,
// the matcher falls back to the first configured language. Requests fail
// open: a missing matcher (no configured languages) leaves the request
// without a language and the i18n processor applies the configured default.
func (h *Handler) withLanguage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.langMatcher == nil {
			next.ServeHTTP(w, r)
			return
		}

		var preferences []string
		if cookie, err := r.Cookie(h.settings.I18N.LanguageCookieName); err == nil && cookie.Value != "" {
			preferences = append(preferences, cookie.Value)
		}
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			preferences = append(preferences, accept)
		}

		_, index := language.MatchStrings(h.langMatcher, preferences...)
		code := h.langCodes[index]

		ctx := context.WithValue(r.Context(), utils.LanguageCtxKey, code)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// newLanguageMatcher builds the matcher over the configured language list,
// returning it alongside the codes that parsed (the matcher's index refers
// into that list). A nil matcher means no configured code parsed and the
// middleware skips negotiation entirely.
func newLanguageMatcher(codes []string) (language.Matcher, []string) {
	tags := make([]language.Tag, 0, len(codes))
	matched := make([]string, 0, len(codes))
	for _, code := range codes {
		if tag, err := language.Parse(code); err == nil {
			tags = append(tags, tag)
			matched = append(matched, code)
		}
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return language.NewMatcher(tags), matched
}
