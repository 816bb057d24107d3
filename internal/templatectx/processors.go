// Package templatectx implements the request processors that assemble extra
// template variables for a rendering context. Each processor takes the
// request as its only parameter and returns a map to merge into the context;
// RequestContext composes them.
//
// Processors never fail: missing request attributes degrade to safe defaults
// (anonymous user, empty message list, configured default language) instead
// of returning errors, so template rendering cannot break on an unusual
// request.
package templatectx

import (
	"net"
	"net/http"
	"slices"

	"golang.org/x/text/language"

	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/internal/utils"
	"github.com/thirstydigital/django/models"
)

// Processor is a request processor: it derives extra template variables from
// the request. Processors are pure aside from reading configuration and are
// independently invocable in any order.
type Processor func(r *http.Request) map[string]any

// Processors bundles the request processors that need configuration or
// services behind them. Each exported method has the Processor signature, so
// method values plug straight into RequestContext.
type Processors struct {
	settings *config.Settings
	perms    service.PermService
	messages service.MessageService
}

// NewProcessors constructs the processor set over the given configuration
// and services.
func NewProcessors(settings *config.Settings, services *service.Services) *Processors {
	return &Processors{
		settings: settings,
		perms:    services.PermService,
		messages: services.MessageService,
	}
}

// Auth returns the context variables required by templates that use the
// authentication system: "user" (the request user, or the anonymous user
// when the request carries none) and "perms" (a lazy permission proxy).
// It also contributes everything Messages contributes.
func (p *Processors) Auth(r *http.Request) map[string]any {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		user = models.AnonymousUser()
	}

	extras := map[string]any{
		"user":  user,
		"perms": NewPermWrapper(r, user, p.perms),
	}
	for k, v := range p.Messages(r) {
		extras[k] = v
	}
	return extras
}

// Messages returns the "messages" variable: a lazy view over the user's and
// the session's message queues. Nothing is fetched or deleted unless the
// variable is actually consumed.
//
// When the request carries neither a user nor a session, no "messages"
// variable is added at all.
func (p *Processors) Messages(r *http.Request) map[string]any {
	_, hasUser := utils.UserFromContext(r.Context())
	_, hasSession := utils.SessionKeyFromContext(r.Context())
	if !hasUser && !hasSession {
		return map[string]any{}
	}
	return map[string]any{"messages": NewLazyMessages(r, p.messages)}
}

// Debug returns variables helpful for debugging: "debug" and "sql_queries",
// the SQL statements executed so far for this request. Only requests from a
// configured internal IP see them, and only with debug mode on.
func (p *Processors) Debug(r *http.Request) map[string]any {
	extras := map[string]any{}
	if !p.settings.App.Debug {
		return extras
	}

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		ip = host
	}
	if !slices.Contains(p.settings.App.InternalIPs, ip) {
		return extras
	}

	extras["debug"] = true
	if log, ok := store.QueryLogFromContext(r.Context()); ok {
		extras["sql_queries"] = log.Entries()
	} else {
		extras["sql_queries"] = []store.QueryEntry{}
	}
	return extras
}

// I18N returns the language variables: "LANGUAGES" (the offered languages
// with their self-names), "LANGUAGE_CODE" (the request's negotiated language
// or the configured default), and "LANGUAGE_BIDI" (whether that language is
// written right-to-left).
func (p *Processors) I18N(r *http.Request) map[string]any {
	code, ok := utils.LanguageFromContext(r.Context())
	if !ok {
		code = p.settings.I18N.LanguageCode
	}

	return map[string]any{
		"LANGUAGES":     languageList(p.settings.I18N.Languages),
		"LANGUAGE_CODE": code,
		"LANGUAGE_BIDI": p.isBidi(code),
	}
}

// Media returns the "MEDIA_URL" variable.
func (p *Processors) Media(r *http.Request) map[string]any {
	return map[string]any{"MEDIA_URL": p.settings.App.MediaURL}
}

// Request exposes the request itself under "request".
func Request(r *http.Request) map[string]any {
	return map[string]any{"request": r}
}

// RequestContext runs the given processors against the request and merges
// their outputs into a single context map. Later processors win on key
// conflicts.
func RequestContext(r *http.Request, processors ...Processor) map[string]any {
	context := map[string]any{}
	for _, processor := range processors {
		for k, v := range processor(r) {
			context[k] = v
		}
	}
	return context
}

// isBidi reports whether the base language of code is one of the configured
// right-to-left languages. Unparseable codes render left-to-right.
func (p *Processors) isBidi(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	return slices.Contains(p.settings.I18N.BidiLanguages, base.String())
}
