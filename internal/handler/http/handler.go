package http

import (
	"html/template"

	"golang.org/x/text/language"

	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/service"
	"github.com/thirstydigital/django/internal/store"
	"github.com/thirstydigital/django/internal/templatectx"
)

type Handler struct {
	settings *config.Settings
	services *service.Services
	sessions store.SessionStore

	// processors assemble the extra template variables merged into every
	// rendered page context.
	processors *templatectx.Processors

	tmpl *template.Template

	// langMatcher negotiates request languages against langCodes, the
	// configured language tags that parsed.
	langMatcher language.Matcher
	langCodes   []string

	logger *logger.Logger
}

func NewHandler(settings *config.Settings, services *service.Services, sessions store.SessionStore, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	matcher, codes := newLanguageMatcher(settings.I18N.Languages)

	return &Handler{
		settings:    settings,
		services:    services,
		sessions:    sessions,
		processors:  templatectx.NewProcessors(settings, services),
		tmpl:        template.Must(template.New("index").Parse(indexTemplate)),
		langMatcher: matcher,
		langCodes:   codes,
		logger:      logger,
	}
}
