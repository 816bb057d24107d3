package http

import (
	"net/http"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/templatectx"
)

// indexTemplate is the rendered landing page. It consumes the variables the
// context processors contribute: the request user, permissions, one-shot
// messages, language settings, and the media URL.
const indexTemplate = `<!DOCTYPE html>
<html lang="{{ .LANGUAGE_CODE }}"{{ if .LANGUAGE_BIDI }} dir="rtl"{{ end }}>
<head>
<meta charset="utf-8">
<title>Home</title>
<link rel="icon" href="{{ .MEDIA_URL }}favicon.ico">
</head>
<body>
{{ if .user.IsAnonymous }}
<p>Welcome, guest.</p>
{{ else }}
<p>Welcome, {{ .user.Login }}.</p>
{{ if ((.perms.Get "polls").Get "add_choice") }}<p><a href="/polls/add/">Add a choice</a></p>{{ end }}
{{ end }}
{{ if .messages }}{{ if .messages.Present }}
<ul class="messages">
{{ range .messages.Messages }}<li>{{ .Text }}</li>
{{ end }}</ul>
{{ end }}{{ end }}
<ul class="languages">
{{ range .LANGUAGES }}<li><a href="?lang={{ .Code }}">{{ .Name }}</a></li>
{{ end }}</ul>
{{ if .debug }}
<details><summary>{{ len .sql_queries }} SQL queries</summary>
<ol>{{ range .sql_queries }}<li><code>{{ .SQL }}</code> ({{ .Duration }})</li>{{ end }}</ol>
</details>
{{ end }}
</body>
</html>
`

// index renders the landing page through the full processor chain — the
// composition point a template rendering layer would use for every page.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	context := templatectx.RequestContext(r,
		h.processors.Auth,
		h.processors.Debug,
		h.processors.I18N,
		h.processors.Media,
		templatectx.Request,
	)

	// the messages variable is conditional; the template guards on it
	if _, ok := context["messages"]; !ok {
		context["messages"] = nil
	}
	if _, ok := context["debug"]; !ok {
		context["debug"] = false
		context["sql_queries"] = nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, context); err != nil {
		logger.FromRequest(r).Err(err).Msg("rendering the index template failed")
	}
}
