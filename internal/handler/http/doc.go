// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, response compression,
// SQL query logging, and request enrichment (user, session, language) are
// handled in this package before requests are delegated to handlers and the
// service layer.
//
// The enrichment middleware never rejects a request: a missing or invalid
// credential simply leaves the request anonymous, and each handler decides
// what anonymous access means for it.
package http
