package store

import (
	"context"
	"sync"
	"time"
)

// QueryEntry is one recorded SQL statement, as later exposed to templates by
// the debug context processor.
type QueryEntry struct {
	// SQL is the statement text as sent to the driver, with placeholders
	// intact. Argument values are never recorded.
	SQL string `json:"sql"`

	// Duration is the time spent dispatching the statement. For row
	// queries this covers the call, not the subsequent Scan.
	Duration time.Duration `json:"duration"`
}

// QueryLog collects the SQL statements issued while serving one request.
// The middleware installs a fresh log into the request context; the [DB]
// wrapper records into it. Safe for concurrent use.
type QueryLog struct {
	mu      sync.Mutex
	entries []QueryEntry
}

// NewQueryLog returns an empty query log.
func NewQueryLog() *QueryLog {
	return &QueryLog{}
}

// Record appends one statement to the log.
func (l *QueryLog) Record(sql string, d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, QueryEntry{SQL: sql, Duration: d})
}

// Entries returns a copy of the recorded statements in issue order.
func (l *QueryLog) Entries() []QueryEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]QueryEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports how many statements have been recorded.
func (l *QueryLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

type queryLogCtxKey struct{}

// WithQueryLog returns a context carrying the given query log.
func WithQueryLog(ctx context.Context, log *QueryLog) context.Context {
	return context.WithValue(ctx, queryLogCtxKey{}, log)
}

// QueryLogFromContext retrieves the query log installed for the request.
// The ok flag is false when query logging is not active (the normal case
// outside debug mode).
func QueryLogFromContext(ctx context.Context) (*QueryLog, bool) {
	log, ok := ctx.Value(queryLogCtxKey{}).(*QueryLog)
	return log, ok
}

// recordQuery records the statement into the context's query log, if any.
func recordQuery(ctx context.Context, sql string, d time.Duration) {
	if log, ok := QueryLogFromContext(ctx); ok {
		log.Record(sql, d)
	}
}
