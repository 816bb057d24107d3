package workers

import (
	"context"
	"time"

	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/store"
)

// SessionCleaner periodically sweeps expired sessions, and their queued
// messages, out of the session store.
type SessionCleaner struct {
	sessions store.SessionStore
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionCleaner(sessions store.SessionStore, interval time.Duration, logger *logger.Logger) *SessionCleaner {
	return &SessionCleaner{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately and then on every tick until ctx is
// cancelled. Sweep failures are logged and retried on the next tick.
func (s *SessionCleaner) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("session cleaner started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session cleaner stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionCleaner) sweep(ctx context.Context) {
	deleted, err := s.sessions.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Err(err).Msg("expired session sweep failed")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
