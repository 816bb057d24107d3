package workers

import (
	"context"

	"github.com/thirstydigital/django/internal/config"
	"github.com/thirstydigital/django/internal/logger"
	"github.com/thirstydigital/django/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers.
func NewWorkers(cfg config.Workers, storages *store.Storages, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionCleaner(storages.SessionStore, cfg.SessionCleanupInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine. It returns immediately;
// the workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
