// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker's execution and blocks until ctx is cancelled.
//
// Implementations are expected to return promptly after cancellation so the
// application can shut down cleanly.
type Worker interface {
	Run(ctx context.Context)
}
