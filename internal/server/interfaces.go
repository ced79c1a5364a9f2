package server

import "context"

// Server defines the lifecycle contract of the backend process.
type Server interface {
	// Run serves requests until ctx is cancelled or a termination signal
	// arrives, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops serving and waits at most until ctx is done.
	Shutdown(ctx context.Context) error
}
