// Package workers runs background jobs of the development backend next to
// its HTTP server.
//
// A Worker blocks in Run until its context is cancelled. Workers starts a
// set of them together and waits for all of them to return.
package workers

import "context"

// Worker is a background job. Run must return once ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
