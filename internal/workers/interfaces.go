// Package workers provides abstractions for managing background workers of
// the client. It defines the Worker interface and a Workers aggregate that
// starts and stops several workers as one unit.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block: implementations spawn their own goroutine and keep
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully exited and is safe to call on a stopped worker.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) { ... }
//	func (w *MyWorker) Stop()                     { ... }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
