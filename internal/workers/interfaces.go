// Package workers runs the client's background jobs as one unit.
// It defines the Worker interface and a Workers aggregate that starts them
// together and stops them in reverse order.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; implementations spawn their own goroutine and exit
// when ctx is cancelled. Stop blocks until the goroutine has returned and
// is safe to call on a worker that never started.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go w.loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
