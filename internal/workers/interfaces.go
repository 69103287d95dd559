// Package workers bounds CPU-heavy work, such as password hashing, to a
// fixed number of concurrently running tasks so that request goroutines do
// not saturate the machine.
package workers

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/executor_mock.go -package=mock

// Executor runs a task on a bounded pool.
//
// Do blocks until the task has a slot and has finished, or until ctx is
// done. A task that has started is never interrupted: if ctx is cancelled
// while it runs, Do returns ctx.Err() and the task completes in the
// background, holding its slot until it returns.
//
// Example:
//
//	err := pool.Do(ctx, func() error {
//	    return hasher.Verify(hash, password)
//	})
type Executor interface {
	Do(ctx context.Context, task func() error) error
}
