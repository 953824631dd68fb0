package method

import (
	"context"
	"sync"
)

// Callback receives a settled result, error-first style: exactly one of
// value/err is meaningful.
type Callback[T any] func(value T, err error)

// Future is a single-settlement asynchronous result. It is the one result
// type every operation returns; legacy completion-handler callers attach a
// Callback via OnComplete instead of duplicating the call path.
type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	settled   bool
	value     T
	err       error
	callbacks []Callback[T]
}

// NewFuture creates an unsettled future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Complete settles the future. Later calls are no-ops; every registered
// callback runs exactly once.
func (f *Future[T]) Complete(value T, err error) {
	f.mu.Lock()
	if f.settled {
		f.mu.Unlock()
		return
	}
	f.settled = true
	f.value = value
	f.err = err
	cbs := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range cbs {
		cb(value, err)
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the future settles or ctx is cancelled.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers a completion callback. If the future has already
// settled, cb runs immediately on the calling goroutine.
func (f *Future[T]) OnComplete(cb Callback[T]) {
	f.mu.Lock()
	if !f.settled {
		f.callbacks = append(f.callbacks, cb)
		f.mu.Unlock()
		return
	}
	value, err := f.value, f.err
	f.mu.Unlock()
	cb(value, err)
}
