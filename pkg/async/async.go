package async

import (
	"context"
	"time"
)

// Future represents the eventual result of a computation started with Async.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case ErrTimeout is returned.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// IsComplete reports whether the computation has finished, without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Async runs fn in its own goroutine and returns a Future for its result.
// If ctx is already cancelled the goroutine exits immediately and the Future
// completes with the context error.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.result, f.err = fn(ctx, param)
	}()

	return f
}

// Observe runs fn as a detached task. The task's error, if any, is handed to
// onErr instead of being returned: the caller cannot be failed by the task.
// A nil onErr discards the error. The returned Future lets tests synchronize
// with the task's completion.
func Observe[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error), onErr func(error)) *Future[U] {
	f := Async(ctx, param, fn)

	go func() {
		if _, err := f.Await(); err != nil && onErr != nil {
			onErr(err)
		}
	}()

	return f
}
