// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package async

import (
	"context"
	"fmt"
)

// Future is a handle to a result that resolves exactly once with one of:
//   - a value (ok == true);
//   - an empty completion (ok == false, err == nil);
//   - an error.
//
// The work behind a Future starts as soon as the Future is created and runs
// on its own goroutine, so creating and composing futures never blocks the
// caller. Only [Future.Await] waits.
type Future[T any] struct {
	done   chan struct{}
	cancel context.CancelFunc

	value T
	ok    bool
	err   error
}

// Go runs fn on a new goroutine and returns a Future for its result.
//
// fn receives a context derived from ctx that is cancelled when the Future
// is cancelled, when the awaiting context is done, or when fn returns.
// A panic inside fn resolves the Future with an error wrapping [ErrPanicked].
func Go[T any](ctx context.Context, fn func(ctx context.Context) (T, bool, error)) *Future[T] {
	ctx, cancel := context.WithCancel(ctx)
	f := &Future[T]{
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer close(f.done)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				var zero T
				f.value, f.ok, f.err = zero, false, fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()

		f.value, f.ok, f.err = fn(ctx)
	}()

	return f
}

// Just returns an already resolved Future holding v.
func Just[T any](v T) *Future[T] {
	return resolved(v, true, nil)
}

// Empty returns an already resolved Future that completed without a value.
func Empty[T any]() *Future[T] {
	var zero T
	return resolved(zero, false, nil)
}

// Fail returns an already resolved Future that failed with err.
func Fail[T any](err error) *Future[T] {
	var zero T
	return resolved(zero, false, err)
}

func resolved[T any](v T, ok bool, err error) *Future[T] {
	f := &Future[T]{
		done:   make(chan struct{}),
		cancel: func() {},
		value:  v,
		ok:     ok,
		err:    err,
	}
	close(f.done)
	return f
}

// Await blocks the calling goroutine until the Future resolves or ctx is
// done. When ctx finishes first, the Future is cancelled so the producer can
// abandon its work, and ctx.Err() is returned.
func (f *Future[T]) Await(ctx context.Context) (T, bool, error) {
	select {
	case <-f.done:
		return f.value, f.ok, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.ok, f.err
	case <-ctx.Done():
		f.cancel()
		var zero T
		return zero, false, ctx.Err()
	}
}

// Done returns a channel closed once the Future has resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Cancel asks the producer to stop. It does not wait for the producer and
// does not undo work already done.
func (f *Future[T]) Cancel() {
	f.cancel()
}

// Map returns a Future resolving to fn applied to f's value. Empty
// completions and errors pass through unchanged. Cancelling the returned
// Future cancels f.
func Map[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return then(f, func(_ context.Context, v T) (U, bool, error) {
		return fn(v), true, nil
	})
}

// FlatMap returns a Future resolving to the result of the Future produced by
// fn from f's value. Empty completions and errors of f pass through.
func FlatMap[T, U any](f *Future[T], fn func(ctx context.Context, v T) *Future[U]) *Future[U] {
	return then(f, func(ctx context.Context, v T) (U, bool, error) {
		return fn(ctx, v).Await(ctx)
	})
}

// OrFail turns an empty completion of f into a failure with err.
func OrFail[T any](f *Future[T], err error) *Future[T] {
	return Go(context.Background(), func(ctx context.Context) (T, bool, error) {
		v, ok, awaitErr := f.Await(ctx)
		if awaitErr != nil {
			return v, false, awaitErr
		}
		if !ok {
			return v, false, err
		}
		return v, true, nil
	})
}

func then[T, U any](f *Future[T], next func(ctx context.Context, v T) (U, bool, error)) *Future[U] {
	return Go(context.Background(), func(ctx context.Context) (U, bool, error) {
		var zero U

		v, ok, err := f.Await(ctx)
		if err != nil || !ok {
			return zero, false, err
		}

		return next(ctx, v)
	})
}
