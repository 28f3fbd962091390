// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package async

import (
	"context"
	"fmt"
	"iter"
	"sync"
)

// Emit hands one element to the consumer of a [Stream]. It blocks until the
// consumer pulls the element and returns an error once the subscription is
// cancelled, in which case the producer must stop.
type Emit[T any] func(v T) error

// Producer generates the elements of a [Stream] by calling emit for each of
// them. A non-nil return value terminates the stream with that error.
type Producer[T any] func(ctx context.Context, emit Emit[T]) error

// Stream is a cold, finite, pull-based sequence of values.
//
// Nothing happens until [Stream.Subscribe] is called. Every subscription runs
// the producer again from the beginning, so a Stream backed by a query
// re-executes the query per subscriber. Elements are handed over through an
// unbuffered channel: the producer can never run more than one element ahead
// of the consumer.
type Stream[T any] struct {
	produce Producer[T]
}

// NewStream returns a Stream driven by produce.
func NewStream[T any](produce Producer[T]) *Stream[T] {
	return &Stream[T]{produce: produce}
}

// FromSlice returns a Stream emitting items in order.
func FromSlice[T any](items ...T) *Stream[T] {
	return NewStream(func(_ context.Context, emit Emit[T]) error {
		for _, item := range items {
			if err := emit(item); err != nil {
				return err
			}
		}
		return nil
	})
}

// FailStream returns a Stream that terminates with err before emitting
// anything.
func FailStream[T any](err error) *Stream[T] {
	return NewStream(func(context.Context, Emit[T]) error {
		return err
	})
}

// Subscription is a single pass over a [Stream]. It is not safe for
// concurrent use by multiple consumers.
type Subscription[T any] struct {
	items  chan T
	result chan error
	cancel context.CancelFunc

	closeOnce sync.Once
	finished  bool
	err       error
}

// Subscribe starts the producer on a new goroutine and returns a handle for
// pulling its elements. The producer's context is derived from ctx and is
// cancelled by [Subscription.Close].
func (s *Stream[T]) Subscribe(ctx context.Context) *Subscription[T] {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription[T]{
		items:  make(chan T),
		result: make(chan error, 1),
		cancel: cancel,
	}

	go func() {
		defer close(sub.items)

		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
			sub.result <- err
		}()

		err = s.produce(ctx, func(v T) error {
			select {
			case sub.items <- v:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}()

	return sub
}

// Next pulls the next element. It returns (v, true, nil) for an element,
// (zero, false, nil) once the stream is exhausted and (zero, false, err) if
// the stream failed or ctx finished first. After the end of the stream every
// call returns the same terminal result.
func (sub *Subscription[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if sub.finished {
		return zero, false, sub.err
	}

	select {
	case v, open := <-sub.items:
		if open {
			return v, true, nil
		}
		sub.finish(<-sub.result)
		return zero, false, sub.err
	case <-ctx.Done():
		sub.Close()
		sub.finished = true
		sub.err = ctx.Err()
		return zero, false, sub.err
	}
}

func (sub *Subscription[T]) finish(err error) {
	sub.finished = true
	sub.err = err
	sub.cancel()
}

// Close cancels the producer and waits for it to stop. It is safe to call
// Close more than once and after the stream has been exhausted.
func (sub *Subscription[T]) Close() {
	sub.closeOnce.Do(func() {
		sub.cancel()
		for range sub.items {
		}
	})
}

// All returns a range-over-func iterator over a fresh subscription. A
// terminal error is yielded once as the last pair. Breaking out of the loop
// closes the subscription.
func (s *Stream[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		sub := s.Subscribe(ctx)
		defer sub.Close()

		for {
			v, ok, err := sub.Next(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if !ok {
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect subscribes to s and gathers every element into a slice. The
// returned Future always carries a (possibly empty) slice unless the stream
// fails.
func (s *Stream[T]) Collect(ctx context.Context) *Future[[]T] {
	return Go(ctx, func(ctx context.Context) ([]T, bool, error) {
		items := make([]T, 0)
		for v, err := range s.All(ctx) {
			if err != nil {
				return nil, false, err
			}
			items = append(items, v)
		}
		return items, true, nil
	})
}

// MapStream returns a Stream applying fn to every element of s.
func MapStream[T, U any](s *Stream[T], fn func(T) U) *Stream[U] {
	return NewStream(func(ctx context.Context, emit Emit[U]) error {
		for v, err := range s.All(ctx) {
			if err != nil {
				return err
			}
			if err := emit(fn(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

// FlatMapStream returns a Stream that, for every element of s, emits all
// elements of the Stream produced by fn, in order.
func FlatMapStream[T, U any](s *Stream[T], fn func(ctx context.Context, v T) *Stream[U]) *Stream[U] {
	return NewStream(func(ctx context.Context, emit Emit[U]) error {
		for v, err := range s.All(ctx) {
			if err != nil {
				return err
			}
			for u, innerErr := range fn(ctx, v).All(ctx) {
				if innerErr != nil {
					return innerErr
				}
				if err := emit(u); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
