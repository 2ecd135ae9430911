package gostreams

import (
	"context"
	"iter"
)

// Produce returns a stream that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, slice := range slices {
			for _, elem := range slice {
				if !yield(elem) {
					return
				}
			}
		}
	}
}

// ProduceChannel returns a stream that produces the elements received through the given channels, in order.
// The stream ends when all channels are closed, or when ctx is done.
// Receiving happens on the consumer's goroutine, so the stream blocks whenever a channel does.
func ProduceChannel[T any](ctx context.Context, channels ...<-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, ch := range channels {
			if !yieldChannel(ctx, ch, yield) {
				return
			}
		}
	}
}

// yieldChannel yields the elements received through ch until it is closed, returning true.
// It returns false if ctx is done or yield returns false.
func yieldChannel[T any](ctx context.Context, ch <-chan T, yield func(T) bool) bool {
	for {
		if contextDone(ctx) {
			return false
		}

		select {
		case elem, ok := <-ch:
			if !ok {
				return true
			}

			if !yield(elem) {
				return false
			}

		case <-ctx.Done():
			return false
		}
	}
}

// Join returns a stream that produces the elements produced by the given streams, in order.
func Join[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for elem := range seq {
				if !yield(elem) {
					return
				}
			}
		}
	}
}
