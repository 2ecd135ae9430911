package gostreams

import (
	"context"
	"errors"
	"iter"
)

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type ConsumerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type AccumulatorFunc[T any, A any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc A) A

// ErrShortCircuit is a generic error used to short-circuit a stream by canceling its context.
var ErrShortCircuit = errors.New("short circuit")

// Reduce calls reduce for each element produced by seq, folding it into accumulator acc, returning the final accumulator.
// If ctx is done, or reduce cancels the stream's context, it returns the accumulator so far, and the cause of the cancelation.
func Reduce[T any, A any](ctx context.Context, seq iter.Seq[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(ctx, seq, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		acc = reduce(ctx, cancel, elem, index, acc)
	})

	return acc, err
}

// ReduceSlice collects the elements produced by seq into a slice.
// If ctx is done, it returns the elements collected so far, and the cause of the cancelation.
func ReduceSlice[T any](ctx context.Context, seq iter.Seq[T]) ([]T, error) {
	return Reduce(ctx, seq, nil, CollectSlice[T]())
}

// Each calls each for each element produced by seq.
// If ctx is done, or each cancels the stream's context, it stops pulling elements from seq,
// and returns the cause of the cancelation.
func Each[T any](ctx context.Context, seq iter.Seq[T], each ConsumerFunc[T]) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	index := uint64(0)

	if !contextDone(ctx) {
		for elem := range seq {
			each(ctx, cancel, elem, index)

			if contextDone(ctx) {
				break
			}

			index++
		}
	}

	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// AnyMatch returns true as soon as pred returns true for an element produced by seq, that is, an element matches.
// If an element matches, it cancels the stream's context using ErrShortCircuit.
// If ctx is done, or pred cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func AnyMatch[T any](ctx context.Context, seq iter.Seq[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(ctx, seq, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if !pred(ctx, cancel, elem, index) {
			return
		}

		anyMatch = true

		cancel(ErrShortCircuit)
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements produced by seq, that is, all elements match.
// If any element does not match, it cancels the stream's context using ErrShortCircuit.
// If ctx is done, or pred cancels the stream's context, it returns an undefined result, and the cause of the cancelation.
func AllMatch[T any](ctx context.Context, seq iter.Seq[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(ctx, seq, func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) {
		if pred(ctx, cancel, elem, index) {
			return
		}

		allMatch = false

		cancel(ErrShortCircuit)
	})

	return allMatch, err
}

// Count returns the number of elements produced by seq.
// If ctx is done, it returns an undefined result, and the cause of the cancelation.
func Count[T any](ctx context.Context, seq iter.Seq[T]) (uint64, error) {
	count := uint64(0)

	err := Each(ctx, seq, func(_ context.Context, _ context.CancelCauseFunc, _ T, _ uint64) {
		count++
	})

	return count, err
}

// contextDone returns true if ctx.Err() != nil.
func contextDone(ctx context.Context) bool {
	return ctx.Err() != nil
}

// Consume pulls and discards all elements produced by seq, returning their number.
func Consume[T any](seq iter.Seq[T]) int {
	num := 0

	for range seq {
		num++
	}

	return num
}
