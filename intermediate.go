package gostreams

import (
	"context"
	"iter"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// Predicate returns true if elem matches a predicate.
type Predicate[T any] func(elem T) bool

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type MapperFunc[T any, U any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate func that calls pred for each element.
func FuncPredicate[T any](pred Predicate[T]) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Not returns a predicate that returns the negation of pred.
func Not[T any](pred Predicate[T]) Predicate[T] {
	return func(elem T) bool {
		return !pred(elem)
	}
}

// Map returns a stream that calls mapp for each element produced by seq, mapping it to type U.
func Map[T any, U any](seq iter.Seq[T], mapp Function[T, U]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			if !yield(mapp(elem)) {
				return
			}
		}
	}
}

// FlatMap returns a stream that calls mapp for each element produced by seq, mapping it to an intermediate stream
// that produces elements of type U.
// The new stream produces all elements produced by the intermediate streams, in order.
// Each intermediate stream is only created once the previous one has been exhausted.
func FlatMap[T any, U any](seq iter.Seq[T], mapp Function[T, iter.Seq[U]]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for elem := range seq {
			for outElem := range mapp(elem) {
				if !yield(outElem) {
					return
				}
			}
		}
	}
}

// Filter returns a stream that calls filter for each element produced by seq, and only produces elements for which
// filter returns true.
func Filter[T any](seq iter.Seq[T], filter Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if !filter(elem) {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Peek returns a stream that calls peek for each element produced by seq, in order, and produces the same elements.
// peek is called before the element is passed downstream.
func Peek[T any](seq iter.Seq[T], peek func(elem T, index uint64)) iter.Seq[T] {
	return func(yield func(T) bool) {
		index := uint64(0)

		for elem := range seq {
			peek(elem, index)

			if !yield(elem) {
				return
			}

			index++
		}
	}
}

// Limit returns a stream that produces the same elements as seq, in order, up to max elements.
// seq is not pulled again once max elements have been produced.
func Limit[T any](seq iter.Seq[T], max uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		if max == 0 {
			return
		}

		done := uint64(0)

		for elem := range seq {
			if !yield(elem) {
				return
			}

			done++
			if done == max {
				return
			}
		}
	}
}

// Skip returns a stream that produces the same elements as seq, in order, skipping the first num elements.
func Skip[T any](seq iter.Seq[T], num uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		done := uint64(0)

		for elem := range seq {
			done++
			if done <= num {
				continue
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) T {
		return elem
	}
}
