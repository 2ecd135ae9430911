package gostreams

import "iter"

// SideEffect returns a stream that calls fn for each element produced by seq, and produces the same elements.
// fn is called right before the element is passed downstream.
func SideEffect[T any](seq iter.Seq[T], fn func(elem T)) iter.Seq[T] {
	return Peek(seq, func(elem T, _ uint64) {
		fn(elem)
	})
}

// SideEffectChunked returns a stream that produces the same elements as seq, reading them in chunks of size elements.
// fn is called with each chunk before its elements are passed downstream; the last chunk may be shorter.
// The chunk passed to fn is reused after its elements have been produced, so fn must not retain it.
//
// It returns an error wrapping ErrConfig if size is not positive.
func SideEffectChunked[T any](seq iter.Seq[T], size int, fn func(chunk []T)) (iter.Seq[T], error) {
	if size <= 0 {
		return nil, configError("chunk size must be positive, got %d", size)
	}

	return func(yield func(T) bool) {
		chunk := make([]T, 0, min(size, DefaultBufSize))

		flush := func() bool {
			fn(chunk)

			for _, elem := range chunk {
				if !yield(elem) {
					return false
				}
			}

			clear(chunk)
			chunk = chunk[:0]

			return true
		}

		for elem := range seq {
			chunk = append(chunk, elem)

			if len(chunk) == size && !flush() {
				return
			}
		}

		if len(chunk) > 0 {
			flush()
		}
	}, nil
}
