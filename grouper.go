package gostreams

import (
	"iter"

	"golang.org/x/exp/slices"
)

// A Run is a key together with the values of a run of adjacent elements sharing that key.
type Run[K comparable, V any] struct {
	Key   K
	Items []V
}

// runState tracks the run currently being accumulated.
// open is false until the first element has been seen, so any key, including K's zero value, starts a run.
type runState[K comparable, V any] struct {
	open  bool
	key   K
	items []V
}

// Grouper returns a stream of runs of adjacent tuples sharing the same first element.
// Each run's key is the shared first element, and its items are the remainders of the tuples, in order.
// Remainders are copies, so tuples may be reused by the upstream stream.
//
// Only adjacent tuples are grouped: tuples with equal first elements that are separated by
// other tuples end up in separate runs.
//
// If seq produces an empty tuple, the stream produces a *StructureError, and ends.
func Grouper[T comparable](tuples iter.Seq[[]T]) iter.Seq2[Run[T, []T], error] {
	return func(yield func(Run[T, []T], error) bool) {
		state := runState[T, []T]{}

		for tuple := range tuples {
			if len(tuple) == 0 {
				yield(Run[T, []T]{}, &StructureError[[]T]{
					Expected: "a non-empty tuple",
					Item:     tuple,
				})

				return
			}

			if run, ok := state.add(tuple[0], slices.Clone(tuple[1:])); ok {
				if !yield(run, nil) {
					return
				}
			}
		}

		if run, ok := state.flush(); ok {
			yield(run, nil)
		}
	}
}

// GrouperBare returns a stream of runs of adjacent pairs sharing the same key.
// Each run's items are the values of the pairs, in order.
func GrouperBare[K comparable, V any](pairs iter.Seq2[K, V]) iter.Seq[Run[K, V]] {
	return func(yield func(Run[K, V]) bool) {
		state := runState[K, V]{}

		for key, value := range pairs {
			if run, ok := state.add(key, value); ok {
				if !yield(run) {
					return
				}
			}
		}

		if run, ok := state.flush(); ok {
			yield(run)
		}
	}
}

// GroupRuns returns a stream of runs of adjacent elements of seq that split into the same key.
// split maps each element to its key and the value to collect into the key's run.
func GroupRuns[T any, K comparable, V any](seq iter.Seq[T], split func(elem T) (K, V)) iter.Seq[Run[K, V]] {
	return GrouperBare[K, V](func(yield func(K, V) bool) {
		for elem := range seq {
			if !yield(split(elem)) {
				return
			}
		}
	})
}

// add adds value to the current run if key matches it, otherwise starts a new run.
// It returns the previous run if a new one was started.
func (s *runState[K, V]) add(key K, value V) (Run[K, V], bool) {
	if s.open && s.key == key {
		s.items = append(s.items, value)
		return Run[K, V]{}, false
	}

	run, ok := s.flush()

	s.open = true
	s.key = key
	s.items = []V{value}

	return run, ok
}

// flush ends the current run, and returns it.
func (s *runState[K, V]) flush() (Run[K, V], bool) {
	if !s.open {
		return Run[K, V]{}, false
	}

	run := Run[K, V]{
		Key:   s.key,
		Items: s.items,
	}

	*s = runState[K, V]{}

	return run, true
}
