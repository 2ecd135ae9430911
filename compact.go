package gostreams

import (
	"iter"
	"reflect"

	"golang.org/x/exp/maps"
)

// IsEmpty returns true if v is nil, the zero value of its type, or an empty slice, map, or channel.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)

	switch val.Kind() { //nolint:exhaustive // all other kinds are only empty when zero
	case reflect.Slice, reflect.Map, reflect.Chan:
		return val.Len() == 0
	default:
		return val.IsZero()
	}
}

// ICompact returns a stream that produces the elements of seq that are not empty, according to IsEmpty.
func ICompact[T any](seq iter.Seq[T]) iter.Seq[T] {
	return Filter(seq, func(elem T) bool {
		return !IsEmpty(elem)
	})
}

// Compact returns the elements of seq that are not empty, according to IsEmpty.
func Compact[T any](seq iter.Seq[T]) []T {
	result := []T{}

	for elem := range ICompact(seq) {
		result = append(result, elem)
	}

	return result
}

// CompactMap returns a copy of m without the entries whose values are empty, according to IsEmpty.
func CompactMap[K comparable, V any](m map[K]V) map[K]V {
	result := maps.Clone(m)

	maps.DeleteFunc(result, func(_ K, v V) bool {
		return IsEmpty(v)
	})

	return result
}
