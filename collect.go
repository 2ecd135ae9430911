package gostreams

import "context"

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectCount returns an accumulator that counts elements into a frequency table.
// Elements are counted under the key returned by key.
func CollectCount[T any, K comparable](key MapperFunc[T, K]) AccumulatorFunc[T, map[K]int] {
	return func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64, acc map[K]int) map[K]int {
		acc[key(ctx, cancel, elem, index)]++
		return acc
	}
}
