package gostreams

import (
	"context"
	"iter"

	"golang.org/x/exp/maps"
)

// Freq returns a frequency table of the elements produced by seq.
// If ctx is done, it returns the table so far, and the cause of the cancelation.
func Freq[T comparable](ctx context.Context, seq iter.Seq[T]) (map[T]int, error) {
	return Reduce(ctx, seq, map[T]int{}, CollectCount(Identity[T]()))
}

// FreqFunc returns a frequency table of the keys of the elements produced by seq.
// If ctx is done, it returns the table so far, and the cause of the cancelation.
func FreqFunc[T any, K comparable](ctx context.Context, seq iter.Seq[T], key Function[T, K]) (map[K]int, error) {
	return Reduce(ctx, seq, map[K]int{}, CollectCount(FuncMapper(key)))
}

// MinFreq returns a copy of the frequency table freq, keeping only the keys counted at least threshold times.
func MinFreq[K comparable](freq map[K]int, threshold int) map[K]int {
	result := maps.Clone(freq)

	maps.DeleteFunc(result, func(_ K, count int) bool {
		return count < threshold
	})

	return result
}
