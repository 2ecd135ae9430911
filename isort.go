package gostreams

import (
	"container/heap"
	"iter"

	"golang.org/x/exp/constraints"
)

// DefaultBufSize is a reasonable buffer size for ISort and ISortFunc.
const DefaultBufSize = 1024

// windowEntry is an element waiting in an ISort window.
// Entries are ordered by key, then by arrival, so that elements are never compared themselves.
type windowEntry[T any, K constraints.Ordered] struct {
	key     K
	arrival uint64
	elem    T
}

// window is a min-heap of entries.
type window[T any, K constraints.Ordered] []windowEntry[T, K]

// ISort returns a stream that produces the elements of seq partially sorted in ascending order,
// using a window of at most bufSize elements.
// See ISortFunc for details.
func ISort[T constraints.Ordered](seq iter.Seq[T], bufSize int) (iter.Seq[T], error) {
	return ISortFunc[T, T](seq, bufSize, func(elem T) T {
		return elem
	})
}

// ISortFunc returns a stream that produces the elements of seq partially sorted in ascending order of key,
// using a window of at most bufSize elements.
//
// The window is filled with the first bufSize elements. From then on, every element pulled from seq
// is added to the window, and the window's smallest element is produced. Once seq is exhausted,
// the remaining elements are produced in order. Each element is thus produced as soon as it is the smallest
// within bufSize elements of lookahead, and the result is fully sorted if no element is more than
// bufSize positions away from its sorted position. Larger windows produce better sorted results.
//
// Elements with equal keys are produced in the order they were pulled from seq.
//
// It returns an error wrapping ErrConfig if bufSize is not positive, or key is nil.
func ISortFunc[T any, K constraints.Ordered](seq iter.Seq[T], bufSize int, key Function[T, K]) (iter.Seq[T], error) {
	if bufSize <= 0 {
		return nil, configError("buffer size must be positive, got %d", bufSize)
	}

	if key == nil {
		return nil, configError("key function must not be nil")
	}

	return func(yield func(T) bool) {
		win := make(window[T, K], 0, min(bufSize, DefaultBufSize))

		arrival := uint64(0)

		for elem := range seq {
			entry := windowEntry[T, K]{
				key:     key(elem),
				arrival: arrival,
				elem:    elem,
			}

			arrival++

			if win.Len() < bufSize {
				heap.Push(&win, entry)
				continue
			}

			if !yield(win.pushPop(entry).elem) {
				return
			}
		}

		for win.Len() > 0 {
			entry := heap.Pop(&win).(windowEntry[T, K])

			if !yield(entry.elem) {
				return
			}
		}
	}, nil
}

func (w *window[T, K]) Len() int {
	return len(*w)
}

func (w *window[T, K]) Less(i int, j int) bool {
	return (*w)[i].less((*w)[j])
}

func (w *window[T, K]) Swap(i int, j int) {
	(*w)[i], (*w)[j] = (*w)[j], (*w)[i]
}

func (w *window[T, K]) Push(x any) {
	*w = append(*w, x.(windowEntry[T, K]))
}

func (w *window[T, K]) Pop() any {
	old := *w
	n := len(old)
	entry := old[n-1]

	// avoid holding on to the element
	old[n-1] = windowEntry[T, K]{}

	*w = old[:n-1]

	return entry
}

// pushPop adds entry to the window, then removes and returns the smallest entry.
// It is faster than calling heap.Push followed by heap.Pop.
func (w *window[T, K]) pushPop(entry windowEntry[T, K]) windowEntry[T, K] {
	if w.Len() > 0 && (*w)[0].less(entry) {
		entry, (*w)[0] = (*w)[0], entry
		heap.Fix(w, 0)
	}

	return entry
}

func (e windowEntry[T, K]) less(other windowEntry[T, K]) bool {
	switch {
	case e.key < other.key:
		return true
	case other.key < e.key:
		return false
	default:
		return e.arrival < other.arrival
	}
}
