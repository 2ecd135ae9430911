package gostreams

import "iter"

// A Scanner scans and skips over a stream using predicates.
//
// All of a Scanner's operations share the same Cursor, so scans and raw reads can be freely
// interleaved, and each one continues where the previous one stopped.
// Only one stream returned by ScanWhile, ScanUntil, or All may be consumed at a time;
// interleaving reads from two of them produces undefined results.
// A Scanner is not safe for concurrent use.
type Scanner[T any] struct {
	cursor *Cursor[T]
}

// NewScanner returns a scanner reading from seq.
func NewScanner[T any](seq iter.Seq[T]) *Scanner[T] {
	return &Scanner[T]{
		cursor: NewCursor(seq),
	}
}

// Next consumes and returns the next element, regardless of any predicate.
// It returns false if the stream is exhausted.
func (s *Scanner[T]) Next() (T, bool) {
	return s.cursor.Next()
}

// Peek returns the next element without consuming it.
func (s *Scanner[T]) Peek() (T, bool) {
	return s.cursor.Peek()
}

// All returns a stream that consumes the remaining elements, regardless of any predicate.
func (s *Scanner[T]) All() iter.Seq[T] {
	return s.cursor.All()
}

// ScanWhile returns a stream that consumes and produces elements for as long as pred returns true.
// The first element for which pred returns false is not consumed, and stays available to the
// next operation on the scanner.
func (s *Scanner[T]) ScanWhile(pred Predicate[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := s.cursor.Peek()
			if !ok || !pred(elem) {
				return
			}

			s.cursor.Next()

			if !yield(elem) {
				return
			}
		}
	}
}

// ScanUntil returns a stream that consumes and produces elements until pred returns true.
// The first element for which pred returns true is not consumed.
func (s *Scanner[T]) ScanUntil(pred Predicate[T]) iter.Seq[T] {
	return s.ScanWhile(Not(pred))
}

// SkipWhile consumes and discards elements for as long as pred returns true,
// returning the number of discarded elements.
// Afterwards the scanner is positioned exactly where ScanWhile would have stopped.
func (s *Scanner[T]) SkipWhile(pred Predicate[T]) int {
	return Consume(s.ScanWhile(pred))
}

// SkipUntil consumes and discards elements until pred returns true,
// returning the number of discarded elements.
func (s *Scanner[T]) SkipUntil(pred Predicate[T]) int {
	return Consume(s.ScanUntil(pred))
}

// Close releases the scanner's stream.
func (s *Scanner[T]) Close() {
	s.cursor.Close()
}
