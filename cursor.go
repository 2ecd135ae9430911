package gostreams

import "iter"

// A Cursor reads elements from a stream one at a time, and can look ahead by one element.
//
// A Cursor owns its stream: elements are pulled from it lazily, and Close releases it.
// A Cursor is not safe for concurrent use.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()

	peeked    T
	hasPeeked bool
	closed    bool
}

// NewCursor returns a cursor reading from seq.
// Callers should call Close once they are done with the cursor, unless they drained it completely.
func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)

	return &Cursor[T]{
		next: next,
		stop: stop,
	}
}

// Peek returns the next element without consuming it.
// Repeated calls return the same element until Next is called.
// It returns false if the stream is exhausted.
func (c *Cursor[T]) Peek() (T, bool) {
	if c.hasPeeked {
		return c.peeked, true
	}

	elem, ok := c.pull()
	if !ok {
		return elem, false
	}

	c.peeked = elem
	c.hasPeeked = true

	return elem, true
}

// Next consumes and returns the next element.
// It returns false if the stream is exhausted, and keeps doing so on every later call.
func (c *Cursor[T]) Next() (T, bool) {
	if c.hasPeeked {
		elem := c.peeked

		var zero T
		c.peeked = zero
		c.hasPeeked = false

		return elem, true
	}

	return c.pull()
}

// All returns a stream that consumes the remaining elements of the cursor.
// If the stream is abandoned early, the cursor is positioned right after the last element produced.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			elem, ok := c.Next()
			if !ok {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Close releases the cursor's stream, and discards a peeked element.
// After Close, the cursor behaves as if its stream were exhausted.
func (c *Cursor[T]) Close() {
	if c.closed {
		return
	}

	c.closed = true

	var zero T
	c.peeked = zero
	c.hasPeeked = false

	c.stop()
}

func (c *Cursor[T]) pull() (T, bool) {
	if c.closed {
		var zero T
		return zero, false
	}

	return c.next()
}
