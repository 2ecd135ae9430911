package gostreams

import "iter"

// A Section is a marker element together with the elements following it, up to the next marker.
type Section[T any] struct {
	// Marker is the element that started the section.
	Marker T

	// Items produces the elements of the section, excluding the marker.
	// It reads from the SectionSplitter that produced the section, and produces nothing
	// once the splitter has moved on to another section.
	Items iter.Seq[T]
}

// A SectionSplitter splits a stream into sections, each starting with an element
// for which a predicate returns true.
//
// Sections must be consumed in order: the Items of a section must be drained before the next
// section is requested. Next returns an error wrapping ErrState if the current section still
// has unread elements, rather than discarding them.
// A SectionSplitter is not safe for concurrent use.
type SectionSplitter[T any] struct {
	isSection Predicate[T]
	cursor    *Cursor[T]

	// generation is the number of sections returned so far, and identifies the current section.
	generation uint64
	marker     T
	drained    bool

	err error
}

// NewSectionSplitter returns a splitter reading from seq.
// isSection must return true for section markers, and may be called more than once per element.
func NewSectionSplitter[T any](isSection Predicate[T], seq iter.Seq[T]) *SectionSplitter[T] {
	return &SectionSplitter[T]{
		isSection: isSection,
		cursor:    NewCursor(seq),
	}
}

// Next returns the next section.
// It returns false if the stream is exhausted.
//
// If the first element of the stream is not a section marker, it returns a *StructureError.
// If the current section's Items have not been drained and unread elements remain, it returns an error
// wrapping ErrState. A section without unread elements counts as drained even if its Items were never consumed.
// Once Next has returned an error, it keeps returning the same error.
func (s *SectionSplitter[T]) Next() (Section[T], bool, error) {
	if s.err != nil {
		return Section[T]{}, false, s.err
	}

	if s.generation > 0 && !s.drained {
		if elem, ok := s.cursor.Peek(); ok && !s.isSection(elem) {
			s.err = stateError("section %v not exhausted before requesting the next section", s.marker)
			return Section[T]{}, false, s.err
		}
	}

	elem, ok := s.cursor.Next()
	if !ok {
		return Section[T]{}, false, nil
	}

	if !s.isSection(elem) {
		s.err = &StructureError[T]{
			Expected: "a section",
			Item:     elem,
		}

		return Section[T]{}, false, s.err
	}

	s.generation++
	s.marker = elem
	s.drained = false

	return Section[T]{
		Marker: elem,
		Items:  s.items(s.generation),
	}, true, nil
}

// Close releases the splitter's stream.
func (s *SectionSplitter[T]) Close() {
	s.cursor.Close()
}

func (s *SectionSplitter[T]) items(generation uint64) iter.Seq[T] {
	return func(yield func(T) bool) {
		for s.generation == generation && !s.drained {
			elem, ok := s.cursor.Peek()
			if !ok || s.isSection(elem) {
				s.drained = true
				return
			}

			s.cursor.Next()

			if !yield(elem) {
				return
			}
		}
	}
}

// Sectionize returns a stream of the sections of seq, each starting with an element for which
// isSection returns true. See SectionSplitter for the rules of consuming sections.
//
// If the splitter returns an error, the stream produces it together with an empty section, and ends.
// The Items of a section must be consumed while the stream is being iterated, since seq is released
// once the iteration ends.
func Sectionize[T any](isSection Predicate[T], seq iter.Seq[T]) iter.Seq2[Section[T], error] {
	return func(yield func(Section[T], error) bool) {
		splitter := NewSectionSplitter(isSection, seq)
		defer splitter.Close()

		for {
			section, ok, err := splitter.Next()
			if err != nil {
				yield(section, err)
				return
			}

			if !ok {
				return
			}

			if !yield(section, nil) {
				return
			}
		}
	}
}
