package gostreams

import (
	"errors"
	"iter"
	"testing"

	"github.com/matryer/is"
)

type sectionResult struct {
	marker any
	items  []any
}

func TestSectionize(t *testing.T) {
	tests := []struct {
		name  string
		given []any
		want  []sectionResult
	}{
		{
			name:  "items",
			given: []any{"A", 0, 1, 2, "B", 3, 4},
			want: []sectionResult{
				{marker: "A", items: []any{0, 1, 2}},
				{marker: "B", items: []any{3, 4}},
			},
		},
		{
			name:  "empty sections",
			given: []any{"A", "B"},
			want: []sectionResult{
				{marker: "A", items: []any{}},
				{marker: "B", items: []any{}},
			},
		},
		{
			name:  "empty stream",
			given: []any{},
			want:  []sectionResult{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			result := []sectionResult{}

			for section, err := range Sectionize(isString, Produce(test.given)) {
				is.NoErr(err)

				result = append(result, sectionResult{
					marker: section.Marker,
					items:  collect(section.Items),
				})
			}

			is.Equal(result, test.want)
		})
	}
}

func TestSectionize_NoLeadingSection(t *testing.T) {
	is := is.New(t)

	sections := 0

	var err error

	for _, err = range Sectionize(isString, Produce([]any{0, "B", 3, 4})) {
		sections++
	}

	is.Equal(sections, 1)
	is.True(errors.Is(err, ErrStructure))

	var structErr *StructureError[any]

	is.True(errors.As(err, &structErr))
	is.Equal(structErr.Item, 0)
	is.Equal(err.Error(), "expected a section, but found: 0")
}

func TestSectionize_NotExhausted(t *testing.T) {
	is := is.New(t)

	markers := []any{}

	var err error

	for section, sectionErr := range Sectionize(isString, Produce([]any{"A", 0, 1, 2, "B", 3, 4})) {
		if sectionErr != nil {
			err = sectionErr
			break
		}

		markers = append(markers, section.Marker)
	}

	is.Equal(markers, []any{"A"})
	is.True(errors.Is(err, ErrState))
}

func TestSectionSplitter_PartiallyDrained(t *testing.T) {
	is := is.New(t)

	splitter := NewSectionSplitter(isString, Produce([]any{"A", 0, 1, 2, "B", 3, 4}))
	defer splitter.Close()

	section, ok, err := splitter.Next()
	is.NoErr(err)
	is.True(ok)
	is.Equal(section.Marker, "A")

	for elem := range section.Items {
		is.Equal(elem, 0)
		break
	}

	_, ok, err = splitter.Next()
	is.True(!ok)
	is.True(errors.Is(err, ErrState))

	// the error is sticky, even after the section has been drained
	is.Equal(collect(section.Items), []any{1, 2})

	_, ok, err2 := splitter.Next()
	is.True(!ok)
	is.Equal(err2, err)
}

func TestSectionSplitter_ResumeItems(t *testing.T) {
	is := is.New(t)

	splitter := NewSectionSplitter(isString, Produce([]any{"A", 0, 1, 2, "B", 3}))
	defer splitter.Close()

	section, _, _ := splitter.Next()

	for range section.Items {
		break
	}

	is.Equal(collect(section.Items), []any{1, 2})
	is.Equal(collect(section.Items), []any{})

	section, ok, err := splitter.Next()
	is.NoErr(err)
	is.True(ok)
	is.Equal(section.Marker, "B")
	is.Equal(collect(section.Items), []any{3})

	_, ok, err = splitter.Next()
	is.NoErr(err)
	is.True(!ok)
}

func TestSectionSplitter_UnreadEmptySections(t *testing.T) {
	is := is.New(t)

	splitter := NewSectionSplitter(isString, Produce([]any{"A", "B", "C"}))
	defer splitter.Close()

	markers := []any{}

	for {
		section, ok, err := splitter.Next()
		is.NoErr(err)

		if !ok {
			break
		}

		markers = append(markers, section.Marker)
	}

	is.Equal(markers, []any{"A", "B", "C"})
}

func TestSectionSplitter_StaleItems(t *testing.T) {
	is := is.New(t)

	splitter := NewSectionSplitter(isString, Produce([]any{"A", 0, "B", 1, 2}))
	defer splitter.Close()

	first, _, _ := splitter.Next()
	is.Equal(collect(first.Items), []any{0})

	second, ok, err := splitter.Next()
	is.NoErr(err)
	is.True(ok)

	is.Equal(collect(first.Items), []any{})
	is.Equal(collect(second.Items), []any{1, 2})
}

func TestSectionSplitter_Lazy(t *testing.T) {
	is := is.New(t)

	elems, pulled := tracked([]any{"A", 0, 1, "B", 2})

	splitter := NewSectionSplitter(isString, elems)
	defer splitter.Close()

	section, _, _ := splitter.Next()
	is.Equal(*pulled, 1)

	for range section.Items {
		break
	}

	is.Equal(*pulled, 2)
}

func TestSectionize_Abandon(t *testing.T) {
	is := is.New(t)

	stopped := false

	elems := func(yield func(any) bool) {
		defer func() {
			stopped = true
		}()

		for _, elem := range []any{"A", 0, "B", 1} {
			if !yield(elem) {
				return
			}
		}
	}

	for section := range Sectionize(isString, iter.Seq[any](elems)) {
		is.Equal(section.Marker, "A")
		break
	}

	is.True(stopped)
}

func isString(elem any) bool {
	_, ok := elem.(string)
	return ok
}
