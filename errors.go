package gostreams

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStructure is wrapped by errors reporting input that does not have the expected shape,
	// such as a stream given to Sectionize that does not start with a section marker.
	ErrStructure = errors.New("unexpected stream structure")

	// ErrConfig is wrapped by errors reporting an invalid argument given to an operation,
	// such as a non-positive buffer size. These errors are returned before any element is pulled.
	ErrConfig = errors.New("invalid configuration")

	// ErrState is wrapped by errors reporting that a caller did not follow a stream's
	// consumption order, such as requesting the next Section before the current one was drained.
	ErrState = errors.New("invalid stream state")
)

// A StructureError reports an element that does not fit the expected shape of its stream.
type StructureError[T any] struct {
	// Expected describes what the operation expected to find.
	Expected string

	// Item is the offending element.
	Item T
}

// Error implements error.
func (e *StructureError[T]) Error() string {
	return fmt.Sprintf("expected %s, but found: %v", e.Expected, e.Item)
}

// Unwrap returns ErrStructure.
func (e *StructureError[T]) Unwrap() error {
	return ErrStructure
}

func configError(format string, args ...any) error {
	return errors.Wrapf(ErrConfig, format, args...)
}

func stateError(format string, args ...any) error {
	return errors.Wrapf(ErrState, format, args...)
}
