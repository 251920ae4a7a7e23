package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an operation references an id absent
	// from the collection.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a record's current status
	// forbids the attempted operation.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidArgument is returned for malformed input, e.g. an empty
	// required field or a non-positive quantity.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPersistence wraps a backing-store failure. The in-memory
	// collection is left untouched when it is returned.
	ErrPersistence = errors.New("persistence failure")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

func persistErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
