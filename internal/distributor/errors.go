package distributor

import (
	"errors"
	"fmt"
)

// ErrNoPaths is matched by errors.Is for a NoPathsError.
var ErrNoPaths = errors.New("No paths provided")

// NoPathsError is returned by New when the configuration has no paths entry.
type NoPathsError struct{}

func (e *NoPathsError) Error() string {
	return ErrNoPaths.Error()
}

// Is reports whether target is ErrNoPaths.
func (e *NoPathsError) Is(target error) bool {
	return target == ErrNoPaths
}

// DestinationNotExistError is returned by Distribute when a resolved
// destination directory is missing and could not be created.
type DestinationNotExistError struct {
	Destination string
}

func (e *DestinationNotExistError) Error() string {
	return fmt.Sprintf(
		"The destination directory '%s' doesn't exist. If it shall be created automatically, set create_parents to true",
		e.Destination,
	)
}

// InvalidPathError is returned by New when an element of a paths sequence
// cannot be used as a path string.
type InvalidPathError struct {
	Index int
	Value interface{}
	Cause error
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("paths[%d]: value %v (%T) is not a valid path: %v", e.Index, e.Value, e.Value, e.Cause)
}

func (e *InvalidPathError) Unwrap() error {
	return e.Cause
}
