// Package exitcode maps command errors to process exit codes.
package exitcode

import (
	"errors"
	"io/fs"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

const (
	OK          = 0
	Generic     = 1
	Validation  = 2
	Destination = 3
	IO          = 4
)

type Error struct {
	Code  int
	Cause error
}

func (e *Error) Error() string {
	return e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func Wrap(code int, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Cause: err}
}

func Of(err error) int {
	if err == nil {
		return OK
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code
	}

	var noPaths *distributor.NoPathsError
	if errors.As(err, &noPaths) {
		return Validation
	}

	var invalid *distributor.InvalidPathError
	if errors.As(err, &invalid) {
		return Validation
	}

	var notExist *distributor.DestinationNotExistError
	if errors.As(err, &notExist) {
		return Destination
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return IO
	}

	return Generic
}
