package exitcode

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/kjourdan1/fsdist/internal/distributor"
)

func TestOf_Nil(t *testing.T) {
	if code := Of(nil); code != OK {
		t.Errorf("Of(nil) = %d, want %d", code, OK)
	}
}

func TestOf_CodedError(t *testing.T) {
	tests := []struct {
		name string
		code int
	}{
		{"generic", Generic},
		{"validation", Validation},
		{"destination", Destination},
		{"io", IO},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Wrap(tt.code, fmt.Errorf("some error"))
			if got := Of(err); got != tt.code {
				t.Errorf("Of(Wrap(%d, ...)) = %d, want %d", tt.code, got, tt.code)
			}
		})
	}
}

func TestOf_WrappedCodedError(t *testing.T) {
	inner := Wrap(Destination, fmt.Errorf("missing dir"))
	wrapped := fmt.Errorf("outer: %w", inner)
	if got := Of(wrapped); got != Destination {
		t.Errorf("Of(wrapped coded error) = %d, want %d", got, Destination)
	}
}

func TestOf_DistributorErrors(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "missing"))

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"no paths", &distributor.NoPathsError{}, Validation},
		{"invalid path", &distributor.InvalidPathError{Index: 2, Value: 1, Cause: errors.New("bad")}, Validation},
		{"destination", fmt.Errorf("distributing: %w", &distributor.DestinationNotExistError{Destination: "/x"}), Destination},
		{"filesystem", fmt.Errorf("writing: %w", statErr), IO},
		{"generic", errors.New("something went wrong"), Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.err); got != tt.want {
				t.Errorf("Of(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	if got := Wrap(IO, nil); got != nil {
		t.Errorf("Wrap(code, nil) = %v, want nil", got)
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(IO, cause)

	var coded *Error
	if !errors.As(err, &coded) {
		t.Fatal("errors.As should match *Error")
	}
	if coded.Code != IO {
		t.Errorf("Code = %d, want %d", coded.Code, IO)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the root cause through Unwrap")
	}
}

func TestError_ErrorMessage(t *testing.T) {
	err := Wrap(Validation, fmt.Errorf("bad input"))
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q, want %q", err.Error(), "bad input")
	}
}
