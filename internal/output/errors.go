package output

import (
	"errors"
	"fmt"
)

// CLIError is a user-facing failure. Fix, when set, is printed as a hint
// below the message and carried in the JSON envelope.
type CLIError struct {
	Message string
	Cause   error
	Fix     string
}

func (e *CLIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// NewErrorWithFix creates a CLIError without an underlying cause.
func NewErrorWithFix(message, fix string) *CLIError {
	return &CLIError{Message: message, Fix: fix}
}

// WrapErrorWithFix wraps err. A nil err yields a CLIError without cause.
func WrapErrorWithFix(err error, message, fix string) *CLIError {
	return &CLIError{Message: message, Cause: err, Fix: fix}
}

// FixOf returns the fix hint of the first CLIError in err's chain.
func FixOf(err error) string {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Fix
	}
	return ""
}

// PrintError reports err on stderr, or as a JSON error result in JSON mode.
func PrintError(err error) {
	if JSONMode {
		JSONError(err)
		return
	}

	var cliErr *CLIError
	if !errors.As(err, &cliErr) {
		Error(err.Error())
		return
	}

	Error(cliErr.Message)
	if cliErr.Cause != nil {
		Debug("cause", "error", cliErr.Cause)
	}
	if cliErr.Fix != "" {
		if NoColor() {
			Info("Fix: " + cliErr.Fix)
		} else {
			Info("💡 " + cliErr.Fix)
		}
	}
}
