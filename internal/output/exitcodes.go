package output

import (
	"errors"

	"github.com/gorewood/xmlifyme/internal/fault"
)

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitPartial     = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for operator-caused issues (exit code 1).
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError creates an error for I/O failures (exit code 2).
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewPartialError reports an export where some records failed (exit code 3).
func NewPartialError(message string, cause error) *ExitError {
	return &ExitError{Code: ExitPartial, Message: message, Cause: cause}
}

// FromError wraps err in an *ExitError whose code follows its fault kind:
// config and parse problems are user errors, I/O and encoding failures are
// system errors. Existing *ExitErrors are returned as is.
func FromError(err error) *ExitError {
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	code := ExitUserError
	switch fault.KindOf(err) {
	case fault.KindIO, fault.KindEncoding:
		code = ExitSystemError
	}
	return &ExitError{Code: code, Message: err.Error(), Cause: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and applies FromError's mapping otherwise.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return FromError(err).Code
}
