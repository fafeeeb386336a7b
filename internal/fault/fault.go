// Package fault classifies the errors xmlifyme can produce.
//
// Every error that crosses a package boundary is a *Error carrying the
// operation that failed, a coarse Kind, and (where relevant) the path
// involved. The CLI maps kinds to exit codes; library callers use IsKind.
package fault

import (
	"errors"
	"fmt"
)

// Kind is a coarse-grained categorization for errors.
type Kind string

const (
	// KindIO covers filesystem read, write and create failures.
	KindIO Kind = "io"
	// KindParse covers malformed JSON input.
	KindParse Kind = "parse"
	// KindConfig covers missing or invalid input directories, input files
	// and configuration files.
	KindConfig Kind = "config"
	// KindEncoding covers failures serializing a record's content.
	KindEncoding Kind = "encoding"
)

// Error wraps an underlying error with operation context and a kind.
type Error struct {
	Op   string
	Kind Kind
	Path string // Optional: relevant file path
	Err  error
}

// New builds an *Error.
func New(op string, kind Kind, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether the first *Error in err's chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}
