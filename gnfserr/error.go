// Package gnfserr defines the error kinds used throughout the GNFS core
// and a context-carrying wrapper, in the shape of gospel/errors.Error:
// a sentinel base error for errors.Is/errors.As, plus a free-form context
// string describing where and why it occurred.
package gnfserr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per kind named in the specification.
var (
	// ErrInvalidInput covers N < 2, m <= 1, d < 2, or f(m) != N.
	ErrInvalidInput = errors.New("invalid input")
	// ErrOutOfRange covers Legendre called with p < 2, or a SymbolSearch
	// goal outside {-1,0,1}.
	ErrOutOfRange = errors.New("argument out of range")
	// ErrInternalInvariant covers negative trial-division inputs,
	// non-integral algebraic norms, matrix row/column mismatches, solving
	// before elimination, and out-of-range solution indices.
	ErrInternalInvariant = errors.New("internal invariant violated")
	// ErrNotFound covers SymbolSearch exhausting its search range.
	ErrNotFound = errors.New("not found")
	// ErrCancelled covers a cancellation token tripping at a suspension
	// point.
	ErrCancelled = errors.New("operation cancelled")
	// ErrOverflowBound covers prime-cache expansion past 2^31-1.
	ErrOverflowBound = errors.New("bound exceeds maximum")
	// ErrAlreadyExists covers createJob being called for a job directory
	// that already exists without an overwrite request.
	ErrAlreadyExists = errors.New("job already exists")
)

// Error wraps a sentinel base error with a formatted context string,
// preserving errors.Is/errors.As compatibility with the base error.
type Error struct {
	Err error  // base error
	Ctx string // error context
}

// Unwrap returns the base error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	if e.Ctx == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error wrapping base with a formatted context.
func New(base error, format string, args ...interface{}) *Error {
	return &Error{
		Err: base,
		Ctx: fmt.Sprintf(format, args...),
	}
}
