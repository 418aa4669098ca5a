// Package faulterr provides typed error handling for libfaultinj.
//
// It classifies the failure modes named in the error handling design:
// configuration errors fall back silently and are never returned as
// faulterr.Error (they are a logging/diagnostic concern only), resolution
// errors are fatal, and registry errors indicate a programming bug. All
// errors support the standard errors.Is() and errors.As() functions.
package faulterr

import (
	"errors"
	"fmt"
)

// Kind represents the category of an error.
type Kind int

const (
	// KindConfig indicates a policy environment variable could not be
	// parsed. Callers fall back to the documented default; this kind
	// exists for completeness, not because the interceptors ever
	// propagate it.
	KindConfig Kind = iota
	// KindResolution indicates the dynamic loader could not find libc
	// or one of its symbols. Fatal: the library cannot forward calls.
	KindResolution
	// KindRegistry indicates a descriptor-registry invariant was
	// violated. Should be unreachable by construction.
	KindRegistry
	// KindInternal indicates any other internal error.
	KindInternal
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config error"
	case KindResolution:
		return "resolution error"
	case KindRegistry:
		return "registry error"
	case KindInternal:
		return "internal error"
	default:
		return "unknown error"
	}
}

// Error represents an error occurring in the fault-injection engine.
type Error struct {
	// Op is the operation that failed (e.g. "resolve", "open").
	Op string
	// Err is the underlying error, if any.
	Err error
	// Kind is the error classification.
	Kind Kind
	// Detail provides additional context about the error.
	Detail string
}

// Error returns the error message.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	msg := ""
	if e.Op != "" {
		msg += fmt.Sprintf("%s: ", e.Op)
	}
	if e.Detail != "" {
		msg += e.Detail
	} else {
		msg += e.Kind.String()
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether the error matches the target. It matches if target
// is an *Error with the same Kind, or if the underlying error matches.
func (e *Error) Is(target error) bool {
	if e == nil {
		return target == nil
	}
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a new Error with the given kind.
func New(kind Kind, op string, detail string) *Error {
	return &Error{Op: op, Kind: kind, Detail: detail}
}

// Wrap wraps an error with an operation and kind.
func Wrap(err error, kind Kind, op string) *Error {
	return &Error{Op: op, Err: err, Kind: kind}
}

// IsKind checks whether an error is of a specific kind.
func IsKind(err error, kind Kind) bool {
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Kind == kind
	}
	return false
}

// Re-export standard library functions for convenience.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
